// Package classify maps the feed's free-text shift details onto short
// display codes. The detail field is upstream prose, never structured
// data; matching is case-insensitive substring over Italian keywords.
package classify

import "strings"

// Rule is one classification entry. Rules are evaluated in order and
// the first match wins, so composite patterns must sit above the
// single-keyword ones they contain.
type Rule struct {
	Match func(detail string) bool
	Code  string
	Label string
}

func contains(sub string) func(string) bool {
	return func(detail string) bool {
		return strings.Contains(detail, sub)
	}
}

func containsAll(subs ...string) func(string) bool {
	return func(detail string) bool {
		for _, sub := range subs {
			if !strings.Contains(detail, sub) {
				return false
			}
		}
		return true
	}
}

func anyOf(matchers ...func(string) bool) func(string) bool {
	return func(detail string) bool {
		for _, m := range matchers {
			if m(detail) {
				return true
			}
		}
		return false
	}
}

// AbsenceRules classify absence details. "recupero riposo settimanale"
// and "recupero riposo festivo" must be checked before the plain
// "recupero" and "riposo ..." entries they both contain.
var AbsenceRules = []Rule{
	{containsAll("recupero", "riposo", "settimanale"), "RRS", "Recupero Riposo Settimanale"},
	{containsAll("recupero", "riposo", "festiv"), "RRF", "Recupero Riposo Festivo"},
	{contains("recupero"), "REC", "Recupero Ore"},
	{containsAll("riposo", "settimanale"), "RS", "Riposo Settimanale"},
	{containsAll("riposo", "festiv"), "RF", "Riposo Festivo"},
	{containsAll("licenza", "straordinaria"), "LS", "Licenza Straordinaria"},
	{containsAll("licenza", "ordinaria"), "LO", "Licenza Ordinaria"},
}

// PresenceRules classify presence details down to a service category.
var PresenceRules = []Rule{
	{anyOf(contains("esterno"), contains("scorta"), contains("accompagn")), "EST", "Servizio Esterno"},
	{anyOf(contains("operativ"), contains("indagini")), "OP", "Attività Operativa"},
	{anyOf(contains("istituzional"), contains("testimonianza")), "IST", "Impegno Istituzionale"},
	{anyOf(contains("ufficio"), contains("pratiche"), contains("interno")), "UFF", "Servizio Interno"},
}

// Fallbacks when no rule matches or the detail is empty.
const (
	AbsenceFallbackCode   = "R"
	AbsenceFallbackLabel  = "Riposo"
	PresenceFallbackCode  = "SRV"
	PresenceFallbackLabel = "Servizio"
)

// Absence returns the short code and label for an absence detail.
// Total over any string, including empty.
func Absence(detail string) (code, label string) {
	lower := strings.ToLower(detail)
	for _, rule := range AbsenceRules {
		if rule.Match(lower) {
			return rule.Code, rule.Label
		}
	}
	return AbsenceFallbackCode, AbsenceFallbackLabel
}

// Presence returns the short service code for a presence detail.
func Presence(detail string) string {
	code, _ := PresenceWithLabel(detail)
	return code
}

// PresenceWithLabel returns code and label for a presence detail.
func PresenceWithLabel(detail string) (code, label string) {
	lower := strings.ToLower(detail)
	for _, rule := range PresenceRules {
		if rule.Match(lower) {
			return rule.Code, rule.Label
		}
	}
	return PresenceFallbackCode, PresenceFallbackLabel
}
