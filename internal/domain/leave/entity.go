package leave

// Status is a lifecycle state of a leave request as reported by the
// feed. The set is open upstream; anything unrecognized ranks lowest.
type Status string

const (
	StatusSubmitted Status = "Presentata"
	StatusValidated Status = "Validata"
	StatusCancelled Status = "Annullata"
	StatusRejected  Status = "Respinta"
	StatusApproved  Status = "Approvata"
)

// Priority gives the total order used to pick the current record of a
// request's lifecycle. Higher wins.
func (s Status) Priority() int {
	switch s {
	case StatusApproved:
		return 5
	case StatusRejected:
		return 4
	case StatusCancelled:
		return 3
	case StatusValidated:
		return 2
	case StatusSubmitted:
		return 1
	default:
		return 0
	}
}

// IsTerminal reports whether the status ends the lifecycle.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// Leave type tags as produced by the feed.
const (
	TypeOrdinary      = "ordinaria"
	TypeExtraordinary = "straordinaria"
	TypeSpecial       = "speciale"
	TypeDonorRest     = "riposo_donatori"
)

// Request is one historical status record of a leave request. A real
// request shows up as several records sharing the same identity key;
// raw records are never mutated, resolution picks the current one.
type Request struct {
	ID        string `json:"id"`
	Type      string `json:"tipo"`
	Reason    string `json:"motivo"`
	Status    Status `json:"stato"`
	StartDate string `json:"data_inizio"`
	EndDate   string `json:"data_fine"`
	EmailDate string `json:"email_date"`
}

// Key identifies one real-world request across its lifecycle records.
type Key struct {
	Type      string
	StartDate string
}

// IdentityKey returns the request's stable lifecycle key.
func (r Request) IdentityKey() Key {
	return Key{Type: r.Type, StartDate: r.StartDate}
}
