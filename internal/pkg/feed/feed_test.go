package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDecode_MissingSectionsDefaultEmpty(t *testing.T) {
	doc, err := Decode([]byte(`{"anno": 2025}`))
	require.NoError(t, err)

	assert.Equal(t, 2025, doc.Year)
	assert.NotNil(t, doc.Days)
	assert.Empty(t, doc.Days)
	assert.NotNil(t, doc.Leaves)
	assert.NotNil(t, doc.Archives)
	assert.NotNil(t, doc.Stats.PerMonth)
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"anno":`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecode_NormalizesShifts(t *testing.T) {
	raw := []byte(`{
		"giornate": [
			{"data": "2025-03-01", "turni": [
				{"tipo": "REPERIBILITA", "dettaglio": "turno notturno"},
				{"tipo": "ASSENZA", "dettaglio": "Riposo settimanale", "stato": "eliminato"}
			]}
		]
	}`)
	doc, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, doc.Days, 1)

	day := doc.Days[0]
	assert.Equal(t, shift.SourceFeed, day.Source)
	// unrecognized kinds fall back to presence
	assert.Equal(t, shift.KindPresence, day.Shifts[0].Kind)
	assert.Equal(t, shift.StatusActive, day.Shifts[0].Status)
	// explicit status survives
	assert.Equal(t, shift.StatusRemoved, day.Shifts[1].Status)
}

func TestClient_LoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servizi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"anno": 2025, "giornate": []}`), 0644))

	client := NewClient(path, discardLogger())
	doc, err := client.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2025, doc.Year)

	current, ok := client.Current()
	require.True(t, ok)
	assert.Equal(t, doc, current)
}

func TestClient_LoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"anno": 2024}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/data/servizi.json", discardLogger())
	doc, err := client.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2024, doc.Year)
}

func TestClient_FailedLoadKeepsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "servizi.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"anno": 2025}`), 0644))

	client := NewClient(path, discardLogger())
	_, err := client.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))
	_, err = client.Load(context.Background())
	assert.ErrorIs(t, err, ErrMalformed)

	current, ok := client.Current()
	require.True(t, ok)
	assert.Equal(t, 2025, current.Year)
}

func TestClient_ArchiveSource(t *testing.T) {
	fileClient := NewClient("/data/servizi.json", discardLogger())
	assert.Equal(t, filepath.Join("/data", "archivio_2024.json"), fileClient.archiveSource(2024))

	httpClient := NewClient("https://example.com/data/servizi.json", discardLogger())
	assert.Equal(t, "https://example.com/data/archivio_2024.json", httpClient.archiveSource(2024))
}

func TestClient_LoadUnavailableSource(t *testing.T) {
	client := NewClient("/nonexistent/servizi.json", discardLogger())
	_, err := client.Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	_, ok := client.Current()
	assert.False(t, ok)
}
