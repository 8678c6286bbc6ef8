package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

func getRows(t *testing.T, server *httptest.Server, path string) []models.Finding {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []models.Finding
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	return rows
}

func TestHandlerServesAllRows(t *testing.T) {
	server := httptest.NewServer(NewServer("", 3).Handler())
	defer server.Close()

	rows := getRows(t, server, "/api/v1/tables/risks")
	assert.Len(t, rows, 7)
	assert.Equal(t, models.Finding{Host: "10.0.0.5", Severity: "High", Message: "Open port 22"}, rows[0])
}

func TestHandlerFiltersByHost(t *testing.T) {
	server := httptest.NewServer(NewServer("", 0).Handler())
	defer server.Close()

	rows := getRows(t, server, "/api/v1/tables/risks?host=app-gw-01")
	require.Len(t, rows, 1)
	assert.Equal(t, "app-gw-01", rows[0].Host)
}

func TestHandlerFiltersBySeverity(t *testing.T) {
	server := httptest.NewServer(NewServer("", 0).Handler())
	defer server.Close()

	rows := getRows(t, server, "/api/v1/tables/risks?severity=high")
	require.Len(t, rows, 1)
	assert.Equal(t, "High", rows[0].Severity)
}

func TestHandlerSkipsUnknownFilterKeys(t *testing.T) {
	server := httptest.NewServer(NewServer("", 0).Handler())
	defer server.Close()

	rows := getRows(t, server, "/api/v1/tables/risks?bogus=1")
	assert.Len(t, rows, 4, "unknown filter keys are skipped, not applied")
}

func TestHandlerUnknownPath(t *testing.T) {
	server := httptest.NewServer(NewServer("", 0).Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/tables/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlerRejectsNonGet(t *testing.T) {
	server := httptest.NewServer(NewServer("", 0).Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/v1/tables/risks", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSampleFindings(t *testing.T) {
	findings := SampleFindings(10)
	assert.Len(t, findings, 14)

	for _, f := range findings {
		assert.False(t, f.IsBlank())
		assert.NotEqual(t, models.RankUnknown, models.RankSeverity(f.Severity))
	}
}
