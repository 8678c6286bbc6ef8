package mock

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ethanolivertroy/riskboard/internal/models"
)

const risksPath = "/api/v1/tables/risks"

// filterKeys are the query parameters the risks table can be filtered on.
// Anything else is logged and skipped rather than rejected.
var filterKeys = map[string]bool{
	"host":     true,
	"severity": true,
}

// Server is a self-contained risks backend for demos and local dashboard
// development. It serves a fixed set of findings plus a number of generated
// ones.
type Server struct {
	addr     string
	findings []models.Finding
}

func NewServer(addr string, count int) *Server {
	return &Server{
		addr:     addr,
		findings: SampleFindings(count),
	}
}

var severityCycle = []string{"Critical", "High", "Medium", "Low", "Info"}

var messageCycle = []string{
	"TLS certificate expires within 14 days",
	"Outdated OpenSSH version detected",
	"Weak cipher suite accepted on port 443",
	"Anonymous FTP login allowed",
	"Directory listing enabled on web root",
}

// SampleFindings returns a deterministic set of base findings followed by
// count generated ones.
func SampleFindings(count int) []models.Finding {
	findings := []models.Finding{
		{Host: "10.0.0.5", Severity: "High", Message: "Open port 22"},
		{Host: "10.0.1.12", Severity: "Critical", Message: "Default credentials on management endpoint"},
		{Host: "app-gw-01", Severity: "Medium", Message: "Self-signed certificate in chain"},
		{Host: "10.0.3.40", Severity: "Low", Message: "ICMP timestamp responses enabled"},
	}
	for i := 0; i < count; i++ {
		findings = append(findings, models.Finding{
			Host:     "node-" + uuid.New().String()[:8],
			Severity: severityCycle[i%len(severityCycle)],
			Message:  messageCycle[i%len(messageCycle)],
		})
	}
	return findings
}

// Handler returns the HTTP handler serving the risks table API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(risksPath, s.handleRisks)
	return mux
}

func (s *Server) handleRisks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filters := map[string]string{}
	for key, values := range r.URL.Query() {
		if !filterKeys[key] {
			log.Info().Str("key", key).Msg("skipping invalid risks filter key")
			continue
		}
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	rows := filterRows(s.findings, filters)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		log.Error().Err(err).Msg("failed to encode risks table")
		return
	}
	log.Debug().Int("rows", len(rows)).Msg("served risks table")
}

func filterRows(findings []models.Finding, filters map[string]string) []models.Finding {
	rows := []models.Finding{}
	for _, f := range findings {
		if want, ok := filters["host"]; ok && !strings.EqualFold(f.Host, want) {
			continue
		}
		if want, ok := filters["severity"]; ok && !strings.EqualFold(f.Severity, want) {
			continue
		}
		rows = append(rows, f)
	}
	return rows
}

// Serve runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Int("rows", len(s.findings)).Msg("mock risks backend listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "mock server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "mock server shutdown failed")
	}
	return nil
}
