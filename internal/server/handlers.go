package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jordan/visibility-scanner/internal/db"
	"github.com/jordan/visibility-scanner/internal/fetch"
	"github.com/jordan/visibility-scanner/internal/pipeline"
	"github.com/jordan/visibility-scanner/internal/scan"
)

// ScanRequest is the body for POST /scans.
type ScanRequest struct {
	URL     string `json:"url" validate:"required,url"`
	Enrich  bool   `json:"enrich,omitempty"`
	Persist bool   `json:"persist,omitempty"`
}

// BatchScanRequest is the body for POST /scans/batch.
type BatchScanRequest struct {
	URLs    []string `json:"urls" validate:"required,min=1,max=25,dive,url"`
	Enrich  bool     `json:"enrich,omitempty"`
	Persist bool     `json:"persist,omitempty"`
}

// BatchScanItem is one entry of a batch response. Failed URLs carry an error
// string instead of an outcome so one bad URL never fails the batch.
type BatchScanItem struct {
	URL     string            `json:"url"`
	Outcome *pipeline.Outcome `json:"outcome,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (s *Server) handleCreateScan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := pipeline.Run(r.Context(), req.URL, s.pipelineOptions(req.Enrich))
	if err != nil {
		var fetchErr *fetch.Error
		var parseErr *scan.ParseError
		switch {
		case errors.As(err, &fetchErr):
			writeError(w, http.StatusBadGateway, err.Error())
		case errors.As(err, &parseErr):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if req.Persist {
		if err := s.persistOutcome(r, outcome); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleBatchScan(w http.ResponseWriter, r *http.Request) {
	var req BatchScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]BatchScanItem, len(req.URLs))
	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(s.cfg.MaxConcurrent)

	for i, url := range req.URLs {
		g.Go(func() error {
			outcome, err := pipeline.Run(ctx, url, s.pipelineOptions(req.Enrich))
			if err != nil {
				items[i] = BatchScanItem{URL: url, Error: err.Error()}
				return nil
			}
			items[i] = BatchScanItem{URL: url, Outcome: outcome}
			return nil
		})
	}
	// Workers never return errors; Wait just joins them.
	_ = g.Wait()

	if req.Persist {
		for i := range items {
			if items[i].Outcome == nil {
				continue
			}
			if err := s.persistOutcome(r, items[i].Outcome); err != nil {
				items[i].Error = err.Error()
			}
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": items})
}

func (s *Server) handleGetScan(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusNotImplemented, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid scan ID")
		return
	}

	record, err := s.db.GetScan(r.Context(), id)
	if errors.Is(err, db.ErrScanNotFound) {
		writeError(w, http.StatusNotFound, "scan not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleListScans(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeError(w, http.StatusNotImplemented, "persistence is not configured")
		return
	}

	summaries, err := s.db.ListScans(r.Context(), 50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.ScanSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"scans": summaries})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) pipelineOptions(enrichRequested bool) pipeline.Options {
	opts := pipeline.Options{
		UserAgent:  s.cfg.UserAgent,
		Timeout:    time.Duration(s.cfg.TimeoutSeconds) * time.Second,
		UseBrowser: s.cfg.UseBrowser,
		Verbose:    s.cfg.Verbose,
	}
	if enrichRequested {
		opts.APIKey = s.cfg.APIKey
	}
	return opts
}

func (s *Server) persistOutcome(r *http.Request, outcome *pipeline.Outcome) error {
	if s.db == nil {
		return errors.New("persistence requested but no database is configured")
	}

	signalsJSON, err := json.Marshal(outcome.Signals)
	if err != nil {
		return err
	}
	reportJSON, err := json.Marshal(outcome.Report)
	if err != nil {
		return err
	}
	anchorJSON, err := json.Marshal(outcome.Anchor)
	if err != nil {
		return err
	}
	var enrichmentJSON []byte
	if outcome.Enrichment != nil {
		enrichmentJSON, err = json.Marshal(outcome.Enrichment)
		if err != nil {
			return err
		}
	}

	record := db.ScanRecord{
		ID:           outcome.ID,
		RequestedURL: outcome.Signals.RequestedURL,
		FinalURL:     outcome.Signals.FinalURL,
		HTTPStatus:   outcome.Signals.HTTPStatus,
		Score:        &outcome.Report.Score,
		Bucket:       string(outcome.Report.Bucket),
		Signals:      signalsJSON,
		Report:       reportJSON,
		Anchor:       anchorJSON,
		Enrichment:   enrichmentJSON,
	}

	_, err = s.db.SaveScan(r.Context(), record)
	return err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
