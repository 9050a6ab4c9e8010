package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/palletlab/warevis/pkg/errors"
	"github.com/palletlab/warevis/pkg/pipeline"
	"github.com/palletlab/warevis/pkg/warehouse"
)

// createRequest is the body of POST /api/warehouse/create.
// The configuration is embedded directly so clients can post the same
// document the CLI accepts as a file.
type createRequest struct {
	warehouse.Config
	Formats []string `json:"formats,omitempty"`
}

// createResponse is the body of a successful create.
type createResponse struct {
	ID        string            `json:"id"`
	Layout    warehouse.Layout  `json:"layout"`
	Artifacts map[string]string `json:"artifacts,omitempty"`
	Stats     statsResponse     `json:"stats"`
}

type statsResponse struct {
	Blocks  int `json:"blocks"`
	Racks   int `json:"racks"`
	Pallets int `json:"pallets"`
}

// getResponse is the body of GET /api/warehouse/{id}.
type getResponse struct {
	ID        string           `json:"id"`
	Config    warehouse.Config `json:"config"`
	Layout    warehouse.Layout `json:"layout"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// errorResponse carries structured error codes to API clients.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	result, err := s.runner.Create(r.Context(), pipeline.Options{
		Config:  req.Config,
		Formats: req.Formats,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := createResponse{
		ID:     result.ID,
		Layout: result.Layout,
		Stats: statsResponse{
			Blocks:  result.Stats.BlockCount,
			Racks:   result.Stats.RackCount,
			Pallets: result.Stats.PalletCount,
		},
	}
	if len(result.Artifacts) > 0 {
		resp.Artifacts = make(map[string]string, len(result.Artifacts))
		for format, data := range result.Artifacts {
			resp.Artifacts[format] = string(data)
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	v, err := s.runner.Validate(r.Context(), pipeline.Options{Config: req.Config})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.runner.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, getResponse{
		ID:        rec.ID,
		Config:    rec.Config,
		Layout:    rec.Layout,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.runner.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.runner.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"warehouses": ids})
}

// writeError maps structured error codes onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeMalformedConfig, errors.ErrCodeUnsupportedUnit,
		errors.ErrCodeInsufficientSpace, errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeWarehouseNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}

	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
