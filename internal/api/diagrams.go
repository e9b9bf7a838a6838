package api

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/archplane/archplane/pkg/diagram"
	"github.com/archplane/archplane/pkg/errors"
	"github.com/archplane/archplane/pkg/store"
)

type diagramRequest struct {
	Name  string        `json:"name"`
	Graph diagram.Graph `json:"graph"`
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	diagrams, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "list diagrams"))
		return
	}
	if diagrams == nil {
		diagrams = []store.Diagram{}
	}
	writeJSON(w, http.StatusOK, diagrams)
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode diagram"))
		return
	}
	if req.Name == "" {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "diagram name is required"))
		return
	}

	now := time.Now().UTC()
	d := store.Diagram{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Graph:     req.Graph,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(r.Context(), d); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "save diagram"))
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := s.getDiagram(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleUpdateDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := s.getDiagram(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req diagramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode diagram"))
		return
	}

	if req.Name != "" {
		d.Name = req.Name
	}
	d.Graph = req.Graph
	d.UpdatedAt = time.Now().UTC()

	if err := s.store.Save(r.Context(), d); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "save diagram"))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := s.store.Delete(r.Context(), id)
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		writeError(w, errors.New(errors.ErrCodeDiagramNotFound, "diagram %s not found", id))
	case err != nil:
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "delete diagram"))
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleLayoutDiagram lays out a stored diagram and persists the result, so
// subsequent loads see the computed positions.
func (s *Server) handleLayoutDiagram(w http.ResponseWriter, r *http.Request) {
	d, err := s.getDiagram(r)
	if err != nil {
		writeError(w, err)
		return
	}

	out, cached, err := s.layoutCached(r.Context(), d.Graph, nil)
	if err != nil {
		writeError(w, err)
		return
	}

	d.Graph = out
	d.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(r.Context(), d); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStore, err, "save diagram"))
		return
	}

	if cached {
		w.Header().Set(cacheHeader, "hit")
	} else {
		w.Header().Set(cacheHeader, "miss")
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) getDiagram(r *http.Request) (store.Diagram, error) {
	id := chi.URLParam(r, "id")
	d, err := s.store.Get(r.Context(), id)
	switch {
	case stderrors.Is(err, store.ErrNotFound):
		return store.Diagram{}, errors.New(errors.ErrCodeDiagramNotFound, "diagram %s not found", id)
	case err != nil:
		return store.Diagram{}, errors.Wrap(errors.ErrCodeStore, err, "load diagram %s", id)
	}
	return d, nil
}
