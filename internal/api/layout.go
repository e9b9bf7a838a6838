package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/archplane/archplane/pkg/cache"
	"github.com/archplane/archplane/pkg/diagram"
	"github.com/archplane/archplane/pkg/errors"
	"github.com/archplane/archplane/pkg/layout"
	"github.com/archplane/archplane/pkg/observability"
)

// cacheHeader reports whether a layout response was served from cache.
const cacheHeader = "X-Archplane-Cache"

type layoutRequest struct {
	Graph diagram.Graph `json:"graph"`

	// Config overrides the server's layout parameters for this request.
	Config *layout.Config `json:"config,omitempty"`
}

type layoutResponse struct {
	Graph diagram.Graph `json:"graph"`
}

// handleLayout lays out a graph without persisting anything. Identical
// requests hit the result cache.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout request"))
		return
	}

	out, cached, err := s.layoutCached(r.Context(), req.Graph, req.Config)
	if err != nil {
		writeError(w, err)
		return
	}

	if cached {
		w.Header().Set(cacheHeader, "hit")
	} else {
		w.Header().Set(cacheHeader, "miss")
	}
	writeJSON(w, http.StatusOK, layoutResponse{Graph: out})
}

// layoutCached runs the engine with a cache in front of it. The key covers
// the graph content, the effective config, and whether a solver is attached;
// the engine is deterministic in all three.
func (s *Server) layoutCached(ctx context.Context, g diagram.Graph, override *layout.Config) (diagram.Graph, bool, error) {
	eng := *s.engine
	if override != nil {
		eng.Config = *override
	}

	raw, err := diagram.Marshal(g)
	if err != nil {
		return diagram.Graph{}, false, errors.Wrap(errors.ErrCodeInvalidGraph, err, "serialize graph")
	}
	key := cache.LayoutKey(cache.Hash(raw), cache.LayoutKeyOpts{
		Solver: eng.Solver != nil,
		Config: eng.Config,
	})

	if data, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		var out diagram.Graph
		if err := json.Unmarshal(data, &out); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return out, true, nil
		}
		// A corrupt entry is recomputed and overwritten below.
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	out := eng.Layout(ctx, g)

	if data, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logger.Warnf("Cache layout result: %v", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return out, false, nil
}
