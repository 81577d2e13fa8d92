package handlers

import (
	"encoding/json"
	"net/http"

	"yatube/internal/middleware"
)

func (h *Handlers) AboutAuthor(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	h.Renderer.Page(w, http.StatusOK, "about_author.html", map[string]any{"identity": ident})
}

func (h *Handlers) AboutTech(w http.ResponseWriter, r *http.Request) {
	ident, _ := middleware.IdentityFromContext(r.Context())
	h.Renderer.Page(w, http.StatusOK, "about_tech.html", map[string]any{"identity": ident})
}

func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Renderer.NotFound(w)
}

type HealthResponse struct {
	Status string         `json:"status"`
	Tables map[string]int `json:"tables"`
	Cache  string         `json:"cache"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	counts, err := h.StatsService.TableCounts(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(HealthResponse{Status: "error"})
		return
	}

	cacheStatus := "ok"
	if err := h.Cache.Ping(r.Context()); err != nil {
		cacheStatus = "unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status: "ok",
		Tables: counts,
		Cache:  cacheStatus,
	})
}
