// Package http provides http transport for the query log
package http

import (
	stdhttp "net/http"
	"strconv"

	"tripparse/internal/modkit/httpkit"
	"tripparse/internal/services/querylog/domain"
)

// Register mounts the query log endpoints on the given router
func Register(r httpkit.Router, h domain.HistoryPort) {
	hs := &handlers{history: h}

	httpkit.Get(r, "/recent", hs.recent)
}

type handlers struct{ history domain.HistoryPort }

// swagger:route GET /querylog/recent QueryLog querylogRecent
// @Summary Recently recorded queries, newest first
// @Tags QueryLog
// @Produce json
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} domain.Entry "ok"
// @Router /querylog/recent [get]
func (hs *handlers) recent(r *stdhttp.Request) (any, error) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	entries, err := hs.history.Recent(r.Context(), limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}
