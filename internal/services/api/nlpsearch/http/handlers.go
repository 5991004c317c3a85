// Package http provides http transport for nlp-search
package http

import (
	stdhttp "net/http"
	"strings"

	"tripparse/internal/modkit/httpkit"
	perr "tripparse/internal/platform/errors"
	"tripparse/internal/services/api/nlpsearch/domain"
	svc "tripparse/internal/services/api/nlpsearch/service"
)

// Register mounts the nlp-search endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full search: parse plus interpretation, prompts, searchability
	httpkit.PostJSON[domain.ParseInput](r, "/", h.search)

	// bare parse for quick lookups
	httpkit.Get(r, "/", h.parse)

	// language detection detail
	httpkit.Get(r, "/language", h.language)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /nlp-search NLPSearch nlpSearch
// @Summary Parse a free-text travel query
// @Tags NLPSearch
// @Accept json
// @Produce json
// @Param payload body domain.ParseInput true "Query"
// @Success 200 {object} domain.SearchResponse "ok"
// @Router /nlp-search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.ParseInput) (any, error) {
	return h.svc.Search(r.Context(), in)
}

// swagger:route GET /nlp-search NLPSearch nlpParse
// @Summary Parse a free-text travel query (bare result)
// @Tags NLPSearch
// @Produce json
// @Param q query string true "Query text"
// @Success 200 {object} parser.ParsedTravelRequest "ok"
// @Router /nlp-search [get]
func (h *handlers) parse(r *stdhttp.Request) (any, error) {
	q, err := queryText(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Parse(r.Context(), q)
}

// swagger:route GET /nlp-search/language NLPSearch nlpLanguage
// @Summary Detect the language of a query
// @Tags NLPSearch
// @Produce json
// @Param q query string true "Query text"
// @Success 200 {object} domain.LanguageResponse "ok"
// @Router /nlp-search/language [get]
func (h *handlers) language(r *stdhttp.Request) (any, error) {
	q, err := queryText(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Language(q), nil
}

func queryText(r *stdhttp.Request) (string, error) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		return "", perr.WithField(perr.Validationf("q is required"), "q")
	}
	return q, nil
}
