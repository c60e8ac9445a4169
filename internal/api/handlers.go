package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/RavuAlHemio/icingcake/internal/domain"
	"github.com/RavuAlHemio/icingcake/internal/filter"
	"github.com/RavuAlHemio/icingcake/internal/icinga"
)

// Querier runs filtered queries against a monitoring backend
type Querier interface {
	Query(ctx context.Context, objType domain.ObjectType, filterExpr string) ([]domain.StatusRow, error)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	querier Querier
}

// NewHandlers creates new HTTP handlers
func NewHandlers(querier Querier) *Handlers {
	return &Handlers{querier: querier}
}

// Query handles GET /api/v1/query
func (h *Handlers) Query(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	if !params.Has("objtype") {
		writeError(w, fmt.Errorf("%w: objtype", domain.ErrMissingParameter))
		return
	}

	objType, err := domain.ParseObjectType(params.Get("objtype"))
	if err != nil {
		writeError(w, err)
		return
	}

	// filter is optional; an empty expression matches all objects
	filterExpr := params.Get("filter")

	rows, err := h.querier.Query(r.Context(), objType, filterExpr)
	if err != nil {
		var apiErr *icinga.APIError
		if errors.As(err, &apiErr) {
			writeJSON(w, http.StatusBadGateway, ErrorResponse{
				Error: apiErr.Body,
				Code:  domain.ErrCodeIcingaError,
			})
			return
		}
		log.Printf("query objtype=%s failed: %v", objType, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QueryResponse{
		ObjType: string(objType),
		Filter:  filterExpr,
		Rows:    toStatusRowResponses(objType, rows),
	})
}

// GetCriteria handles GET /api/v1/criteria
func (h *Handlers) GetCriteria(w http.ResponseWriter, r *http.Request) {
	resp := CriteriaResponse{
		Criteria:  make([]string, len(filter.Criteria)),
		Operators: make([]OperatorResponse, len(filter.Operators)),
	}
	for i, c := range filter.Criteria {
		resp.Criteria[i] = string(c)
	}
	for i, op := range filter.Operators {
		resp.Operators[i] = OperatorResponse{Name: string(op), Label: op.Label()}
	}

	writeJSON(w, http.StatusOK, resp)
}
