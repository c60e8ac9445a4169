package api

import (
	"encoding/json"
	"net/http"

	"github.com/RavuAlHemio/icingcake/internal/domain"
)

// QueryResponse represents the response for GET /query
type QueryResponse struct {
	ObjType string              `json:"objtype"`
	Filter  string              `json:"filter"`
	Rows    []StatusRowResponse `json:"rows"`
}

// StatusRowResponse represents a single result row
type StatusRowResponse struct {
	Host      string `json:"host"`
	Service   string `json:"service,omitempty"`
	Output    string `json:"output"`
	State     uint8  `json:"state"`
	StateName string `json:"state_name"`
}

// CriteriaResponse represents the response for GET /criteria
type CriteriaResponse struct {
	Criteria  []string           `json:"criteria"`
	Operators []OperatorResponse `json:"operators"`
}

// OperatorResponse describes one filter operator
type OperatorResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// toStatusRowResponses converts domain rows to response rows
func toStatusRowResponses(objType domain.ObjectType, rows []domain.StatusRow) []StatusRowResponse {
	out := make([]StatusRowResponse, len(rows))
	for i, row := range rows {
		out[i] = StatusRowResponse{
			Host:      row.Host,
			Service:   row.Service,
			Output:    row.Output,
			State:     row.State,
			StateName: domain.StateName(objType, row.State),
		}
	}
	return out
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a domain error as a JSON error response
func writeError(w http.ResponseWriter, err error) {
	code := domain.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case domain.ErrCodeInvalidObjectType, domain.ErrCodeMissingParameter:
		status = http.StatusBadRequest
	}

	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: code})
}
