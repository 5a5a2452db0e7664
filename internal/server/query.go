package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

type QueryParameterError struct {
	Msg string
	error
}

func (p *QueryParameterError) ServerErrorResponse() (int, string) {
	return http.StatusBadRequest, p.Msg
}

// ParseDocumentID validates an "id" query parameter. Document IDs are
// always UUID strings, so anything else is rejected before it reaches
// the database.
//
// If validation fails an error is returned as a QueryParameterError.
func ParseDocumentID(idStr string) (string, error) {
	if idStr == "" {
		return "", &QueryParameterError{
			Msg:   "Missing document id",
			error: fmt.Errorf("empty id parameter"),
		}
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", &QueryParameterError{
			Msg:   "Invalid document id",
			error: fmt.Errorf("failed to parse id: %w", err),
		}
	}

	return id.String(), nil
}
