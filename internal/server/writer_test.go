package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mortac8/czml-writer/internal/app"
)

func newTestLogWriter(w http.ResponseWriter) *LogWriter {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	return NewLogWriter(log.Default(), w, r)
}

func TestLogWriterWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestLogWriter(rec).Write(Response{
		Status: http.StatusOK,
		Body:   map[string]string{"message": "ok"},
	})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("message = %q, want %q", body["message"], "ok")
	}
}

func TestLogWriterWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestLogWriter(rec).WriteError(&app.ServerResponseError{
		Err:        errors.New("document abc not found"),
		Msg:        "Document not found",
		StatusCode: http.StatusNotFound,
	})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}
	if body.ErrorMsg != "Document not found" {
		t.Errorf("error_msg = %q", body.ErrorMsg)
	}
}

func TestLogWriterWriteErrorWrapped(t *testing.T) {
	rec := httptest.NewRecorder()

	// Responder errors keep their status code even when wrapped.
	err := fmt.Errorf("validating token: %w", &app.ServerResponseError{
		Err:        errors.New("token is expired"),
		Msg:        "Please login",
		StatusCode: http.StatusUnauthorized,
	})
	newTestLogWriter(rec).WriteError(err)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestLogWriterWriteErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestLogWriter(rec).WriteError(errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not json: %v", err)
	}

	// Internal detail never leaks into the response body.
	if body.ErrorMsg != "Something went wrong" {
		t.Errorf("error_msg = %q", body.ErrorMsg)
	}
}
