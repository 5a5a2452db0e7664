package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// LogWriter writes JSON responses and logs anything that goes wrong
// while doing it.
type LogWriter struct {
	logger *log.Logger
	rw     http.ResponseWriter
	r      *http.Request
}

func NewLogWriter(l *log.Logger, rw http.ResponseWriter, r *http.Request) *LogWriter {
	return &LogWriter{l, rw, r}
}

func (w *LogWriter) log(format string, v ...any) {
	w.logger.Println(fmt.Sprintf(format, v...))
}

func (w *LogWriter) Write(r Response) {
	w.rw.Header().Set("Content-Type", "application/json")
	w.rw.WriteHeader(r.Status)
	if err := json.NewEncoder(w.rw).Encode(r.Body); err != nil {
		w.log("*LogWriter.Write: failed to write json to http.ResponseWriter: %v\n", err)
	}
}

// ServerErrorResponser is an error that knows the status code and body
// it should be reported with. Service errors implement it; everything
// else is reported as a 500.
type ServerErrorResponser interface {
	ServerErrorResponse() (int, string)
}

func (w *LogWriter) WriteError(err error) {
	errResp := ErrorResponse{
		Status:   http.StatusInternalServerError,
		ErrorMsg: "Something went wrong",
	}

	var apiError ServerErrorResponser
	if errors.As(err, &apiError) {
		errResp.Status, errResp.ErrorMsg = apiError.ServerErrorResponse()
	}

	w.Write(errResp.AsResponse())
}
