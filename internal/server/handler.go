package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mortac8/czml-writer/internal/admin"
	"github.com/mortac8/czml-writer/internal/app"
	"github.com/mortac8/czml-writer/internal/scene"
)

type Handler struct {
	logger    *log.Logger
	documents *scene.Service
	admins    *admin.Service
}

func NewHandler(l *log.Logger) *Handler {
	return &Handler{
		logger: l,
	}
}

func (h *Handler) NewLogWriter(w http.ResponseWriter, r *http.Request) *LogWriter {
	return NewLogWriter(h.logger, w, r)
}

func (h *Handler) HelloWorld() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type res struct {
			Message string `json:"message"`
		}

		h.NewLogWriter(w, r).Write(Response{
			Status: http.StatusOK,
			Body:   res{Message: "Hello, World!"},
		})
	}
}

// HandleGetDocument responds with the metadata of a converted document.
func (h *Handler) HandleGetDocument() http.HandlerFunc {
	type res struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		TotalPackets int       `json:"total_packets"`
		CreatedAt    time.Time `json:"created_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writer := h.NewLogWriter(w, r)

		id, err := ParseDocumentID(r.URL.Query().Get("id"))
		if err != nil {
			writer.WriteError(err)
			return
		}

		entity, _, err := h.documents.Get(ctx, id)
		if err != nil {
			h.logger.Printf("HandleGetDocument: failed to get document (id=%q): %v", id, err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body: res{
				ID:           entity.ID,
				Name:         entity.Name,
				TotalPackets: entity.TotalPackets,
				CreatedAt:    entity.CreatedAt,
			},
		})
	}
}

// HandleGetDocumentCZML responds with the CZML packet array of a
// converted document, ready to be loaded by a renderer.
func (h *Handler) HandleGetDocumentCZML() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writer := h.NewLogWriter(w, r)

		id, err := ParseDocumentID(r.URL.Query().Get("id"))
		if err != nil {
			writer.WriteError(err)
			return
		}

		_, doc, err := h.documents.Get(ctx, id)
		if err != nil {
			h.logger.Printf("HandleGetDocumentCZML: failed to get document (id=%q): %v", id, err)
			writer.WriteError(err)
			return
		}

		data, err := doc.Marshal()
		if err != nil {
			h.logger.Printf("HandleGetDocumentCZML: failed to marshal document (id=%q): %v", id, err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body:   json.RawMessage(data),
		})
	}
}

// HandleCreateDocument converts a KML document into CZML and stores it.
// The KML is read from the request body, or fetched remotely when a
// "url" query parameter is set.
func (h *Handler) HandleCreateDocument() http.HandlerFunc {
	type res struct {
		ID            string                 `json:"id"`
		Name          string                 `json:"name"`
		TotalPolygons int                    `json:"total_polygons"`
		TotalPackets  int                    `json:"total_packets"`
		Fails         []scene.FlattenFailure `json:"fails"`
		CreatedAt     time.Time              `json:"created_at"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writer := h.NewLogWriter(w, r)
		name := r.URL.Query().Get("name")

		var result scene.SaveResult
		var err error
		if url := r.URL.Query().Get("url"); url != "" {
			result, err = h.documents.SaveURL(ctx, name, url)
		} else {
			var body []byte
			body, err = io.ReadAll(r.Body)
			if err != nil {
				writer.WriteError(&app.ServerResponseError{
					Err:        fmt.Errorf("reading request body: %w", err),
					Msg:        "Could not read request body",
					StatusCode: http.StatusBadRequest,
				})
				return
			}
			result, err = h.documents.Save(ctx, name, body)
		}
		if err != nil {
			h.logger.Printf("HandleCreateDocument: failed to save document (name=%q): %v", name, err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body: res{
				ID:            result.ID,
				Name:          result.Name,
				TotalPolygons: result.TotalPolygons(),
				TotalPackets:  result.Packets,
				Fails:         result.Fails,
				CreatedAt:     result.CreatedAt,
			},
		})
	}
}

func (h *Handler) HandleDeleteDocument() http.HandlerFunc {
	type res struct {
		ID string `json:"id"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		writer := h.NewLogWriter(w, r)

		id, err := ParseDocumentID(r.URL.Query().Get("id"))
		if err != nil {
			writer.WriteError(err)
			return
		}

		if err := h.documents.Delete(ctx, id); err != nil {
			h.logger.Printf("HandleDeleteDocument: failed to delete document (id=%q): %v", id, err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusOK,
			Body:   res{ID: id},
		})
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) HandlePostSignup() http.HandlerFunc {
	type res struct {
		Message string `json:"message"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writer := h.NewLogWriter(w, r)

		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			writer.WriteError(&app.ServerResponseError{
				Err:        fmt.Errorf("decoding credentials: %w", err),
				Msg:        "Invalid request body",
				StatusCode: http.StatusBadRequest,
			})
			return
		}

		if err := h.admins.Signup(r.Context(), creds.Username, creds.Password); err != nil {
			h.logger.Printf("HandlePostSignup: failed to signup (username=%q): %v", creds.Username, err)
			writer.WriteError(err)
			return
		}

		writer.Write(Response{
			Status: http.StatusCreated,
			Body:   res{Message: "Signup complete, awaiting approval"},
		})
	}
}

func (h *Handler) HandlePostLogin() http.HandlerFunc {
	type res struct {
		Message string `json:"message"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writer := h.NewLogWriter(w, r)

		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			writer.WriteError(&app.ServerResponseError{
				Err:        fmt.Errorf("decoding credentials: %w", err),
				Msg:        "Invalid request body",
				StatusCode: http.StatusBadRequest,
			})
			return
		}

		token, err := h.admins.Login(r.Context(), creds.Username, creds.Password)
		if err != nil {
			h.logger.Printf("HandlePostLogin: failed to login (username=%q): %v", creds.Username, err)
			writer.WriteError(err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     adminTokenCookieKey,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(time.Hour),
			HttpOnly: true,
		})

		writer.Write(Response{
			Status: http.StatusOK,
			Body:   res{Message: "Login successful"},
		})
	}
}
