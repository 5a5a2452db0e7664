package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/mortac8/czml-writer/internal/admin"
	"github.com/mortac8/czml-writer/internal/app"
)

const adminTokenCookieKey = "admin_token"

// AdminValidater is a middleware that is wrapped around admin paths.
// Any HTTP request that requires a valid admin should be wrapped in the
// Validate func.
type AdminValidater struct {
	admins *admin.Service
	logger *log.Logger
}

// Validate verifies that the caller is an admin. If the request carries
// a valid admin token cookie, next executes with an "admin_id" context
// value holding the validated admin's id.
func (v *AdminValidater) Validate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lw := NewLogWriter(v.logger, w, r)

		cookie, err := r.Cookie(adminTokenCookieKey)
		if err != nil {
			appErr := &app.ServerResponseError{
				Err:        fmt.Errorf("getting %s cookie: %w", adminTokenCookieKey, err),
				Msg:        "Please login",
				StatusCode: http.StatusUnauthorized,
			}
			v.logAbort(r, appErr, "AdminValidater.Validate")
			lw.WriteError(appErr)
			return
		}

		account, err := v.admins.Validate(r.Context(), cookie.Value)
		if err != nil {
			err = fmt.Errorf("validating token: %w", err)
			v.logAbort(r, err, "AdminValidater.Validate")
			lw.WriteError(err)
			return
		}

		if !account.IsApproved() {
			appErr := &app.ServerResponseError{
				Err:        fmt.Errorf("admin not approved (id=%d)", account.ID),
				Msg:        "Your admin rights are under review",
				StatusCode: http.StatusUnauthorized,
			}
			v.logAbort(r, appErr, "AdminValidater.Validate")
			lw.WriteError(appErr)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), "admin_id", account.ID)))
	}
}

func (v *AdminValidater) logAbort(r *http.Request, err error, entry string) {
	v.logger.Printf("%s %s %s: aborting admin request: %v\n", r.Method, r.URL.Path, entry, err)
}
