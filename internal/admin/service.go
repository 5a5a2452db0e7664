package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mortac8/czml-writer/internal/app"
)

// Service manages admin accounts. Admins upload and delete converted
// documents; regular callers only ever read them.
type Service struct {
	Secret []byte
	DB     *sql.DB
}

func New(secret []byte, db *sql.DB) *Service {
	return &Service{
		Secret: secret,
		DB:     db,
	}
}

// Signup creates an admin and stores it in the database. Signup only
// succeeds if the username is not in use. New admins start out
// unapproved and cannot act until approval is granted directly in the
// database.
func (s *Service) Signup(ctx context.Context, username string, password string) error {
	admin := AdminEntity{Username: username}

	err := admin.SelectWhereUsername(ctx, s.DB)
	if err == nil {
		return &app.ServerResponseError{
			Err:        fmt.Errorf("username %q in use", admin.Username),
			Msg:        "Username is taken",
			StatusCode: http.StatusConflict,
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("selecting admin (username=%s): %w", admin.Username, err)
	}

	if err := admin.ValidateUsername(); err != nil {
		return fmt.Errorf("validating username: %w", err)
	}

	// SetPasswordHash also validates the password.
	if err := admin.SetPasswordHash(password); err != nil {
		return fmt.Errorf("setting password hash: %w", err)
	}

	admin.Approved = false
	admin.CreatedAt = time.Now().UTC()

	if err := admin.Insert(ctx, s.DB); err != nil {
		return fmt.Errorf("inserting admin (username=%s): %w", admin.Username, err)
	}

	return nil
}

// Login checks the credentials against the stored password hash and, if
// they are valid and the admin is approved, returns a signed access
// token. This is the only way to get an admin access token.
func (s *Service) Login(ctx context.Context, username string, password string) (string, error) {
	admin := AdminEntity{Username: username}
	if err := admin.SelectWhereUsername(ctx, s.DB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &app.ServerResponseError{
				Err:        fmt.Errorf("admin not found"),
				Msg:        "Invalid credentials",
				StatusCode: http.StatusUnauthorized,
			}
		}
		return "", fmt.Errorf("selecting admin (username=%s): %w", admin.Username, err)
	}

	if !admin.CheckPasswordHash(password) {
		return "", &app.ServerResponseError{
			Err:        fmt.Errorf("invalid password"),
			Msg:        "Invalid credentials",
			StatusCode: http.StatusUnauthorized,
		}
	}

	if !admin.IsApproved() {
		return "", &app.ServerResponseError{
			Err:        errors.New("admin not approved"),
			Msg:        "Your account has not been approved",
			StatusCode: http.StatusUnauthorized,
		}
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = fmt.Sprintf("%d", admin.ID)
	claims["exp"] = time.Now().Add(time.Hour).Unix()

	tokenStr, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenStr, nil
}

// Validate parses and validates a token. If the token belongs to a
// stored admin, that admin's account is returned.
//
// Validate does not check if the admin has been approved, that is the
// callers responsibility.
func (s *Service) Validate(ctx context.Context, tokenStr string) (Account, error) {
	token, err := jwt.Parse(
		tokenStr,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid signing method")
			}
			return s.Secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return Account{}, &app.ServerResponseError{
			Err:        fmt.Errorf("parsing token: %w", err),
			Msg:        "Please login",
			StatusCode: http.StatusUnauthorized,
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		// Tokens are only minted by Login, which always sets claims of
		// type jwt.MapClaims.
		return Account{}, errors.New("could not get token claims")
	}

	if !claims.VerifyExpiresAt(time.Now().Unix(), true) {
		return Account{}, &app.ServerResponseError{
			Err:        errors.New("token is expired"),
			Msg:        "Please login",
			StatusCode: http.StatusUnauthorized,
		}
	}

	subClaim, ok := claims["sub"]
	if !ok {
		return Account{}, errors.New("missing sub claim")
	}

	subStr, ok := subClaim.(string)
	if !ok {
		return Account{}, errors.New("sub claim not type string")
	}

	sub, err := strconv.Atoi(subStr)
	if err != nil {
		return Account{}, fmt.Errorf("parsing sub to int: %w", err)
	}

	// Make sure the admin still exists. An admin holding a valid token
	// may have been deleted after the token was issued.
	admin := AdminEntity{ID: sub}
	if err := admin.Select(ctx, s.DB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Account{}, &app.ServerResponseError{
				Err:        fmt.Errorf("admin not found (id=%d)", admin.ID),
				Msg:        "Account not found",
				StatusCode: http.StatusUnauthorized,
			}
		}

		return Account{}, fmt.Errorf("selecting admin: %w", err)
	}

	return admin.Account(), nil
}
