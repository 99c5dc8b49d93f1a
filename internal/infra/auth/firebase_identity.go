// Package auth implements the identity collaborator on Firebase
// Authentication. Password flows go through the Identity Toolkit REST API
// (the admin SDK cannot exchange passwords for tokens); token verification
// and revocation use the admin client.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lumera/internal/domain/entity"
	"lumera/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const identityToolkitBaseURL = "https://identitytoolkit.googleapis.com/v1"

type identityService struct {
	client     *firebaseauth.Client
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewIdentityService creates a Firebase-backed IdentityService.
func NewIdentityService(client *firebaseauth.Client, apiKey string, logger *slog.Logger) service.IdentityService {
	return &identityService{
		client:  client,
		apiKey:  apiKey,
		baseURL: identityToolkitBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type passwordResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignUp registers email/password and returns a fresh session.
func (s *identityService) SignUp(ctx context.Context, email, password string) (*service.AuthSession, error) {
	return s.passwordCall(ctx, "accounts:signUp", email, password)
}

// SignIn authenticates email/password and returns a fresh session.
func (s *identityService) SignIn(ctx context.Context, email, password string) (*service.AuthSession, error) {
	return s.passwordCall(ctx, "accounts:signInWithPassword", email, password)
}

// SignOut revokes the user's refresh tokens. Outstanding ID tokens expire on
// their own within the hour.
func (s *identityService) SignOut(ctx context.Context, uid string) error {
	if err := s.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// VerifyToken validates a bearer ID token and returns the caller identity.
func (s *identityService) VerifyToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	email, _ := token.Claims["email"].(string)

	return &entity.Identity{
		UID:   token.UID,
		Email: email,
	}, nil
}

func (s *identityService) passwordCall(ctx context.Context, endpoint, email, password string) (*service.AuthSession, error) {
	body, err := json.Marshal(passwordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", s.baseURL, endpoint, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity toolkit request failed")
	}
	defer resp.Body.Close()

	var parsed passwordResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity toolkit response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := ""
		if parsed.Error != nil {
			message = parsed.Error.Message
		}
		s.logger.Warn("Identity toolkit call rejected",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)

		return nil, mapIdentityError(message)
	}

	return &service.AuthSession{
		UID:          parsed.LocalID,
		Email:        parsed.Email,
		IDToken:      parsed.IDToken,
		RefreshToken: parsed.RefreshToken,
		ExpiresIn:    cast.ToInt64(parsed.ExpiresIn),
	}, nil
}

// mapIdentityError translates Identity Toolkit error codes to domain
// sentinels. Unknown codes stay generic so no provider detail leaks.
func mapIdentityError(message string) error {
	switch {
	case strings.HasPrefix(message, "EMAIL_EXISTS"):
		return service.ErrEmailAlreadyExists
	case strings.HasPrefix(message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(message, "USER_DISABLED"):
		return service.ErrBadCredentials
	default:
		return errors.Errorf("identity provider rejected request: %s", message)
	}
}
