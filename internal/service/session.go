// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cms-cli/internal/adapter"
	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/internal/store"
	"github.com/MKhiriev/go-cms-cli/internal/utils"
	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/tidwall/gjson"
)

// Session holds the access token and space scoping of one CMS user and
// forwards API calls on their behalf.
//
// Collaborator errors (transport, store, prompt) are returned unchanged;
// Session never retries.
type Session struct {
	transport adapter.AuthTransport
	newClient adapter.CMSClientFactory
	creds     store.CredentialStore
	prompter  Prompter

	loginURL  string
	signupURL string

	logger *logger.Logger

	mu          sync.RWMutex
	accessToken string
	spaceID     string
}

var _ SessionService = (*Session)(nil)

// NewSession builds an unauthenticated Session with no space set.
func NewSession(
	cfg config.API,
	transport adapter.AuthTransport,
	newClient adapter.CMSClientFactory,
	creds store.CredentialStore,
	prompter Prompter,
	logger *logger.Logger,
) *Session {
	return &Session{
		transport: transport,
		newClient: newClient,
		creds:     creds,
		prompter:  prompter,
		loginURL:  cfg.LoginURL,
		signupURL: cfg.SignupURL,
		logger:    logger,
	}
}

// Token returns the access token currently held in memory.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SpaceID returns the current space id, empty when unset.
func (s *Session) SpaceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spaceID
}

// SetSpaceID implements [SessionService].
func (s *Session) SetSpaceID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spaceID = id
}

// Path implements [SessionService].
func (s *Session) Path(path string) string {
	if id := s.SpaceID(); id != "" {
		return "spaces/" + id + "/" + path
	}
	return path
}

// Login implements [SessionService].
//
// When the first answer has "otp_required": true the user is asked once for
// the code and the credentials are posted again together with it. The token
// is then read from the final payload, kept in memory and remembered in the
// credential store.
func (s *Session) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	ctx, log := s.begin(ctx, "login")

	resp, err := s.transport.Post(ctx, s.loginURL, models.AuthRequest{Email: email, Password: password})
	if err != nil {
		log.Debug().Err(err).Msg("login request failed")
		return nil, err
	}

	data := resp.Data
	if gjson.GetBytes(data, "otp_required").Bool() {
		log.Debug().Msg("one-time passcode required")
		if s.prompter == nil {
			return nil, ErrPromptUnavailable
		}

		code, err := s.prompter.Ask(ctx, otpQuestion)
		if err != nil {
			return nil, err
		}

		resp, err = s.transport.Post(ctx, s.loginURL, models.AuthRequest{
			Email:      email,
			Password:   password,
			OTPAttempt: code,
		})
		if err != nil {
			log.Debug().Err(err).Msg("login with passcode failed")
			return nil, err
		}

		data = resp.Data
		if len(bytes.TrimSpace(data)) == 0 {
			data = json.RawMessage("{}")
		}
	}

	if err = s.processLogin(ctx, email, data); err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("logged in")
	return data, nil
}

// Signup implements [SessionService]. The token is read from the response
// payload, the same way Login reads it.
func (s *Session) Signup(ctx context.Context, email, password string) error {
	ctx, log := s.begin(ctx, "signup")

	resp, err := s.transport.Post(ctx, s.signupURL, models.AuthRequest{Email: email, Password: password})
	if err != nil {
		log.Debug().Err(err).Msg("signup request failed")
		return err
	}

	if err = s.processLogin(ctx, email, resp.Data); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("signed up")
	return nil
}

// processLogin keeps the token of a successful login payload in memory and
// remembers it for email.
func (s *Session) processLogin(ctx context.Context, email string, data json.RawMessage) error {
	token := gjson.GetBytes(data, "access_token").String()
	if token == "" {
		return ErrNoAccessToken
	}

	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()

	return s.creds.Set(ctx, email, token)
}

// Logout implements [SessionService]. The in-memory token is dropped only
// after the store was cleared.
func (s *Session) Logout(ctx context.Context) error {
	ctx, log := s.begin(ctx, "logout")

	if err := s.creds.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = ""
	s.mu.Unlock()

	log.Info().Msg("logged out")
	return nil
}

// IsAuthorized implements [SessionService]. A missing or empty remembered
// token leaves the in-memory token untouched.
func (s *Session) IsAuthorized(ctx context.Context) (bool, error) {
	ctx, _ = s.begin(ctx, "is_authorized")

	cred, err := s.creds.Get(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if cred.Token == "" {
		return false, nil
	}

	s.mu.Lock()
	s.accessToken = cred.Token
	s.mu.Unlock()

	return true, nil
}

// GetComponents implements [SessionService].
func (s *Session) GetComponents(ctx context.Context) ([]models.Component, error) {
	resp, err := s.send(ctx, adapter.MethodGet, "components", nil)
	if err != nil {
		return nil, err
	}

	components := make([]models.Component, 0)

	raw := gjson.GetBytes(resp.Data, "components")
	if !raw.IsArray() {
		return components, nil
	}
	if err = json.Unmarshal([]byte(raw.Raw), &components); err != nil {
		return nil, fmt.Errorf("decode components: %w", err)
	}

	return components, nil
}

// Get implements [SessionService].
func (s *Session) Get(ctx context.Context, path string) (models.Response, error) {
	return s.send(ctx, adapter.MethodGet, path, nil)
}

// Post implements [SessionService].
func (s *Session) Post(ctx context.Context, path string, body any) (models.Response, error) {
	return s.send(ctx, adapter.MethodPost, path, body)
}

// Put implements [SessionService].
func (s *Session) Put(ctx context.Context, path string, body any) (models.Response, error) {
	return s.send(ctx, adapter.MethodPut, path, body)
}

// Delete implements [SessionService].
func (s *Session) Delete(ctx context.Context, path string) (models.Response, error) {
	return s.send(ctx, adapter.MethodDelete, path, nil)
}

// send resolves the space-scoped path and forwards the call through a CMS
// client built from the current token.
func (s *Session) send(ctx context.Context, method adapter.Method, path string, body any) (models.Response, error) {
	ctx, log := s.begin(ctx, "request")

	scoped := s.Path(path)
	log.Debug().Str("method", method.String()).Str("path", scoped).Msg("forwarding request")

	return adapter.Do(ctx, s.newClient(s.Token()), method, scoped, body)
}

// begin tags ctx with a fresh request id and returns the matching logger.
func (s *Session) begin(ctx context.Context, op string) (context.Context, *logger.Logger) {
	requestID := utils.NewRequestID()
	ctx = utils.WithRequestID(ctx, requestID)

	ctx, log := s.logger.WithRequestID(ctx, requestID)
	log.Debug().Str("op", op).Msg("session call")

	return ctx, log
}
