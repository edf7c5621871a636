// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-cms-cli/internal/adapter"
	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/internal/mock"
	"github.com/MKhiriev/go-cms-cli/internal/store"
	"github.com/MKhiriev/go-cms-cli/internal/utils"
	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testLoginURL  = "https://cms.test/v1/users/login"
	testSignupURL = "https://cms.test/v1/users/signup"
	testEmail     = "editor@example.com"
	testPassword  = "hunter2"
)

type sessionDeps struct {
	transport *mock.MockAuthTransport
	client    *mock.MockCMSClient
	creds     *mock.MockCredentialStore
	prompter  *mock.MockPrompter

	// tokens records the token of every client the session asked for.
	tokens []string
}

// newTestSession builds a Session wired to mocks.
func newTestSession(t *testing.T, ctrl *gomock.Controller) (*Session, *sessionDeps) {
	t.Helper()

	deps := &sessionDeps{
		transport: mock.NewMockAuthTransport(ctrl),
		client:    mock.NewMockCMSClient(ctrl),
		creds:     mock.NewMockCredentialStore(ctrl),
		prompter:  mock.NewMockPrompter(ctrl),
	}

	factory := func(token string) adapter.CMSClient {
		deps.tokens = append(deps.tokens, token)
		return deps.client
	}

	cfg := config.API{LoginURL: testLoginURL, SignupURL: testSignupURL}
	s := NewSession(cfg, deps.transport, factory, deps.creds, deps.prompter, logger.Nop())

	return s, deps
}

func ok(data string) models.Response {
	return models.Response{Status: 200, Data: json.RawMessage(data)}
}

// ── Path ─────────────────────────────────────────────────────────────────────

func TestSession_Path(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestSession(t, ctrl)

	assert.Equal(t, "components", s.Path("components"))

	s.SetSpaceID("42")
	assert.Equal(t, "spaces/42/components", s.Path("components"))
	assert.Equal(t, "spaces/42/", s.Path(""))

	s.SetSpaceID("")
	assert.Equal(t, "stories", s.Path("stories"))
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSession_Login_Direct(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)
	ctx := context.Background()

	payload := `{"access_token":"T1","user":{"id":7}}`

	gomock.InOrder(
		deps.transport.EXPECT().
			Post(gomock.Any(), testLoginURL, models.AuthRequest{Email: testEmail, Password: testPassword}).
			Return(ok(payload), nil),
		deps.creds.EXPECT().Set(gomock.Any(), testEmail, "T1").Return(nil),
	)

	got, err := s.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(got))
	assert.Equal(t, "T1", s.Token())
}

func TestSession_Login_WithPasscode(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)
	ctx := context.Background()

	final := `{"access_token":"T2"}`

	gomock.InOrder(
		deps.transport.EXPECT().
			Post(gomock.Any(), testLoginURL, models.AuthRequest{Email: testEmail, Password: testPassword}).
			Return(ok(`{"otp_required":true}`), nil),
		deps.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q models.Question) (string, error) {
				assert.Equal(t, "otp_attempt", q.Name)
				assert.Equal(t, "We sent a code to your email/phone, please insert the authentication code:", q.Message)
				require.NotNil(t, q.Validate)
				assert.EqualError(t, q.Validate(""), "Code cannot blank")
				return "123456", nil
			},
		).Times(1),
		deps.transport.EXPECT().
			Post(gomock.Any(), testLoginURL, models.AuthRequest{
				Email:      testEmail,
				Password:   testPassword,
				OTPAttempt: "123456",
			}).
			Return(ok(final), nil),
		deps.creds.EXPECT().Set(gomock.Any(), testEmail, "T2").Return(nil),
	)

	got, err := s.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)
	assert.JSONEq(t, final, string(got))
	assert.Equal(t, "T2", s.Token())
}

func TestSession_Login_PasscodeEmptySecondPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"otp_required":true}`), nil)
	deps.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("1", nil)
	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(models.Response{Status: 204}, nil)

	_, err := s.Login(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, ErrNoAccessToken)
	assert.Empty(t, s.Token())
}

func TestSession_Login_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"user":{}}`), nil)
	// creds.Set must not be called

	_, err := s.Login(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, ErrNoAccessToken)
	assert.Empty(t, s.Token())
}

func TestSession_Login_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	wantErr := errors.New("connection refused")
	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(models.Response{}, wantErr)

	got, err := s.Login(context.Background(), testEmail, testPassword)
	assert.Same(t, wantErr, err)
	assert.Nil(t, got)
	assert.Empty(t, s.Token())
}

func TestSession_Login_SecondPostError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"otp_required":true}`), nil)
	deps.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("999", nil)
	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(models.Response{}, adapter.ErrUnauthorized)

	_, err := s.Login(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestSession_Login_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	aborted := errors.New("aborted")
	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"otp_required":true}`), nil)
	deps.prompter.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", aborted)

	_, err := s.Login(context.Background(), testEmail, testPassword)
	assert.Same(t, aborted, err)
}

func TestSession_Login_NoPrompter(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockAuthTransport(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)

	s := NewSession(config.API{LoginURL: testLoginURL}, transport, nil, creds, nil, logger.Nop())

	transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"otp_required":true}`), nil)

	_, err := s.Login(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, ErrPromptUnavailable)
}

func TestSession_Login_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	diskFull := errors.New("disk full")
	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"access_token":"T1"}`), nil)
	deps.creds.EXPECT().Set(gomock.Any(), testEmail, "T1").Return(diskFull)

	_, err := s.Login(context.Background(), testEmail, testPassword)
	assert.Same(t, diskFull, err)
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestSession_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	gomock.InOrder(
		deps.transport.EXPECT().
			Post(gomock.Any(), testSignupURL, models.AuthRequest{Email: testEmail, Password: testPassword}).
			Return(ok(`{"access_token":"S1"}`), nil),
		deps.creds.EXPECT().Set(gomock.Any(), testEmail, "S1").Return(nil),
	)

	require.NoError(t, s.Signup(context.Background(), testEmail, testPassword))
	assert.Equal(t, "S1", s.Token())
}

func TestSession_Signup_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	deps.transport.EXPECT().Post(gomock.Any(), testSignupURL, gomock.Any()).
		Return(models.Response{}, adapter.ErrUnprocessable)

	err := s.Signup(context.Background(), testEmail, testPassword)
	assert.ErrorIs(t, err, adapter.ErrUnprocessable)
	assert.Empty(t, s.Token())
}

// ── Logout / IsAuthorized ────────────────────────────────────────────────────

func TestSession_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)
	ctx := context.Background()

	deps.transport.EXPECT().Post(gomock.Any(), testLoginURL, gomock.Any()).
		Return(ok(`{"access_token":"T1"}`), nil)
	deps.creds.EXPECT().Set(gomock.Any(), testEmail, "T1").Return(nil)
	_, err := s.Login(ctx, testEmail, testPassword)
	require.NoError(t, err)

	gomock.InOrder(
		deps.creds.EXPECT().Clear(gomock.Any()).Return(nil),
		deps.creds.EXPECT().Get(gomock.Any()).Return(models.Credential{}, store.ErrCredentialNotFound),
	)

	require.NoError(t, s.Logout(ctx))
	assert.Empty(t, s.Token())

	authorized, err := s.IsAuthorized(ctx)
	require.NoError(t, err)
	assert.False(t, authorized)
}

func TestSession_Logout_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	s.accessToken = "T1"
	locked := errors.New("database is locked")
	deps.creds.EXPECT().Clear(gomock.Any()).Return(locked)

	assert.Same(t, locked, s.Logout(context.Background()))
	assert.Equal(t, "T1", s.Token())
}

func TestSession_IsAuthorized(t *testing.T) {
	tests := []struct {
		name      string
		cred      models.Credential
		storeErr  error
		want      bool
		wantErr   bool
		wantToken string
	}{
		{
			name:      "remembered token",
			cred:      models.Credential{Email: testEmail, Token: "R1"},
			want:      true,
			wantToken: "R1",
		},
		{
			name:      "nothing remembered",
			storeErr:  store.ErrCredentialNotFound,
			want:      false,
			wantToken: "previous",
		},
		{
			name:      "empty token",
			cred:      models.Credential{Email: testEmail},
			want:      false,
			wantToken: "previous",
		},
		{
			name:      "store failure",
			storeErr:  errors.New("boom"),
			wantErr:   true,
			wantToken: "previous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, deps := newTestSession(t, ctrl)
			s.accessToken = "previous"

			deps.creds.EXPECT().Get(gomock.Any()).Return(tt.cred, tt.storeErr)

			got, err := s.IsAuthorized(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.storeErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantToken, s.Token())
		})
	}
}

// ── GetComponents ────────────────────────────────────────────────────────────

func TestSession_GetComponents(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    []models.Component
	}{
		{
			name:    "components present",
			payload: `{"components":[{"name":"page","id":1},{"name":"teaser","id":2}]}`,
			want: []models.Component{
				{"name": "page", "id": float64(1)},
				{"name": "teaser", "id": float64(2)},
			},
		},
		{
			name:    "components missing",
			payload: `{}`,
			want:    []models.Component{},
		},
		{
			name:    "empty body",
			payload: ``,
			want:    []models.Component{},
		},
		{
			name:    "components not an array",
			payload: `{"components":"nope"}`,
			want:    []models.Component{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, deps := newTestSession(t, ctrl)
			s.accessToken = "T1"
			s.SetSpaceID("42")

			deps.client.EXPECT().Get(gomock.Any(), "spaces/42/components", gomock.Nil()).
				Return(ok(tt.payload), nil)

			got, err := s.GetComponents(context.Background())
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"T1"}, deps.tokens)
		})
	}
}

func TestSession_GetComponents_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	deps.client.EXPECT().Get(gomock.Any(), "components", gomock.Nil()).
		Return(models.Response{}, adapter.ErrForbidden)

	got, err := s.GetComponents(context.Background())
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Nil(t, got)
}

// ── Verbs ────────────────────────────────────────────────────────────────────

func TestSession_Verbs(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)
	ctx := context.Background()

	s.SetSpaceID("42")
	body := map[string]any{"story": map[string]any{"name": "home"}}

	gomock.InOrder(
		deps.client.EXPECT().Get(gomock.Any(), "spaces/42/stories", gomock.Nil()).Return(ok(`{"stories":[]}`), nil),
		deps.client.EXPECT().Post(gomock.Any(), "spaces/42/stories", body).Return(ok(`{"story":{"id":1}}`), nil),
		deps.client.EXPECT().Put(gomock.Any(), "spaces/42/stories/1", body).Return(ok(`{"story":{"id":1}}`), nil),
		deps.client.EXPECT().Delete(gomock.Any(), "spaces/42/stories/1", gomock.Nil()).Return(models.Response{Status: 204}, nil),
	)

	s.accessToken = "A"
	resp, err := s.Get(ctx, "stories")
	require.NoError(t, err)
	assert.JSONEq(t, `{"stories":[]}`, string(resp.Data))

	_, err = s.Post(ctx, "stories", body)
	require.NoError(t, err)

	s.accessToken = "B"
	_, err = s.Put(ctx, "stories/1", body)
	require.NoError(t, err)

	resp, err = s.Delete(ctx, "stories/1")
	require.NoError(t, err)
	assert.Equal(t, 204, resp.Status)

	// one client per call, each built from the token current at call time
	assert.Equal(t, []string{"A", "A", "B", "B"}, deps.tokens)
}

func TestSession_Verbs_ErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	wantErr := errors.New("timeout")
	deps.client.EXPECT().Post(gomock.Any(), "assets", gomock.Any()).Return(models.Response{}, wantErr)

	_, err := s.Post(context.Background(), "assets", nil)
	assert.Same(t, wantErr, err)
}

func TestSession_RequestIDInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, deps := newTestSession(t, ctrl)

	deps.client.EXPECT().Get(gomock.Any(), "spaces", gomock.Nil()).DoAndReturn(
		func(ctx context.Context, _ string, _ map[string]string) (models.Response, error) {
			id, found := utils.GetRequestIDFromContext(ctx)
			assert.True(t, found)
			assert.NotEmpty(t, id)
			return ok(`{}`), nil
		},
	)

	_, err := s.Get(context.Background(), "spaces")
	require.NoError(t, err)
}

// ── NonEmpty ─────────────────────────────────────────────────────────────────

func TestNonEmpty(t *testing.T) {
	validate := NonEmpty("Code cannot blank")

	assert.EqualError(t, validate(""), "Code cannot blank")
	assert.EqualError(t, validate("   "), "Code cannot blank")
	assert.NoError(t, validate("123456"))
}
