package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	internalauth "github.com/svsdigitals/printshop-backend/internal/auth"
	"github.com/svsdigitals/printshop-backend/pkg/auth"
	"github.com/svsdigitals/printshop-backend/pkg/auth/session"
	"github.com/svsdigitals/printshop-backend/pkg/config"
	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
)

type stubAuthService struct {
	loginEmail    string
	loginPassword string
	loginErr      error
	loggedOut     []string
	registered    []internalauth.RegisterInput
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*internalauth.LoginResult, error) {
	s.loginEmail = email
	s.loginPassword = password
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &internalauth.LoginResult{
		AccessToken: "signed.jwt.token",
		Admin:       &models.Admin{ID: uuid.New(), Email: email},
	}, nil
}

func (s *stubAuthService) Logout(_ context.Context, accessID string) error {
	s.loggedOut = append(s.loggedOut, accessID)
	return nil
}

func (s *stubAuthService) Register(_ context.Context, input internalauth.RegisterInput) (*models.Admin, error) {
	s.registered = append(s.registered, input)
	return &models.Admin{ID: uuid.New(), Email: input.Email, Name: input.Name}, nil
}

func controllerJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "controller-test-secret",
		Issuer:            "printshop-test",
		ExpirationMinutes: 15,
	}
}

func TestAuthLoginForwardsCredentials(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	body := `{"email":"admin@svsdigitals.in","password":"printshop123"}`
	rec := httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d %s", rec.Code, rec.Body.String())
	}
	if svc.loginEmail != "admin@svsdigitals.in" || svc.loginPassword != "printshop123" {
		t.Fatalf("credentials not forwarded: %q %q", svc.loginEmail, svc.loginPassword)
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatal("password hash leaked in login response")
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	body := `{"email":"admin@svsdigitals.in","password":"wrong"}`
	rec := httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body)))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthLoginValidatesBody(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	AuthLogin(&stubAuthService{}, nil).ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAuthLogoutRevokesTokenSession(t *testing.T) {
	t.Parallel()

	cfg := controllerJWTConfig()
	jti := session.NewAccessID()
	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Email:   "admin@svsdigitals.in",
		JTI:     jti,
	})
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	svc := &stubAuthService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	AuthLogout(svc, cfg, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d %s", rec.Code, rec.Body.String())
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != jti {
		t.Fatalf("logout not forwarded: %+v", svc.loggedOut)
	}
}

func TestAuthLogoutAcceptsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := controllerJWTConfig()
	jti := session.NewAccessID()
	token, err := auth.MintAccessToken(cfg, time.Now().Add(-2*time.Hour), auth.AccessTokenPayload{
		AdminID: uuid.New(),
		Email:   "admin@svsdigitals.in",
		JTI:     jti,
	})
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	svc := &stubAuthService{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	AuthLogout(svc, cfg, nil).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expired token should still log out, got %d", rec.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != jti {
		t.Fatalf("logout not forwarded: %+v", svc.loggedOut)
	}
}

func TestAuthLogoutWithoutToken(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	AuthLogout(&stubAuthService{}, controllerJWTConfig(), nil).
		ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/auth/logout", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestAuthRegisterValidatesPasswordLength(t *testing.T) {
	t.Parallel()

	svc := &stubAuthService{}
	rec := httptest.NewRecorder()
	body := `{"email":"new@svsdigitals.in","password":"short"}`
	AuthRegister(svc, nil).ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	body = `{"name":"Ops","email":"new@svsdigitals.in","password":"long-enough-pass"}`
	AuthRegister(svc, nil).ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d %s", rec.Code, rec.Body.String())
	}
	if len(svc.registered) != 1 || svc.registered[0].Email != "new@svsdigitals.in" {
		t.Fatalf("register not forwarded: %+v", svc.registered)
	}
}
