package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cookingforum/auth/internal/identity/usecase"
	"github.com/cookingforum/auth/internal/pkg/clock"
	"github.com/cookingforum/auth/internal/pkg/config"
	"github.com/cookingforum/auth/internal/pkg/goerror"
	"github.com/cookingforum/auth/internal/pkg/instrument"
	"github.com/cookingforum/auth/internal/pkg/jwt"
	"github.com/cookingforum/auth/internal/pkg/router"
	"github.com/cookingforum/auth/internal/pkg/uid"
)

const testConfigYAML = `
app:
  maintenance:
    endpoints: ""
instrument:
  log_mask_fields: "password,otp,jwt"
`

type fakeUsecase struct {
	registerErr error
	loginOut    *usecase.LoginOutput
	loginErr    error
	otpOut      *usecase.LoginOTPOutput
	otpErr      error

	gotRegister *usecase.RegisterInput
	gotLogin    *usecase.LoginInput
	gotOTP      *usecase.LoginOTPInput
}

func (f *fakeUsecase) Register(_ context.Context, in usecase.RegisterInput) error {
	f.gotRegister = &in

	return f.registerErr
}

func (f *fakeUsecase) Login(_ context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error) {
	f.gotLogin = &in

	return f.loginOut, f.loginErr
}

func (f *fakeUsecase) LoginOTP(_ context.Context, in usecase.LoginOTPInput) (*usecase.LoginOTPOutput, error) {
	f.gotOTP = &in

	return f.otpOut, f.otpErr
}

type testServer struct {
	router *router.Router
	uc     *fakeUsecase
	jwt    jwt.JWT
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	tok, err := jwt.NewHS256(jwt.Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef"),
		Issuer:     "auth-test",
		TTL:        time.Hour,
		PendingTTL: 5 * time.Minute,
		Clock:      clock.New(),
		UUID:       uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	ro := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        tok,
		Instrument: instrument.NewNoop(),
	})

	uc := &fakeUsecase{}
	RegisterHTTPEndpoint(ro, uc)

	return &testServer{router: ro, uc: uc, jwt: tok}
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("response is not json: %v (%s)", err, rec.Body.String())
		}
	}

	return rec.Code, body
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		payload := `{"name":"Ada","surname":"Lovelace","email":"ada@example.com","password":"Str0ng!pass","twoFactorEnabled":true}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%v)", status, body)
		}
		if body["error"] != false || body["created"] != true {
			t.Fatalf("unexpected body %v", body)
		}
		if s.uc.gotRegister == nil || !s.uc.gotRegister.TwoFactorEnabled {
			t.Fatalf("two-factor preference did not reach the usecase")
		}
	})

	t.Run("UnknownField", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		payload := `{"name":"Ada","surname":"Lovelace","email":"ada@example.com","password":"Str0ng!pass","admin":true}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if body["error"] != true {
			t.Fatalf("unexpected body %v", body)
		}
		if s.uc.gotRegister != nil {
			t.Fatalf("malformed body must not reach the usecase")
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		s.uc.registerErr = goerror.NewBusiness("The e-mail address has already been used", goerror.CodeInvalidInput)

		payload := `{"name":"Ada","surname":"Lovelace","email":"ada@example.com","password":"Str0ng!pass"}`
		req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(payload))

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if body["message"] != "The e-mail address has already been used" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("MissingCredentials", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/jwt", nil)

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", status)
		}
		if body["message"] != "Missing credentials" {
			t.Fatalf("unexpected body %v", body)
		}
		if s.uc.gotLogin != nil {
			t.Fatalf("request without credentials must not reach the usecase")
		}
	})

	t.Run("FullSession", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		s.uc.loginOut = &usecase.LoginOutput{Token: "session-token"}

		req := httptest.NewRequest(http.MethodGet, "/jwt", nil)
		req.SetBasicAuth("ada@example.com", "Str0ng!pass")

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%v)", status, body)
		}
		if body["jwt"] != "session-token" {
			t.Fatalf("unexpected body %v", body)
		}
		if body["requiresTwoFactorAuthentication"] != false {
			t.Fatalf("unexpected body %v", body)
		}
		if s.uc.gotLogin.Email != "ada@example.com" {
			t.Fatalf("credentials did not reach the usecase")
		}
	})

	t.Run("PendingSecondFactor", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		s.uc.loginOut = &usecase.LoginOutput{Token: "pending-token", RequiresTwoFactor: true}

		req := httptest.NewRequest(http.MethodGet, "/jwt", nil)
		req.SetBasicAuth("ada@example.com", "Str0ng!pass")

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusFound {
			t.Fatalf("status = %d, want 302", status)
		}
		if body["jwt"] != "pending-token" || body["requiresTwoFactorAuthentication"] != true {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		s.uc.loginErr = goerror.NewAuthentication("Invalid username or password")

		req := httptest.NewRequest(http.MethodGet, "/jwt", nil)
		req.SetBasicAuth("ada@example.com", "Wr0ng!pass")

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", status)
		}
		if body["message"] != "Invalid username or password" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestLoginOTPEndpoint(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/2fa/jwt", strings.NewReader(`{"otp":"123456"}`))

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if body["message"] != "Authentication required" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/2fa/jwt", strings.NewReader(`{"otp":"123456"}`))
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if body["message"] != "Invalid or expired token" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("Exchange", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		s.uc.otpOut = &usecase.LoginOTPOutput{Token: "session-token"}

		pending, err := s.jwt.GeneratePending(100, 777)
		if err != nil {
			t.Fatalf("failed to generate pending token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/2fa/jwt", strings.NewReader(`{"otp":"123456"}`))
		req.Header.Set("Authorization", "Bearer "+pending)

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%v)", status, body)
		}
		if body["jwt"] != "session-token" {
			t.Fatalf("unexpected body %v", body)
		}
		if s.uc.gotOTP == nil {
			t.Fatalf("exchange did not reach the usecase")
		}
		if s.uc.gotOTP.UserID != 100 || s.uc.gotOTP.OtpChallengeID == nil || *s.uc.gotOTP.OtpChallengeID != 777 {
			t.Fatalf("claims did not reach the usecase: %+v", s.uc.gotOTP)
		}
	})

	t.Run("WrongCode", func(t *testing.T) {
		// Arrange
		s := newTestServer(t)
		s.uc.otpErr = goerror.NewAuthentication("Wrong OTP")

		pending, err := s.jwt.GeneratePending(100, 777)
		if err != nil {
			t.Fatalf("failed to generate pending token: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/2fa/jwt", strings.NewReader(`{"otp":"999999"}`))
		req.Header.Set("Authorization", "Bearer "+pending)

		// Act
		status, body := s.do(t, req)

		// Assert
		if status != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", status)
		}
		if body["message"] != "Wrong OTP" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestUnknownEndpoint(t *testing.T) {
	// Arrange
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)

	// Act
	status, body := s.do(t, req)

	// Assert
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["message"] != "Invalid endpoint '/nope' with HTTP method 'GET'" {
		t.Fatalf("unexpected body %v", body)
	}
}
