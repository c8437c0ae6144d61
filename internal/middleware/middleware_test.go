package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"life-admin/internal/auth"
	"life-admin/internal/model"
	"life-admin/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockVerifier accepts exactly one token.
type mockVerifier struct {
	token string
}

func (m *mockVerifier) Signup(ctx context.Context, creds auth.Credentials) (auth.User, error) {
	return auth.User{}, nil
}

func (m *mockVerifier) Login(ctx context.Context, creds auth.Credentials) (auth.Token, error) {
	return auth.Token{}, nil
}

func (m *mockVerifier) Verify(ctx context.Context, accessToken string) (model.Scope, error) {
	if accessToken != m.token {
		return model.Scope{}, errors.New("bad token")
	}
	return model.Scope{UserID: 9, Username: "me@example.com"}, nil
}

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/whoami", func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": sc.UserID, "request_id": log.RequestID(c.Request.Context())})
	})
	return r
}

func TestAuth(t *testing.T) {
	mw := New(&mockLogger{}, &mockVerifier{token: "good"}, CORSConfig{})
	r := newEngine(mw, mw.Auth())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer good", http.StatusOK},
		{"lowercase scheme", "bearer good", http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"bad token", "Bearer bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.want == http.StatusOK && w.Body.String() != `{"request_id":"","user_id":9}` {
				t.Errorf("unexpected body %s", w.Body)
			}
			if tt.want == http.StatusUnauthorized && w.Header().Get("WWW-Authenticate") != "Bearer" {
				t.Errorf("missing WWW-Authenticate header")
			}
		})
	}
}

func TestAuthWithoutVerifier(t *testing.T) {
	mw := New(&mockLogger{}, nil, CORSConfig{})
	r := newEngine(mw, mw.Auth())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(&mockLogger{}, nil, CORSConfig{})
	r := newEngine(mw, mw.RequestID(), mw.Logging())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("echoed id = %q", got)
	}
	if w.Body.String() != `{"request_id":"abc-123","user_id":0}` {
		t.Errorf("id not in context: %s", w.Body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if got := w.Header().Get(RequestIDHeader); len(got) != 36 {
		t.Errorf("expected generated uuid, got %q", got)
	}
}

func TestCORS(t *testing.T) {
	t.Run("wildcard preflight", func(t *testing.T) {
		mw := New(&mockLogger{}, nil, CORSConfig{})
		r := newEngine(mw, mw.CORS())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("status = %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("allow origin = %q", w.Header().Get("Access-Control-Allow-Origin"))
		}
		if w.Header().Get("Access-Control-Allow-Headers") == "" {
			t.Errorf("missing allow headers")
		}
	})

	t.Run("listed origin", func(t *testing.T) {
		mw := New(&mockLogger{}, nil, CORSConfig{AllowOrigins: []string{"https://app.example.com"}})
		r := newEngine(mw, mw.CORS())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Origin", "https://app.example.com")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "https://app.example.com" {
			t.Errorf("status = %d, allow origin = %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
		}

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodOptions, "/whoami", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("unlisted preflight status = %d", w.Code)
		}
	})
}
