package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"life-admin/internal/auth"
	repo "life-admin/internal/auth/repository"
	"life-admin/internal/auth/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type memRepo struct {
	users map[string]auth.User
}

func (m *memRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	if _, ok := m.users[opt.Email]; ok {
		return auth.User{}, repo.ErrDuplicate
	}
	u := auth.User{ID: int64(len(m.users) + 1), Email: opt.Email, PasswordHash: opt.PasswordHash}
	m.users[opt.Email] = u
	return u, nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (auth.User, error) {
	return m.users[email], nil
}

func newRouter(t *testing.T) (*gin.Engine, auth.UseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc, err := usecase.New(&mockLogger{}, &memRepo{users: map[string]auth.User{}}, usecase.Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef"),
		TTL:        time.Hour,
		Issuer:     "life-admin",
		BcryptCost: bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("usecase.New: %v", err)
	}

	r := gin.New()
	RegisterRoutes(&r.RouterGroup, New(&mockLogger{}, uc))
	return r, uc
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignupLoginRoundTrip(t *testing.T) {
	r, uc := newRouter(t)

	w := post(r, "/signup", `{"useremail":"me@example.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d, body %s", w.Code, w.Body)
	}
	var user userResp
	json.Unmarshal(w.Body.Bytes(), &user)
	if user.ID != 1 || user.UserEmail != "me@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	w = post(r, "/login", `{"useremail":"me@example.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body)
	}
	var token tokenResp
	if err := json.Unmarshal(w.Body.Bytes(), &token); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Errorf("token_type = %q", token.TokenType)
	}

	sc, err := uc.Verify(context.Background(), token.AccessToken)
	if err != nil || sc.UserID != user.ID {
		t.Errorf("Verify() = %+v, %v", sc, err)
	}
}

func TestAuthErrors(t *testing.T) {
	r, _ := newRouter(t)
	post(r, "/signup", `{"useremail":"me@example.com","password":"secret1"}`)

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{"duplicate signup", "/signup", `{"useremail":"me@example.com","password":"secret1"}`, http.StatusConflict},
		{"bad email", "/signup", `{"useremail":"nope","password":"secret1"}`, http.StatusBadRequest},
		{"short password", "/signup", `{"useremail":"you@example.com","password":"abc"}`, http.StatusBadRequest},
		{"missing fields", "/login", `{"useremail":"me@example.com"}`, http.StatusBadRequest},
		{"wrong password", "/login", `{"useremail":"me@example.com","password":"wrong!!"}`, http.StatusUnauthorized},
		{"unknown user", "/login", `{"useremail":"ghost@example.com","password":"secret1"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["detail"] == "" {
				t.Errorf("expected detail body, got %s", w.Body)
			}
		})
	}
}
