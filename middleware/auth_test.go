package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crcab-dev/car_rental_backend/controllers"
	"github.com/crcab-dev/car_rental_backend/utils"
)

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not run")
	}))

	req := httptest.NewRequest("POST", "/vehicles", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsBadScheme(t *testing.T) {
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not run")
	}))

	req := httptest.NewRequest("POST", "/vehicles", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_KEY", "test-signing-key")

	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next handler should not run")
	}))

	req := httptest.NewRequest("POST", "/vehicles", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewarePassesUserID(t *testing.T) {
	t.Setenv("JWT_KEY", "test-signing-key")

	token, err := utils.GenerateJWT("admin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	called := false
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, ok := r.Context().Value(controllers.UserIDKey).(string)
		if !ok || userID != "admin" {
			t.Errorf("expected userID admin in context, got %v", r.Context().Value(controllers.UserIDKey))
		}
	}))

	req := httptest.NewRequest("POST", "/vehicles", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("next handler was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
