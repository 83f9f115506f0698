package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/linguago/linguago/internal/domain/entities"
)

type staticTokens string

func (s staticTokens) Token(context.Context) (string, error) { return string(s), nil }

func newClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(srv.URL, 5*time.Second, zap.NewNop(), staticTokens(token)), srv
}

func TestLoginReturnsUserAndToken(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var creds entities.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatal(err)
		}
		if creds.Email != "ana@x.com" || creds.Password != "password1" {
			t.Errorf("unexpected credentials: %+v", creds)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    7,
			"name":  "Ana",
			"email": "ana@x.com",
			"token": "tok-123",
		})
	}), "")

	user, token, err := client.Login(context.Background(), entities.Credentials{
		Email:    "ana@x.com",
		Password: "password1",
	})
	if err != nil {
		t.Fatal(err)
	}
	if user.ID != 7 || user.Name != "Ana" {
		t.Errorf("unexpected user: %+v", user)
	}
	if token != "tok-123" {
		t.Errorf("token = %q, want tok-123", token)
	}
}

func TestLoginUsesServerMessage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Credenciales incorrectas",
		})
	}), "")

	_, _, err := client.Login(context.Background(), entities.Credentials{
		Email:    "ana@x.com",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Credenciales incorrectas" {
		t.Errorf("error = %q, want server message", err)
	}
}

func TestLoginFallbackMessage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), "")

	_, _, err := client.Login(context.Background(), entities.Credentials{
		Email:    "ana@x.com",
		Password: "password1",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Error al iniciar sesión" {
		t.Errorf("error = %q, want login fallback", err)
	}
}

func TestTransportErrorWrapsFallback(t *testing.T) {
	client := New("http://127.0.0.1:1", time.Second, zap.NewNop(), nil)

	_, err := client.Register(context.Background(), entities.RegisterData{})
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Error al registrar usuario" {
		t.Errorf("error = %q, want register fallback", err)
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Err == nil {
		t.Error("transport cause not preserved")
	}
}

func TestUpdateProgressSendsOnlyProvidedFields(t *testing.T) {
	var body map[string]any
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/progress/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}), "")

	english := 60
	_, err := client.UpdateProgress(context.Background(), 7, entities.ProgressUpdate{English: &english})
	if err != nil {
		t.Fatal(err)
	}

	if len(body) != 1 {
		t.Errorf("body has %d fields, want 1: %v", len(body), body)
	}
	if got, ok := body["progressEnglish"].(float64); !ok || got != 60 {
		t.Errorf("progressEnglish = %v, want 60", body["progressEnglish"])
	}
}

func TestAuthorizationHeaderAttached(t *testing.T) {
	var header string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}), "tok-123")

	if _, err := client.DeleteAccount(context.Background(), 7); err != nil {
		t.Fatal(err)
	}

	if header != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", header)
	}
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var header string
	var hasHeader bool
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}), "")

	if _, err := client.ResetPassword(context.Background(), "ana@x.com", "nuevapass"); err != nil {
		t.Fatal(err)
	}

	if hasHeader {
		t.Errorf("unexpected Authorization header %q", header)
	}
}

func TestResetPasswordBody(t *testing.T) {
	var body map[string]string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/reset-password" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}), "")

	if _, err := client.ResetPassword(context.Background(), "ana@x.com", "nuevapass"); err != nil {
		t.Fatal(err)
	}

	if body["email"] != "ana@x.com" || body["password"] != "nuevapass" {
		t.Errorf("unexpected body: %v", body)
	}
}
