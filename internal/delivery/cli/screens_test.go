package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/linguago/linguago/internal/api"
	"github.com/linguago/linguago/internal/domain/entities"
	"github.com/linguago/linguago/internal/infra/sqlite"
	"github.com/linguago/linguago/internal/service"
	"github.com/linguago/linguago/internal/session"
)

// fakeCatalog keeps screen tests independent of the JSON asset.
type fakeCatalog struct {
	courses []*entities.Course
}

func (f *fakeCatalog) GetByLanguage(lang entities.Language) (*entities.Course, error) {
	for _, c := range f.courses {
		if c.Language == lang {
			return c, nil
		}
	}
	return nil, errors.New("course not found")
}

func (f *fakeCatalog) GetAll() []*entities.Course { return f.courses }

func fiveLessons() []entities.Lesson {
	return []entities.Lesson{
		{Title: "uno"}, {Title: "dos"}, {Title: "tres"}, {Title: "cuatro"}, {Title: "cinco"},
	}
}

// newScreens wires the whole stack against a fake backend, with scripted
// terminal input.
func newScreens(t *testing.T, backend http.Handler, input string) (*Handler, *session.Session, *sqlite.Store) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client := api.New(srv.URL, 5*time.Second, zap.NewNop(), store)
	auth := service.NewAuthService(client, store)
	sess := session.New(auth)

	catalog := &fakeCatalog{courses: []*entities.Course{
		{Language: entities.LanguageEnglish, Name: "Inglés", Lessons: fiveLessons()},
		{Language: entities.LanguageFrench, Name: "Francés", Lessons: fiveLessons()},
		{Language: entities.LanguageRussian, Name: "Ruso", Lessons: fiveLessons()},
	}}

	handler := NewHandler(strings.NewReader(input), &strings.Builder{}, zap.NewNop(), sess, auth, catalog)
	return handler, sess, store
}

func TestRegisterScreenRejectsInvalidFormBeforeNetwork(t *testing.T) {
	backendCalls := 0
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalls++
	})

	// Name of length 1 fails validation; no request may leave the device.
	input := "A\nana@x.com\npassword1\npassword1\n\n"
	handler, _, _ := newScreens(t, backend, input)

	next, err := handler.registerScreen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if next != routeRegister {
		t.Errorf("next route = %v, want register (stay on screen)", next)
	}
	if backendCalls != 0 {
		t.Errorf("backend received %d calls, want 0", backendCalls)
	}
}

func TestRegisterScreenAutoLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var creds entities.Credentials
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Email != "ana@x.com" || creds.Password != "password1" {
			t.Errorf("auto-login credentials: %+v", creds)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "name": "Ana", "email": "ana@x.com",
		})
	})

	input := "Ana\nana@x.com\npassword1\npassword1\nEspaña\n"
	handler, sess, _ := newScreens(t, mux, input)
	sess.Init(context.Background())

	next, err := handler.registerScreen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if next != routeDashboard {
		t.Errorf("next route = %v, want dashboard", next)
	}

	state, user := sess.Snapshot()
	if state != session.StateAuthenticated {
		t.Fatalf("session state = %v, want authenticated", state)
	}
	if user.ID != 7 || user.Name != "Ana" {
		t.Errorf("session user = %+v", user)
	}
}

func TestLoginScreenHappyPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "name": "Ana", "email": "ana@x.com",
		})
	})

	input := "1\nana@x.com\npassword1\n"
	handler, sess, _ := newScreens(t, mux, input)
	sess.Init(context.Background())

	next, err := handler.loginScreen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if next != routeDashboard {
		t.Errorf("next route = %v, want dashboard", next)
	}

	if state, _ := sess.Snapshot(); state != session.StateAuthenticated {
		t.Errorf("session state = %v, want authenticated", state)
	}
}

func TestLoginScreenStaysOnFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false, "message": "Credenciales incorrectas",
		})
	})

	input := "1\nana@x.com\nwrongpass1\n"
	handler, sess, _ := newScreens(t, mux, input)
	sess.Init(context.Background())

	next, err := handler.loginScreen(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if next != routeLogin {
		t.Errorf("next route = %v, want login (stay on screen)", next)
	}
	if state, _ := sess.Snapshot(); state != session.StateUnauthenticated {
		t.Errorf("session state = %v, want unauthenticated", state)
	}
}

func TestCourseScreenCompletesLesson(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/progress/7", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	handler, sess, store := newScreens(t, mux, "c\n")

	user := &entities.User{ID: 7, Name: "Ana", ProgressEnglish: 40, ProgressFrench: 20}
	if err := store.SaveUser(context.Background(), user); err != nil {
		t.Fatal(err)
	}
	sess.Init(context.Background())

	next, err := handler.courseScreen(context.Background(), entities.LanguageEnglish)
	if err != nil {
		t.Fatal(err)
	}
	if next != routeCourse(entities.LanguageEnglish) {
		t.Errorf("next route = %v, want course screen again", next)
	}

	if got, ok := body["progressEnglish"].(float64); !ok || got != 60 {
		t.Errorf("PATCH progressEnglish = %v, want 60", body["progressEnglish"])
	}
	if len(body) != 1 {
		t.Errorf("PATCH body = %v, want only progressEnglish", body)
	}

	_, current := sess.Snapshot()
	if current.ProgressEnglish != 60 {
		t.Errorf("session ProgressEnglish = %d, want 60", current.ProgressEnglish)
	}
	if current.ProgressFrench != 20 {
		t.Error("other course progress changed")
	}

	cached, err := store.User(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cached.ProgressEnglish != 60 || cached.ProgressFrench != 20 {
		t.Errorf("cached progress = %d/%d, want 60/20", cached.ProgressEnglish, cached.ProgressFrench)
	}
}

func TestGateRedirects(t *testing.T) {
	handler, sess, store := newScreens(t, http.NewServeMux(), "")
	sess.Init(context.Background())

	// Logged out: protected screens bounce to login, public stay.
	if got := handler.gate(routeDashboard); got != routeLogin {
		t.Errorf("gate(dashboard) while logged out = %v, want login", got)
	}
	if got := handler.gate(routeCourse(entities.LanguageFrench)); got != routeLogin {
		t.Errorf("gate(course) while logged out = %v, want login", got)
	}
	if got := handler.gate(routeRegister); got != routeRegister {
		t.Errorf("gate(register) while logged out = %v, want register", got)
	}
	if got := handler.defaultRoute(); got != routeLogin {
		t.Errorf("defaultRoute while logged out = %v, want login", got)
	}

	// Logged in: public screens bounce to dashboard, protected stay.
	if err := store.SaveUser(context.Background(), &entities.User{ID: 7, Name: "Ana"}); err != nil {
		t.Fatal(err)
	}
	sess.Login(&entities.User{ID: 7, Name: "Ana"})

	if got := handler.gate(routeLogin); got != routeDashboard {
		t.Errorf("gate(login) while logged in = %v, want dashboard", got)
	}
	if got := handler.gate(routeProfile); got != routeProfile {
		t.Errorf("gate(profile) while logged in = %v, want profile", got)
	}
	if got := handler.defaultRoute(); got != routeDashboard {
		t.Errorf("defaultRoute while logged in = %v, want dashboard", got)
	}
}
