package zenvhub_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/zenv-lang/zenvhub"
)

// newHub spins up a fake hub serving a small fixed dataset.
func newHub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/packages", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"packages": []map[string]any{
				{"name": "my-db-tool", "version": "1.2.0", "size": 1536},
				{"name": "webkit", "version": "0.4.1"},
			},
		})
	})
	mux.HandleFunc("/api/badges", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"badges": []map[string]any{
				{"name": "build", "label": "build", "value": "passing"},
			},
		})
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "github": "connected"})
	})
	mux.HandleFunc("/api/packages/download/my-db-tool/1.2.0", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("artifact-bytes"))
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"token": "tok", "user": body["username"]})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRefresh_PopulatesEachContainerIndependently(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)

	app.Refresh(context.Background())

	if got := len(app.Store.Packages.Get()); got != 2 {
		t.Errorf("packages container holds %d entries, want 2", got)
	}
	if got := len(app.Store.Badges.Get()); got != 1 {
		t.Errorf("badges container holds %d entries, want 1", got)
	}
	if got := app.Store.Status.Get(); got.Status != zenvhub.StatusOK {
		t.Errorf("status container = %+v, want ok", got)
	}
	if app.Store.Loading.Get() {
		t.Error("loading flag still set after Refresh returned")
	}
}

func TestRefresh_StatusResetsToChecking(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)

	var mu sync.Mutex
	var observed []string
	cancel := app.Store.Status.Subscribe(func(s zenvhub.ServerStatus) {
		mu.Lock()
		observed = append(observed, s.Status)
		mu.Unlock()
	})
	defer cancel()

	app.Refresh(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if len(observed) < 2 || observed[0] != zenvhub.StatusChecking {
		t.Errorf("status transitions = %v, want checking first", observed)
	}
	if observed[len(observed)-1] != zenvhub.StatusOK {
		t.Errorf("status transitions = %v, want ok last", observed)
	}
}

func TestRefresh_DegradedServerLeavesAccurateStatus(t *testing.T) {
	server := newHub(t)
	server.Close() // everything fails from here on
	app := zenvhub.New(server.URL, nil)

	app.Refresh(context.Background())

	if got := len(app.Store.Packages.Get()); got != 0 {
		t.Errorf("packages container holds %d entries from a dead server", got)
	}
	status := app.Store.Status.Get()
	if status.Status != zenvhub.StatusError || status.GitHub != "disconnected" {
		t.Errorf("status = %+v, want {error disconnected}", status)
	}
}

func TestDownload_WritesFileAndNotifiesSuccess(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)
	dest := filepath.Join(t.TempDir(), "my-db-tool.tar.gz")

	if err := app.Download(context.Background(), "my-db-tool@1.2.0", dest); err != nil {
		t.Fatalf("Download failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil || string(data) != "artifact-bytes" {
		t.Errorf("artifact on disk = %q (%v)", data, err)
	}

	queue := app.Store.Notifications.Get()
	if len(queue) != 1 || queue[0].Type != zenvhub.NoticeSuccess {
		t.Fatalf("notification queue = %+v, want one success entry", queue)
	}
}

func TestDownload_FailureNotifiesError(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)

	// Unknown version: the fetch degrades to nil and the failure is
	// reported through the queue, not as an error.
	if err := app.Download(context.Background(), "ghost@9.9.9", filepath.Join(t.TempDir(), "x")); err != nil {
		t.Fatalf("Download returned %v, want nil (degraded fetch)", err)
	}

	queue := app.Store.Notifications.Get()
	if len(queue) != 1 || queue[0].Type != zenvhub.NoticeError {
		t.Fatalf("notification queue = %+v, want one error entry", queue)
	}
}

func TestLogin_FailureNotifiesAndPropagates(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)

	err := app.Login(context.Background(), "ada", "wrong")
	var authErr *zenvhub.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %v, want *AuthError", err)
	}
	if authErr.Message != "Invalid credentials" {
		t.Errorf("message = %q", authErr.Message)
	}
	if app.Store.User.Get().Authenticated() {
		t.Error("failed login stored a session")
	}

	queue := app.Store.Notifications.Get()
	if len(queue) != 1 || queue[0].Type != zenvhub.NoticeError {
		t.Errorf("queue = %+v, want one error notification", queue)
	}
}

func TestLogin_SuccessStoresSession(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)

	if err := app.Login(context.Background(), "ada", "s3cret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !app.Store.User.Get().Authenticated() {
		t.Error("session not stored after login")
	}

	app.Logout()
	if app.Store.User.Get().Authenticated() {
		t.Error("session survived logout")
	}
}

func TestNotificationExpiryDoesNotTouchNeighbors(t *testing.T) {
	server := newHub(t)
	app := zenvhub.New(server.URL, nil)

	keep := app.Notify.Add("pinned", zenvhub.NoticeInfo, 0)
	app.Notify.Add("fleeting", zenvhub.NoticeInfo, 20*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for len(app.Store.Notifications.Get()) > 1 {
		if time.Now().After(deadline) {
			t.Fatal("expiring notification never left the queue")
		}
		time.Sleep(5 * time.Millisecond)
	}

	queue := app.Store.Notifications.Get()
	if len(queue) != 1 || queue[0].ID != keep {
		t.Errorf("queue after expiry = %+v, want only the pinned entry", queue)
	}
}
