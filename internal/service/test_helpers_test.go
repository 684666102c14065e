package service_test

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/db"
	"github.com/DnvLikhitha/FitFlex/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitflex.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTracker(t *testing.T, baseURL string) *service.Tracker {
	t.Helper()
	return &service.Tracker{
		API:   &api.Client{BaseURL: baseURL},
		Cache: newTestDB(t),
		Log:   discardLogger(),
	}
}

// fakeBackend mimics the json-server REST conventions: collections of loose
// JSON objects, numeric auto-assigned ids, equality filters from query
// params.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int
	data   map[string][]map[string]any
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nextID: 1,
		data: map[string][]map[string]any{
			"activities": {},
			"goals":      {},
			"users":      {},
			"nutrition":  {},
		},
	}
}

func (f *fakeBackend) server(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)
	return ts
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	collection, ok := f.data[parts[0]]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			out := make([]map[string]any, 0)
			for _, rec := range collection {
				if matchesQuery(rec, r.URL.Query()) {
					out = append(out, rec)
				}
			}
			_ = json.NewEncoder(w).Encode(out)
		case http.MethodPost:
			rec := decodeBody(r)
			rec["id"] = float64(f.nextID)
			f.nextID++
			f.data[parts[0]] = append(collection, rec)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(rec)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := parts[1]
	idx := -1
	for i, rec := range collection {
		if fmt.Sprint(rec["id"]) == id || jsonNumberString(rec["id"]) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(collection[idx])
	case http.MethodPut:
		rec := decodeBody(r)
		rec["id"] = collection[idx]["id"]
		collection[idx] = rec
		_ = json.NewEncoder(w).Encode(rec)
	case http.MethodDelete:
		f.data[parts[0]] = append(collection[:idx], collection[idx+1:]...)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (f *fakeBackend) count(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data[collection])
}

func (f *fakeBackend) seed(collection string, rec map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := rec["id"]; !ok {
		rec["id"] = float64(f.nextID)
		f.nextID++
	}
	f.data[collection] = append(f.data[collection], rec)
}

func decodeBody(r *http.Request) map[string]any {
	rec := make(map[string]any)
	_ = json.NewDecoder(r.Body).Decode(&rec)
	return rec
}

func matchesQuery(rec map[string]any, query map[string][]string) bool {
	for key, values := range query {
		if len(values) == 0 {
			continue
		}
		got, ok := rec[key]
		if !ok {
			return false
		}
		if jsonNumberString(got) != values[0] && fmt.Sprint(got) != values[0] {
			return false
		}
	}
	return true
}

// jsonNumberString renders float64-decoded ids the way clients send them
// back, without a trailing ".0" or exponent.
func jsonNumberString(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}

// unreachableURL points at a port nothing listens on, for offline paths.
const unreachableURL = "http://127.0.0.1:1"
