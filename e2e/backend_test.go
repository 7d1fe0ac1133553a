//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

const (
	testAdmin    = "anna"
	testPassword = "secret"
	testToken    = "e2e-token"
)

type fakeUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
}

type fakeRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// fakeBackend serves the admin REST API from memory
type fakeBackend struct {
	mu       sync.Mutex
	users    []fakeUser
	projects []fakeRecord
	datasets []fakeRecord
	admins   []string
	requests []string
}

func newFakeBackend(t *testing.T) (*fakeBackend, string) {
	t.Helper()
	b := &fakeBackend{
		users: []fakeUser{
			{ID: "u1", Username: "anna", Role: "Admin"},
			{ID: "u2", Username: "bartek", Role: "User"},
			{ID: "u3", Username: "celina", Role: "User", IsBlocked: true},
		},
		projects: []fakeRecord{{ID: "p1", Name: "churn-model"}, {ID: "p2", Name: "forecast"}},
		datasets: []fakeRecord{{ID: "d1", Name: "iris"}},
	}
	srv := httptest.NewServer(b.routes())
	t.Cleanup(srv.Close)
	return b, srv.URL
}

func (b *fakeBackend) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/Auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != testAdmin || creds.Password != testPassword {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]string{"token": testToken, "refreshToken": "r1", "username": creds.Username})
	})
	mux.HandleFunc("POST /api/Auth/register", func(w http.ResponseWriter, r *http.Request) {
		var acc struct{ Username string }
		_ = json.NewDecoder(r.Body).Decode(&acc)
		writeJSON(w, map[string]string{"token": "t2", "refreshToken": "r2", "username": acc.Username})
	})
	mux.HandleFunc("POST /api/Auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"message": "Logged out"})
	})
	mux.HandleFunc("GET /api/Admin/admin-data", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, map[string]any{"users": b.users, "projects": b.projects, "datasets": b.datasets})
	}))
	mux.HandleFunc("POST /api/Admin/block/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		b.setBlocked(r.PathValue("id"), true)
	}))
	mux.HandleFunc("POST /api/Admin/unblock/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		b.setBlocked(r.PathValue("id"), false)
	}))
	mux.HandleFunc("POST /api/Admin/newAdmin", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		var acc struct{ Username string }
		_ = json.NewDecoder(r.Body).Decode(&acc)
		b.mu.Lock()
		b.admins = append(b.admins, acc.Username)
		b.mu.Unlock()
	}))
	mux.HandleFunc("DELETE /api/Admin/{kind}/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		if !b.remove(r.PathValue("kind"), r.PathValue("id")) {
			http.NotFound(w, r)
		}
	}))
	return mux
}

func (b *fakeBackend) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+r.URL.Path)
		b.mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) setBlocked(id string, blocked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.users {
		if b.users[i].ID == id {
			b.users[i].IsBlocked = blocked
		}
	}
}

func (b *fakeBackend) remove(kind, id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch kind {
	case "user":
		for i, u := range b.users {
			if u.ID == id {
				b.users = append(b.users[:i], b.users[i+1:]...)
				return true
			}
		}
	case "project", "dataset":
		list := &b.projects
		if kind == "dataset" {
			list = &b.datasets
		}
		for i, rec := range *list {
			if rec.ID == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return true
			}
		}
	}
	return false
}

func (b *fakeBackend) user(id string) (fakeUser, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if u.ID == id {
			return u, true
		}
	}
	return fakeUser{}, false
}

func (b *fakeBackend) seen(prefix string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.requests {
		if strings.HasPrefix(r, prefix) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
