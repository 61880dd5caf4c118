package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/taskpad/taskpad-go/internal/middleware"
	"github.com/taskpad/taskpad-go/internal/model"
	"github.com/taskpad/taskpad-go/internal/repository"
	"github.com/taskpad/taskpad-go/internal/service"
)

const testSecret = "test-secret"

// fakeUserRepo is an in-memory user store returning the repository's
// sentinel errors.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}

	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := u
	return &user, nil
}

// fakeTodoRepo keeps todos in insertion order and lists them backwards,
// matching the created_at descending order of the MySQL repository.
type fakeTodoRepo struct {
	mu    sync.Mutex
	todos []model.Todo
}

func (f *fakeTodoRepo) Create(_ context.Context, todo *model.Todo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.todos = append(f.todos, *todo)
	return nil
}

func (f *fakeTodoRepo) ListByOwner(_ context.Context, userID int64) ([]model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Todo
	for i := len(f.todos) - 1; i >= 0; i-- {
		if f.todos[i].UserID == userID {
			out = append(out, f.todos[i])
		}
	}
	return out, nil
}

func (f *fakeTodoRepo) GetByOwner(_ context.Context, userID int64, id string) (*model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.todos {
		if t.ID == id && t.UserID == userID {
			todo := t
			return &todo, nil
		}
	}
	return nil, repository.ErrTodoNotFound
}

func (f *fakeTodoRepo) ToggleCompleted(_ context.Context, userID int64, id string) (*model.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.todos {
		if t.ID == id && t.UserID == userID {
			f.todos[i].Completed = !f.todos[i].Completed
			todo := f.todos[i]
			return &todo, nil
		}
	}
	return nil, repository.ErrTodoNotFound
}

func (f *fakeTodoRepo) Delete(_ context.Context, userID int64, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.todos {
		if t.ID == id && t.UserID == userID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return repository.ErrTodoNotFound
}

// newTestRouter wires the real services, handlers and auth middleware over
// in-memory repositories, mirroring the route layout in cmd/api.
func newTestRouter() http.Handler {
	userRepo := newFakeUserRepo()
	authService := service.NewAuthService(userRepo, testSecret, time.Hour)
	authHandler := NewAuthHandler(authService)

	todoRepo := &fakeTodoRepo{}
	todoService := service.NewTodoService(todoRepo)
	todoHandler := NewTodoHandler(todoService)

	r := chi.NewRouter()
	r.Post("/api/auth/register", authHandler.HandleRegister)
	r.Post("/api/auth/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret, userRepo))
		r.Get("/api/auth/me", authHandler.HandleMe)

		r.Get("/api/todos", todoHandler.HandleList)
		r.Post("/api/todos", todoHandler.HandleCreate)
		r.Put("/api/todos/{id}", todoHandler.HandleToggle)
		r.Delete("/api/todos/{id}", todoHandler.HandleDelete)
	})

	return r
}

// doJSON performs a request against the router, optionally with a bearer
// token and JSON body, and decodes the JSON response into out when non-nil.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out), "body: %s", rec.Body.String())
	}
	return rec
}

func registerUser(t *testing.T, h http.Handler, username, email, password string) model.AuthResponse {
	t.Helper()

	var resp model.AuthResponse
	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", model.RegisterRequest{
		Username: username, Email: email, Password: password,
	}, &resp)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, resp.Token)
	return resp
}
