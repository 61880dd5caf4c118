package service

import (
	"context"
	"sync"

	"github.com/taskpad/taskpad-go/internal/model"
	"github.com/taskpad/taskpad-go/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository returning the same sentinel
// errors as the MySQL implementation.
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

// fakeTodoRepo keeps todos in insertion order; listing walks the slice
// backwards, matching the created_at descending order of the real repository.
type fakeTodoRepo struct {
	mu    sync.Mutex
	todos []model.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{}
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
