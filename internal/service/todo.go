package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskpad/taskpad-go/internal/model"
	"github.com/taskpad/taskpad-go/internal/repository"
)

var (
	ErrTaskRequired    = errors.New("task is required")
	ErrInvalidPriority = errors.New("priority must be low, medium or high")
	ErrTodoNotFound    = errors.New("todo not found")
)

// TodoRepository is the persistence contract the todo service depends on.
// Every method is scoped by owner: a todo belonging to another user is
// indistinguishable from a missing one.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	ListByOwner(ctx context.Context, userID int64) ([]model.Todo, error)
	GetByOwner(ctx context.Context, userID int64, id string) (*model.Todo, error)
	ToggleCompleted(ctx context.Context, userID int64, id string) (*model.Todo, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// TodoService handles todo business logic for a single authenticated owner
// per call.
type TodoService struct {
	repo TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// Create stores a new todo owned by userID. The task must be non-empty after
// trimming; an empty priority defaults to medium.
func (s *TodoService) Create(ctx context.Context, userID int64, req model.CreateTodoRequest) (model.Todo, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return model.Todo{}, ErrTaskRequired
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	} else if !model.ValidPriority(priority) {
		return model.Todo{}, ErrInvalidPriority
	}

	now := time.Now().UTC()
	todo := model.Todo{
		ID:        uuid.NewString(),
		UserID:    userID,
		Task:      task,
		Completed: false,
		Priority:  priority,
		DueDate:   req.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, &todo); err != nil {
		return model.Todo{}, err
	}

	return todo, nil
}

// List returns all todos owned by userID, newest first. An empty list is a
// valid result and serializes as [].
func (s *TodoService) List(ctx context.Context, userID int64) ([]model.Todo, error) {
	todos, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	return todos, nil
}

// ToggleCompleted flips the completion flag of the caller's todo and returns
// the updated record.
func (s *TodoService) ToggleCompleted(ctx context.Context, userID int64, id string) (model.Todo, error) {
	todo, err := s.repo.ToggleCompleted(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		return model.Todo{}, err
	}

	return *todo, nil
}

// Delete removes the caller's todo and returns its state prior to deletion.
func (s *TodoService) Delete(ctx context.Context, userID int64, id string) (model.Todo, error) {
	todo, err := s.repo.GetByOwner(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		return model.Todo{}, err
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		return model.Todo{}, err
	}

	return *todo, nil
}
