package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskpad/taskpad-go/internal/model"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository handles todo persistence operations. Every query is scoped
// by owner, so a todo belonging to another user behaves exactly like a
// missing row.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

const todoColumns = `id, user_id, task, completed, priority, due_date, created_at, updated_at`

// Create inserts a new todo with the service-assigned ID and timestamps.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (` + todoColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Task,
		todo.Completed,
		todo.Priority,
		todo.DueDate,
		todo.CreatedAt,
		todo.UpdatedAt,
	)
	return err
}

// ListByOwner retrieves all todos owned by a user, newest first.
func (r *TodoRepository) ListByOwner(ctx context.Context, userID int64) ([]model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE user_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}

	return todos, rows.Err()
}

// GetByOwner retrieves a single todo by ID, scoped to its owner.
func (r *TodoRepository) GetByOwner(ctx context.Context, userID int64, id string) (*model.Todo, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ? AND user_id = ?`

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	return todo, nil
}

// ToggleCompleted flips a todo's completion flag in a single owner-scoped
// UPDATE, so there is no read-then-write window, and returns the updated
// record.
func (r *TodoRepository) ToggleCompleted(ctx context.Context, userID int64, id string) (*model.Todo, error) {
	query := `UPDATE todos SET completed = NOT completed WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, ErrTodoNotFound
	}

	return r.GetByOwner(ctx, userID, id)
}

// Delete removes a todo in a single owner-scoped DELETE.
func (r *TodoRepository) Delete(ctx context.Context, userID int64, id string) error {
	query := `DELETE FROM todos WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(s scanner) (*model.Todo, error) {
	todo := &model.Todo{}
	var dueDate sql.NullTime

	err := s.Scan(
		&todo.ID, &todo.UserID, &todo.Task, &todo.Completed,
		&todo.Priority, &dueDate, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		todo.DueDate = &dueDate.Time
	}

	return todo, nil
}
