package store

import (
	"context"
	"strings"

	"github.com/rogersnm/taskcli/internal/id"
	"github.com/rogersnm/taskcli/internal/model"
)

// Add appends a new todo task. The id is one past the largest existing id.
func (s *FileStore) Add(ctx context.Context, description string) (*model.Task, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	var created model.Task
	err := s.transact(ctx, func(tasks []model.Task) ([]model.Task, error) {
		for _, t := range tasks {
			if t.Description == description {
				return nil, ErrDuplicateDescription
			}
		}
		ts := s.timestamp()
		created = model.Task{
			ID:          nextID(tasks),
			Description: description,
			Status:      model.StatusTodo,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
		return append(tasks, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// TaskEdit names the fields to change; nil fields are left alone.
type TaskEdit struct {
	Description *string
	Status      *model.Status
}

// Update replaces a task's description. Uniqueness is only enforced by Add.
func (s *FileStore) Update(ctx context.Context, id int, description string) (*model.Task, error) {
	return s.Apply(ctx, id, TaskEdit{Description: &description})
}

// ChangeStatus sets a task's status. The value is not checked against the enum.
func (s *FileStore) ChangeStatus(ctx context.Context, id int, status model.Status) (*model.Task, error) {
	return s.Apply(ctx, id, TaskEdit{Status: &status})
}

// Apply changes several fields of one task in a single transaction.
func (s *FileStore) Apply(ctx context.Context, id int, edit TaskEdit) (*model.Task, error) {
	if edit.Description != nil && strings.TrimSpace(*edit.Description) == "" {
		return nil, ErrEmptyDescription
	}
	return s.mutate(ctx, id, func(t *model.Task) {
		if edit.Description != nil {
			t.Description = *edit.Description
		}
		if edit.Status != nil {
			t.Status = *edit.Status
		}
	})
}

// Delete removes the task with id if present. The store is rewritten either way.
func (s *FileStore) Delete(ctx context.Context, id int) (bool, error) {
	removed := false
	err := s.transact(ctx, func(tasks []model.Task) ([]model.Task, error) {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID == id {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// List returns tasks in file order, restricted to status when it is non-empty.
func (s *FileStore) List(ctx context.Context, status model.Status) ([]model.Task, error) {
	var out []model.Task
	err := s.view(ctx, func(tasks []model.Task) error {
		out = filterStatus(tasks, status)
		return nil
	})
	return out, err
}

func (s *FileStore) Get(ctx context.Context, id int) (*model.Task, error) {
	var found *model.Task
	err := s.view(ctx, func(tasks []model.Task) error {
		if i := indexOf(tasks, id); i >= 0 {
			found = &tasks[i]
			return nil
		}
		return notFound(id)
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *FileStore) mutate(ctx context.Context, id int, apply func(*model.Task)) (*model.Task, error) {
	var updated model.Task
	err := s.transact(ctx, func(tasks []model.Task) ([]model.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, notFound(id)
		}
		apply(&tasks[i])
		tasks[i].Touch(s.timestamp())
		updated = tasks[i]
		return tasks, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *FileStore) timestamp() model.Timestamp {
	return model.NewTimestamp(s.now())
}

func nextID(tasks []model.Task) int {
	ids := make([]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return id.Next(ids)
}

func indexOf(tasks []model.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func filterStatus(tasks []model.Task, status model.Status) []model.Task {
	if status == "" {
		return tasks
	}
	out := []model.Task{}
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}
