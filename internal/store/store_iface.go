package store

import (
	"context"

	"github.com/rogersnm/taskcli/internal/model"
)

// Store is the task persistence boundary the commands depend on. Every
// mutating call is one load -> mutate -> save transaction.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Save(ctx context.Context, tasks []model.Task) error

	Add(ctx context.Context, description string) (*model.Task, error)
	Update(ctx context.Context, id int, description string) (*model.Task, error)
	Delete(ctx context.Context, id int) (bool, error)
	ChangeStatus(ctx context.Context, id int, status model.Status) (*model.Task, error)
	Apply(ctx context.Context, id int, edit TaskEdit) (*model.Task, error)
	List(ctx context.Context, status model.Status) ([]model.Task, error)
	Get(ctx context.Context, id int) (*model.Task, error)
}
