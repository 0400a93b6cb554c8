package model

import (
	"fmt"
	"strings"
)

type Task struct {
	ID          int       `json:"id" yaml:"id"`
	Description string    `json:"description" yaml:"-"`
	Status      Status    `json:"status" yaml:"status"`
	CreatedAt   Timestamp `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt" yaml:"updatedAt"`
}

func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("task id must be positive, got %d", t.ID)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("task description is required")
	}
	return ValidateStatus(t.Status)
}

// Touch refreshes UpdatedAt after a mutation.
func (t *Task) Touch(now Timestamp) {
	t.UpdatedAt = now
}
