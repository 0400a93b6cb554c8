package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStatus_Valid(t *testing.T) {
	for _, s := range Statuses() {
		assert.NoError(t, ValidateStatus(s))
	}
}

func TestValidateStatus_Invalid(t *testing.T) {
	for _, s := range []Status{"", "open", "in_progress", "Done"} {
		assert.Error(t, ValidateStatus(s), "status %q", s)
	}
}

func TestStatuses_ReturnsCopy(t *testing.T) {
	s := Statuses()
	s[0] = "mutated"
	assert.Equal(t, StatusTodo, Statuses()[0])
}

func TestTask_Validate_Valid(t *testing.T) {
	task := &Task{ID: 1, Description: "Buy milk", Status: StatusTodo}
	assert.NoError(t, task.Validate())
}

func TestTask_Validate_NonPositiveID(t *testing.T) {
	task := &Task{ID: 0, Description: "Buy milk", Status: StatusTodo}
	assert.Error(t, task.Validate())
}

func TestTask_Validate_BlankDescription(t *testing.T) {
	task := &Task{ID: 1, Description: "   ", Status: StatusTodo}
	assert.Error(t, task.Validate())
}

func TestTask_Validate_BadStatus(t *testing.T) {
	task := &Task{ID: 1, Description: "Buy milk", Status: "closed"}
	assert.Error(t, task.Validate())
}

func TestTimestamp_Format(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 3, 14, 9, 5, 7, 123456789, time.Local))
	assert.Equal(t, "2026-03-14 09:05:07.123456", ts.String())
}

func TestParseTimestamp_Layouts(t *testing.T) {
	cases := map[string]string{
		"2026-03-14 09:05:07.123456": "2026-03-14 09:05:07.123456",
		"2026-03-14 09:05:07":        "2026-03-14 09:05:07.000000",
		"2026-03-14":                 "2026-03-14 00:00:00.000000",
	}
	for in, want := range cases {
		ts, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, ts.String(), in)
	}
}

func TestParseTimestamp_RFC3339InLocalTime(t *testing.T) {
	old := time.Local
	time.Local = time.FixedZone("EST", -5*3600)
	t.Cleanup(func() { time.Local = old })

	ts, err := ParseTimestamp("2025-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31 19:00:00.000000", ts.String())

	back, err := ParseTimestamp(ts.String())
	require.NoError(t, err)
	assert.True(t, ts.Equal(back.Time))
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestTask_JSONFieldNames(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 1, 2, 3, 4, 5, 6000, time.Local))
	task := Task{ID: 7, Description: "Walk dog", Status: StatusDone, CreatedAt: ts, UpdatedAt: ts}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 5)
	assert.Equal(t, float64(7), raw["id"])
	assert.Equal(t, "Walk dog", raw["description"])
	assert.Equal(t, "done", raw["status"])
	assert.Equal(t, "2026-01-02 03:04:05.000006", raw["createdAt"])
	assert.Equal(t, "2026-01-02 03:04:05.000006", raw["updatedAt"])
}

func TestTimestamp_UnmarshalJSON_NotString(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte("12345"), &ts))
}

func TestTask_Touch(t *testing.T) {
	created := NewTimestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local))
	later := NewTimestamp(created.Add(time.Second))
	task := Task{ID: 1, Description: "x", Status: StatusTodo, CreatedAt: created, UpdatedAt: created}

	task.Touch(later)
	assert.Equal(t, created.String(), task.CreatedAt.String())
	assert.True(t, task.UpdatedAt.After(task.CreatedAt.Time))
}
