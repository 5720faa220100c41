package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task, err := NewTask("Buy milk", "", "", PriorityLow)
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, PriorityLow, task.Priority)
	assert.False(t, task.Completed)
	assert.Empty(t, task.Note)
}

func TestNewTask_BlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		task, err := NewTask(title, "desc", "2025-01-01", PriorityHigh)
		assert.Nil(t, task)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	}
}

func TestNewTask_KeepsMalformedDueDate(t *testing.T) {
	task, err := NewTask("Travel", "", "28/08/2025", PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "28/08/2025", task.DueDate)

	_, ok := task.DueTime()
	assert.False(t, ok)
}

func TestTask_DueTime(t *testing.T) {
	task, err := NewTask("Report", "", "2025-08-28", PriorityMedium)
	require.NoError(t, err)

	due, ok := task.DueTime()
	require.True(t, ok)
	assert.Equal(t, 28, due.Day())

	task.DueDate = ""
	_, ok = task.DueTime()
	assert.False(t, ok)
}

func TestTask_ToggleCompleteIsSelfInverse(t *testing.T) {
	task, err := NewTask("Walk", "", "", PriorityUnspecified)
	require.NoError(t, err)

	task.ToggleComplete()
	assert.True(t, task.Completed)
	task.ToggleComplete()
	assert.False(t, task.Completed)

	task.SetCompleted(true)
	task.ToggleComplete()
	task.ToggleComplete()
	assert.True(t, task.Completed)
}

func TestTask_SetNoteIsVerbatim(t *testing.T) {
	task, err := NewTask("Walk", "", "", PriorityLow)
	require.NoError(t, err)

	task.SetNote("  bring the umbrella  ")
	assert.Equal(t, "  bring the umbrella  ", task.Note)

	task.SetNote("")
	assert.Empty(t, task.Note)
}

func TestPriority_Known(t *testing.T) {
	assert.True(t, PriorityHigh.Known())
	assert.True(t, PriorityMedium.Known())
	assert.True(t, PriorityLow.Known())
	assert.False(t, PriorityUnspecified.Known())
	assert.False(t, Priority("urgent").Known())
}
