package codec

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-todo/internal/dto"
	"github.com/yukikurage/project-todo/internal/models"
)

func strPtr(s string) *string { return &s }

func TestSerialize_EmptyManager(t *testing.T) {
	raw, err := Encode(models.NewProjectManager())
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[],"currentProject":null}`, raw)
}

func TestEncode_Layout(t *testing.T) {
	m := models.NewProjectManager()
	_, err := m.CreateProject("Home")
	require.NoError(t, err)
	_, err = m.CreateProject("Empty")
	require.NoError(t, err)
	m.SetCurrentProject("Home")

	task, err := models.NewTask("Buy milk", "2 litres", "2025-08-28", models.PriorityLow)
	require.NoError(t, err)
	task.ToggleComplete()
	task.SetNote("semi-skimmed")
	require.NoError(t, m.AddTaskToCurrentProject(task))

	raw, err := Encode(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"projects": [
			{"name": "Home", "todos": [
				{"title": "Buy milk", "description": "2 litres", "duedate": "2025-08-28",
				 "priority": "low", "completed": true, "note": "semi-skimmed"}
			]},
			{"name": "Empty", "todos": []}
		],
		"currentProject": "Home"
	}`, raw)
}

func TestRoundTrip_HomeScenario(t *testing.T) {
	m := models.NewProjectManager()
	_, err := m.CreateProject("Home")
	require.NoError(t, err)
	_, err = m.CreateProject("Home")
	require.ErrorIs(t, err, models.ErrDuplicateProjectName)
	require.True(t, m.SetCurrentProject("Home"))

	task, err := models.NewTask("Buy milk", "", "", models.PriorityLow)
	require.NoError(t, err)
	require.NoError(t, m.AddTaskToCurrentProject(task))
	task.ToggleComplete()

	restored, err := Decode(mustEncode(t, m))
	require.NoError(t, err)

	home, ok := restored.FindProject("Home")
	require.True(t, ok)
	require.Equal(t, 1, home.Len())
	got, _ := home.Task(0)
	assert.Equal(t, "Buy milk", got.Title)
	assert.True(t, got.Completed)
	assert.Equal(t, "Home", restored.CurrentProject().Name())
}

func TestDeserialize_UnknownCurrentProjectSelectsNothing(t *testing.T) {
	m, err := Deserialize(dto.Snapshot{
		Projects: []dto.ProjectRecord{
			{Name: "Home", Todos: []dto.TaskRecord{}},
			{Name: "Work", Todos: []dto.TaskRecord{}},
		},
		CurrentProject: strPtr("Garden"),
	})
	require.NoError(t, err)
	assert.Nil(t, m.CurrentProject())
	assert.Len(t, m.Projects(), 2)
}

func TestDeserialize_DefaultsToFirstProject(t *testing.T) {
	for name, current := range map[string]*string{"null": nil, "empty": strPtr("")} {
		t.Run(name, func(t *testing.T) {
			m, err := Deserialize(dto.Snapshot{
				Projects: []dto.ProjectRecord{
					{Name: "Home", Todos: []dto.TaskRecord{}},
					{Name: "Work", Todos: []dto.TaskRecord{}},
				},
				CurrentProject: current,
			})
			require.NoError(t, err)
			require.NotNil(t, m.CurrentProject())
			assert.Equal(t, "Home", m.CurrentProject().Name())
		})
	}
}

func TestDeserialize_NoProjects(t *testing.T) {
	m, err := Decode(`{"projects":[],"currentProject":null}`)
	require.NoError(t, err)
	assert.Nil(t, m.CurrentProject())
	assert.Empty(t, m.Projects())
}

func TestDeserialize_SelectsNamedProject(t *testing.T) {
	m, err := Decode(`{"projects":[{"name":"Home","todos":[]},{"name":"Work","todos":[]}],"currentProject":"Work"}`)
	require.NoError(t, err)
	assert.Equal(t, "Work", m.CurrentProject().Name())
}

func TestDeserialize_ToleratesUnknownPriorityAndBadDate(t *testing.T) {
	m, err := Decode(`{"projects":[{"name":"Trip","todos":[
		{"title":"Travel","description":"campus","duedate":"28/08/2025","priority":"urgent","completed":false,"note":""}
	]}],"currentProject":"Trip"}`)
	require.NoError(t, err)

	task, ok := m.CurrentProject().Task(0)
	require.True(t, ok)
	assert.Equal(t, "28/08/2025", task.DueDate)
	assert.Equal(t, models.Priority("urgent"), task.Priority)
}

func TestDecode_Corrupt(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"projects":`,
		"wrong type":       `{"projects":"Home"}`,
		"null":             `null`,
		"missing projects": `{"currentProject":"Home"}`,
		"missing todos":    `{"projects":[{"name":"Home"}]}`,
		"blank title":      `{"projects":[{"name":"Home","todos":[{"title":" "}]}]}`,
		"blank name":       `{"projects":[{"name":"","todos":[]}]}`,
		"duplicate name":   `{"projects":[{"name":"Home","todos":[]},{"name":"Home","todos":[]}]}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := Decode(raw)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestDecode_CorruptNamesRejectedRecord(t *testing.T) {
	_, err := Decode(`{"projects":[{"name":"Home","todos":[]},{"name":"Home","todos":[]}],"currentProject":null}`)
	require.ErrorIs(t, err, ErrCorruptData)
	assert.ErrorContains(t, err, `project 1 "Home"`)

	_, err = Decode(`{"projects":[{"name":"Home","todos":[{"title":""}]}]}`)
	require.ErrorIs(t, err, ErrCorruptData)
	assert.ErrorContains(t, err, `project "Home" task 0`)
}

// Snapshots produced from any sequence of mutations survive a
// deserialize/serialize cycle unchanged, as long as a project is selected
// whenever one exists (which is how the workspace service drives the model).
func TestRoundTrip_RandomMutations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	priorities := []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow, models.PriorityUnspecified}

	for run := 0; run < 50; run++ {
		m := models.NewProjectManager()
		for step := 0; step < 40; step++ {
			switch rng.Intn(6) {
			case 0:
				name := fmt.Sprintf("project-%d", rng.Intn(5))
				if _, err := m.CreateProject(name); err == nil {
					m.SetCurrentProject(name)
				}
			case 1:
				m.SetCurrentProject(fmt.Sprintf("project-%d", rng.Intn(5)))
			case 2:
				task, err := models.NewTask(fmt.Sprintf("task-%d", step), "d", "2025-01-02", priorities[rng.Intn(len(priorities))])
				require.NoError(t, err)
				_ = m.AddTaskToCurrentProject(task)
			case 3:
				if p := m.CurrentProject(); p != nil {
					p.RemoveTask(rng.Intn(p.Len()+2) - 1)
				}
			case 4:
				if p := m.CurrentProject(); p != nil && p.Len() > 0 {
					task, _ := p.Task(rng.Intn(p.Len()))
					task.ToggleComplete()
				}
			case 5:
				if p := m.CurrentProject(); p != nil && p.Len() > 0 {
					task, _ := p.Task(rng.Intn(p.Len()))
					task.SetNote(fmt.Sprintf(" note %d ", step))
				}
			}
		}

		original := Serialize(m)
		restored, err := Deserialize(original)
		require.NoError(t, err)
		assert.Equal(t, original, Serialize(restored), "run %d", run)
	}
}

func mustEncode(t *testing.T, m *models.ProjectManager) string {
	t.Helper()
	raw, err := Encode(m)
	require.NoError(t, err)
	return raw
}
