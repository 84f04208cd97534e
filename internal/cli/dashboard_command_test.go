package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardCommand_Empty(t *testing.T) {
	app, _, out := setupTestAppWithMockBusinessAPI(t)

	require.NoError(t, NewDashboardCommand(app).Execute(context.Background(), nil))

	output := out.String()
	assert.Contains(t, output, "Signed in as john-doe")
	assert.Contains(t, output, "Total Tasks      0")
	assert.Contains(t, output, "Completion Rate  0%")
	assert.Contains(t, output, "No tasks yet")
	assert.NotContains(t, output, "Recent Tasks")
}

func TestDashboardCommand_ShowsMostRecent(t *testing.T) {
	app, mock, out := setupTestAppWithMockBusinessAPI(t)
	ctx := context.Background()
	for _, title := range []string{"First", "Second", "Third", "Fourth"} {
		_, err := mock.AddTask(ctx, title, "")
		require.NoError(t, err)
	}
	_, _ = mock.ToggleTask(ctx, "task-01")

	require.NoError(t, NewDashboardCommand(app).Execute(ctx, nil))

	output := out.String()
	assert.Contains(t, output, "Total Tasks      4")
	assert.Contains(t, output, "Completed        1")
	assert.Contains(t, output, "Pending          3")
	assert.Contains(t, output, "Completion Rate  25%")
	assert.Contains(t, output, "Recent Tasks")
	assert.Contains(t, output, "Fourth")
	assert.Contains(t, output, "Second")
	assert.NotContains(t, output, "First")
	assert.Contains(t, output, "View all tasks: td list")
}

func TestDashboardCommand_RejectsArguments(t *testing.T) {
	app, _, _ := setupTestAppWithMockBusinessAPI(t)
	assert.Error(t, NewDashboardCommand(app).Execute(context.Background(), []string{"extra"}))
}
