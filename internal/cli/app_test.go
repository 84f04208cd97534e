package cli

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
)

func TestNewApp_Defaults(t *testing.T) {
	app := NewApp(newMockBusinessAPI(), nil, nil)

	assert.Equal(t, config.DefaultRecentLimit, app.config.Display.RecentLimit)
	assert.Equal(t, os.Stdout, app.out)
	assert.NotNil(t, app.styles)
	assert.NotNil(t, app.registry)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			name:     "no args shows the dashboard",
			args:     []string{},
			contains: []string{"Dashboard", "Signed in as john-doe", "No tasks yet"},
		},
		{
			name:     "whoami",
			args:     []string{"whoami"},
			contains: []string{"john-doe\n"},
		},
		{
			name:     "add",
			args:     []string{"add", "Buy", "milk"},
			contains: []string{"Added task task-01-: Buy milk"},
		},
		{
			name:    "unknown command",
			args:    []string{"start", "Coding"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := setupTestAppWithMockBusinessAPI(t)

			err := app.Run(context.Background(), tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
