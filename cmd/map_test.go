package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/vifmap/internal/domain"
)

func TestMapCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newMapCmd())

	mockWorkflow.EXPECT().Map(mock.Anything, domain.MapArgs{
		Path:  "figs/diagonal.tex",
		Scale: 1000,
	}).Return(nil)

	cmd.SetArgs([]string{"map", "figs/diagonal.tex"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestMapCmd_DetectionsFile(t *testing.T) {
	cmd, mockWorkflow := newTestRoot(t, newMapCmd())

	mockWorkflow.EXPECT().Map(mock.Anything, domain.MapArgs{
		Path:       "figure.tex",
		ID:         "cover",
		Detections: "boxes.json",
		Scale:      0,
	}).Return(nil)

	cmd.SetArgs([]string{"map", "figure.tex", "--id", "cover", "-d", "boxes.json", "--scale", "0"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestMapCmd_Errors(t *testing.T) {
	t.Run("requires one document", func(t *testing.T) {
		cmd, _ := newTestRoot(t, newMapCmd())

		cmd.SetArgs([]string{"map"})
		require.Error(t, cmd.Execute())
	})

	t.Run("returns workflow errors", func(t *testing.T) {
		cmd, mockWorkflow := newTestRoot(t, newMapCmd())

		mockWorkflow.EXPECT().Map(mock.Anything, mock.Anything).Return(domain.ErrNoDetector)

		cmd.SetArgs([]string{"map", "figure.tex"})
		err := cmd.Execute()
		assert.True(t, errors.Is(err, domain.ErrNoDetector))
	})
}
