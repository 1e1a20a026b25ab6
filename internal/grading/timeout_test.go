package grading_test

import (
	"os/exec"
	"testing"
	"time"

	"github.com/p7-projekt/mozart/internal/grading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithTimeout_ExitsBeforeDeadline(t *testing.T) {
	cmd := exec.Command("sh", "-c", "echo hello; exit 0")
	output, err := grading.RunWithTimeout(discardLogger(), 2*time.Second, cmd)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 0, output.ExitCode)
	assert.Equal(t, "hello\n", string(output.Stdout))
}

func TestRunWithTimeout_NonZeroExit(t *testing.T) {
	cmd := exec.Command("sh", "-c", "exit 7")
	output, err := grading.RunWithTimeout(discardLogger(), 2*time.Second, cmd)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, 7, output.ExitCode)
}

func TestRunWithTimeout_KillsOnDeadline(t *testing.T) {
	cmd := exec.Command("sh", "-c", "sleep 5")
	start := time.Now()
	output, err := grading.RunWithTimeout(discardLogger(), 150*time.Millisecond, cmd)
	require.NoError(t, err)
	assert.Nil(t, output, "a timed-out process should report no output")
	assert.Less(t, time.Since(start), 2*time.Second)
}
