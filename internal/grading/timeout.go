package grading

import (
	"bytes"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// pollInterval is the period of RunWithTimeout's wakeup ticker, matching
// original_source/src/timeout.rs's 100ms poll loop. Process exit itself is
// observed as soon as cmd.Wait returns, not on a tick.
const pollInterval = 100 * time.Millisecond

// ProcessOutput is the captured stdout/stderr of a child process that
// exited before its deadline.
type ProcessOutput struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// RunWithTimeout starts cmd, waits for it to exit or for timeout to
// elapse, and returns the captured
// output on exit or (nil, nil) on timeout. This is the single chokepoint
// every external tool invocation in mozart passes through (spec.md §4.A).
//
// On timeout the whole process group is killed so that grandchildren
// spawned by a misbehaving compiler or interpreter do not outlive the
// deadline, mirroring the teacher's habit (internal/pkg/cmdrun,
// internal/pkg/bashexec) of always pinning child lifetime to the parent.
func RunWithTimeout(log *logrus.Entry, timeout time.Duration, cmd *exec.Cmd) (*ProcessOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	setProcessGroup(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case waitErr := <-done:
			log.WithField("elapsed", time.Since(start)).Debug("process exited before exceeding timeout")
			exitCode := 0
			if exitErr, ok := waitErr.(*exec.ExitError); ok {
				exitCode = exitErr.ExitCode()
			} else if waitErr != nil {
				return nil, waitErr
			}
			return &ProcessOutput{
				ExitCode: exitCode,
				Stdout:   stdout.Bytes(),
				Stderr:   stderr.Bytes(),
			}, nil
		case <-ticker.C:
			// bounds our wakeup granularity to ~100ms; the done channel
			// above is what actually observes process exit.
		case <-deadline.C:
			log.WithField("timeout", timeout).Info("killing process after exceeding timeout")
			killProcessGroup(cmd)
			<-done
			return nil, nil
		}
	}
}
