//go:build linux

package grading

import (
	"os/exec"
	"syscall"
)

// setProcessGroup puts cmd in its own process group so that
// killProcessGroup can take out the whole subtree a compiler or
// interpreter may have spawned, not just the direct child. Any attributes
// already set on cmd (such as the sandbox credential) are kept.
func setProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	// negative pid signals the whole process group.
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
