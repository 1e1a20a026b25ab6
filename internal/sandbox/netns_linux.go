//go:build linux

package sandbox

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"github.com/vishvananda/netns"
)

// withIsolatedNetNS pins the calling goroutine's OS thread, creates a
// fresh network namespace containing only a loopback interface, switches
// into it, runs fn (expected to Start() a child process, which inherits
// the namespace), and restores the original namespace before returning.
//
// This must run on a locked OS thread: network namespaces in Linux are
// per-thread, and unlocking early would let the Go runtime reschedule
// this goroutine onto a thread still in the default namespace.
func withIsolatedNetNS(log *logrus.Entry, fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	origin, err := netns.Get()
	if err != nil {
		return errors.Wrap(err, "failed to capture origin network namespace")
	}
	defer origin.Close()

	isolated, err := netns.New()
	if err != nil {
		return errors.Wrap(err, "failed to create isolated network namespace")
	}
	defer isolated.Close()
	defer func() {
		if err := netns.Set(origin); err != nil {
			log.WithError(err).Error("failed to restore origin network namespace")
		}
	}()

	lo, err := netlink.LinkByName("lo")
	if err != nil {
		return errors.Wrap(err, "failed to find loopback link in isolated namespace")
	}
	if err := netlink.LinkSetUp(lo); err != nil {
		return errors.Wrap(err, "failed to bring up loopback link in isolated namespace")
	}

	return fn()
}
