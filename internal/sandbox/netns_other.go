//go:build !linux

package sandbox

import "github.com/sirupsen/logrus"

func withIsolatedNetNS(log *logrus.Entry, fn func() error) error {
	log.Warn("network namespace isolation requested but unsupported on this platform, running unisolated")
	return fn()
}
