// Command mozart runs the submission-grading HTTP service.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/p7-projekt/mozart/internal/api"
	"github.com/p7-projekt/mozart/internal/config"
	"github.com/p7-projekt/mozart/internal/lang"
	"github.com/p7-projekt/mozart/internal/mozartlog"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags, the way the
// teacher's entrypoint/cmd package stamps its own version string.
var version = "devel"

var (
	log *logrus.Logger
	cfg config.Config

	cmdRoot = &cobra.Command{
		Use:   "mozart",
		Short: "mozart grades submissions against test cases",
		Long:  "mozart compiles and runs a user-supplied solution against a set of test cases in an isolated, sandboxed working directory.",
		RunE:  runServe,
	}

	cmdServe = &cobra.Command{
		Use:   "serve",
		Short: "start the mozart HTTP server",
		RunE:  runServe,
	}

	cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "print the version number and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mozart version %s\n", version)
		},
	}
)

func init() {
	cfg = config.Default()

	for _, cmd := range []*cobra.Command{cmdRoot, cmdServe} {
		cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
		cmd.Flags().StringVar(&cfg.ParentDir, "parent-dir", cfg.ParentDir, "parent directory for per-submission job directories")
		cmd.Flags().StringVar(&cfg.RestrictedUser, "restricted-user", cfg.RestrictedUser, "OS account execution children run as")
		cmd.Flags().StringVar(&cfg.Language, "language", cfg.Language, "active language handler (python, haskell)")
		cmd.Flags().BoolVar(&cfg.NetNSIsolation, "netns", cfg.NetNSIsolation, "isolate each execution child in a fresh network namespace")
	}

	cmdRoot.AddCommand(cmdServe, cmdVersion)
}

func runServe(cmd *cobra.Command, args []string) error {
	log = mozartlog.New()

	sb, err := sandbox.Resolve(cfg.RestrictedUser, cfg.NetNSIsolation)
	if err != nil {
		log.WithError(err).Fatal("failed to resolve restricted user")
	}
	log.WithField("sandbox", sb.String()).Info("resolved restricted user")

	newHandler, err := lang.Factory(cfg.Language)
	if err != nil {
		log.WithError(err).Fatal("failed to build language handler")
	}

	srv := api.New(log, cfg, sb, newHandler)

	log.WithField("addr", cfg.Addr).Info("starting mozart server")
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		log.WithError(err).Debug("systemd notify unavailable, continuing without it")
	}

	return http.ListenAndServe(cfg.Addr, srv.NewRouter())
}

func main() {
	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}
