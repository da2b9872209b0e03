// Command kierki-server runs one tournament: it loads a deal script, listens
// for four seats, and drives every deal in the script to its TOTAL before
// exiting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kierki/internal/dealfile"
	"kierki/internal/obslog"
	"kierki/internal/report"
	"kierki/internal/session"
	"kierki/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.ServerConfig{}

	cmd := &cobra.Command{
		Use:           "kierki-server",
		Short:         "run a Kierki tournament server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Port, "port", "p", 0, "TCP port to listen on (0 lets the kernel choose)")
	flags.DurationVarP(&cfg.Timeout, "timeout", "t", 5*time.Second, "seat response timeout before re-prompting")
	flags.StringVarP(&cfg.ScriptPath, "file", "f", "", "deal script path (required)")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "operational log level")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "force debug-level logging")
	flags.IntVar(&cfg.PendingSlots, "pending-slots", 4, "max pre-IAM connections held at once")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cfg config.ServerConfig) error {
	deals, err := dealfile.Load(cfg.ScriptPath)
	if err != nil {
		return fmt.Errorf("loading deal script: %w", err)
	}

	log := obslog.New(os.Stderr, cfg.LogLevel, cfg.Verbose)
	rep := report.New(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := session.New(cfg, deals, log, rep)
	if err := srv.Run(ctx); err != nil && err != context.Canceled {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
