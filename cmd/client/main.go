// Command kierki-client connects to a Kierki server, claims a seat, and
// either plays automatically or relays a human player's typed commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kierki/internal/client"
	"kierki/internal/obslog"
	"kierki/internal/report"
	"kierki/pkg/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.ClientConfig{}
	var north, east, south, west, ipv4, ipv6 bool

	cmd := &cobra.Command{
		Use:           "kierki-client",
		Short:         "connect to a Kierki server as one seat",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seats := map[byte]bool{'N': north, 'E': east, 'S': south, 'W': west}
			chosen := byte(0)
			for letter, set := range seats {
				if !set {
					continue
				}
				if chosen != 0 {
					return fmt.Errorf("exactly one of -N, -E, -S, -W is allowed")
				}
				chosen = letter
			}
			if chosen == 0 {
				return fmt.Errorf("exactly one of -N, -E, -S, -W is required")
			}
			cfg.Seat = chosen

			switch {
			case ipv4 && ipv6:
				return fmt.Errorf("-4 and -6 are mutually exclusive")
			case ipv4:
				cfg.Family = "4"
			case ipv6:
				cfg.Family = "6"
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Host, "host", "h", "localhost", "server host")
	flags.IntVarP(&cfg.Port, "port", "p", 0, "server port (required)")
	flags.BoolVarP(&ipv4, "ipv4", "4", false, "force IPv4")
	flags.BoolVarP(&ipv6, "ipv6", "6", false, "force IPv6")
	flags.BoolVarP(&cfg.Automatic, "automatic", "a", false, "play automatically instead of prompting a terminal")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "operational log level")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "force debug-level logging")
	_ = cmd.MarkFlagRequired("port")

	flags.BoolVarP(&north, "north", "N", false, "claim seat North")
	flags.BoolVarP(&east, "east", "E", false, "claim seat East")
	flags.BoolVarP(&south, "south", "S", false, "claim seat South")
	flags.BoolVarP(&west, "west", "W", false, "claim seat West")

	return cmd
}

func run(cfg config.ClientConfig) error {
	log := obslog.New(os.Stderr, cfg.LogLevel, cfg.Verbose)
	rep := report.New(os.Stdout)

	c, err := client.Dial(cfg, log, rep, os.Stdout)
	if err != nil {
		return err
	}
	defer c.Close()

	if cfg.Automatic {
		return c.RunAutomatic()
	}
	return c.RunInteractive(os.Stdin)
}
