// Command waypoint inspects a deep link configuration: it parses URLs into
// segments, serializes page paths into URLs and lists the registered links.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

func main() {
	err := newRootCmd().Execute()
	waypoint.CloseLogger()
	if err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "waypoint",
		Short:         "Inspect deep link configurations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != "" {
				waypoint.SetLogPath(opts.logFile)
			}
			waypoint.SetRawLogLevel(opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "links.toml", "link config file (.toml, .yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write logs to this file")

	cmd.AddCommand(
		newParseCmd(opts),
		newSerializeCmd(opts),
		newLinksCmd(opts),
		newNormalizeCmd(),
	)
	return cmd
}

func loadConfig(opts *rootOptions) (*waypoint.Config, error) {
	cfg, err := waypoint.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	waypoint.GetLogger().Debug("config loaded", "path", opts.configPath, "links", len(cfg.Links))
	return cfg, nil
}

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <url>",
		Short: "Print a URL in normalized form",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), waypoint.NormalizeURL(args[0]))
		},
	}
}
