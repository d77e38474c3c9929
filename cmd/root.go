package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"screenops/config"
)

var Verbose bool

var (
	flagTransport string
	flagHost      string
	flagPort      int
	flagLogPath   string
)

var RootCmd = &cobra.Command{
	Use:   "screenops",
	Short: "MCP server exposing screen and window capture tools",
	Long: `Screenops exposes the desktop to MCP clients: it reports connected
displays and open windows and captures any of them as an image. Run without
a subcommand it starts the MCP server; the monitors, windows, and shot
subcommands offer the same operations from the command line.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "log tool calls to stderr")
	RootCmd.Flags().StringVarP(&flagTransport, "transport", "t", "", "transport protocol: stdio, sse, or streamable-http (default stdio)")
	RootCmd.Flags().StringVar(&flagHost, "host", "", "host for HTTP-based transports (default 127.0.0.1)")
	RootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "port for HTTP-based transports (default 8080)")
	RootCmd.Flags().StringVarP(&flagLogPath, "log", "l", "", "path to a debug log file")
}

// loadConfig resolves env configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("transport") {
		cfg.Transport = flagTransport
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("log") {
		cfg.LogPath = flagLogPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
