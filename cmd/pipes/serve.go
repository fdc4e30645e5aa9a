package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxTimeout  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pipes SSH server",
	Long: `Start an SSH server that shows the screensaver to every connecting terminal.

Each SSH connection gets its own screensaver, styled by the config file and
flags of the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pipes/host_key

Examples:
  pipes serve                           # Listen on :23234 with auto-generated key
  pipes serve --ssh :2222               # Listen on port 2222
  pipes serve --host-key ./my_host_key  # Use specific host key
  pipes serve -c rgb --palette matrix   # Style every session

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Minutes without input before disconnecting (0 = never)")
	serveCmd.Flags().IntVar(&flagMaxTimeout, "max-timeout", 0, "Maximum session length in minutes (0 = unlimited)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		MaxTimeout:  time.Duration(flagMaxTimeout) * time.Minute,
		Settings:    settings,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting pipes SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Connect with: ssh -t localhost -p 23234")
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
