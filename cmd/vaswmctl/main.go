// Command vaswmctl sends a single command byte to a running vaswmd
// over its Unix control socket, per the wire contract in §6.
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaaas/vaswm/internal/config"
	"github.com/vaaas/vaswm/internal/wm"
)

func main() {
	var socketPath string

	rootCmd := &cobra.Command{
		Use:   "vaswmctl <command>",
		Short: "control client for the vaswm window manager",
		Long: `vaswmctl sends one short command to a running vaswmd daemon over its
Unix control socket. <command> is the literal wire character from §6:

  n, p    cycle focus within the current workspace
  N, P    cycle the visible workspace
  1 .. 5  switch to a workspace by index
  l, L    cycle the current workspace's layout
  q       close the focused window`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(socketPath, args[0])
		},
	}

	rootCmd.Flags().StringVar(&socketPath, "socket", config.Default().SocketPath, "control socket path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vaswmctl:", err)
		os.Exit(1)
	}
}

func send(socketPath, raw string) error {
	if _, err := wm.ParseCommand([]byte(raw)); err != nil {
		return fmt.Errorf("vaswmctl: %w", err)
	}

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return fmt.Errorf("vaswmctl: connecting to %s: %w", socketPath, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(raw)); err != nil {
		return fmt.Errorf("vaswmctl: writing command: %w", err)
	}
	return nil
}
