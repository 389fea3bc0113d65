// Command vaswmd is the vaswm window manager daemon: it takes
// ownership of the X root window, runs the single-threaded event loop
// of internal/x11, and serves the control socket internal/socket
// listens on.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vaaas/vaswm/internal/config"
	"github.com/vaaas/vaswm/internal/socket"
	"github.com/vaaas/vaswm/internal/wm"
	"github.com/vaaas/vaswm/internal/wmerr"
	"github.com/vaaas/vaswm/internal/wmlog"
	"github.com/vaaas/vaswm/internal/x11"
)

func main() {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "vaswmd",
		Short: "vaswm window manager daemon",
		Long: `vaswmd manages the X root window: it lays out clients in columns
across a fixed set of tagged workspaces, and accepts layout and focus
commands over a Unix control socket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(&cfg)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vaswmd:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*wmerr.InvariantViolation); ok {
				wmlog.Log.WithError(iv).WithField("stack", string(debug.Stack())).Fatal("invariant violated, exiting")
			}
			panic(r)
		}
	}()

	if err := cfg.ResolveFlags(); err != nil {
		return err
	}
	if err := wmlog.Configure(cfg.LogLevel, cfg.LogJSON); err != nil {
		return err
	}
	log := wmlog.Log

	xconn, screen, err := x11.Connect()
	if err != nil {
		return err
	}
	defer xconn.Close()

	listener, err := socket.Listen(cfg.SocketPath)
	if err != nil {
		return err
	}
	defer listener.Close()

	monitor := wm.NewMonitor(*cfg, screen.W, screen.H)
	dispatcher := wm.NewDispatcher(monitor, xconn, log)
	loop := x11.NewLoop(xconn, dispatcher, listener, log)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info("received shutdown signal")
		loop.Stop()
	}()

	log.WithFields(logrus.Fields{
		"tags":   cfg.Tags,
		"socket": cfg.SocketPath,
	}).Info("vaswmd starting")

	if err := loop.Run(); err != nil {
		return classifyExit(log, err)
	}
	return nil
}

// classifyExit applies the §7 exit policy: InvariantViolation panics
// are recovered by the caller of loop.Run's goroutine stack only if
// they escape as a panic, never as an error here; everything reaching
// this function is a ProtocolError or ConnectionLost, both of which
// are logged and turned into a non-zero exit.
func classifyExit(log *logrus.Logger, err error) error {
	switch err.(type) {
	case *wmerr.ConnectionLost:
		log.WithError(err).Fatal("X connection lost")
	case *wmerr.Protocol:
		log.WithError(err).Fatal("X protocol error")
	default:
		log.WithError(err).Fatal("fatal error in event loop")
	}
	return err
}
