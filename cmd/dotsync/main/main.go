package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotsync/cmd/dotsync"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := dotsync.NewRootCmd()
	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err != nil {
		command := ""
		if cmd != nil {
			command = cmd.CommandPath()
		}
		verbosity, _ := rootCmd.PersistentFlags().GetCount("verbose")
		dotsync.ReportFailure(os.Stderr, command, err, verbosity > 0)
		stop()
		os.Exit(1)
	}
}
