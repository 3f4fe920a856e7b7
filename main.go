package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/satriahrh/paxos/cli"
	"github.com/satriahrh/paxos/utils/log"
	"github.com/subosito/gotenv"
)

func main() {
	gotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	log.Sync()

	if err != nil {
		os.Exit(1)
	}
}
