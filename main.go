package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nerdwave-nick/pokemoves/cmd"
	"golang.org/x/net/context"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
