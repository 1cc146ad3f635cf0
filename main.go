package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}
	defer server.logger.Sync()

	err = server.Start(ctx)
	if err != nil {
		log.Fatal(fmt.Sprintf("could not run server: %s", err))
	}
}
