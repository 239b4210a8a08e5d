package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &Application{}
	err := app.createRootCommand(ctx).ExecuteContext(ctx)

	app.Close()
	stop()

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
