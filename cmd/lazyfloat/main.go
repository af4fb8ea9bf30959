package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/lazyfloat/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	theme := flag.String("theme", "", "color theme: Nightfox, Kanagawa or Slate (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Theme: *theme}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lazyfloat: %v\n", err)
		return 1
	}
	return 0
}
