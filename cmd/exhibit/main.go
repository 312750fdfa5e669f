package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/exhibit/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/exhibit/config.toml)")
	plain := flag.Bool("plain", false, "ask with line prompts and print the placard instead of the full-screen UI")
	showLogs := flag.Int("logs", 0, "print the last N lines of the log file and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Plain: *plain, ShowLogs: *showLogs}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "exhibit: %v\n", err)
		return 1
	}
	return 0
}
