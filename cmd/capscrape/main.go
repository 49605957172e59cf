package main

import (
	"log/slog"
	"os"
	"time"

	"capscrape/cmd/capscrape/commands"
	"capscrape/lib/serviceutil"

	"github.com/lmittmann/tint"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	commands.ExecuteContext(serviceutil.SignalContext())
}
