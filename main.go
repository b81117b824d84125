package main

import (
	"github.com/exdevutem/api-exdev/slog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Fatalf("%s", err)
	}
}
