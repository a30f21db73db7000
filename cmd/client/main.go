package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/help-me-shop/internal/adapter"
	"github.com/MKhiriev/help-me-shop/internal/client"
	"github.com/MKhiriev/help-me-shop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(
		adapter.NewHTTPServerAdapter,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
