package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vault-reconcile/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	err := newRootCmd(build).ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
