// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cms-cli/internal/client"
	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/urfave/cli/v2"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	err := app.Run(ctx, os.Args)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	code := 1
	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) && exitErr.ExitCode() != 0 {
		code = exitErr.ExitCode()
	}

	stop()
	os.Exit(code)
}
