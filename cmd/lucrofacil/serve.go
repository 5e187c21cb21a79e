package main

import (
	"fmt"

	"lucrofacil/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newServeCmd creates the serve command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// runServer starts the full API server
func runServer() error {
	fxApp := fx.New(
		app.App,
		fx.NopLogger,
	)

	if err := startApp(fxApp, "lucrofacil"); err != nil {
		return err
	}

	fmt.Println("Lucrofacil API started successfully")
	<-fxApp.Done()

	return stopApp(fxApp, "lucrofacil")
}
