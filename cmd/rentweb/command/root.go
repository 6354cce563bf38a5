// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the rentweb
// project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database initialization actions.
// The init-dev action initializes the database with the tables, an
// admin account, and a sample fleet for development, while the
// init-prod action creates the tables and the admin account only.
//
//	./rentweb [-c /path/of/main/config.yaml]         # start web server
//	./rentweb db init-dev -e admin@example.org -p <password>
//	./rentweb db init-prod -e admin@example.org -p <password>
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/izhdrive/rentweb/pkg/adapter/config"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/routes"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rentweb",
	Short: "A car rental web service",
	Long: `A car rental web service exposing the fleet catalog, the
client accounts, and the rental booking, payment, and cancellation
REST APIs. Clients browse and filter the available cars, book one for
a date range, and pay within a limited payment window; unpaid bookings
are cancelled by a background sweeper and their cars are released
back to the fleet. The back-office APIs manage the fleet, the brands
and models catalog, the accounts, and the rentals, and report the
dashboard statistics.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	var e *gin.Engine = c.Gin.NewEngine()
	rentals, err := routes.Register(e, p, c)
	if err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	go rentals.RunSweeper(ctx)
	if err = e.Run(c.Gin.Addr); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default
// value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/config.yaml"
	}
}
