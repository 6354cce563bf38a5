// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/izhdrive/rentweb/pkg/adapter/config"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/schema"
	"github.com/izhdrive/rentweb/pkg/adapter/hash/bcrypt"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string
)

var errAdminCreds = errors.New(
	"the --admin-email and --admin-password flags are required",
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For a fresh installation, init-prod creates the tables and the admin
account while init-dev additionally seeds a sample fleet. Both actions
are idempotent with respect to the tables and read the database
connection information from the config file.`,
}

// initSchema hashes the admin credentials and runs the ini function
// with a schema initializer, in one transaction on a fresh pool.
func initSchema(
	ini func(ctx context.Context, s *schema.Initializer, digest string) error,
) error {
	if adminEmail == "" || adminPassword == "" {
		return errAdminCreds
	}
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	digest, err := bcrypt.New().Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	return p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return conn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return ini(ctx, schema.New(tx), digest)
		})
	})
}

func init() {
	dbCmd.PersistentFlags().StringVarP(
		&adminEmail, "admin-email", "e", "", "admin account email",
	)
	dbCmd.PersistentFlags().StringVarP(
		&adminPassword, "admin-password", "p", "", "admin account password",
	)
	rootCmd.AddCommand(dbCmd)
}
