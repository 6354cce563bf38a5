// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/schema"
	"github.com/spf13/cobra"
)

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data,
that is, the tables and a single admin account with the given email
and password. The database connection information are read from the
config file. No changes will be made to the config file itself.`,
	RunE: initProd,
	Args: cobra.NoArgs,
}

func initProd(_ *cobra.Command, _ []string) error {
	err := initSchema(func(
		ctx context.Context, s *schema.Initializer, digest string,
	) error {
		return s.InitProd(ctx, adminEmail, digest)
	})
	if err != nil {
		return fmt.Errorf("initializing DB with prod data: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initProdCmd)
}
