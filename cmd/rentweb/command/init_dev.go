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

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data,
that is, everything init-prod creates plus a sample fleet of brands,
models, and available cars, so the web APIs can be exercised right
away. The database connection information are read from the config
file.`,
	RunE: initDev,
	Args: cobra.NoArgs,
}

func initDev(_ *cobra.Command, _ []string) error {
	err := initSchema(func(
		ctx context.Context, s *schema.Initializer, digest string,
	) error {
		return s.InitDev(ctx, adminEmail, digest)
	})
	if err != nil {
		return fmt.Errorf("initializing DB with dev data: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initDevCmd)
}
