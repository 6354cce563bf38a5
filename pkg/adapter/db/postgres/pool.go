// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts a PostgreSQL DBMS server, accessed through
// the GORM framework over the pgx driver, to the repo.Pool, repo.Conn,
// and repo.Tx interfaces of the core layer. The per-aggregate
// repository packages (carsrp, catalogrp, usersrp, rentalsrp) build
// their queries on the GORM instances exposed by this package.
package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/izhdrive/rentweb/pkg/core/repo"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pool wraps a *gorm.DB connection pool. It is safe for concurrent
// use; each borrowed Conn pins one underlying connection.
type Pool struct {
	*gorm.DB
}

// NewPool connects to the url PostgreSQL server and verifies the
// connection by borrowing one connection before returning.
func NewPool(ctx context.Context, url string) (*Pool, error) {
	gdb, err := gorm.Open(postgres.Open(url), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open: %w", err)
	}
	gdb = gdb.Session(&gorm.Session{
		Logger: logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
				ParameterizedQueries:      true,
			}),
	})
	pool := &Pool{DB: gdb}
	err = pool.Conn(ctx, NoOpConnHandler)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("testing connection: %w", err)
	}
	return pool, nil
}

// ConnHandler is an alias of the core repo.ConnHandler type.
type ConnHandler = repo.ConnHandler

// NoOpConnHandler borrows and immediately releases a connection,
// which is useful for health checking the pool.
func NoOpConnHandler(context.Context, repo.Conn) error {
	return nil
}

// Conn borrows one connection, calls f with it, and releases it when
// f returns.
func (p *Pool) Conn(ctx context.Context, f ConnHandler) error {
	return p.DB.WithContext(ctx).Connection(func(c *gorm.DB) error {
		cc := &Conn{DB: c}
		return f(ctx, cc)
	})
}

// Close releases all connections of the pool.
func (p *Pool) Close() error {
	db, err := p.DB.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
