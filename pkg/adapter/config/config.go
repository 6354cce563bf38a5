// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the rentweb configuration settings from a YAML
// file, overrides the secret items from environment variables, and
// builds the adapter and use case instances which depend on them. It
// is preferred to implement Config with primitive fields or other
// structs which are defined locally, not models or structs which are
// defined in lower layers, so the configuration file format can be
// kept intact while other layers change freely.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/izhdrive/rentweb/pkg/adapter/auth/jwt"
	"github.com/izhdrive/rentweb/pkg/adapter/config/settings"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/izhdrive/rentweb/pkg/core/usecase/rentalsuc"
	"gopkg.in/yaml.v3"
)

// Environment variables which override their corresponding file based
// settings. Secrets should be passed this way, so the configuration
// file can be committed without them.
const (
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvAuthSecret       = "AUTH_SECRET"
)

// Config contains all settings which are required by different parts
// of the rentweb project, such as adapters or use cases.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Auth     Auth     // bearer token settings
	Usecases Usecases // configuration settings for the use cases
}

// Database contains the database related configuration settings.
type Database struct {
	Host string // domain name or IP address of the DBMS server
	Port int    // port number of the DBMS server
	Name string // database name, like rentweb
	User string // connecting role name

	// Password may be kept out of the file and provided with the
	// DATABASE_PASSWORD environment variable instead.
	Password string `yaml:"password,omitempty"`
}

// ConnectionURL returns the database connection URL embedding the
// host, port, database name, and credentials of the d settings.
func (d Database) ConnectionURL() string {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + strconv.Itoa(d.Port),
		Path:   d.Name,
	}
	return u.String()
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the d settings.
func (d Database) ConnectionPool(ctx context.Context) (repo.Pool, error) {
	p, err := postgres.NewPool(ctx, d.ConnectionURL())
	if err != nil {
		return nil, fmt.Errorf(
			"connecting to %s:%d/%s: %w", d.Host, d.Port, d.Name, err,
		)
	}
	return p, nil
}

// Gin contains the Gin-Gonic engine configuration settings.
type Gin struct {
	Addr     string // listening address, like :8080
	Logger   *bool  // whether to register the gin.Logger() middleware
	Recovery *bool  // whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the g settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// Auth contains the bearer token configuration settings.
type Auth struct {
	// Secret signs the issued tokens. It may be kept out of the file
	// and provided with the AUTH_SECRET environment variable instead.
	Secret string `yaml:"secret,omitempty"`

	// TokenLifetime bounds the validity of issued tokens. A nil value
	// selects the default lifetime of 24 hours.
	TokenLifetime *settings.Duration `yaml:"token-lifetime"`
}

// NewTokenManager instantiates a token manager based on the a
// settings.
func (a Auth) NewTokenManager() (*jwt.Manager, error) {
	return jwt.New(a.Secret, time.Duration(*a.TokenLifetime))
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Rentals Rentals // rentals use case related settings
}

// Rentals contains the configuration settings for the rentals use
// case. Fields are defined as pointers, so it is possible to detect
// if they are or are not initialized; the use cases layer selects a
// default value for the nil ones.
type Rentals struct {
	// PaymentWindow indicates how long an unpaid rental may hold its
	// car reserved before the sweeper cancels it.
	PaymentWindow *settings.Duration `yaml:"payment-window"`
	// SweepInterval indicates how frequently the expired unpaid
	// rentals are looked up and cancelled.
	SweepInterval *settings.Duration `yaml:"sweep-interval"`
}

// NewUseCase instantiates a new rentals use case based on the r
// settings.
func (r Rentals) NewUseCase(
	p repo.Pool,
	rentals repo.Rentals,
	cars repo.Cars,
	users repo.Users,
) (*rentalsuc.UseCase, error) {
	opts := make([]rentalsuc.Option, 0, 2)
	if r.PaymentWindow != nil {
		d := time.Duration(*r.PaymentWindow)
		opts = append(opts, rentalsuc.WithPaymentWindow(d))
	}
	if r.SweepInterval != nil {
		d := time.Duration(*r.SweepInterval)
		opts = append(opts, rentalsuc.WithSweepInterval(d))
	}
	return rentalsuc.New(p, rentals, cars, users, opts...)
}

// Load reads the YAML file at path, unmarshals a Config instance out
// of it, overrides the secret settings from the environment, and
// validates the result. Extra items in the file will be ignored and
// missing items will take their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes unmarshals the data byte slice as a Config instance. See
// the Load function.
func LoadBytes(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if p, ok := os.LookupEnv(EnvDatabasePassword); ok {
		c.Database.Password = p
	}
	if s, ok := os.LookupEnv(EnvAuthSecret); ok {
		c.Auth.Secret = s
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to replace some zero values with their expected
// default values, hence, it takes a pointer receiver.
func (c *Config) ValidateAndNormalize() error {
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if p := c.Database.Port; p < 1 || p > 65535 {
		return fmt.Errorf("invalid database port: %d", p)
	}
	if c.Database.Name == "" {
		return errors.New("database name is required")
	}
	if c.Database.User == "" {
		return errors.New("database user is required")
	}
	if c.Gin.Addr == "" {
		c.Gin.Addr = ":8080"
	}
	boolAddr := func(b bool) *bool {
		return &b
	}
	if c.Gin.Logger == nil {
		c.Gin.Logger = boolAddr(true)
	}
	if c.Gin.Recovery == nil {
		c.Gin.Recovery = boolAddr(true)
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf(
			"auth secret is required (set %s)", EnvAuthSecret,
		)
	}
	if c.Auth.TokenLifetime == nil {
		d := settings.Duration(24 * time.Hour)
		c.Auth.TokenLifetime = &d
	}
	if d := *c.Auth.TokenLifetime; d <= 0 {
		return fmt.Errorf("non-positive token lifetime: %s", *d.Marshal())
	}
	if d := c.Usecases.Rentals.PaymentWindow; d != nil && *d <= 0 {
		return fmt.Errorf("non-positive payment window: %s", *d.Marshal())
	}
	if d := c.Usecases.Rentals.SweepInterval; d != nil && *d <= 0 {
		return fmt.Errorf("non-positive sweep interval: %s", *d.Marshal())
	}
	return nil
}
