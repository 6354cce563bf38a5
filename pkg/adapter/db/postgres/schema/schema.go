// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package schema creates the database tables of the rentweb service
// and optionally fills them with initial data. It has two usages.
// First, the rentweb db init-prod and init-dev commands run it against
// a fresh database. Second, integration tests run it against a
// disposable database container before exercising the repositories.
//
// Each Initializer instance wraps a single transaction, so a failed
// initialization leaves no partial tables behind. The caller commits
// the transaction to finalize the results.
package schema

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// ddl contains all statements which create the rentweb tables. The
// statements are idempotent, so running them against an initialized
// database is harmless.
const ddl = `
CREATE TABLE IF NOT EXISTS brands (
    bid uuid PRIMARY KEY,
    name text NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS models (
    mid uuid PRIMARY KEY,
    name text NOT NULL,
    bid uuid NOT NULL REFERENCES brands (bid),
    UNIQUE (bid, name)
);
CREATE TABLE IF NOT EXISTS cars (
    cid uuid PRIMARY KEY,
    plate text NOT NULL UNIQUE,
    year integer NOT NULL,
    color text NOT NULL,
    price_per_day bigint NOT NULL CHECK (price_per_day >= 0),
    status text NOT NULL,
    city text NOT NULL,
    bid uuid NOT NULL REFERENCES brands (bid),
    mid uuid NOT NULL REFERENCES models (mid)
);
CREATE TABLE IF NOT EXISTS users (
    uid uuid PRIMARY KEY,
    email text NOT NULL UNIQUE,
    password_hash text NOT NULL,
    last_name text NOT NULL,
    first_name text NOT NULL,
    middle_name text NOT NULL DEFAULT '',
    license_ser text NOT NULL,
    license_num text NOT NULL,
    passport_ser text NOT NULL,
    passport_num text NOT NULL,
    phone text NOT NULL UNIQUE,
    birth_date date NOT NULL,
    role text NOT NULL,
    UNIQUE (license_ser, license_num),
    UNIQUE (passport_ser, passport_num)
);
CREATE TABLE IF NOT EXISTS rentals (
    rid uuid PRIMARY KEY,
    uid uuid NOT NULL REFERENCES users (uid),
    cid uuid NOT NULL REFERENCES cars (cid),
    start_date date NOT NULL,
    end_date date NOT NULL CHECK (end_date > start_date),
    total_price bigint NOT NULL CHECK (total_price >= 0),
    status text NOT NULL,
    created_at timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS rentals_pending_created_at
    ON rentals (created_at) WHERE status = 'PENDING_PAYMENT';
`

// Initializer creates and fills the rentweb tables, wrapping a
// transaction of the target database.
type Initializer struct {
	tx repo.Tx
}

// New instantiates an Initializer, wrapping the tx transaction.
func New(tx repo.Tx) *Initializer {
	return &Initializer{tx: tx}
}

// CreateTables creates all rentweb tables which do not exist yet.
func (ini *Initializer) CreateTables(ctx context.Context) error {
	if _, err := ini.tx.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// CreateAdmin inserts a back-office account with the given email and
// bcrypt digest. The document and phone placeholders keep the unique
// constraints satisfied; operators replace them from the profile page.
func (ini *Initializer) CreateAdmin(ctx context.Context, email, digest string) error {
	_, err := ini.tx.Exec(
		ctx,
		`INSERT INTO users(uid, email, password_hash,
    last_name, first_name, middle_name,
    license_ser, license_num, passport_ser, passport_num,
    phone, birth_date, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		uuid.New(), email, digest,
		"Админ", "Админ", "",
		"0000", "000000", "0000", "000000",
		"+70000000000", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		model.RoleAdmin.String(),
	)
	if err != nil {
		return fmt.Errorf("inserting admin account: %w", err)
	}
	return nil
}

// InitProd creates the tables and the administrator account, which is
// the complete production suitable initial state. The fleet and the
// catalog start out empty.
func (ini *Initializer) InitProd(ctx context.Context, adminEmail, adminDigest string) error {
	if err := ini.CreateTables(ctx); err != nil {
		return err
	}
	return ini.CreateAdmin(ctx, adminEmail, adminDigest)
}

// InitDev creates the tables, the administrator account, and a small
// development suitable fleet with its brands and models.
func (ini *Initializer) InitDev(ctx context.Context, adminEmail, adminDigest string) error {
	if err := ini.InitProd(ctx, adminEmail, adminDigest); err != nil {
		return err
	}
	return ini.seedFleet(ctx)
}

type devCar struct {
	model string
	plate string
	year  int
	color string
	price int64
	city  string
}

func (ini *Initializer) seedFleet(ctx context.Context) error {
	fleet := map[string]struct {
		models []string
		cars   []devCar
	}{
		"Lada": {
			models: []string{"Vesta", "Granta"},
			cars: []devCar{
				{"Vesta", "А123ВС18", 2022, "white", 250000, "Ижевск"},
				{"Vesta", "В456ЕК18", 2023, "black", 270000, "Ижевск"},
				{"Granta", "Е789КМ18", 2021, "red", 180000, "Воткинск"},
			},
		},
		"Kia": {
			models: []string{"Rio"},
			cars: []devCar{
				{"Rio", "К321МН18", 2020, "grey", 320000, "Ижевск"},
			},
		},
	}
	for brand, entry := range fleet {
		bid := uuid.New()
		_, err := ini.tx.Exec(
			ctx,
			`INSERT INTO brands(bid, name) VALUES ($1, $2)`,
			bid, brand,
		)
		if err != nil {
			return fmt.Errorf("inserting brand %q: %w", brand, err)
		}
		mids := make(map[string]uuid.UUID, len(entry.models))
		for _, name := range entry.models {
			mid := uuid.New()
			mids[name] = mid
			_, err := ini.tx.Exec(
				ctx,
				`INSERT INTO models(mid, name, bid)
VALUES ($1, $2, $3)`,
				mid, name, bid,
			)
			if err != nil {
				return fmt.Errorf(
					"inserting model %q: %w", name, err,
				)
			}
		}
		for _, c := range entry.cars {
			_, err := ini.tx.Exec(
				ctx,
				`INSERT INTO cars(cid, plate, year, color,
    price_per_day, status, city, bid, mid)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				uuid.New(), c.plate, c.year, c.color,
				c.price, model.CarAvailable.String(), c.city,
				bid, mids[c.model],
			)
			if err != nil {
				return fmt.Errorf(
					"inserting car %q: %w", c.plate, err,
				)
			}
		}
	}
	return nil
}
