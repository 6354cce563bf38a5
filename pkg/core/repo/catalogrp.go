// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

// CatalogQueryer declares the brand and model reference-data
// statements which may run on either a connection or a transaction.
// Lookup methods fail with wrapped cerr.NotFound errors for missing
// ids and the insert/update methods surface unique-name violations as
// wrapped cerr.Conflict errors.
type CatalogQueryer interface {
	ListBrands(ctx context.Context) ([]model.Brand, error)
	GetBrandByID(ctx context.Context, brandID uuid.UUID) (*model.Brand, error)
	CreateBrand(ctx context.Context, b *model.Brand) error
	UpdateBrand(ctx context.Context, b *model.Brand) error
	DeleteBrand(ctx context.Context, brandID uuid.UUID) error

	// ListModels returns all models, or the models of one brand when
	// brandID is non-nil, with the brand association included.
	ListModels(ctx context.Context, brandID *uuid.UUID) ([]model.CarModel, error)
	GetModelByID(ctx context.Context, modelID uuid.UUID) (*model.CarModel, error)
	CreateModel(ctx context.Context, m *model.CarModel) error
	UpdateModel(ctx context.Context, m *model.CarModel) error
	DeleteModel(ctx context.Context, modelID uuid.UUID) error

	// CountModelsByBrand reports how many models reference the brand.
	CountModelsByBrand(ctx context.Context, brandID uuid.UUID) (int64, error)
}

// CatalogConnQueryer is the Conn-bound variant of CatalogQueryer.
type CatalogConnQueryer interface {
	CatalogQueryer
}

// CatalogTxQueryer is the Tx-bound variant of CatalogQueryer.
type CatalogTxQueryer interface {
	CatalogQueryer
}

// Catalog binds brand and model statements to a borrowed connection
// or transaction.
type Catalog interface {
	Conn(Conn) CatalogConnQueryer
	Tx(Tx) CatalogTxQueryer
}
