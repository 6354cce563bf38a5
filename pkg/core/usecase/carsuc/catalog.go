// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// ListBrands returns all brands of the catalog.
func (cars *UseCase) ListBrands(
	ctx context.Context,
) (bs []model.Brand, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		bs, err = cars.catalogrp.Conn(c).ListBrands(ctx)
		return err
	})
	if err != nil {
		bs = nil
	}
	return
}

// GetBrand loads one brand.
func (cars *UseCase) GetBrand(
	ctx context.Context, brandID uuid.UUID,
) (b *model.Brand, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		b, err = cars.catalogrp.Conn(c).GetBrandByID(ctx, brandID)
		return err
	})
	if err != nil {
		b = nil
	}
	return
}

// SaveBrand creates the brand when its id is zero and updates it
// otherwise. A duplicate name surfaces as a wrapped cerr.Conflict
// error from the repository.
func (cars *UseCase) SaveBrand(
	ctx context.Context, b *model.Brand,
) error {
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.catalogrp.Conn(c)
		if b.ID == uuid.Nil {
			return q.CreateBrand(ctx, b)
		}
		return q.UpdateBrand(ctx, b)
	})
}

// DeleteBrand removes one brand after checking that no model and no
// car still references it; a referenced brand yields a wrapped
// cerr.Conflict error. The guard counts and the deletion run in one
// transaction, so a concurrently added model can not slip between
// them.
func (cars *UseCase) DeleteBrand(
	ctx context.Context, brandID uuid.UUID,
) error {
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			cq := cars.catalogrp.Tx(tx)
			n, err := cq.CountModelsByBrand(ctx, brandID)
			if err != nil {
				return err
			}
			if n == 0 {
				n, err = cars.carsrp.Tx(tx).CountByBrand(ctx, brandID)
				if err != nil {
					return err
				}
			}
			if n > 0 {
				return cerr.Conflict(ErrBrandInUse)
			}
			return cq.DeleteBrand(ctx, brandID)
		})
	})
}

// ListModels returns all models, or the models of one brand when
// brandID is non-nil.
func (cars *UseCase) ListModels(
	ctx context.Context, brandID *uuid.UUID,
) (ms []model.CarModel, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ms, err = cars.catalogrp.Conn(c).ListModels(ctx, brandID)
		return err
	})
	if err != nil {
		ms = nil
	}
	return
}

// GetModel loads one model with its brand association.
func (cars *UseCase) GetModel(
	ctx context.Context, modelID uuid.UUID,
) (m *model.CarModel, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		m, err = cars.catalogrp.Conn(c).GetModelByID(ctx, modelID)
		return err
	})
	if err != nil {
		m = nil
	}
	return
}

// SaveModel creates the model when its id is zero and updates it
// otherwise.
func (cars *UseCase) SaveModel(
	ctx context.Context, m *model.CarModel,
) error {
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := cars.catalogrp.Conn(c)
		if m.ID == uuid.Nil {
			return q.CreateModel(ctx, m)
		}
		return q.UpdateModel(ctx, m)
	})
}

// DeleteModel removes one model after checking that no car still
// references it; a referenced model yields a wrapped cerr.Conflict
// error.
func (cars *UseCase) DeleteModel(
	ctx context.Context, modelID uuid.UUID,
) error {
	return cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			n, err := cars.carsrp.Tx(tx).CountByModel(ctx, modelID)
			if err != nil {
				return err
			}
			if n > 0 {
				return cerr.Conflict(ErrModelInUse)
			}
			return cars.catalogrp.Tx(tx).DeleteModel(ctx, modelID)
		})
	})
}
