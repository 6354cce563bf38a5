// Package catalogrp provides the PostgreSQL repository of the brand
// and model reference data.
package catalogrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

type gBrand struct {
	BID  uuid.UUID `gorm:"primaryKey;type:uuid;column:bid"`
	Name string
}

func (gb *gBrand) TableName() string {
	return "brands"
}

func (gb *gBrand) toBrand() *model.Brand {
	return &model.Brand{ID: gb.BID, Name: gb.Name}
}

type gModel struct {
	MID   uuid.UUID `gorm:"primaryKey;type:uuid;column:mid"`
	Name  string
	BID   uuid.UUID `gorm:"type:uuid;column:bid"`
	Brand *gBrand   `gorm:"foreignKey:BID;references:BID"`
}

func (gm *gModel) TableName() string {
	return "models"
}

func (gm *gModel) toCarModel() *model.CarModel {
	m := &model.CarModel{ID: gm.MID, Name: gm.Name, BrandID: gm.BID}
	if gm.Brand != nil {
		m.Brand = gm.Brand.toBrand()
	}
	return m
}

func ListBrands[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Brand, error) {
	var gbs []gBrand
	err := q.GORM(ctx).Order("name ASC").Find(&gbs).Error
	if err != nil {
		return nil, fmt.Errorf("selecting brands: %w", err)
	}
	brands := make([]model.Brand, 0, len(gbs))
	for i := range gbs {
		brands = append(brands, *gbs[i].toBrand())
	}
	return brands, nil
}

func GetBrandByID[Q postgres.Queryer](ctx context.Context, q Q, brandID uuid.UUID) (*model.Brand, error) {
	var gb gBrand
	err := q.GORM(ctx).First(&gb, "bid=?", brandID).Error
	if err != nil {
		return nil, fmt.Errorf("selecting brand: %w", postgres.WrapError(err))
	}
	return gb.toBrand(), nil
}

func CreateBrand[Q postgres.Queryer](ctx context.Context, q Q, b *model.Brand) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	gb := &gBrand{BID: b.ID, Name: b.Name}
	if err := q.GORM(ctx).Create(gb).Error; err != nil {
		return fmt.Errorf("inserting brand: %w", postgres.WrapError(err))
	}
	return nil
}

func UpdateBrand[Q postgres.Queryer](ctx context.Context, q Q, b *model.Brand) error {
	tt := q.GORM(ctx).Model(&gBrand{}).Where("bid=?", b.ID).
		Update("name", b.Name)
	if err := tt.Error; err != nil {
		return fmt.Errorf("updating brand: %w", postgres.WrapError(err))
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func DeleteBrand[Q postgres.Queryer](ctx context.Context, q Q, brandID uuid.UUID) error {
	tt := q.GORM(ctx).Delete(&gBrand{}, "bid=?", brandID)
	if err := tt.Error; err != nil {
		return fmt.Errorf("deleting brand: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func ListModels[Q postgres.Queryer](ctx context.Context, q Q, brandID *uuid.UUID) ([]model.CarModel, error) {
	gdb := q.GORM(ctx).Preload("Brand").Order("name ASC")
	if brandID != nil {
		gdb = gdb.Where("bid=?", *brandID)
	}
	var gms []gModel
	if err := gdb.Find(&gms).Error; err != nil {
		return nil, fmt.Errorf("selecting models: %w", err)
	}
	models := make([]model.CarModel, 0, len(gms))
	for i := range gms {
		models = append(models, *gms[i].toCarModel())
	}
	return models, nil
}

func GetModelByID[Q postgres.Queryer](ctx context.Context, q Q, modelID uuid.UUID) (*model.CarModel, error) {
	var gm gModel
	err := q.GORM(ctx).Preload("Brand").First(&gm, "mid=?", modelID).Error
	if err != nil {
		return nil, fmt.Errorf("selecting model: %w", postgres.WrapError(err))
	}
	return gm.toCarModel(), nil
}

func CreateModel[Q postgres.Queryer](ctx context.Context, q Q, m *model.CarModel) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	gm := &gModel{MID: m.ID, Name: m.Name, BID: m.BrandID}
	if err := q.GORM(ctx).Create(gm).Error; err != nil {
		return fmt.Errorf("inserting model: %w", postgres.WrapError(err))
	}
	return nil
}

func UpdateModel[Q postgres.Queryer](ctx context.Context, q Q, m *model.CarModel) error {
	tt := q.GORM(ctx).Model(&gModel{}).Where("mid=?", m.ID).Select(
		"name", "bid",
	).Updates(&gModel{Name: m.Name, BID: m.BrandID})
	if err := tt.Error; err != nil {
		return fmt.Errorf("updating model: %w", postgres.WrapError(err))
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func DeleteModel[Q postgres.Queryer](ctx context.Context, q Q, modelID uuid.UUID) error {
	tt := q.GORM(ctx).Delete(&gModel{}, "mid=?", modelID)
	if err := tt.Error; err != nil {
		return fmt.Errorf("deleting model: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func CountModelsByBrand[Q postgres.Queryer](ctx context.Context, q Q, brandID uuid.UUID) (int64, error) {
	var n int64
	err := q.GORM(ctx).Model(&gModel{}).Where("bid=?", brandID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting models: %w", err)
	}
	return n, nil
}
