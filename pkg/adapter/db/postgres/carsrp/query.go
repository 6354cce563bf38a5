// Package carsrp provides the PostgreSQL repository of the car fleet.
package carsrp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"gorm.io/gorm/clause"
)

type gBrand struct {
	BID  uuid.UUID `gorm:"primaryKey;type:uuid;column:bid"`
	Name string
}

func (gb *gBrand) TableName() string {
	return "brands"
}

type gModel struct {
	MID  uuid.UUID `gorm:"primaryKey;type:uuid;column:mid"`
	Name string
	BID  uuid.UUID `gorm:"type:uuid;column:bid"`
}

func (gm *gModel) TableName() string {
	return "models"
}

type gCar struct {
	CID         uuid.UUID `gorm:"primaryKey;type:uuid;column:cid"`
	Plate       string
	Year        int
	Color       string
	PricePerDay int64
	Status      string
	City        string
	BID         uuid.UUID `gorm:"type:uuid;column:bid"`
	MID         uuid.UUID `gorm:"type:uuid;column:mid"`
	Brand       *gBrand   `gorm:"foreignKey:BID;references:BID"`
	Model       *gModel   `gorm:"foreignKey:MID;references:MID"`
}

func (gc *gCar) TableName() string {
	return "cars"
}

func (gc *gCar) toCar() *model.Car {
	c := &model.Car{
		ID:           gc.CID,
		LicensePlate: gc.Plate,
		Year:         gc.Year,
		Color:        gc.Color,
		PricePerDay:  gc.PricePerDay,
		Status:       model.CarStatus(gc.Status),
		City:         gc.City,
		BrandID:      gc.BID,
		ModelID:      gc.MID,
	}
	if gc.Brand != nil {
		c.Brand = &model.Brand{ID: gc.Brand.BID, Name: gc.Brand.Name}
	}
	if gc.Model != nil {
		c.Model = &model.CarModel{
			ID:      gc.Model.MID,
			Name:    gc.Model.Name,
			BrandID: gc.Model.BID,
		}
	}
	return c
}

func fromCar(c *model.Car) *gCar {
	return &gCar{
		CID:         c.ID,
		Plate:       c.LicensePlate,
		Year:        c.Year,
		Color:       c.Color,
		PricePerDay: c.PricePerDay,
		Status:      c.Status.String(),
		City:        c.City,
		BID:         c.BrandID,
		MID:         c.ModelID,
	}
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) (*model.Car, error) {
	gdb := q.GORM(ctx)
	var gc gCar
	err := gdb.Preload("Brand").Preload("Model").
		First(&gc, "cid=?", carID).Error
	if err != nil {
		return nil, fmt.Errorf("selecting car: %w", postgres.WrapError(err))
	}
	return gc.toCar(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q, f repo.CarFilter) ([]model.Car, error) {
	gdb := q.GORM(ctx).Preload("Brand").Preload("Model")
	if f.Status != nil {
		gdb = gdb.Where("status=?", f.Status.String())
	}
	if f.BrandID != nil {
		gdb = gdb.Where("bid=?", *f.BrandID)
	}
	if f.Year != nil {
		gdb = gdb.Where("year=?", *f.Year)
	}
	if f.Color != "" {
		gdb = gdb.Where("lower(color)=lower(?)", f.Color)
	}
	if f.City != "" {
		gdb = gdb.Where("lower(city)=lower(?)", f.City)
	}
	if f.MinPrice != nil {
		gdb = gdb.Where("price_per_day>=?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		gdb = gdb.Where("price_per_day<=?", *f.MaxPrice)
	}
	switch f.Sort {
	case repo.CarSortPriceAsc:
		gdb = gdb.Order("price_per_day ASC, plate ASC")
	case repo.CarSortPriceDesc:
		gdb = gdb.Order("price_per_day DESC, plate ASC")
	default:
		gdb = gdb.Order("plate ASC")
	}
	var gcs []gCar
	if err := gdb.Find(&gcs).Error; err != nil {
		return nil, fmt.Errorf("selecting cars: %w", err)
	}
	cars := make([]model.Car, 0, len(gcs))
	for i := range gcs {
		cars = append(cars, *gcs[i].toCar())
	}
	return cars, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, c *model.Car) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	gc := fromCar(c)
	if err := q.GORM(ctx).Create(gc).Error; err != nil {
		return fmt.Errorf("inserting car: %w", postgres.WrapError(err))
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, c *model.Car) error {
	gdb := q.GORM(ctx)
	tt := gdb.Model(&gCar{}).Where("cid=?", c.ID).Select(
		"plate", "year", "color", "price_per_day", "status",
		"city", "bid", "mid",
	).Updates(fromCar(c))
	if err := tt.Error; err != nil {
		return fmt.Errorf("updating car: %w", postgres.WrapError(err))
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) error {
	tt := q.GORM(ctx).Delete(&gCar{}, "cid=?", carID)
	if err := tt.Error; err != nil {
		return fmt.Errorf("deleting car: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

// Reserve updates the status with an AVAILABLE precondition, so of
// two concurrent reservations exactly one observes the returned row.
func Reserve[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) (*model.Car, error) {
	gdb := q.GORM(ctx)
	var gcs []gCar
	tt := gdb.Model(&gcs).Clauses(clause.Returning{}).Where(
		"cid=? AND status=?", carID, model.CarAvailable.String(),
	).Update("status", model.CarReserved.String())
	if err := tt.Error; err != nil {
		return nil, fmt.Errorf("reserving car: %w", err)
	}
	if len(gcs) == 1 {
		return gcs[0].toCar(), nil
	}
	// No row matched. Re-read to tell a missing car apart from one
	// which is not available anymore.
	gc, err := GetByID(ctx, q, carID)
	if err != nil {
		return nil, err
	}
	return nil, cerr.Conflict(
		fmt.Errorf("car is %s", gc.Status),
	)
}

func SetStatus[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID, s model.CarStatus) (*model.Car, error) {
	gdb := q.GORM(ctx)
	var gcs []gCar
	tt := gdb.Model(&gcs).Clauses(clause.Returning{}).Where(
		"cid=?", carID,
	).Update("status", s.String())
	if err := tt.Error; err != nil {
		return nil, fmt.Errorf("updating car status: %w", err)
	}
	if n := len(gcs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gcs[0].toCar(), nil
}

func CountByBrand[Q postgres.Queryer](ctx context.Context, q Q, brandID uuid.UUID) (int64, error) {
	var n int64
	err := q.GORM(ctx).Model(&gCar{}).Where("bid=?", brandID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting cars: %w", err)
	}
	return n, nil
}

func CountByModel[Q postgres.Queryer](ctx context.Context, q Q, modelID uuid.UUID) (int64, error) {
	var n int64
	err := q.GORM(ctx).Model(&gCar{}).Where("mid=?", modelID).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting cars: %w", err)
	}
	return n, nil
}

func CountByStatus[Q postgres.Queryer](ctx context.Context, q Q) (map[model.CarStatus]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := q.GORM(ctx).Model(&gCar{}).
		Select("status, count(*) AS total").
		Group("status").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("counting cars: %w", err)
	}
	counts := make(map[model.CarStatus]int64, len(rows))
	for _, r := range rows {
		counts[model.CarStatus(r.Status)] = r.Total
	}
	return counts, nil
}
