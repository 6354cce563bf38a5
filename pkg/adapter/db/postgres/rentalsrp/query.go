// Package rentalsrp provides the PostgreSQL repository of the rental
// ledger.
package rentalsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"gorm.io/gorm"
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

type gUser struct {
	UID        uuid.UUID `gorm:"primaryKey;type:uuid;column:uid"`
	Email      string
	LastName   string
	FirstName  string
	MiddleName string
	Phone      string
	Role       string
}

func (gu *gUser) TableName() string {
	return "users"
}

type gRental struct {
	RID        uuid.UUID `gorm:"primaryKey;type:uuid;column:rid"`
	UID        uuid.UUID `gorm:"type:uuid;column:uid"`
	CID        uuid.UUID `gorm:"type:uuid;column:cid"`
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int64
	Status     string
	CreatedAt  time.Time
	Client     *gUser `gorm:"foreignKey:UID;references:UID"`
	Car        *gCar  `gorm:"foreignKey:CID;references:CID"`
}

func (gr *gRental) TableName() string {
	return "rentals"
}

func (gr *gRental) toRental() *model.Rental {
	r := &model.Rental{
		ID:         gr.RID,
		ClientID:   gr.UID,
		CarID:      gr.CID,
		StartDate:  gr.StartDate,
		EndDate:    gr.EndDate,
		TotalPrice: gr.TotalPrice,
		Status:     model.RentalStatus(gr.Status),
		CreatedAt:  gr.CreatedAt,
	}
	if gr.Client != nil {
		r.Client = &model.User{
			ID:         gr.Client.UID,
			Email:      gr.Client.Email,
			LastName:   gr.Client.LastName,
			FirstName:  gr.Client.FirstName,
			MiddleName: gr.Client.MiddleName,
			Phone:      gr.Client.Phone,
			Role:       model.Role(gr.Client.Role),
		}
	}
	if gr.Car != nil {
		c := &model.Car{
			ID:           gr.Car.CID,
			LicensePlate: gr.Car.Plate,
			Year:         gr.Car.Year,
			Color:        gr.Car.Color,
			PricePerDay:  gr.Car.PricePerDay,
			Status:       model.CarStatus(gr.Car.Status),
			City:         gr.Car.City,
			BrandID:      gr.Car.BID,
			ModelID:      gr.Car.MID,
		}
		if gr.Car.Brand != nil {
			c.Brand = &model.Brand{
				ID:   gr.Car.Brand.BID,
				Name: gr.Car.Brand.Name,
			}
		}
		if gr.Car.Model != nil {
			c.Model = &model.CarModel{
				ID:      gr.Car.Model.MID,
				Name:    gr.Car.Model.Name,
				BrandID: gr.Car.Model.BID,
			}
		}
		r.Car = c
	}
	return r
}

func withAssociations(gdb *gorm.DB) *gorm.DB {
	return gdb.Preload("Client").
		Preload("Car").Preload("Car.Brand").Preload("Car.Model")
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, rentalID uuid.UUID) (*model.Rental, error) {
	var gr gRental
	err := withAssociations(q.GORM(ctx)).
		First(&gr, "rid=?", rentalID).Error
	if err != nil {
		return nil, fmt.Errorf("selecting rental: %w", postgres.WrapError(err))
	}
	return gr.toRental(), nil
}

func ListAll[Q postgres.Queryer](ctx context.Context, q Q, f repo.RentalFilter) ([]model.Rental, error) {
	gdb := withAssociations(q.GORM(ctx)).Model(&gRental{})
	if f.PlateLike != "" {
		gdb = gdb.Joins("JOIN cars ON cars.cid = rentals.cid").
			Where("cars.plate ILIKE ?", "%"+f.PlateLike+"%")
	}
	if f.EmailLike != "" {
		gdb = gdb.Joins("JOIN users ON users.uid = rentals.uid").
			Where("users.email ILIKE ?", "%"+f.EmailLike+"%")
	}
	if f.Status != nil {
		gdb = gdb.Where("rentals.status=?", f.Status.String())
	}
	if f.OldestFirst {
		gdb = gdb.Order("rentals.created_at ASC")
	} else {
		gdb = gdb.Order("rentals.created_at DESC")
	}
	var grs []gRental
	if err := gdb.Find(&grs).Error; err != nil {
		return nil, fmt.Errorf("selecting rentals: %w", err)
	}
	rentals := make([]model.Rental, 0, len(grs))
	for i := range grs {
		rentals = append(rentals, *grs[i].toRental())
	}
	return rentals, nil
}

func ListByClientEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) ([]model.Rental, error) {
	gdb := withAssociations(q.GORM(ctx)).Model(&gRental{}).
		Joins("JOIN users ON users.uid = rentals.uid").
		Where("lower(users.email)=lower(?)", email).
		Order("rentals.created_at DESC")
	var grs []gRental
	if err := gdb.Find(&grs).Error; err != nil {
		return nil, fmt.Errorf("selecting rentals: %w", err)
	}
	rentals := make([]model.Rental, 0, len(grs))
	for i := range grs {
		rentals = append(rentals, *grs[i].toRental())
	}
	return rentals, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, r *model.Rental) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	gr := &gRental{
		RID:        r.ID,
		UID:        r.ClientID,
		CID:        r.CarID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
	if err := q.GORM(ctx).Create(gr).Error; err != nil {
		return fmt.Errorf("inserting rental: %w", postgres.WrapError(err))
	}
	return nil
}

func UpdateStatus[Q postgres.Queryer](ctx context.Context, q Q, rentalID uuid.UUID, s model.RentalStatus) (*model.Rental, error) {
	gdb := q.GORM(ctx)
	var grs []gRental
	tt := gdb.Model(&grs).Clauses(clause.Returning{}).Where(
		"rid=?", rentalID,
	).Update("status", s.String())
	if err := tt.Error; err != nil {
		return nil, fmt.Errorf("updating rental status: %w", err)
	}
	if n := len(grs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return grs[0].toRental(), nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, rentalID uuid.UUID) error {
	tt := q.GORM(ctx).Delete(&gRental{}, "rid=?", rentalID)
	if err := tt.Error; err != nil {
		return fmt.Errorf("deleting rental: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func ListExpiredPending[Q postgres.Queryer](ctx context.Context, q Q, cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := q.GORM(ctx).Model(&gRental{}).Where(
		"status=? AND created_at<?",
		model.RentalPendingPayment.String(), cutoff,
	).Order("created_at ASC").Pluck("rid", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("selecting expired rentals: %w", err)
	}
	return ids, nil
}

func TotalRevenue[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	var total int64
	err := q.GORM(ctx).Model(&gRental{}).
		Where("status=?", model.RentalPaid.String()).
		Select("coalesce(sum(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("summing revenue: %w", err)
	}
	return total, nil
}
