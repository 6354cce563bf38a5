package carsrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Repo implements the repo.Cars interface, binding the car fleet
// statements to a borrowed connection or transaction.
type Repo struct {
}

// New instantiates a cars Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn binds the car statements to the given connection.
func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) GetByID(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return GetByID(ctx, cq.Conn, carID)
}

func (cq connQueryer) List(ctx context.Context, f repo.CarFilter) ([]model.Car, error) {
	return List(ctx, cq.Conn, f)
}

func (cq connQueryer) Create(ctx context.Context, c *model.Car) error {
	return Create(ctx, cq.Conn, c)
}

func (cq connQueryer) Update(ctx context.Context, c *model.Car) error {
	return Update(ctx, cq.Conn, c)
}

func (cq connQueryer) Delete(ctx context.Context, carID uuid.UUID) error {
	return Delete(ctx, cq.Conn, carID)
}

func (cq connQueryer) Reserve(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return Reserve(ctx, cq.Conn, carID)
}

func (cq connQueryer) SetStatus(ctx context.Context, carID uuid.UUID, s model.CarStatus) (*model.Car, error) {
	return SetStatus(ctx, cq.Conn, carID, s)
}

func (cq connQueryer) CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	return CountByBrand(ctx, cq.Conn, brandID)
}

func (cq connQueryer) CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error) {
	return CountByModel(ctx, cq.Conn, modelID)
}

func (cq connQueryer) CountByStatus(ctx context.Context) (map[model.CarStatus]int64, error) {
	return CountByStatus(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx binds the car statements to the given transaction.
func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) GetByID(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return GetByID(ctx, tq.Tx, carID)
}

func (tq txQueryer) List(ctx context.Context, f repo.CarFilter) ([]model.Car, error) {
	return List(ctx, tq.Tx, f)
}

func (tq txQueryer) Create(ctx context.Context, c *model.Car) error {
	return Create(ctx, tq.Tx, c)
}

func (tq txQueryer) Update(ctx context.Context, c *model.Car) error {
	return Update(ctx, tq.Tx, c)
}

func (tq txQueryer) Delete(ctx context.Context, carID uuid.UUID) error {
	return Delete(ctx, tq.Tx, carID)
}

func (tq txQueryer) Reserve(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return Reserve(ctx, tq.Tx, carID)
}

func (tq txQueryer) SetStatus(ctx context.Context, carID uuid.UUID, s model.CarStatus) (*model.Car, error) {
	return SetStatus(ctx, tq.Tx, carID, s)
}

func (tq txQueryer) CountByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	return CountByBrand(ctx, tq.Tx, brandID)
}

func (tq txQueryer) CountByModel(ctx context.Context, modelID uuid.UUID) (int64, error) {
	return CountByModel(ctx, tq.Tx, modelID)
}

func (tq txQueryer) CountByStatus(ctx context.Context) (map[model.CarStatus]int64, error) {
	return CountByStatus(ctx, tq.Tx)
}
