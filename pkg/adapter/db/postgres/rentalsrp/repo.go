package rentalsrp

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Repo implements the repo.Rentals interface, binding the rental
// ledger statements to a borrowed connection or transaction.
type Repo struct {
}

// New instantiates a rentals Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn binds the rental statements to the given connection.
func (rentals *Repo) Conn(c repo.Conn) repo.RentalsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) GetByID(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	return GetByID(ctx, cq.Conn, rentalID)
}

func (cq connQueryer) ListAll(ctx context.Context, f repo.RentalFilter) ([]model.Rental, error) {
	return ListAll(ctx, cq.Conn, f)
}

func (cq connQueryer) ListByClientEmail(ctx context.Context, email string) ([]model.Rental, error) {
	return ListByClientEmail(ctx, cq.Conn, email)
}

func (cq connQueryer) Create(ctx context.Context, r *model.Rental) error {
	return Create(ctx, cq.Conn, r)
}

func (cq connQueryer) UpdateStatus(ctx context.Context, rentalID uuid.UUID, s model.RentalStatus) (*model.Rental, error) {
	return UpdateStatus(ctx, cq.Conn, rentalID, s)
}

func (cq connQueryer) Delete(ctx context.Context, rentalID uuid.UUID) error {
	return Delete(ctx, cq.Conn, rentalID)
}

func (cq connQueryer) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	return ListExpiredPending(ctx, cq.Conn, cutoff)
}

func (cq connQueryer) TotalRevenue(ctx context.Context) (int64, error) {
	return TotalRevenue(ctx, cq.Conn)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx binds the rental statements to the given transaction.
func (rentals *Repo) Tx(tx repo.Tx) repo.RentalsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) GetByID(ctx context.Context, rentalID uuid.UUID) (*model.Rental, error) {
	return GetByID(ctx, tq.Tx, rentalID)
}

func (tq txQueryer) ListAll(ctx context.Context, f repo.RentalFilter) ([]model.Rental, error) {
	return ListAll(ctx, tq.Tx, f)
}

func (tq txQueryer) ListByClientEmail(ctx context.Context, email string) ([]model.Rental, error) {
	return ListByClientEmail(ctx, tq.Tx, email)
}

func (tq txQueryer) Create(ctx context.Context, r *model.Rental) error {
	return Create(ctx, tq.Tx, r)
}

func (tq txQueryer) UpdateStatus(ctx context.Context, rentalID uuid.UUID, s model.RentalStatus) (*model.Rental, error) {
	return UpdateStatus(ctx, tq.Tx, rentalID, s)
}

func (tq txQueryer) Delete(ctx context.Context, rentalID uuid.UUID) error {
	return Delete(ctx, tq.Tx, rentalID)
}

func (tq txQueryer) ListExpiredPending(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	return ListExpiredPending(ctx, tq.Tx, cutoff)
}

func (tq txQueryer) TotalRevenue(ctx context.Context) (int64, error) {
	return TotalRevenue(ctx, tq.Tx)
}
