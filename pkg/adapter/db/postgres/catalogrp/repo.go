package catalogrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Repo implements the repo.Catalog interface, binding the brand and
// model statements to a borrowed connection or transaction.
type Repo struct {
}

// New instantiates a catalog Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn binds the catalog statements to the given connection.
func (catalog *Repo) Conn(c repo.Conn) repo.CatalogConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return ListBrands(ctx, cq.Conn)
}

func (cq connQueryer) GetBrandByID(ctx context.Context, brandID uuid.UUID) (*model.Brand, error) {
	return GetBrandByID(ctx, cq.Conn, brandID)
}

func (cq connQueryer) CreateBrand(ctx context.Context, b *model.Brand) error {
	return CreateBrand(ctx, cq.Conn, b)
}

func (cq connQueryer) UpdateBrand(ctx context.Context, b *model.Brand) error {
	return UpdateBrand(ctx, cq.Conn, b)
}

func (cq connQueryer) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	return DeleteBrand(ctx, cq.Conn, brandID)
}

func (cq connQueryer) ListModels(ctx context.Context, brandID *uuid.UUID) ([]model.CarModel, error) {
	return ListModels(ctx, cq.Conn, brandID)
}

func (cq connQueryer) GetModelByID(ctx context.Context, modelID uuid.UUID) (*model.CarModel, error) {
	return GetModelByID(ctx, cq.Conn, modelID)
}

func (cq connQueryer) CreateModel(ctx context.Context, m *model.CarModel) error {
	return CreateModel(ctx, cq.Conn, m)
}

func (cq connQueryer) UpdateModel(ctx context.Context, m *model.CarModel) error {
	return UpdateModel(ctx, cq.Conn, m)
}

func (cq connQueryer) DeleteModel(ctx context.Context, modelID uuid.UUID) error {
	return DeleteModel(ctx, cq.Conn, modelID)
}

func (cq connQueryer) CountModelsByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	return CountModelsByBrand(ctx, cq.Conn, brandID)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx binds the catalog statements to the given transaction.
func (catalog *Repo) Tx(tx repo.Tx) repo.CatalogTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return ListBrands(ctx, tq.Tx)
}

func (tq txQueryer) GetBrandByID(ctx context.Context, brandID uuid.UUID) (*model.Brand, error) {
	return GetBrandByID(ctx, tq.Tx, brandID)
}

func (tq txQueryer) CreateBrand(ctx context.Context, b *model.Brand) error {
	return CreateBrand(ctx, tq.Tx, b)
}

func (tq txQueryer) UpdateBrand(ctx context.Context, b *model.Brand) error {
	return UpdateBrand(ctx, tq.Tx, b)
}

func (tq txQueryer) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	return DeleteBrand(ctx, tq.Tx, brandID)
}

func (tq txQueryer) ListModels(ctx context.Context, brandID *uuid.UUID) ([]model.CarModel, error) {
	return ListModels(ctx, tq.Tx, brandID)
}

func (tq txQueryer) GetModelByID(ctx context.Context, modelID uuid.UUID) (*model.CarModel, error) {
	return GetModelByID(ctx, tq.Tx, modelID)
}

func (tq txQueryer) CreateModel(ctx context.Context, m *model.CarModel) error {
	return CreateModel(ctx, tq.Tx, m)
}

func (tq txQueryer) UpdateModel(ctx context.Context, m *model.CarModel) error {
	return UpdateModel(ctx, tq.Tx, m)
}

func (tq txQueryer) DeleteModel(ctx context.Context, modelID uuid.UUID) error {
	return DeleteModel(ctx, tq.Tx, modelID)
}

func (tq txQueryer) CountModelsByBrand(ctx context.Context, brandID uuid.UUID) (int64, error) {
	return CountModelsByBrand(ctx, tq.Tx, brandID)
}
