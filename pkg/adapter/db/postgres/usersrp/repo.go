package usersrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// Repo implements the repo.Users interface, binding the account
// statements to a borrowed connection or transaction.
type Repo struct {
}

// New instantiates a users Repo.
func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

// Conn binds the account statements to the given connection.
func (users *Repo) Conn(c repo.Conn) repo.UsersConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return GetByID(ctx, cq.Conn, userID)
}

func (cq connQueryer) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return GetByEmail(ctx, cq.Conn, email)
}

func (cq connQueryer) List(ctx context.Context, f repo.UserFilter) ([]model.User, error) {
	return List(ctx, cq.Conn, f)
}

func (cq connQueryer) Create(ctx context.Context, u *model.User) error {
	return Create(ctx, cq.Conn, u)
}

func (cq connQueryer) Update(ctx context.Context, u *model.User) error {
	return Update(ctx, cq.Conn, u)
}

func (cq connQueryer) UpdatePassword(ctx context.Context, userID uuid.UUID, digest string) error {
	return UpdatePassword(ctx, cq.Conn, userID, digest)
}

func (cq connQueryer) UpdateRole(ctx context.Context, userID uuid.UUID, r model.Role) error {
	return UpdateRole(ctx, cq.Conn, userID, r)
}

func (cq connQueryer) Delete(ctx context.Context, userID uuid.UUID) error {
	return Delete(ctx, cq.Conn, userID)
}

func (cq connQueryer) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return ExistsByEmail(ctx, cq.Conn, email)
}

func (cq connQueryer) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return ExistsByPhone(ctx, cq.Conn, phone)
}

func (cq connQueryer) ExistsByLicense(ctx context.Context, series, number string) (bool, error) {
	return ExistsByLicense(ctx, cq.Conn, series, number)
}

func (cq connQueryer) ExistsByPassport(ctx context.Context, series, number string) (bool, error) {
	return ExistsByPassport(ctx, cq.Conn, series, number)
}

func (cq connQueryer) CountByRole(ctx context.Context, r model.Role) (int64, error) {
	return CountByRole(ctx, cq.Conn, r)
}

type txQueryer struct {
	*postgres.Tx
}

// Tx binds the account statements to the given transaction.
func (users *Repo) Tx(tx repo.Tx) repo.UsersTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return GetByID(ctx, tq.Tx, userID)
}

func (tq txQueryer) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return GetByEmail(ctx, tq.Tx, email)
}

func (tq txQueryer) List(ctx context.Context, f repo.UserFilter) ([]model.User, error) {
	return List(ctx, tq.Tx, f)
}

func (tq txQueryer) Create(ctx context.Context, u *model.User) error {
	return Create(ctx, tq.Tx, u)
}

func (tq txQueryer) Update(ctx context.Context, u *model.User) error {
	return Update(ctx, tq.Tx, u)
}

func (tq txQueryer) UpdatePassword(ctx context.Context, userID uuid.UUID, digest string) error {
	return UpdatePassword(ctx, tq.Tx, userID, digest)
}

func (tq txQueryer) UpdateRole(ctx context.Context, userID uuid.UUID, r model.Role) error {
	return UpdateRole(ctx, tq.Tx, userID, r)
}

func (tq txQueryer) Delete(ctx context.Context, userID uuid.UUID) error {
	return Delete(ctx, tq.Tx, userID)
}

func (tq txQueryer) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return ExistsByEmail(ctx, tq.Tx, email)
}

func (tq txQueryer) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return ExistsByPhone(ctx, tq.Tx, phone)
}

func (tq txQueryer) ExistsByLicense(ctx context.Context, series, number string) (bool, error) {
	return ExistsByLicense(ctx, tq.Tx, series, number)
}

func (tq txQueryer) ExistsByPassport(ctx context.Context, series, number string) (bool, error) {
	return ExistsByPassport(ctx, tq.Tx, series, number)
}

func (tq txQueryer) CountByRole(ctx context.Context, r model.Role) (int64, error) {
	return CountByRole(ctx, tq.Tx, r)
}
