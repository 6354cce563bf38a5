package postgres

import (
	"context"

	"github.com/izhdrive/rentweb/pkg/core/repo"
	"gorm.io/gorm"
)

// Queryer constrains the generic repository query functions to the
// two GORM-backed executors of this package, so one implementation
// serves both the Conn-bound and the Tx-bound repository variants.
// The GORM method must be declared explicitly since methods of the
// union terms are not exposed to the type parameter.
type Queryer interface {
	*Conn | *Tx
	repo.Queryer

	// GORM returns a *gorm.DB session which runs its statements on
	// this connection or transaction, in the ctx context.
	GORM(ctx context.Context) *gorm.DB
}
