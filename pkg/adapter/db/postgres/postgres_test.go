package postgres

import (
	"context"
	"testing"

	"github.com/izhdrive/rentweb/pkg/core/repo"
	"gorm.io/gorm"
)

// The command layer defers Close on the repo.Pool interface, so Pool
// must keep satisfying it.
var _ repo.Pool = (*Pool)(nil)

// gormSession compiles only while the Queryer constraint declares the
// GORM method, as the generic repository query functions rely on it.
func gormSession[Q Queryer](ctx context.Context, q Q) *gorm.DB {
	return q.GORM(ctx)
}

func TestQueryerServesBothExecutors(t *testing.T) {
	connSession := gormSession[*Conn]
	txSession := gormSession[*Tx]
	if connSession == nil || txSession == nil {
		t.Fatal("gormSession must instantiate for both executors")
	}
}
