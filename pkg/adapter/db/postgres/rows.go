package postgres

import (
	"database/sql"
	"fmt"
)

// rowsAdapter exposes a *sql.Rows cursor through the repo.Rows
// interface.
type rowsAdapter struct {
	*sql.Rows
}

func (ra rowsAdapter) Close() {
	// a failed close surfaces through the Err() method
	_ = ra.Rows.Close()
}

func (ra rowsAdapter) Values() ([]any, error) {
	names, err := ra.Columns()
	if err != nil {
		return nil, fmt.Errorf("column-names: %w", err)
	}
	vals := make([]any, len(names))
	ptrs := make([]any, len(names))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := ra.Scan(ptrs...); err != nil {
		return nil, err
	}
	return vals, nil
}
