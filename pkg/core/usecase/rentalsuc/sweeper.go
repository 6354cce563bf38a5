// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalsuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/log"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// SweepExpired cancels every PENDING_PAYMENT rental whose payment
// window has elapsed, releasing the reserved cars. The expired ids
// are collected in one read and then each rental is cancelled through
// Cancel in its own transaction, so one failing cancellation can not
// abort the reclamation of the remaining cars. A rental which
// disappears between the read and its cancellation (e.g., the client
// cancelled or paid concurrently) is skipped as a no-op.
// The number of effectively cancelled rentals is returned.
func (rentals *UseCase) SweepExpired(ctx context.Context) (int, error) {
	cutoff := rentals.now().Add(-rentals.paymentWindow)
	var ids []uuid.UUID
	err := rentals.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		var err error
		ids, err = rentals.rentalsrp.Conn(c).ListExpiredPending(ctx, cutoff)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("listing expired rentals: %w", err)
	}
	swept := 0
	for _, id := range ids {
		switch err := rentals.Cancel(ctx, id); {
		case err == nil:
			swept++
			log.Info(ctx, "expired unpaid rental cancelled", log.ID("rental", id))
		case isNotFound(err):
			// lost the race against a user-initiated cancel or payment
			log.Debug(ctx, "expired rental vanished before sweep", log.ID("rental", id))
		default:
			log.Error(ctx, "sweep failed to cancel rental", log.ID("rental", id), log.Err("error", err))
		}
	}
	return swept, nil
}

// RunSweeper blocks, running SweepExpired once per sweep interval
// until ctx is cancelled. Ticks are handled on the calling goroutine,
// so two sweeps never overlap; a tick which fires while a sweep is
// still running is simply dropped by the ticker.
func (rentals *UseCase) RunSweeper(ctx context.Context) {
	log.Info(ctx, "expiry sweeper started",
		slog.Duration("interval", rentals.sweepInterval),
		slog.Duration("payment_window", rentals.paymentWindow),
	)
	ticker := time.NewTicker(rentals.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info(ctx, "expiry sweeper stopped", log.Err("cause", ctx.Err()))
			return
		case <-ticker.C:
			if _, err := rentals.SweepExpired(ctx); err != nil {
				log.Error(ctx, "expiry sweep run failed", log.Err("error", err))
			}
		}
	}
}

func isNotFound(err error) bool {
	var ce *cerr.Error
	return errors.As(err, &ce) && ce.HTTPStatusCode == http.StatusNotFound
}
