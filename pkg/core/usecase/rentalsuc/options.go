// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalsuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the rentals use case.
type Option func(uc *UseCase) error

// WithPaymentWindow option configures how long a PENDING_PAYMENT
// rental keeps its car reserved before the sweeper cancels it.
// This option may be passed to the New() function.
func WithPaymentWindow(window time.Duration) Option {
	return func(uc *UseCase) error {
		if w := int64(window); w <= 0 {
			return fmt.Errorf("payment window (%d) is not positive", w)
		}
		if uc.paymentWindow != 0 {
			return errors.New("payment window is already configured")
		}
		uc.paymentWindow = window
		return nil
	}
}

// WithSweepInterval option configures the wall-clock period between
// two expiry sweep runs. This option may be passed to the New()
// function.
func WithSweepInterval(interval time.Duration) Option {
	return func(uc *UseCase) error {
		if i := int64(interval); i <= 0 {
			return fmt.Errorf("sweep interval (%d) is not positive", i)
		}
		if uc.sweepInterval != 0 {
			return errors.New("sweep interval is already configured")
		}
		uc.sweepInterval = interval
		return nil
	}
}

// WithClock option replaces the wall clock which timestamps new
// rentals and computes the expiry cutoff, so tests can compress the
// payment window without sleeping through it.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("clock function is nil")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}
