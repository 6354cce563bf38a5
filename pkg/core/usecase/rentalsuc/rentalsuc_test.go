// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalsuc_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/internal/test/dbcontainer"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/carsrp"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/catalogrp"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/rentalsrp"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/schema"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/usersrp"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/izhdrive/rentweb/pkg/core/usecase/rentalsuc"
	"github.com/stretchr/testify/suite"
)

const pricePerDay = 200000 // minor units, i.e., 2000 rubles per day

type RentalsUseCaseTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool

	carsRepo    repo.Cars
	usersRepo   repo.Users
	rentalsRepo repo.Rentals

	brandID, modelID uuid.UUID
	clientEmail      string

	// now is the frozen instant which test use cases observe as the
	// current time.
	now time.Time
}

func TestRentalsUseCaseTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &RentalsUseCaseTestSuite{
		Ctx:  ctx,
		Pool: pool,
	})
}

func (rts *RentalsUseCaseTestSuite) SetupSuite() {
	rts.carsRepo = carsrp.New()
	rts.usersRepo = usersrp.New()
	rts.rentalsRepo = rentalsrp.New()
	rts.clientEmail = "client@example.org"
	rts.now = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	catalog := catalogrp.New()
	err := rts.Pool.Conn(rts.Ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			if err := schema.New(tx).CreateTables(ctx); err != nil {
				return err
			}
			b := &model.Brand{Name: "Lada"}
			cq := catalog.Tx(tx)
			if err := cq.CreateBrand(ctx, b); err != nil {
				return err
			}
			m := &model.CarModel{Name: "Vesta", BrandID: b.ID}
			if err := cq.CreateModel(ctx, m); err != nil {
				return err
			}
			rts.brandID, rts.modelID = b.ID, m.ID
			return rts.usersRepo.Tx(tx).Create(ctx, &model.User{
				Email:        rts.clientEmail,
				PasswordHash: "irrelevant",
				LastName:     "Иванов",
				FirstName:    "Иван",
				LicenseSer:   "9418",
				LicenseNum:   "123456",
				PassportSer:  "9418",
				PassportNum:  "654321",
				Phone:        "+79123456789",
				BirthDate:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
				Role:         model.RoleUser,
			})
		})
	})
	rts.Require().NoError(err, "failed to initialize schema contents")
}

// newCar inserts a fresh AVAILABLE car, so each test books its own car
// and the tests stay order-independent.
func (rts *RentalsUseCaseTestSuite) newCar(plate string) uuid.UUID {
	car := &model.Car{
		LicensePlate: plate,
		Year:         2022,
		Color:        "white",
		PricePerDay:  pricePerDay,
		Status:       model.CarAvailable,
		City:         "Ижевск",
		BrandID:      rts.brandID,
		ModelID:      rts.modelID,
	}
	err := rts.Pool.Conn(rts.Ctx, func(ctx context.Context, c repo.Conn) error {
		return rts.carsRepo.Conn(c).Create(ctx, car)
	})
	rts.Require().NoError(err, "failed to insert car %q", plate)
	return car.ID
}

// newUseCase builds a rentals use case observing the given instant as
// the current time.
func (rts *RentalsUseCaseTestSuite) newUseCase(
	now time.Time, opts ...rentalsuc.Option,
) *rentalsuc.UseCase {
	opts = append(opts, rentalsuc.WithClock(func() time.Time {
		return now
	}))
	uc, err := rentalsuc.New(
		rts.Pool, rts.rentalsRepo, rts.carsRepo, rts.usersRepo, opts...,
	)
	rts.Require().NoError(err, "failed to instantiate use case")
	return uc
}

// carStatus reads the persisted car status back with a raw query, so
// assertions do not depend on the repository code under test.
func (rts *RentalsUseCaseTestSuite) carStatus(carID uuid.UUID) model.CarStatus {
	var s model.CarStatus
	err := rts.Pool.Conn(rts.Ctx, func(ctx context.Context, c repo.Conn) error {
		rows, err := c.Query(
			ctx, "SELECT status FROM cars WHERE cid = ?", carID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		if !rows.Next() {
			return errors.New("car row is absent")
		}
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		s, err = model.ParseCarStatus(raw)
		return err
	})
	rts.Require().NoError(err, "failed to reload car")
	return s
}

func (rts *RentalsUseCaseTestSuite) assertHTTPStatus(
	err error, code int, msgAndArgs ...any,
) {
	var ce *cerr.Error
	rts.Require().ErrorAs(err, &ce, msgAndArgs...)
	rts.Equal(code, ce.HTTPStatusCode, msgAndArgs...)
}

func (rts *RentalsUseCaseTestSuite) tomorrow() time.Time {
	return time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)
}

func (rts *RentalsUseCaseTestSuite) TestBookReservesCarAndComputesPrice() {
	carID := rts.newCar("А001АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 3)

	r, err := uc.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.Require().NoError(err, "booking must succeed")
	rts.Equal(model.RentalPendingPayment, r.Status)
	rts.Equal(int64(3*pricePerDay), r.TotalPrice)
	rts.Equal(start, r.StartDate)
	rts.Equal(end, r.EndDate)
	rts.Require().NotNil(r.Client)
	rts.Equal(rts.clientEmail, r.Client.Email)
	rts.Equal(model.CarReserved, rts.carStatus(carID))

	// release the car, so this booking cannot leak into other tests
	rts.Require().NoError(uc.Cancel(rts.Ctx, r.ID))
}

func (rts *RentalsUseCaseTestSuite) TestBookRejectsBadDates() {
	carID := rts.newCar("А002АА18")
	uc := rts.newUseCase(rts.now)

	_, err := uc.Create(
		rts.Ctx, rts.clientEmail, carID,
		rts.now, rts.now.AddDate(0, 0, 2),
	)
	rts.ErrorIs(err, rentalsuc.ErrStartNotTomorrow)
	rts.assertHTTPStatus(err, http.StatusBadRequest, "start today")

	_, err = uc.Create(
		rts.Ctx, rts.clientEmail, carID,
		rts.tomorrow(), rts.tomorrow(),
	)
	rts.ErrorIs(err, rentalsuc.ErrEndNotAfterStart)
	rts.assertHTTPStatus(err, http.StatusBadRequest, "empty range")

	// failed validations must not touch the car
	rts.Equal(model.CarAvailable, rts.carStatus(carID))
}

func (rts *RentalsUseCaseTestSuite) TestBookMissingClientOrCar() {
	carID := rts.newCar("А003АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	_, err := uc.Create(
		rts.Ctx, "nobody@example.org", carID, start, end,
	)
	rts.assertHTTPStatus(err, http.StatusNotFound, "unknown client")

	_, err = uc.Create(
		rts.Ctx, rts.clientEmail, uuid.New(), start, end,
	)
	rts.assertHTTPStatus(err, http.StatusNotFound, "unknown car")

	rts.Equal(model.CarAvailable, rts.carStatus(carID))
}

func (rts *RentalsUseCaseTestSuite) TestBookConflictsOnReservedCar() {
	carID := rts.newCar("А004АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	r, err := uc.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.Require().NoError(err, "first booking must succeed")

	_, err = uc.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.assertHTTPStatus(err, http.StatusConflict, "second booking")
	rts.Equal(model.CarReserved, rts.carStatus(carID))

	// release the car, so this booking cannot leak into other tests
	rts.Require().NoError(uc.Cancel(rts.Ctx, r.ID))
}

func (rts *RentalsUseCaseTestSuite) TestConcurrentBookingsOneWinner() {
	carID := rts.newCar("А011АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	var wg sync.WaitGroup
	rentals := make([]*model.Rental, 2)
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rentals[i], errs[i] = uc.Create(
				rts.Ctx, rts.clientEmail, carID, start, end,
			)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i, err := range errs {
		if err == nil {
			winners++
			// release the car, so this booking cannot leak into
			// other tests
			rts.Require().NoError(uc.Cancel(rts.Ctx, rentals[i].ID))
			continue
		}
		rts.assertHTTPStatus(err, http.StatusConflict, "losing booking")
	}
	rts.Equal(1, winners, "exactly one booking may win the car")
	rts.Equal(model.CarAvailable, rts.carStatus(carID))
}

func (rts *RentalsUseCaseTestSuite) TestConfirmPaymentRentsCar() {
	carID := rts.newCar("А005АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 2)

	r, err := uc.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.Require().NoError(err, "booking must succeed")

	paid, err := uc.ConfirmPayment(rts.Ctx, r.ID)
	rts.Require().NoError(err, "payment must succeed")
	rts.Equal(model.RentalPaid, paid.Status)
	rts.Equal(model.CarRented, rts.carStatus(carID))

	_, err = uc.ConfirmPayment(rts.Ctx, r.ID)
	rts.ErrorIs(err, rentalsuc.ErrNotAwaitingPayment)
	rts.assertHTTPStatus(err, http.StatusConflict, "double payment")

	_, err = uc.ConfirmPayment(rts.Ctx, uuid.New())
	rts.assertHTTPStatus(err, http.StatusNotFound, "missing rental")
}

func (rts *RentalsUseCaseTestSuite) TestCancelPendingDeletesRental() {
	carID := rts.newCar("А006АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	r, err := uc.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.Require().NoError(err, "booking must succeed")

	err = uc.Cancel(rts.Ctx, r.ID)
	rts.Require().NoError(err, "cancellation must succeed")
	rts.Equal(model.CarAvailable, rts.carStatus(carID))

	// an unpaid cancellation leaves no rental row behind
	_, err = uc.GetByID(rts.Ctx, r.ID)
	rts.assertHTTPStatus(err, http.StatusNotFound, "deleted rental")
}

func (rts *RentalsUseCaseTestSuite) TestCancelPaidKeepsCancelledRow() {
	carID := rts.newCar("А007АА18")
	uc := rts.newUseCase(rts.now)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	r, err := uc.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.Require().NoError(err, "booking must succeed")
	_, err = uc.ConfirmPayment(rts.Ctx, r.ID)
	rts.Require().NoError(err, "payment must succeed")

	err = uc.Cancel(rts.Ctx, r.ID)
	rts.Require().NoError(err, "cancellation must succeed")
	rts.Equal(model.CarAvailable, rts.carStatus(carID))

	kept, err := uc.GetByID(rts.Ctx, r.ID)
	rts.Require().NoError(err, "paid rental row must survive")
	rts.Equal(model.RentalCancelled, kept.Status)
}

func (rts *RentalsUseCaseTestSuite) TestSweepExpiredReleasesCars() {
	carID1 := rts.newCar("А008АА18")
	carID2 := rts.newCar("А009АА18")
	window := 5 * time.Minute
	booker := rts.newUseCase(
		rts.now, rentalsuc.WithPaymentWindow(window),
	)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	r1, err := booker.Create(rts.Ctx, rts.clientEmail, carID1, start, end)
	rts.Require().NoError(err, "first booking must succeed")
	r2, err := booker.Create(rts.Ctx, rts.clientEmail, carID2, start, end)
	rts.Require().NoError(err, "second booking must succeed")

	// the same instant is within the window, nothing may be swept
	swept, err := booker.SweepExpired(rts.Ctx)
	rts.Require().NoError(err)
	rts.Zero(swept, "fresh bookings must survive the sweep")

	sweeper := rts.newUseCase(
		rts.now.Add(window+time.Second),
		rentalsuc.WithPaymentWindow(window),
	)
	swept, err = sweeper.SweepExpired(rts.Ctx)
	rts.Require().NoError(err)
	rts.Equal(2, swept, "both expired bookings must be swept")
	rts.Equal(model.CarAvailable, rts.carStatus(carID1))
	rts.Equal(model.CarAvailable, rts.carStatus(carID2))

	// a second pass finds nothing left to cancel
	swept, err = sweeper.SweepExpired(rts.Ctx)
	rts.Require().NoError(err)
	rts.Zero(swept, "repeated sweeps must find nothing")

	_, err = booker.GetByID(rts.Ctx, r1.ID)
	rts.assertHTTPStatus(err, http.StatusNotFound, "swept rental 1")
	_, err = booker.GetByID(rts.Ctx, r2.ID)
	rts.assertHTTPStatus(err, http.StatusNotFound, "swept rental 2")
}

func (rts *RentalsUseCaseTestSuite) TestSweepSkipsPaidRentals() {
	carID := rts.newCar("А010АА18")
	window := 5 * time.Minute
	booker := rts.newUseCase(
		rts.now, rentalsuc.WithPaymentWindow(window),
	)
	start, end := rts.tomorrow(), rts.tomorrow().AddDate(0, 0, 1)

	r, err := booker.Create(rts.Ctx, rts.clientEmail, carID, start, end)
	rts.Require().NoError(err, "booking must succeed")
	_, err = booker.ConfirmPayment(rts.Ctx, r.ID)
	rts.Require().NoError(err, "payment must succeed")

	sweeper := rts.newUseCase(
		rts.now.Add(window+time.Second),
		rentalsuc.WithPaymentWindow(window),
	)
	swept, err := sweeper.SweepExpired(rts.Ctx)
	rts.Require().NoError(err)
	rts.Zero(swept, "paid rentals must not be swept")
	rts.Equal(model.CarRented, rts.carStatus(carID))
}
