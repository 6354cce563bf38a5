// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/izhdrive/rentweb/internal/test/dbcontainer"
	"github.com/izhdrive/rentweb/pkg/adapter/config"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres/schema"
	"github.com/izhdrive/rentweb/pkg/adapter/hash/bcrypt"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/routes"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

const (
	adminEmail    = "admin@example.org"
	adminPassword = "Adm1n?pass"
	basePath      = "/api/rentweb/v1"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx  context.Context
	Pool *postgres.Pool
	Gin  *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	_, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	hasher, err := bcrypt.NewWithCost(4)
	igts.Require().NoError(err, "cannot instantiate test hasher")
	digest, err := hasher.Hash(adminPassword)
	igts.Require().NoError(err, "cannot hash admin password")
	err = igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				return schema.New(tx).InitDev(ctx, adminEmail, digest)
			})
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	c := &config.Config{
		Database: config.Database{Name: "rentweb", User: "rentweb"},
		Auth:     config.Auth{Secret: "integration-secret"},
	}
	igts.Require().NoError(c.ValidateAndNormalize())
	igts.Gin = c.Gin.NewEngine()
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	_, err = routes.Register(igts.Gin, igts.Pool, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

// send runs one request against the engine, serializing body as JSON
// when it is non-nil and decoding the JSON response into res when res
// is non-nil.
func (igts *IntegrationGinTestSuite) send(
	method, path, token string, body any, res any,
) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		igts.Require().NoError(err, "cannot marshal request body")
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, basePath+path, reader)
	igts.Require().NoError(err, "cannot create %s request", method)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.Require().NoError(
			json.Unmarshal(b, res), "body is not json: %s", b,
		)
	}
	return w
}

// registration returns a valid registration form for the given email,
// with unique phone and document numbers derived from the suffix.
func registration(email, suffix string) map[string]string {
	return map[string]string{
		"email":          email,
		"password":       "Str0ng?pass",
		"lastName":       "Петров",
		"firstName":      "Пётр",
		"middleName":     "Сергеевич",
		"licenseSeries":  "9418",
		"licenseNumber":  "11" + suffix,
		"passportSeries": "9418",
		"passportNumber": "22" + suffix,
		"phone":          "+7999888" + suffix,
		"birthDate":      "1995-05-20",
	}
}

// login authenticates and returns a bearer token.
func (igts *IntegrationGinTestSuite) login(email, password string) string {
	res := &struct {
		Token string
		User  struct{ Email string }
	}{}
	w := igts.send(
		http.MethodPost, "/auth/login", "",
		map[string]string{"email": email, "password": password},
		res,
	)
	igts.Require().Equal(http.StatusOK, w.Code, "login failed: %s", email)
	igts.Require().NotEmpty(res.Token, "empty token")
	igts.Equal(email, res.User.Email)
	return res.Token
}

// registerClient registers a fresh client and returns its token.
func (igts *IntegrationGinTestSuite) registerClient(
	email, suffix string,
) string {
	w := igts.send(
		http.MethodPost, "/auth/register", "",
		registration(email, suffix), nil,
	)
	igts.Require().Equal(
		http.StatusCreated, w.Code,
		"registration failed: %s", w.Body.String(),
	)
	return igts.login(email, "Str0ng?pass")
}

type carsResp struct {
	Cars []struct {
		ID          string
		Plate       string
		PricePerDay int64
		Status      string
		City        string
		Brand       string
	}
	Facets struct {
		Brands   []struct{ Name string }
		Cities   []string
		MinPrice int64
		MaxPrice int64
	}
}

func (igts *IntegrationGinTestSuite) TestAuthFlow() {
	email := "ivanova@example.org"
	token := igts.registerClient(email, "0001")

	igts.Run("duplicate identifiers are rejected", func() {
		w := igts.send(
			http.MethodPost, "/auth/register", "",
			registration(email, "0001"), nil,
		)
		igts.Equal(http.StatusConflict, w.Code)
	})
	igts.Run("wrong password is rejected", func() {
		w := igts.send(
			http.MethodPost, "/auth/login", "",
			map[string]string{
				"email":    email,
				"password": "Wr0ng?pass",
			},
			nil,
		)
		igts.Equal(http.StatusUnauthorized, w.Code)
	})
	igts.Run("profile needs a token", func() {
		w := igts.send(http.MethodGet, "/profile", "", nil, nil)
		igts.Equal(http.StatusUnauthorized, w.Code)
	})
	igts.Run("profile returns the account", func() {
		res := &struct{ Email, Role string }{}
		w := igts.send(http.MethodGet, "/profile", token, nil, res)
		igts.Equal(http.StatusOK, w.Code)
		igts.Equal(email, res.Email)
		igts.Equal("USER", res.Role)
	})
	igts.Run("weak password is rejected", func() {
		form := registration("weak@example.org", "0002")
		form["password"] = "weak"
		w := igts.send(http.MethodPost, "/auth/register", "", form, nil)
		igts.Equal(http.StatusBadRequest, w.Code)
	})
}

func (igts *IntegrationGinTestSuite) TestCatalog() {
	igts.Run("all available cars with facets", func() {
		res := &carsResp{}
		w := igts.send(http.MethodGet, "/cars", "", nil, res)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Len(res.Cars, 4, "the dev fleet holds four cars")
		igts.Len(res.Facets.Brands, 2)
		igts.Equal(int64(1800), res.Facets.MinPrice)
		igts.Equal(int64(3200), res.Facets.MaxPrice)
	})
	igts.Run("city filter", func() {
		res := &carsResp{}
		w := igts.send(
			http.MethodGet, "/cars?city=Ижевск", "", nil, res,
		)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Len(res.Cars, 3)
		for _, car := range res.Cars {
			igts.Equal("Ижевск", car.City)
		}
		// price bounds still span the whole available fleet
		igts.Equal(int64(1800), res.Facets.MinPrice)
		igts.Equal(int64(3200), res.Facets.MaxPrice)
	})
	igts.Run("price sort", func() {
		res := &carsResp{}
		w := igts.send(
			http.MethodGet, "/cars?sort=price_asc", "", nil, res,
		)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Require().Len(res.Cars, 4)
		igts.Equal("Е789КМ18", res.Cars[0].Plate, "cheapest car first")
		igts.Equal(int64(180000), res.Cars[0].PricePerDay)
	})
	igts.Run("major unit price filter", func() {
		res := &carsResp{}
		w := igts.send(
			http.MethodGet, "/cars?maxPrice=2000", "", nil, res,
		)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Require().Len(res.Cars, 1)
		igts.Equal("Е789КМ18", res.Cars[0].Plate)
	})
	igts.Run("brands and models listings", func() {
		brands := &[]struct{ ID, Name string }{}
		w := igts.send(http.MethodGet, "/brands", "", nil, brands)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Len(*brands, 2)
		models := &[]struct{ Name string }{}
		w = igts.send(http.MethodGet, "/models", "", nil, models)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Len(*models, 3)
	})
}

// carIDByPlate resolves a seeded car id through the public listing.
func (igts *IntegrationGinTestSuite) carIDByPlate(plate string) string {
	res := &carsResp{}
	w := igts.send(http.MethodGet, "/cars", "", nil, res)
	igts.Require().Equal(http.StatusOK, w.Code)
	for _, car := range res.Cars {
		if car.Plate == plate {
			return car.ID
		}
	}
	igts.Require().Failf(
		"car not found", "no available car with plate %s", plate,
	)
	return ""
}

// bookingDates returns a valid [tomorrow, tomorrow+days) range in the
// wire format.
func bookingDates(days int) (string, string) {
	tomorrow := time.Now().UTC().AddDate(0, 0, 1)
	const layout = "2006-01-02"
	return tomorrow.Format(layout),
		tomorrow.AddDate(0, 0, days).Format(layout)
}

type rentalResp struct {
	ID         string
	StartDate  string
	EndDate    string
	TotalPrice int64
	Status     string
	Car        struct{ Plate string }
}

func (igts *IntegrationGinTestSuite) TestRentalLifecycle() {
	token := igts.registerClient("renter@example.org", "0003")
	adminToken := igts.login(adminEmail, adminPassword)
	carID := igts.carIDByPlate("А123ВС18")
	start, end := bookingDates(2)

	igts.Run("booking needs a token", func() {
		w := igts.send(http.MethodPost, "/rentals", "", map[string]string{
			"carId": carID, "startDate": start, "endDate": end,
		}, nil)
		igts.Equal(http.StatusUnauthorized, w.Code)
	})

	rental := &rentalResp{}
	igts.Run("booking reserves the car", func() {
		w := igts.send(http.MethodPost, "/rentals", token, map[string]string{
			"carId": carID, "startDate": start, "endDate": end,
		}, rental)
		igts.Require().Equal(
			http.StatusCreated, w.Code,
			"booking failed: %s", w.Body.String(),
		)
		igts.Equal("PENDING_PAYMENT", rental.Status)
		igts.Equal(int64(2*250000), rental.TotalPrice)
		igts.Equal("А123ВС18", rental.Car.Plate)

		res := &carsResp{}
		w = igts.send(http.MethodGet, "/cars", "", nil, res)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Len(res.Cars, 3, "a reserved car leaves the catalog")
	})
	igts.Run("booking a reserved car conflicts", func() {
		w := igts.send(http.MethodPost, "/rentals", token, map[string]string{
			"carId": carID, "startDate": start, "endDate": end,
		}, nil)
		igts.Equal(http.StatusConflict, w.Code)
	})
	igts.Run("bad card is rejected", func() {
		w := igts.send(
			http.MethodPost, "/rentals/"+rental.ID+"/payment", token,
			map[string]string{
				"cardNumber": "42", "cardHolder": "PETR PETROV",
				"expiry": "13/28", "cvv": "12",
			},
			nil,
		)
		igts.Equal(http.StatusBadRequest, w.Code)
	})
	igts.Run("payment rents the car", func() {
		paid := &rentalResp{}
		w := igts.send(
			http.MethodPost, "/rentals/"+rental.ID+"/payment", token,
			map[string]string{
				"cardNumber": "4276180012345678",
				"cardHolder": "PETR PETROV",
				"expiry":     "12/28",
				"cvv":        "123",
			},
			paid,
		)
		igts.Require().Equal(
			http.StatusOK, w.Code,
			"payment failed: %s", w.Body.String(),
		)
		igts.Equal("PAID", paid.Status)
	})
	igts.Run("paying twice conflicts", func() {
		w := igts.send(
			http.MethodPost, "/rentals/"+rental.ID+"/payment", token,
			map[string]string{
				"cardNumber": "4276180012345678",
				"cardHolder": "PETR PETROV",
				"expiry":     "12/28",
				"cvv":        "123",
			},
			nil,
		)
		igts.Equal(http.StatusConflict, w.Code)
	})
	igts.Run("my rentals lists the booking", func() {
		res := &[]rentalResp{}
		w := igts.send(http.MethodGet, "/rentals/my", token, nil, res)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Require().Len(*res, 1)
		igts.Equal(rental.ID, (*res)[0].ID)
		igts.Equal("PAID", (*res)[0].Status)
	})
	igts.Run("admin listing filters by status", func() {
		res := &[]rentalResp{}
		w := igts.send(
			http.MethodGet, "/admin/rentals?status=PAID",
			adminToken, nil, res,
		)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Require().Len(*res, 1)
		igts.Equal(rental.ID, (*res)[0].ID)
	})
	igts.Run("admin cancellation releases the car", func() {
		w := igts.send(
			http.MethodPost, "/admin/rentals/"+rental.ID+"/cancel",
			adminToken, nil, nil,
		)
		igts.Require().Equal(http.StatusNoContent, w.Code)

		res := &carsResp{}
		w = igts.send(http.MethodGet, "/cars", "", nil, res)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Len(res.Cars, 4, "the cancelled car is available again")
	})
}

func (igts *IntegrationGinTestSuite) TestRentalOwnership() {
	owner := igts.registerClient("owner@example.org", "0004")
	other := igts.registerClient("other@example.org", "0005")
	carID := igts.carIDByPlate("К321МН18")
	start, end := bookingDates(1)

	rental := &rentalResp{}
	w := igts.send(http.MethodPost, "/rentals", owner, map[string]string{
		"carId": carID, "startDate": start, "endDate": end,
	}, rental)
	igts.Require().Equal(
		http.StatusCreated, w.Code, "booking failed: %s", w.Body.String(),
	)

	igts.Run("a stranger cannot pay", func() {
		w := igts.send(
			http.MethodPost, "/rentals/"+rental.ID+"/payment", other,
			map[string]string{
				"cardNumber": "4276180012345678",
				"cardHolder": "PETR PETROV",
				"expiry":     "12/28",
				"cvv":        "123",
			},
			nil,
		)
		igts.Equal(http.StatusForbidden, w.Code)
	})
	igts.Run("a stranger cannot cancel", func() {
		w := igts.send(
			http.MethodPost, "/rentals/"+rental.ID+"/cancel", other,
			nil, nil,
		)
		igts.Equal(http.StatusForbidden, w.Code)
	})
	igts.Run("the owner cancels", func() {
		w := igts.send(
			http.MethodPost, "/rentals/"+rental.ID+"/cancel", owner,
			nil, nil,
		)
		igts.Equal(http.StatusNoContent, w.Code)
	})
}

func (igts *IntegrationGinTestSuite) TestAdminGuard() {
	igts.Run("stats without a token", func() {
		w := igts.send(http.MethodGet, "/admin/stats", "", nil, nil)
		igts.Equal(http.StatusUnauthorized, w.Code)
	})
	igts.Run("stats with a client token", func() {
		token := igts.registerClient("guard@example.org", "0006")
		w := igts.send(http.MethodGet, "/admin/stats", token, nil, nil)
		igts.Equal(http.StatusForbidden, w.Code)
	})
	igts.Run("stats with the admin token", func() {
		adminToken := igts.login(adminEmail, adminPassword)
		res := &struct {
			TotalCars    int64
			TotalClients int64
			TotalRevenue int64
			CarsByStatus map[string]int64
		}{}
		w := igts.send(http.MethodGet, "/admin/stats", adminToken, nil, res)
		igts.Require().Equal(http.StatusOK, w.Code)
		igts.Equal(int64(4), res.TotalCars)
		igts.Positive(res.TotalClients)
	})
}
