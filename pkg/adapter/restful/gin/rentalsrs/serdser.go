package rentalsrs

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

// dateLayout is the wire format of date-only fields.
const dateLayout = "2006-01-02"

type rawBookingReq struct {
	CarID     string `json:"carId" binding:"required,uuid"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type bookingReq struct {
	CarID      uuid.UUID
	Start, End time.Time
}

func dserBookingReq(c *gin.Context) *bookingReq {
	req := &rawBookingReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &bookingReq{}
	var errs map[string][]string
	var err error
	val.CarID, err = uuid.Parse(req.CarID)
	serdser.Assert(&errs, err == nil, "carId", "Param carId is not UUID.")
	val.Start, err = time.Parse(dateLayout, req.StartDate)
	serdser.Assert(
		&errs, err == nil, "startDate",
		"Expected a "+dateLayout+" formatted date.",
	)
	val.End, err = time.Parse(dateLayout, req.EndDate)
	serdser.Assert(
		&errs, err == nil, "endDate",
		"Expected a "+dateLayout+" formatted date.",
	)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

// The card form is checked superficially; no payment gateway is
// involved and the card data is dropped after validation.
var (
	cardNumberRe = regexp.MustCompile(`^\d{16,19}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3,4}$`)
)

type rawCardReq struct {
	Number string `json:"cardNumber" binding:"required"`
	Holder string `json:"cardHolder" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

func dserCardReq(c *gin.Context) bool {
	req := &rawCardReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return false
	}
	var errs map[string][]string
	serdser.Assert(
		&errs, cardNumberRe.MatchString(req.Number),
		"cardNumber", "Expected 16 to 19 digits.",
	)
	serdser.Assert(
		&errs, cardExpiryRe.MatchString(req.Expiry),
		"expiry", "Expected an MM/YY expiry.",
	)
	serdser.Assert(
		&errs, cardCVVRe.MatchString(req.CVV),
		"cvv", "Expected 3 or 4 digits.",
	)
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return false
	}
	return true
}

type rawRentalFilterReq struct {
	Plate  string `form:"plate"`
	Email  string `form:"email"`
	Status string `form:"status"`
	Sort   string `form:"sort" binding:"omitempty,oneof=oldest newest"`
}

func dserRentalFilter(c *gin.Context) *repo.RentalFilter {
	req := &rawRentalFilterReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	f := &repo.RentalFilter{
		PlateLike:   req.Plate,
		EmailLike:   req.Email,
		OldestFirst: req.Sort == "oldest",
	}
	if req.Status != "" {
		status, err := model.ParseRentalStatus(req.Status)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "status", "Unknown rental status.")
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		f.Status = &status
	}
	return f
}

func dserRentalID(c *gin.Context) (uuid.UUID, bool) {
	rentalID, err := uuid.Parse(c.Param("rid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "rid", "Path param rid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return rentalID, true
}

func serRental(r *model.Rental) gin.H {
	h := gin.H{
		"id":         r.ID,
		"carId":      r.CarID,
		"startDate":  r.StartDate.Format(dateLayout),
		"endDate":    r.EndDate.Format(dateLayout),
		"totalPrice": r.TotalPrice,
		"status":     r.Status,
		"createdAt":  r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.Car != nil {
		car := gin.H{"plate": r.Car.LicensePlate}
		if r.Car.Brand != nil {
			car["brand"] = r.Car.Brand.Name
		}
		if r.Car.Model != nil {
			car["model"] = r.Car.Model.Name
		}
		h["car"] = car
	}
	if r.Client != nil {
		h["client"] = gin.H{
			"id":    r.Client.ID,
			"email": r.Client.Email,
			"name":  r.Client.FullName(),
		}
	}
	return h
}

func serRentals(rs []model.Rental) []gin.H {
	hs := make([]gin.H, 0, len(rs))
	for i := range rs {
		hs = append(hs, serRental(&rs[i]))
	}
	return hs
}
