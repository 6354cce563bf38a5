package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/izhdrive/rentweb/pkg/core/usecase/carsuc"
)

// Per-day prices are stored in minor currency units while the filter
// sidebar operates on major units, hence the conversions below.
const minorPerMajor = 100

type rawCarFilterReq struct {
	Brand    string `form:"brand" binding:"omitempty,uuid"`
	Year     *int   `form:"year" binding:"omitempty,gte=1900"`
	Color    string `form:"color"`
	City     string `form:"city"`
	MinPrice *int64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *int64 `form:"maxPrice" binding:"omitempty,gte=0"`
	Sort     string `form:"sort" binding:"omitempty,oneof=price_asc price_desc"`
}

func dserCarFilter(c *gin.Context) *repo.CarFilter {
	req := &rawCarFilterReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	f := &repo.CarFilter{
		Year:  req.Year,
		Color: req.Color,
		City:  req.City,
	}
	if req.Brand != "" {
		bid, err := uuid.Parse(req.Brand)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "brand", "Param brand is not UUID.")
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		f.BrandID = &bid
	}
	if req.MinPrice != nil {
		p := *req.MinPrice * minorPerMajor
		f.MinPrice = &p
	}
	if req.MaxPrice != nil {
		p := *req.MaxPrice * minorPerMajor
		f.MaxPrice = &p
	}
	switch req.Sort {
	case "price_asc":
		f.Sort = repo.CarSortPriceAsc
	case "price_desc":
		f.Sort = repo.CarSortPriceDesc
	}
	return f
}

type rawSaveCarReq struct {
	Plate       string `json:"plate" binding:"required"`
	Year        int    `json:"year" binding:"required,gte=1900,lte=2100"`
	Color       string `json:"color" binding:"required"`
	PricePerDay int64  `json:"pricePerDay" binding:"required,gt=0"`
	Status      string `json:"status" binding:"required"`
	City        string `json:"city" binding:"required"`
	BrandID     string `json:"brandId" binding:"required,uuid"`
	ModelID     string `json:"modelId" binding:"required,uuid"`
}

func dserSaveCarReq(c *gin.Context, carID uuid.UUID) *model.Car {
	req := &rawSaveCarReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	status, err := model.ParseCarStatus(req.Status)
	serdser.Assert(&errs, err == nil, "status", "Unknown car status.")
	bid, err := uuid.Parse(req.BrandID)
	serdser.Assert(&errs, err == nil, "brandId", "Param brandId is not UUID.")
	mid, err := uuid.Parse(req.ModelID)
	serdser.Assert(&errs, err == nil, "modelId", "Param modelId is not UUID.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &model.Car{
		ID:           carID,
		LicensePlate: req.Plate,
		Year:         req.Year,
		Color:        req.Color,
		PricePerDay:  req.PricePerDay,
		Status:       status,
		City:         req.City,
		BrandID:      bid,
		ModelID:      mid,
	}
}

func dserCarID(c *gin.Context) (uuid.UUID, bool) {
	carID, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return carID, true
}

func serCar(car *model.Car) gin.H {
	h := gin.H{
		"id":          car.ID,
		"plate":       car.LicensePlate,
		"year":        car.Year,
		"color":       car.Color,
		"pricePerDay": car.PricePerDay,
		"status":      car.Status,
		"city":        car.City,
		"brandId":     car.BrandID,
		"modelId":     car.ModelID,
	}
	if car.Brand != nil {
		h["brand"] = car.Brand.Name
	}
	if car.Model != nil {
		h["model"] = car.Model.Name
	}
	return h
}

func serCars(cars []model.Car) []gin.H {
	hs := make([]gin.H, 0, len(cars))
	for i := range cars {
		hs = append(hs, serCar(&cars[i]))
	}
	return hs
}

func serFacets(f *carsuc.Facets) gin.H {
	brands := make([]gin.H, 0, len(f.Brands))
	for _, b := range f.Brands {
		brands = append(brands, gin.H{"id": b.ID, "name": b.Name})
	}
	return gin.H{
		"brands":   brands,
		"years":    f.Years,
		"colors":   f.Colors,
		"cities":   f.Cities,
		"minPrice": f.MinPrice,
		"maxPrice": f.MaxPrice,
	}
}
