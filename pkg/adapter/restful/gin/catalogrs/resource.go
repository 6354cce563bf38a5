// Copyright (c) 2025 IzhDrive
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package catalogrs realizes the catalog resource, adapting the brand
// and model reference-data REST APIs to the cars use case.
package catalogrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case
// instance with the public REST APIs including:
//  1. GET request to /api/rentweb/v1/brands
//     in order to list the brands of the catalog.
//  2. GET request to /api/rentweb/v1/models[?brand=:bid]
//     in order to list the models, optionally of one brand.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.GET("brands", rs.ListBrands)
	r.GET("models", rs.ListModels)
}

// RegisterAdmin instantiates a resource adapting the cars use case
// instance with the back-office REST APIs for the brand and model
// CRUD operations. The r group is expected to be guarded by the
// ADMIN role.
func RegisterAdmin(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.POST("brands", rs.CreateBrand)
	r.PUT("brands/:bid", rs.UpdateBrand)
	r.DELETE("brands/:bid", rs.DeleteBrand)
	r.POST("models", rs.CreateModel)
	r.PUT("models/:mid", rs.UpdateModel)
	r.DELETE("models/:mid", rs.DeleteModel)
}

func (rs *resource) ListBrands(c *gin.Context) {
	bs, err := rs.cars.ListBrands(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	hs := make([]gin.H, 0, len(bs))
	for i := range bs {
		hs = append(hs, serBrand(&bs[i]))
	}
	c.JSON(http.StatusOK, hs)
}

func (rs *resource) ListModels(c *gin.Context) {
	var brandID *uuid.UUID
	if b := c.Query("brand"); b != "" {
		bid, err := uuid.Parse(b)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "brand", "Param brand is not UUID.")
			c.JSON(http.StatusBadRequest, errs)
			return
		}
		brandID = &bid
	}
	ms, err := rs.cars.ListModels(c, brandID)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	hs := make([]gin.H, 0, len(ms))
	for i := range ms {
		hs = append(hs, serModel(&ms[i]))
	}
	c.JSON(http.StatusOK, hs)
}

func (rs *resource) CreateBrand(c *gin.Context) {
	req := &rawBrandReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	b := &model.Brand{Name: req.Name}
	if err := rs.cars.SaveBrand(c, b); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serBrand(b))
}

func (rs *resource) UpdateBrand(c *gin.Context) {
	brandID, ok := dserUUIDParam(c, "bid")
	if !ok {
		return
	}
	req := &rawBrandReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	b := &model.Brand{ID: brandID, Name: req.Name}
	if err := rs.cars.SaveBrand(c, b); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serBrand(b))
}

func (rs *resource) DeleteBrand(c *gin.Context) {
	brandID, ok := dserUUIDParam(c, "bid")
	if !ok {
		return
	}
	if err := rs.cars.DeleteBrand(c, brandID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) CreateModel(c *gin.Context) {
	req := &rawModelReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	bid, err := uuid.Parse(req.BrandID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "brandId", "Param brandId is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	m := &model.CarModel{Name: req.Name, BrandID: bid}
	if err := rs.cars.SaveModel(c, m); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, serModel(m))
}

func (rs *resource) UpdateModel(c *gin.Context) {
	modelID, ok := dserUUIDParam(c, "mid")
	if !ok {
		return
	}
	req := &rawModelReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return
	}
	bid, err := uuid.Parse(req.BrandID)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "brandId", "Param brandId is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	m := &model.CarModel{ID: modelID, Name: req.Name, BrandID: bid}
	if err := rs.cars.SaveModel(c, m); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serModel(m))
}

func (rs *resource) DeleteModel(c *gin.Context) {
	modelID, ok := dserUUIDParam(c, "mid")
	if !ok {
		return
	}
	if err := rs.cars.DeleteModel(c, modelID); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
