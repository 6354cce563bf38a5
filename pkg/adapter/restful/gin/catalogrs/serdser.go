package catalogrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/model"
)

type rawBrandReq struct {
	Name string `json:"name" binding:"required"`
}

type rawModelReq struct {
	Name    string `json:"name" binding:"required"`
	BrandID string `json:"brandId" binding:"required,uuid"`
}

func dserUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, name, "Path param "+name+" is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return id, true
}

func serBrand(b *model.Brand) gin.H {
	return gin.H{"id": b.ID, "name": b.Name}
}

func serModel(m *model.CarModel) gin.H {
	h := gin.H{"id": m.ID, "name": m.Name, "brandId": m.BrandID}
	if m.Brand != nil {
		h["brand"] = m.Brand.Name
	}
	return h
}
