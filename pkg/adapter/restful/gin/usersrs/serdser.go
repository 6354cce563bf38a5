package usersrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
	"github.com/izhdrive/rentweb/pkg/core/usecase/usersuc"
)

const dateLayout = "2006-01-02"

type rawProfileReq struct {
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	MiddleName  string `json:"middleName"`
	LicenseSer  string `json:"licenseSeries" binding:"required"`
	LicenseNum  string `json:"licenseNumber" binding:"required"`
	PassportSer string `json:"passportSeries" binding:"required"`
	PassportNum string `json:"passportNumber" binding:"required"`
}

func dserProfileReq(c *gin.Context) *usersuc.Profile {
	raw := &rawProfileReq{}
	if !serdser.Bind(c, raw, binding.JSON) {
		return nil
	}
	return &usersuc.Profile{
		Email:       raw.Email,
		Phone:       raw.Phone,
		LastName:    raw.LastName,
		FirstName:   raw.FirstName,
		MiddleName:  raw.MiddleName,
		LicenseSer:  raw.LicenseSer,
		LicenseNum:  raw.LicenseNum,
		PassportSer: raw.PassportSer,
		PassportNum: raw.PassportNum,
	}
}

type passwordReq struct {
	Current string `json:"currentPassword" binding:"required"`
	Next    string `json:"newPassword" binding:"required"`
}

type rawUserFilterReq struct {
	Email string `form:"email"`
	Role  string `form:"role"`
}

func dserUserFilter(c *gin.Context) *repo.UserFilter {
	raw := &rawUserFilterReq{}
	if !serdser.Bind(c, raw, binding.Query) {
		return nil
	}
	f := &repo.UserFilter{EmailLike: raw.Email}
	if raw.Role != "" {
		r, err := model.ParseRole(raw.Role)
		if err != nil {
			var errs map[string][]string
			serdser.AddErr(&errs, "role", "Unknown role.")
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		f.Role = &r
	}
	return f
}

type roleReq struct {
	Role string `json:"role" binding:"required"`
}

func dserRoleReq(c *gin.Context) (model.Role, bool) {
	req := &roleReq{}
	if !serdser.Bind(c, req, binding.JSON) {
		return "", false
	}
	r, err := model.ParseRole(req.Role)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "role", "Unknown role.")
		c.JSON(http.StatusBadRequest, errs)
		return "", false
	}
	return r, true
}

func dserUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "uid", "Path param uid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return userID, true
}

func serUser(u *model.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"email":          u.Email,
		"lastName":       u.LastName,
		"firstName":      u.FirstName,
		"middleName":     u.MiddleName,
		"licenseSeries":  u.LicenseSer,
		"licenseNumber":  u.LicenseNum,
		"passportSeries": u.PassportSer,
		"passportNumber": u.PassportNum,
		"phone":          u.Phone,
		"birthDate":      u.BirthDate.Format(dateLayout),
		"role":           u.Role,
	}
}

func serUsers(us []model.User) []gin.H {
	items := make([]gin.H, 0, len(us))
	for i := range us {
		items = append(items, serUser(&us[i]))
	}
	return items
}
