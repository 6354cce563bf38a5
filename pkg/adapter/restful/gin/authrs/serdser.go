package authrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/izhdrive/rentweb/pkg/adapter/restful/gin/serdser"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/usecase/usersuc"
)

// dateLayout is the wire format of date-only fields.
const dateLayout = "2006-01-02"

type rawRegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	MiddleName  string `json:"middleName"`
	LicenseSer  string `json:"licenseSeries" binding:"required"`
	LicenseNum  string `json:"licenseNumber" binding:"required"`
	PassportSer string `json:"passportSeries" binding:"required"`
	PassportNum string `json:"passportNumber" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	BirthDate   string `json:"birthDate" binding:"required"`
}

func (rs *resource) dserRegisterReq(c *gin.Context) *usersuc.Registration {
	req := &rawRegisterReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "birthDate",
			"Expected a "+dateLayout+" formatted date.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &usersuc.Registration{
		Email:       req.Email,
		Password:    req.Password,
		LastName:    req.LastName,
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LicenseSer:  req.LicenseSer,
		LicenseNum:  req.LicenseNum,
		PassportSer: req.PassportSer,
		PassportNum: req.PassportNum,
		Phone:       req.Phone,
		BirthDate:   birthDate,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// serUser serializes an account without its password hash.
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
