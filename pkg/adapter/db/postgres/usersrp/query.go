// Package usersrp provides the PostgreSQL repository of the user
// accounts.
package usersrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/izhdrive/rentweb/pkg/adapter/db/postgres"
	"github.com/izhdrive/rentweb/pkg/core/cerr"
	"github.com/izhdrive/rentweb/pkg/core/model"
	"github.com/izhdrive/rentweb/pkg/core/repo"
)

type gUser struct {
	UID          uuid.UUID `gorm:"primaryKey;type:uuid;column:uid"`
	Email        string
	PasswordHash string
	LastName     string
	FirstName    string
	MiddleName   string
	LicenseSer   string
	LicenseNum   string
	PassportSer  string
	PassportNum  string
	Phone        string
	BirthDate    time.Time
	Role         string
}

func (gu *gUser) TableName() string {
	return "users"
}

func (gu *gUser) toUser() *model.User {
	return &model.User{
		ID:           gu.UID,
		Email:        gu.Email,
		PasswordHash: gu.PasswordHash,
		LastName:     gu.LastName,
		FirstName:    gu.FirstName,
		MiddleName:   gu.MiddleName,
		LicenseSer:   gu.LicenseSer,
		LicenseNum:   gu.LicenseNum,
		PassportSer:  gu.PassportSer,
		PassportNum:  gu.PassportNum,
		Phone:        gu.Phone,
		BirthDate:    gu.BirthDate,
		Role:         model.Role(gu.Role),
	}
}

func fromUser(u *model.User) *gUser {
	return &gUser{
		UID:          u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		LastName:     u.LastName,
		FirstName:    u.FirstName,
		MiddleName:   u.MiddleName,
		LicenseSer:   u.LicenseSer,
		LicenseNum:   u.LicenseNum,
		PassportSer:  u.PassportSer,
		PassportNum:  u.PassportNum,
		Phone:        u.Phone,
		BirthDate:    u.BirthDate,
		Role:         u.Role.String(),
	}
}

func GetByID[Q postgres.Queryer](ctx context.Context, q Q, userID uuid.UUID) (*model.User, error) {
	var gu gUser
	err := q.GORM(ctx).First(&gu, "uid=?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("selecting user: %w", postgres.WrapError(err))
	}
	return gu.toUser(), nil
}

func GetByEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) (*model.User, error) {
	var gu gUser
	err := q.GORM(ctx).First(&gu, "lower(email)=lower(?)", email).Error
	if err != nil {
		return nil, fmt.Errorf("selecting user: %w", postgres.WrapError(err))
	}
	return gu.toUser(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q, f repo.UserFilter) ([]model.User, error) {
	gdb := q.GORM(ctx).Order("email ASC")
	if f.EmailLike != "" {
		gdb = gdb.Where("email ILIKE ?", "%"+f.EmailLike+"%")
	}
	if f.Role != nil {
		gdb = gdb.Where("role=?", f.Role.String())
	}
	var gus []gUser
	if err := gdb.Find(&gus).Error; err != nil {
		return nil, fmt.Errorf("selecting users: %w", err)
	}
	users := make([]model.User, 0, len(gus))
	for i := range gus {
		users = append(users, *gus[i].toUser())
	}
	return users, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	gu := fromUser(u)
	if err := q.GORM(ctx).Create(gu).Error; err != nil {
		return fmt.Errorf("inserting user: %w", postgres.WrapError(err))
	}
	return nil
}

func Update[Q postgres.Queryer](ctx context.Context, q Q, u *model.User) error {
	gdb := q.GORM(ctx)
	tt := gdb.Model(&gUser{}).Where("uid=?", u.ID).Select(
		"email", "last_name", "first_name", "middle_name",
		"license_ser", "license_num", "passport_ser", "passport_num",
		"phone", "birth_date",
	).Updates(fromUser(u))
	if err := tt.Error; err != nil {
		return fmt.Errorf("updating user: %w", postgres.WrapError(err))
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func UpdatePassword[Q postgres.Queryer](ctx context.Context, q Q, userID uuid.UUID, digest string) error {
	tt := q.GORM(ctx).Model(&gUser{}).Where("uid=?", userID).
		Update("password_hash", digest)
	if err := tt.Error; err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func UpdateRole[Q postgres.Queryer](ctx context.Context, q Q, userID uuid.UUID, r model.Role) error {
	tt := q.GORM(ctx).Model(&gUser{}).Where("uid=?", userID).
		Update("role", r.String())
	if err := tt.Error; err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func Delete[Q postgres.Queryer](ctx context.Context, q Q, userID uuid.UUID) error {
	tt := q.GORM(ctx).Delete(&gUser{}, "uid=?", userID)
	if err := tt.Error; err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if tt.RowsAffected != 1 {
		return cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", tt.RowsAffected),
		)
	}
	return nil
}

func ExistsByEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gUser{}).
		Where("lower(email)=lower(?)", email).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return n > 0, nil
}

func ExistsByPhone[Q postgres.Queryer](ctx context.Context, q Q, phone string) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gUser{}).
		Where("phone=?", phone).Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return n > 0, nil
}

func ExistsByLicense[Q postgres.Queryer](ctx context.Context, q Q, series, number string) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gUser{}).
		Where("license_ser=? AND license_num=?", series, number).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return n > 0, nil
}

func ExistsByPassport[Q postgres.Queryer](ctx context.Context, q Q, series, number string) (bool, error) {
	var n int64
	err := q.GORM(ctx).Model(&gUser{}).
		Where("passport_ser=? AND passport_num=?", series, number).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	return n > 0, nil
}

func CountByRole[Q postgres.Queryer](ctx context.Context, q Q, r model.Role) (int64, error) {
	var n int64
	err := q.GORM(ctx).Model(&gUser{}).
		Where("role=?", r.String()).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return n, nil
}
