// Package userrepo persists user accounts and their email verifications.
package userrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
)

// UserDTO is the users table row. Role is stored by label.
type UserDTO struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	Role         string `gorm:"size:16;not null"`
	Verified     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

// VerificationDTO is a pending email confirmation; one per user.
type VerificationDTO struct {
	ID        uint    `gorm:"primaryKey"`
	Code      string  `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint    `gorm:"uniqueIndex;not null"`
	User      UserDTO `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

func (VerificationDTO) TableName() string {
	return "verifications"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Uint(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Verified:     u.Verified(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(kernel.ID(dto.ID), dto.Email, dto.PasswordHash, role, dto.Verified)
}

func verificationFromDomain(v user.Verification) VerificationDTO {
	return VerificationDTO{
		Code:   v.Code().String(),
		UserID: v.UserID().Uint(),
	}
}

func verificationToDomain(dto VerificationDTO) (user.Verification, error) {
	code, err := kernel.ParseToken(dto.Code)
	if err != nil {
		return user.Verification{}, err
	}
	return user.RestoreVerification(code, kernel.ID(dto.UserID))
}
