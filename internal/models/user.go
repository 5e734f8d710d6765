package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email             string  `gorm:"uniqueIndex;not null" json:"email"`
	Username          string  `gorm:"uniqueIndex;not null" json:"username"`
	FirstName         string  `gorm:"not null" json:"firstname"`
	LastName          string  `gorm:"not null" json:"lastname"`
	PasswordHash      string  `gorm:"not null" json:"-"`
	Verified          bool    `gorm:"default:false" json:"verified"`
	VerificationToken *string `json:"-"`
	ResetToken        *string `json:"-"`
	Farms             []Farm  `gorm:"foreignKey:FarmerID" json:"-"`
}

// DisplayName is what notification emails address the user as.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
