package repository

import (
	"errors"

	"github.com/croftside/farmbase/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetVerificationToken writes only the token column so concurrent logins
// cannot clobber other user fields.
func (r *UserRepository) SetVerificationToken(userID uint, token *string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("verification_token", token).Error
}

func (r *UserRepository) SetResetToken(userID uint, token *string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("reset_token", token).Error
}

func (r *UserRepository) MarkVerified(userID uint) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"verified":           true,
			"verification_token": nil,
		}).Error
}

func (r *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"reset_token":   nil,
		}).Error
}
