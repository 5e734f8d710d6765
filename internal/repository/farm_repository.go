package repository

import (
	"errors"

	"github.com/croftside/farmbase/internal/models"
	"gorm.io/gorm"
)

type FarmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{db: db}
}

func (r *FarmRepository) Create(farm *models.Farm) error {
	return r.db.Create(farm).Error
}

func (r *FarmRepository) FindByFarmer(farmerID uint) ([]models.Farm, error) {
	var farms []models.Farm
	err := r.db.Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&farms).Error
	return farms, err
}

// FindByIDAndFarmer matches on the compound (id, farmer_id) filter so a farm
// owned by another user looks absent.
func (r *FarmRepository) FindByIDAndFarmer(id, farmerID uint) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.Where("id = ? AND farmer_id = ?", id, farmerID).First(&farm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &farm, nil
}

func (r *FarmRepository) Update(farm *models.Farm) error {
	return r.db.Save(farm).Error
}

// Delete removes the farm under the same ownership filter and reports how many
// rows actually went away.
func (r *FarmRepository) Delete(id, farmerID uint) (int64, error) {
	result := r.db.Where("id = ? AND farmer_id = ?", id, farmerID).Delete(&models.Farm{})
	return result.RowsAffected, result.Error
}
