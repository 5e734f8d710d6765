package services

import (
	"errors"

	"github.com/croftside/farmbase/internal/models"
	"github.com/croftside/farmbase/internal/repository"
)

var (
	ErrFarmNotFound = errors.New("farm not found")
)

type FarmService struct {
	farmRepo *repository.FarmRepository
	userRepo *repository.UserRepository
}

func NewFarmService(farmRepo *repository.FarmRepository, userRepo *repository.UserRepository) *FarmService {
	return &FarmService{
		farmRepo: farmRepo,
		userRepo: userRepo,
	}
}

type FarmInput struct {
	Name     string
	Location models.Location
	Size     float64
	SizeUnit string
	Status   string
	Soil     models.Soil
}

func (s *FarmService) CreateFarm(userID uint, input FarmInput) (*models.Farm, error) {
	owner, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	farm := &models.Farm{
		FarmerID: userID,
		Name:     input.Name,
		Location: input.Location,
		Size:     input.Size,
		SizeUnit: input.SizeUnit,
		Status:   input.Status,
		Soil:     input.Soil,
	}

	if err := s.farmRepo.Create(farm); err != nil {
		return nil, err
	}

	return farm, nil
}

func (s *FarmService) ListFarms(userID uint) ([]models.Farm, error) {
	return s.farmRepo.FindByFarmer(userID)
}

// GetFarm returns the farm only when both id and owner match, so another
// user's farm behaves as if it did not exist.
func (s *FarmService) GetFarm(userID, farmID uint) (*models.Farm, error) {
	farm, err := s.farmRepo.FindByIDAndFarmer(farmID, userID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	return farm, nil
}

func (s *FarmService) UpdateFarm(userID, farmID uint, input FarmInput) (*models.Farm, error) {
	farm, err := s.farmRepo.FindByIDAndFarmer(farmID, userID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}

	farm.Name = input.Name
	farm.Location = input.Location
	farm.Size = input.Size
	farm.SizeUnit = input.SizeUnit
	farm.Status = input.Status
	farm.Soil = input.Soil

	if err := s.farmRepo.Update(farm); err != nil {
		return nil, err
	}

	return farm, nil
}

func (s *FarmService) DeleteFarm(userID, farmID uint) error {
	affected, err := s.farmRepo.Delete(farmID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFarmNotFound
	}
	return nil
}
