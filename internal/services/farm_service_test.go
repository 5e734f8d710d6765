package services

import (
	"testing"

	"github.com/croftside/farmbase/internal/database"
	"github.com/croftside/farmbase/internal/models"
	"github.com/croftside/farmbase/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFarmTestDB(t *testing.T) (*repository.UserRepository, *FarmService) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	farmService := NewFarmService(farmRepo, userRepo)

	return userRepo, farmService
}

func createTestUser(t *testing.T, userRepo *repository.UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "x",
		Verified:     true,
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func northField() FarmInput {
	return FarmInput{
		Name:     "North Field",
		Location: models.Location{Longitude: -1.25, Latitude: 52.95},
		Size:     10,
		SizeUnit: models.SizeUnitAcres,
		Status:   models.StatusPlanting,
		Soil:     models.Soil{SoilPH: 6.4, SoilType: "loam"},
	}
}

func TestFarmService_CreateAndGet(t *testing.T) {
	userRepo, farmService := setupFarmTestDB(t)
	alice := createTestUser(t, userRepo, "alice")

	farm, err := farmService.CreateFarm(alice.ID, northField())
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, farm.FarmerID)

	got, err := farmService.GetFarm(alice.ID, farm.ID)
	assert.NoError(t, err)
	assert.Equal(t, "North Field", got.Name)
	assert.Equal(t, models.SizeUnitAcres, got.SizeUnit)
	assert.Equal(t, 6.4, got.Soil.SoilPH)
}

func TestFarmService_CreateFarm_UnknownOwner(t *testing.T) {
	_, farmService := setupFarmTestDB(t)

	_, err := farmService.CreateFarm(999, northField())
	assert.Equal(t, ErrUserNotFound, err)
}

func TestFarmService_ListFarms_ScopedToOwner(t *testing.T) {
	userRepo, farmService := setupFarmTestDB(t)
	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	_, err := farmService.CreateFarm(alice.ID, northField())
	require.NoError(t, err)

	input := northField()
	input.Name = "South Paddock"
	_, err = farmService.CreateFarm(alice.ID, input)
	require.NoError(t, err)

	aliceFarms, err := farmService.ListFarms(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, aliceFarms, 2)

	bobFarms, err := farmService.ListFarms(bob.ID)
	assert.NoError(t, err)
	assert.Empty(t, bobFarms)
}

func TestFarmService_GetFarm_OtherOwnerLooksAbsent(t *testing.T) {
	userRepo, farmService := setupFarmTestDB(t)
	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	farm, err := farmService.CreateFarm(alice.ID, northField())
	require.NoError(t, err)

	_, err = farmService.GetFarm(bob.ID, farm.ID)
	assert.Equal(t, ErrFarmNotFound, err)
}

func TestFarmService_UpdateFarm(t *testing.T) {
	userRepo, farmService := setupFarmTestDB(t)
	alice := createTestUser(t, userRepo, "alice")

	farm, err := farmService.CreateFarm(alice.ID, northField())
	require.NoError(t, err)

	input := northField()
	input.Status = models.StatusHarvesting
	input.Size = 12

	updated, err := farmService.UpdateFarm(alice.ID, farm.ID, input)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusHarvesting, updated.Status)
	assert.Equal(t, 12.0, updated.Size)
}

func TestFarmService_UpdateFarm_OtherOwner(t *testing.T) {
	userRepo, farmService := setupFarmTestDB(t)
	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	farm, err := farmService.CreateFarm(alice.ID, northField())
	require.NoError(t, err)

	_, err = farmService.UpdateFarm(bob.ID, farm.ID, northField())
	assert.Equal(t, ErrFarmNotFound, err)

	// Owner still sees the original.
	got, err := farmService.GetFarm(alice.ID, farm.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPlanting, got.Status)
}

func TestFarmService_DeleteFarm(t *testing.T) {
	userRepo, farmService := setupFarmTestDB(t)
	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	farm, err := farmService.CreateFarm(alice.ID, northField())
	require.NoError(t, err)

	err = farmService.DeleteFarm(bob.ID, farm.ID)
	assert.Equal(t, ErrFarmNotFound, err)

	err = farmService.DeleteFarm(alice.ID, farm.ID)
	assert.NoError(t, err)

	_, err = farmService.GetFarm(alice.ID, farm.ID)
	assert.Equal(t, ErrFarmNotFound, err)
}
