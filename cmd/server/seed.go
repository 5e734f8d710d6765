package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"regexp"

	"github.com/croftside/farmbase/internal/config"
	"github.com/croftside/farmbase/internal/database"
	"github.com/croftside/farmbase/internal/events"
	"github.com/croftside/farmbase/internal/models"
	"github.com/croftside/farmbase/internal/repository"
	"github.com/croftside/farmbase/internal/services"
	"github.com/spf13/cobra"
)

type FarmSeed struct {
	Name     string  `json:"name"`
	Size     float64 `json:"size"`
	SizeUnit string  `json:"size_unit"`
	Status   string  `json:"status"`
	SoilType string  `json:"soil_type"`
	SoilPH   float64 `json:"soil_ph"`
}

type UserSeed struct {
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FirstName string     `json:"firstname"`
	LastName  string     `json:"lastname"`
	Password  string     `json:"password"`
	Farms     []FarmSeed `json:"farms"`
}

var (
	seedFile      string
	skipInvalid   bool
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo users and farms from a JSON file",
	Long: `Seed the database from a JSON file.

Expected JSON format:
[
  {
    "email": "alice@example.com",
    "username": "alice",
    "firstname": "Alice",
    "lastname": "Hay",
    "password": "changeme123",
    "farms": [
      {"name": "North Field", "size": 10, "size_unit": "Acres",
       "status": "Planting", "soil_type": "loam", "soil_ph": 6.4}
    ]
  }
]

By default, entries with invalid usernames are skipped.`,
	Example: `  farmbase seed -f demo.json
  farmbase seed --file demo.json --skip-invalid=false`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSeed(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "JSON file to load (required)")
	seedCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", true, "Skip invalid usernames")
	seedCmd.MarkFlagRequired("file")
}

func runSeed() error {
	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var seeds []UserSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	bus := events.NewBus(64)
	defer bus.Close()

	userRepo := repository.NewUserRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiry)
	authService := services.NewAuthService(userRepo, tokenService, bus)
	farmService := services.NewFarmService(farmRepo, userRepo)

	log.Printf("Seeding %d users from %s", len(seeds), seedFile)

	imported := 0
	skipped := 0

	for _, seed := range seeds {
		if skipInvalid && !usernameRegex.MatchString(seed.Username) {
			log.Printf("Skipped %s: invalid username format", seed.Username)
			skipped++
			continue
		}

		user, err := authService.Register(services.RegisterInput{
			Email:     seed.Email,
			Username:  seed.Username,
			FirstName: seed.FirstName,
			LastName:  seed.LastName,
			Password:  seed.Password,
		})
		if err != nil {
			log.Printf("Skipped %s: %v", seed.Username, err)
			skipped++
			continue
		}

		for _, f := range seed.Farms {
			_, err := farmService.CreateFarm(user.ID, services.FarmInput{
				Name:     f.Name,
				Size:     f.Size,
				SizeUnit: f.SizeUnit,
				Status:   f.Status,
				Soil:     models.Soil{SoilPH: f.SoilPH, SoilType: f.SoilType},
			})
			if err != nil {
				log.Printf("Failed to create farm %q for %s: %v", f.Name, seed.Username, err)
			}
		}

		imported++
	}

	log.Printf("Seed complete: %d imported, %d skipped", imported, skipped)
	return nil
}
