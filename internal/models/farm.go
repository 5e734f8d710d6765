package models

import "gorm.io/gorm"

const (
	SizeUnitPlots    = "Plots"
	SizeUnitAcres    = "Acres"
	SizeUnitHectares = "Hectares"
)

const (
	StatusPlanting    = "Planting"
	StatusCultivation = "Cultivation"
	StatusHarvesting  = "Harvesting"
)

type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Soil struct {
	SoilPH   float64 `json:"soilpH"`
	SoilType string  `json:"soilType"`
}

type Farm struct {
	gorm.Model
	FarmerID uint     `gorm:"not null;index" json:"farmer_id"`
	Farmer   User     `gorm:"foreignKey:FarmerID" json:"-"`
	Name     string   `gorm:"not null" json:"name"`
	Location Location `gorm:"embedded" json:"location"`
	Size     float64  `gorm:"not null" json:"size"`
	SizeUnit string   `gorm:"not null" json:"size_unit"`
	Status   string   `gorm:"not null" json:"status"`
	Soil     Soil     `gorm:"embedded" json:"soil"`
	Tasks    []Task   `gorm:"foreignKey:FarmID" json:"-"`
}
