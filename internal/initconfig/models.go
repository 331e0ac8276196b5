// filepath: internal/initconfig/models.go
package initconfig

import "flowershop/internal/models"

// InitConfig is the root struct for parsing the TOML initialization file.
//
//	[[flower_type]]
//	name = "Hồng"
//	color = "#ffcdd2"
//
//	[[unit_type]]
//	name = "bó"
type InitConfig struct {
	FlowerTypes []models.FlowerType `toml:"flower_type"`
	UnitTypes   []models.UnitType   `toml:"unit_type"`
}
