// filepath: internal/initconfig/init.go
package initconfig

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"flowershop/internal/services"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Result counts what an initialization run saved.
type Result struct {
	FlowerTypes int
	UnitTypes   int
	Failed      int
}

// Run seeds the reference tables from the config file. Entries that already
// exist are updated in place, so the file can be applied on every start.
func Run(ctx context.Context, refs services.ReferenceService, configPath string) (Result, error) {
	logging.Log.Infof("Initialization config file found at: %s. Processing...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		logging.Log.Errorf("Failed to read init config file '%s': %v", configPath, err)
		return Result{}, fmt.Errorf("failed to read init config: %w", err)
	}

	var config InitConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		logging.Log.Errorf("Failed to parse TOML init config file '%s': %v", configPath, err)
		return Result{}, fmt.Errorf("failed to parse init config: %w", err)
	}

	logging.Log.Infof("Found %d flower type(s) and %d unit type(s) in init config.", len(config.FlowerTypes), len(config.UnitTypes))

	var result Result
	processFlowerTypes(ctx, refs, config.FlowerTypes, &result)
	processUnitTypes(ctx, refs, config.UnitTypes, &result)
	return result, nil
}

func processFlowerTypes(ctx context.Context, refs services.ReferenceService, types []models.FlowerType, result *Result) {
	for _, t := range types {
		if err := refs.SaveFlowerType(ctx, t); err != nil {
			logging.Log.Errorf("Failed to save flower type '%s': %v", t.Name, err)
			result.Failed++
			continue
		}
		result.FlowerTypes++
	}
}

func processUnitTypes(ctx context.Context, refs services.ReferenceService, units []models.UnitType, result *Result) {
	for _, u := range units {
		if err := refs.SaveUnitType(ctx, u); err != nil {
			logging.Log.Errorf("Failed to save unit type '%s': %v", u.Name, err)
			result.Failed++
			continue
		}
		result.UnitTypes++
	}
}
