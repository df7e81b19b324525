package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mealplan/internal/cli"
	"mealplan/internal/importer"
	"mealplan/internal/services"
)

func runImport(cmd *cobra.Command, args []string) error {
	logger := cli.SetupLogger()

	dbPath := viper.GetString("db")
	repo := cli.InitSQLite(logger, dbPath)
	planner := services.NewPlannerService(repo)
	defer func() {
		if err := planner.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	result, err := importer.New(planner).ImportCSV(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("import csv: %w", err)
	}

	fmt.Printf("Imported %d meals (%d skipped, %d rows skipped)\n",
		result.MealsImported, result.MealsSkipped, result.RowsSkipped)
	if len(result.UnknownUnits) > 0 {
		fmt.Printf("Unknown units: %s\n", strings.Join(result.UnknownUnits, ", "))
	}
	return nil
}
