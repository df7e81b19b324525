// Package main provides the mealplan-import CLI, which loads meals from a
// CSV export into the meal planner database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mealplan/internal/cli"
)

const version = "v0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mealplan-import [file.csv]",
	Short: "Import meals from a CSV file",
	Long: `mealplan-import reads a CSV export with meal, ingredient, quantity and
unit columns and loads it into the meal planner database.

Rows belonging to the same meal are grouped together. Meals whose name
already exists in the database are skipped, as are rows with units the
planner does not recognize.

Example:
  mealplan-import meals.csv
  mealplan-import --db ./data/mealplan.db meals.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mealplan-import " + version)
	},
}

func init() {
	cli.LoadEnvFile()

	rootCmd.Flags().String("db", "", "path to the SQLite database (default: SQLITE_DB_PATH or ./data/mealplan.db)")

	_ = viper.BindPFlag("db", rootCmd.Flags().Lookup("db"))
	_ = viper.BindEnv("db", "SQLITE_DB_PATH")
	viper.SetDefault("db", "./data/mealplan.db")

	rootCmd.AddCommand(versionCmd)
}
