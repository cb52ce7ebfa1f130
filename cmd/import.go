package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Ryan56h/waterReminder/internal/model"

	"github.com/spf13/cobra"
)

var flagImportOverwrite bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import records exported from the browser app",
	Long: `Import a JSON export from the old browser version of WaterPro. Keys
use the M/D/YYYY format; they are converted to YYYY-MM-DD on import.
Existing days are kept unless --overwrite is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportOverwrite, "overwrite", false, "Replace days that already exist")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var legacy map[string]model.DailyRecord
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	cfg := loadConfigOrDefault()
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	var imported, skipped, invalid int
	for key, rec := range legacy {
		date, err := model.ParseLegacyKey(key)
		if err != nil {
			// Also accept already-converted keys so re-imports work.
			date, err = model.ParseDate(key)
			if err != nil {
				invalid++
				continue
			}
		}

		if rec.Goal <= 0 {
			rec.Goal = cfg.General.DefaultGoal
		}
		if rec.Amount < 0 {
			invalid++
			continue
		}

		if _, exists := st.Record(date); exists && !flagImportOverwrite {
			skipped++
			continue
		}
		st.SetRecord(date, rec)
		imported++
	}
	st.Flush()

	fmt.Printf("  Imported %d days", imported)
	if skipped > 0 {
		fmt.Printf(", skipped %d existing (use --overwrite to replace)", skipped)
	}
	if invalid > 0 {
		fmt.Printf(", ignored %d invalid entries", invalid)
	}
	fmt.Println()
	return nil
}
