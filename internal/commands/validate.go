package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payproc-dev/payproc/internal/config"
	"github.com/payproc-dev/payproc/internal/refdata"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [directory]",
		Short: "Check a workspace's reference data for inconsistencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runValidate(absDir)
		},
	}

	return cmd
}

func runValidate(ws string) error {
	cfg, err := config.Load(filepath.Join(ws, config.FileName))
	if err != nil {
		return err
	}

	accts, _, ranges, table, err := loadInputs(ws, cfg)
	if err != nil {
		return err
	}

	var findings []refdata.ValidationError
	findings = append(findings, refdata.ValidateAccounts(accts)...)
	findings = append(findings, refdata.ValidateBinRanges(ranges)...)
	findings = append(findings, refdata.ValidateCountryTable(table)...)

	if len(findings) == 0 {
		fmt.Println("Reference data OK")
		return nil
	}

	for _, f := range findings {
		fmt.Println(f.Error())
	}
	return fmt.Errorf("%d reference data issue(s) found", len(findings))
}
