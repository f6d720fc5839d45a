package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/payproc-dev/payproc/internal/config"
	"github.com/payproc-dev/payproc/internal/country"
	"github.com/payproc-dev/payproc/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new payproc workspace",
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

			return runInit(absDir, name, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "workspace name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git initialization")

	return cmd
}

func runInit(dir, name string, noGit bool) error {
	for _, d := range []string{"input", "output", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the country table so the workspace processes out of the box.
	f, err := os.Create(filepath.Join(dir, cfg.Inputs.Countries))
	if err != nil {
		return fmt.Errorf("creating country table: %w", err)
	}
	defer f.Close()
	if err := country.WriteTable(f, country.DefaultTable()); err != nil {
		return fmt.Errorf("writing country table: %w", err)
	}

	if noGit {
		fmt.Printf("Initialized payproc workspace at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized payproc workspace at %s (%s)\n", dir, hash)
	return nil
}
