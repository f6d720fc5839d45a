package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/payproc-dev/payproc/internal/accounts"
	"github.com/payproc-dev/payproc/internal/batch"
	"github.com/payproc-dev/payproc/internal/bins"
	"github.com/payproc-dev/payproc/internal/config"
	"github.com/payproc-dev/payproc/internal/country"
	"github.com/payproc-dev/payproc/internal/gitops"
	"github.com/payproc-dev/payproc/internal/model"
	"github.com/payproc-dev/payproc/internal/pipeline"
	"github.com/payproc-dev/payproc/internal/runlog"
)

func newProcessCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [directory]",
		Short: "Run the transaction batch of a workspace",
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

			return runProcess(absDir)
		},
	}

	return cmd
}

func runProcess(ws string) error {
	cfg, err := config.Load(filepath.Join(ws, config.FileName))
	if err != nil {
		return err
	}

	accts, txs, ranges, table, err := loadInputs(ws, cfg)
	if err != nil {
		return err
	}

	dir := accounts.NewDirectory(accts)
	pipe := pipeline.New(dir, bins.NewDirectory(ranges), country.NewResolver(table))
	proc := batch.NewProcessor(dir, pipe)

	decisions := proc.Run(txs)
	summary := batch.Summarize(decisions)

	if err := writeOutputs(ws, cfg, decisions, dir.All()); err != nil {
		return err
	}

	runID := uuid.NewString()
	entry := runlog.Entry{
		Timestamp: time.Now().UTC(),
		RunID:     runID,
		Total:     summary.Total,
		Approved:  summary.Approved,
		Declined:  summary.Declined,
		Status:    "completed",
	}
	if err := runlog.Append(ws, []runlog.Entry{entry}); err != nil {
		return fmt.Errorf("appending run log: %w", err)
	}

	if cfg.Git.AutoCommit {
		msg := fmt.Sprintf("process: run %s (%d transactions)", runID, summary.Total)
		if _, err := gitops.CommitAll(ws, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			return fmt.Errorf("committing outputs: %w", err)
		}
	}

	fmt.Printf("Processed %d transactions: %d approved, %d declined (run %s)\n",
		summary.Total, summary.Approved, summary.Declined, runID)
	return nil
}

func loadInputs(ws string, cfg *config.Config) ([]model.Account, []model.Transaction, []model.BinRange, map[string]string, error) {
	var accts []model.Account
	err := withInput(ws, cfg.Inputs.Users, func(f *os.File) error {
		var err error
		accts, err = accounts.ReadAccounts(f)
		return err
	})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading users: %w", err)
	}

	var txs []model.Transaction
	err = withInput(ws, cfg.Inputs.Transactions, func(f *os.File) error {
		var err error
		txs, err = batch.ReadTransactions(f)
		return err
	})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading transactions: %w", err)
	}

	var ranges []model.BinRange
	err = withInput(ws, cfg.Inputs.Bins, func(f *os.File) error {
		var err error
		ranges, err = bins.ReadRanges(f)
		return err
	})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("loading bins: %w", err)
	}

	table := country.DefaultTable()
	if cfg.Inputs.Countries != "" {
		err = withInput(ws, cfg.Inputs.Countries, func(f *os.File) error {
			var err error
			table, err = country.ReadTable(f)
			return err
		})
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("loading countries: %w", err)
		}
	}

	return accts, txs, ranges, table, nil
}

func withInput(ws, rel string, read func(*os.File) error) error {
	f, err := os.Open(filepath.Join(ws, rel))
	if err != nil {
		return err
	}
	defer f.Close()
	return read(f)
}

func writeOutputs(ws string, cfg *config.Config, decisions []model.Decision, finalAccounts []model.Account) error {
	write := func(rel string, fn func(*os.File) error) error {
		path := filepath.Join(ws, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", rel, err)
		}
		defer f.Close()
		return fn(f)
	}

	if err := write(cfg.Outputs.Decisions, func(f *os.File) error {
		return batch.WriteDecisions(f, decisions)
	}); err != nil {
		return fmt.Errorf("writing decisions: %w", err)
	}

	if err := write(cfg.Outputs.Balances, func(f *os.File) error {
		return accounts.WriteBalances(f, finalAccounts)
	}); err != nil {
		return fmt.Errorf("writing balances: %w", err)
	}

	return nil
}
