package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hrbank-dev/hrbank/internal/accounts"
	"github.com/hrbank-dev/hrbank/internal/config"
	"github.com/hrbank-dev/hrbank/internal/gitops"
	"github.com/hrbank-dev/hrbank/internal/ledger"
	"github.com/hrbank-dev/hrbank/internal/txlog"
)

// env wires the services for one data directory.
type env struct {
	dataDir string
	cfg     *config.Config
	ledger  *ledger.Service
	txns    *txlog.Log
}

// openEnv resolves a data directory into a ready-to-use env. A missing
// hrbank.yaml falls back to defaults, so a bare directory works the
// same as an initialized one (minus git integration).
func openEnv(dataDir string) (*env, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolving data dir: %w", err)
	}

	cfg, err := config.Load(filepath.Join(abs, config.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default(defaultBankName)
	} else if err != nil {
		return nil, err
	}

	store := accounts.NewStore(filepath.Join(abs, cfg.Files.Accounts))
	txns := txlog.NewLog(filepath.Join(abs, cfg.Files.Transactions))

	return &env{
		dataDir: abs,
		cfg:     cfg,
		ledger:  ledger.NewService(store, txns),
		txns:    txns,
	}, nil
}

// autoCommit commits the data files after a successful mutation when
// configured. A commit failure is a warning, never an error: the books
// themselves are already safely on disk.
func (e *env) autoCommit(message string) {
	if !e.cfg.Git.AutoCommit || !gitops.IsRepo(e.dataDir) {
		return
	}
	if _, err := gitops.CommitAll(e.dataDir, message, e.cfg.Git.AuthorName, e.cfg.Git.AuthorEmail); err != nil {
		fmt.Fprintf(os.Stderr, "warning: git commit failed: %v\n", err)
	}
}
