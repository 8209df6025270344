package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/evalonso/mealrota/internal/cli"
	"github.com/evalonso/mealrota/internal/db"
	"github.com/evalonso/mealrota/internal/repository"
	"github.com/evalonso/mealrota/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.mealrota/mealrota.db
	dbPath := os.Getenv("MEALROTA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mealrota", "mealrota.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	profileRepo := repository.NewSQLiteProfileRepo(database)
	dishRepo := repository.NewSQLiteDishRepo(database)
	selectionRepo := repository.NewSQLiteSelectionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Profiles:   service.NewProfileService(profileRepo),
		Dishes:     service.NewDishService(dishRepo),
		Selections: service.NewSelectionService(dishRepo, selectionRepo),
		Suggest:    service.NewSuggestService(profileRepo, dishRepo, selectionRepo),
		Import:     service.NewImportService(uow),
		IsInteractive: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
