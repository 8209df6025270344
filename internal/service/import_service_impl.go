package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evalonso/mealrota/internal/db"
	"github.com/evalonso/mealrota/internal/importer"
	"github.com/evalonso/mealrota/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService creates the profile import pipeline. All writes of one
// import happen inside a single transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportProfile(ctx context.Context, filePath string) (*ImportResult, error) {
	doc, err := importer.LoadProfileDocument(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importDocument(ctx, doc)
}

func (s *importService) ImportProfileFromDocument(ctx context.Context, doc *importer.ProfileDocument) (*ImportResult, error) {
	return s.importDocument(ctx, doc)
}

func (s *importService) importDocument(ctx context.Context, doc *importer.ProfileDocument) (result *ImportResult, err error) {
	started := time.Now()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["profile_id"] = result.Profile.ID
			fields["dishes"] = result.DishCount
			fields["selections"] = result.SelectionCount
		}
		observe(ctx, s.observer, "import_profile", started, err, fields)
	}()

	if errs := importer.ValidateProfileDocument(doc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	bundle := importer.Convert(doc)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		profiles := repository.NewSQLiteProfileRepo(tx)
		dishes := repository.NewSQLiteDishRepo(tx)
		selections := repository.NewSQLiteSelectionRepo(tx)

		if err := profiles.Create(ctx, bundle.Profile); err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		for _, d := range bundle.Dishes {
			if err := dishes.Create(ctx, d); err != nil {
				return fmt.Errorf("creating dish %q: %w", d.Name, err)
			}
		}
		for _, sel := range bundle.Selections {
			if err := selections.Upsert(ctx, sel); err != nil {
				return fmt.Errorf("recording selection %s/%s: %w", sel.Date, sel.Meal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Profile:        bundle.Profile,
		DishCount:      len(bundle.Dishes),
		SelectionCount: len(bundle.Selections),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
