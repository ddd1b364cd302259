package nourish

import (
	"fmt"
	"io"

	"github.com/probuilddigital1-star/nourish/internal/app"
	"github.com/probuilddigital1-star/nourish/internal/config"
	"github.com/probuilddigital1-star/nourish/internal/model"
	"github.com/probuilddigital1-star/nourish/internal/provider/openfoodfacts"
	"github.com/probuilddigital1-star/nourish/internal/provider/usda"
	"github.com/probuilddigital1-star/nourish/internal/service"
	"github.com/probuilddigital1-star/nourish/internal/storage"
	"github.com/probuilddigital1-star/nourish/internal/store"
	"github.com/probuilddigital1-star/nourish/pkg/logger"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return cfg, err
	}
	if dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}
	if storageKind != "" {
		cfg.Storage.Backend = storageKind
	}
	return cfg, nil
}

func resolveDataDir(cfg config.Config) (string, error) {
	if cfg.Storage.DataDir != "" {
		return cfg.Storage.DataDir, nil
	}
	return app.DefaultDataDir()
}

// withStore wires config, repository, and store, hydrates today's log, and
// hands the store to run. SQLite repositories are closed afterwards.
func withStore(run func(*store.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dir, err := resolveDataDir(cfg)
	if err != nil {
		return err
	}
	if err := app.EnsureDir(dir); err != nil {
		return err
	}

	var repo storage.Repository
	var closer io.Closer
	switch cfg.Storage.Backend {
	case "", "file":
		repo = storage.NewFileRepository(app.StatePath(dir))
	case "sqlite":
		sqlRepo, err := storage.OpenSQLite(app.SQLitePath(dir))
		if err != nil {
			return err
		}
		repo = sqlRepo
		closer = sqlRepo
	default:
		return fmt.Errorf("unknown storage backend %q (expected file or sqlite)", cfg.Storage.Backend)
	}
	if closer != nil {
		defer closer.Close()
	}

	log := logger.Must(logger.New(verbose))
	defer log.Sync()

	s, err := store.New(repo, store.WithLogger(logger.Named(log, "store")))
	if err != nil {
		return err
	}
	s.HydrateTodayLog()
	return run(s)
}

func providerClients(cfg config.Config) service.Clients {
	return service.Clients{
		USDA:          &usda.Client{APIKey: cfg.USDA.APIKey},
		OpenFoodFacts: &openfoodfacts.Client{},
	}
}

// logRecord adds a provider/assistant food record to today's log.
func logRecord(s *store.Store, rec model.FoodRecord, meal model.MealType) (model.FoodEntry, error) {
	return s.AddFood(store.AddFoodInput{
		Name:        rec.Name,
		Calories:    rec.Calories,
		Protein:     rec.Protein,
		Carbs:       rec.Carbs,
		Fat:         rec.Fat,
		ServingSize: rec.ServingSize,
		ServingUnit: rec.ServingUnit,
		MealType:    meal,
	})
}

func printRecord(w io.Writer, i int, rec model.FoodRecord) {
	fmt.Fprintf(w, "%2d. %s (%s): %d kcal | P %dg C %dg F %dg | %.4g %s [%s]\n",
		i+1, rec.Name, rec.Brand, rec.Calories, rec.Protein, rec.Carbs, rec.Fat,
		rec.ServingSize, rec.ServingUnit, rec.Source)
}
