package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lesterlimjj/tp-sub001/internal/config"
	"github.com/lesterlimjj/tp-sub001/internal/logging"
	"github.com/lesterlimjj/tp-sub001/internal/repo"
	"github.com/lesterlimjj/tp-sub001/internal/seed"
	"github.com/lesterlimjj/tp-sub001/internal/service"
)

// App bundles the services one command runs against.
type App struct {
	Persons  *service.PersonService
	Listings *service.ListingService
	Tags     *service.TagService
	Session  *service.Session
	Logger   *slog.Logger
}

// NewApp wires an in-memory store, the services on top of it and a logger
// writing to logOut, then loads the dataset named by cfg.DataFile (the bundled
// sample when empty). cfg.ActiveTags, when set, replaces the dataset's active
// tags.
func NewApp(cfg config.Config, logOut io.Writer) (*App, error) {
	logger := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)

	store := repo.NewStore()
	app := &App{
		Persons:  service.NewPersonService(store),
		Listings: service.NewListingService(store, store),
		Tags:     service.NewTagService(store.Tags()),
		Session:  service.NewSession(store, store, store.Tags(), logger),
		Logger:   logger,
	}

	var (
		data seed.Dataset
		err  error
	)
	source := cfg.DataFile
	if source == "" {
		source = "embedded:" + seed.SampleFile
		data, err = seed.Sample()
	} else {
		data, err = seed.LoadFile(cfg.DataFile)
	}
	if err != nil {
		return nil, err
	}
	if err := data.Apply(app.Persons, app.Listings, app.Tags); err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	if len(cfg.ActiveTags) > 0 {
		if err := app.Tags.Activate(cfg.ActiveTags...); err != nil {
			return nil, fmt.Errorf("active tags: %w", err)
		}
	}

	logger.Debug("dataset loaded",
		"source", source,
		"persons", len(data.Persons),
		"listings", len(data.Listings),
	)
	return app, nil
}
