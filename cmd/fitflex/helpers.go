package fitflex

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DnvLikhitha/FitFlex/internal/api"
	"github.com/DnvLikhitha/FitFlex/internal/app"
	"github.com/DnvLikhitha/FitFlex/internal/config"
	"github.com/DnvLikhitha/FitFlex/internal/db"
	"github.com/DnvLikhitha/FitFlex/internal/logger"
	"github.com/DnvLikhitha/FitFlex/internal/provider/openfoodfacts"
	"github.com/DnvLikhitha/FitFlex/internal/service"
)

// appDeps bundles what every command needs: config, logger, the backend
// client, the offline cache and the session file location.
type appDeps struct {
	cfg         *config.Config
	log         *slog.Logger
	api         *api.Client
	cache       *sql.DB
	food        *openfoodfacts.Client
	sessionPath string
	session     app.Session
}

func withApp(run func(*appDeps) error) error {
	cfg := config.Load()

	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		var err error
		if path, err = app.DefaultDBPath(); err != nil {
			return err
		}
	}
	if err := app.EnsureDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}

	sessionPath, err := app.DefaultSessionPath()
	if err != nil {
		return err
	}
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	d := &appDeps{
		cfg:         cfg,
		log:         logger.New(cfg.IsDev(), cfg.LogLevel),
		api:         &api.Client{BaseURL: cfg.APIBaseURL, HTTPClient: httpClient},
		cache:       sqldb,
		food:        &openfoodfacts.Client{BaseURL: cfg.FoodAPIURL, HTTPClient: httpClient},
		sessionPath: sessionPath,
	}
	return run(d)
}

// withUser is withApp plus a signed-in session.
func withUser(run func(*appDeps) error) error {
	return withApp(func(d *appDeps) error {
		s, err := app.LoadSession(d.sessionPath)
		if err != nil {
			if err == app.ErrNotSignedIn {
				return fmt.Errorf("not signed in (run: fitflex login)")
			}
			return err
		}
		d.session = s
		return run(d)
	})
}

func (d *appDeps) tracker() *service.Tracker {
	return &service.Tracker{API: d.api, Cache: d.cache, Log: d.log}
}

func (d *appDeps) goals() *service.Goals {
	return &service.Goals{API: d.api, Cache: d.cache, Log: d.log}
}

func (d *appDeps) nutrition() *service.Nutrition {
	return &service.Nutrition{API: d.api, Cache: d.cache, Food: d.food, Log: d.log}
}

func (d *appDeps) profiles() *service.Profiles {
	return &service.Profiles{API: d.api, Cache: d.cache, Log: d.log}
}

func offlineNotice(w io.Writer, offline bool) {
	if offline {
		fmt.Fprintln(w, "(backend unreachable; saved to the local cache)")
	}
}

func offlineReadNotice(w io.Writer, offline bool) {
	if offline {
		fmt.Fprintln(w, "(backend unreachable; showing locally cached data)")
	}
}
