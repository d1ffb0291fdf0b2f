package app

import (
	"context"
	"net/http"

	"visitbook-go/internal/config"
	"visitbook-go/internal/db"
	eventdomain "visitbook-go/internal/domain/event"
	familydomain "visitbook-go/internal/domain/family"
	geolocdomain "visitbook-go/internal/domain/geoloc"
	placedomain "visitbook-go/internal/domain/place"
	subdomain "visitbook-go/internal/domain/subscription"
	userdomain "visitbook-go/internal/domain/user"
	"visitbook-go/internal/repository/inmemory"
	eventrepo "visitbook-go/internal/repository/postgres/event"
	familyrepo "visitbook-go/internal/repository/postgres/family"
	geolocrepo "visitbook-go/internal/repository/postgres/geoloc"
	placerepo "visitbook-go/internal/repository/postgres/place"
	subrepo "visitbook-go/internal/repository/postgres/subscription"
	userrepo "visitbook-go/internal/repository/postgres/user"
	"visitbook-go/internal/scheduler"
	"visitbook-go/internal/transport/httpserver"
	"visitbook-go/internal/transport/httpserver/handler"
	"visitbook-go/internal/transport/httpserver/middleware"
	"visitbook-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
	reminders  *scheduler.Reminders
}

func New(log logger.Logger) (*App, error) {
	log.Info("loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("running migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	families := familydomain.NewService(familyrepo.NewPostgres(dbConn), inmemory.NewFamilyCache(), cfg.FamilyCacheTTL)
	places := placedomain.NewService(placerepo.NewPostgres(dbConn))
	subscriptions := subdomain.NewService(subrepo.NewPostgres(dbConn))
	events := eventdomain.NewService(eventrepo.NewPostgres(dbConn))
	geolocs := geolocdomain.NewService(geolocrepo.NewPostgres(dbConn))

	auth := middleware.NewJWTAuth(cfg.Auth, &tokenVerifier{users: users}, log)

	log.Info("initializing router")
	handlers := handler.New(users, families, places, subscriptions, events, geolocs, auth, log)
	router := httpserver.NewRouter(cfg, handlers, auth)

	log.Info("initializing http server")
	srv := httpserver.New(cfg, router)

	var reminders *scheduler.Reminders
	if cfg.Reminders.Enabled {
		reminders = scheduler.NewReminders(events, scheduler.NewLogNotifier(log), cfg.Reminders.Interval, log)
		if err := reminders.Start(); err != nil {
			return nil, err
		}
	}

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		db:         dbConn,
		reminders:  reminders,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.reminders != nil {
		a.reminders.Stop()
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// tokenVerifier bridges the auth middleware to the user service so a
// token revoked by logout stops working immediately.
type tokenVerifier struct {
	users *userdomain.Service
}

func (v *tokenVerifier) VerifyToken(ctx context.Context, userID, token string) (middleware.User, error) {
	usr, err := v.users.VerifyToken(ctx, userID, token)
	if err != nil {
		return middleware.User{}, err
	}
	return middleware.User{
		ID:       usr.ID,
		Email:    usr.Email,
		FamilyID: usr.FamilyID,
		Role:     usr.Role,
	}, nil
}
