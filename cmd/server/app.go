package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/joinboard/joinboard-api/internal/config"
	"github.com/joinboard/joinboard-api/internal/platform/postgres"
	"github.com/joinboard/joinboard-api/internal/service/auth"
	"github.com/joinboard/joinboard-api/internal/service/session"
	"github.com/joinboard/joinboard-api/internal/service/tasks"
	"github.com/joinboard/joinboard-api/internal/store"
)

// application bundles the wired dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	taskStore     store.TaskStore
	subtaskStore  store.SubtaskStore
	categoryStore store.CategoryStore
	prioStore     store.PrioStore
	summaryStore  store.SummaryStore
	accountStore  store.AccountStore
	profileStore  store.ProfileStore
	tokenStore    store.RevokedTokenStore

	jwtService     auth.JWTService
	taskService    *tasks.Service
	sessionService *session.Service
}

// newApplication connects to the database and wires up stores, services,
// and the JWT signer.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config: cfg,
		logger: log,
		db:     db,

		userStore:     postgres.NewPostgresUserStore(db, log),
		taskStore:     postgres.NewPostgresTaskStore(db, log),
		subtaskStore:  postgres.NewPostgresSubtaskStore(db, log),
		categoryStore: postgres.NewPostgresCategoryStore(db, log),
		prioStore:     postgres.NewPostgresPrioStore(db, log),
		summaryStore:  postgres.NewPostgresSummaryStore(db, log),
		accountStore:  postgres.NewPostgresAccountStore(db, log),
		profileStore:  postgres.NewPostgresProfileStore(db, log),
		tokenStore:    postgres.NewPostgresRevokedTokenStore(db, log),

		jwtService: jwtService,
	}

	app.taskService = tasks.NewService(db, app.taskStore, app.subtaskStore, log)
	app.sessionService = session.NewService(
		db,
		app.accountStore,
		app.tokenStore,
		jwtService,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		log,
	)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}
}
