package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"photoapp-backend/internal/assets"
	"photoapp-backend/internal/bucket"
	"photoapp-backend/internal/shared/config"
	"photoapp-backend/internal/shared/server"
	"photoapp-backend/internal/shared/storage/db"
	"photoapp-backend/internal/shared/storage/object"
	memorystore "photoapp-backend/internal/shared/storage/object/memory"
	s3store "photoapp-backend/internal/shared/storage/object/s3"
	"photoapp-backend/internal/users"
)

// App holds shared dependencies. The database connection and object-store
// client are process-wide and safe for concurrent use; each request's
// orchestration borrows them rather than opening its own.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Store         object.ObjectStore
	UsersRepo     users.Repo
	AssetsRepo    assets.Repo
	UsersService  *users.Service
	AssetsService *assets.Service
	BucketService *bucket.Service
	UsersHandler  *users.Handler
	AssetsHandler *assets.Handler
	BucketHandler *bucket.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		UsersHandler:  app.UsersHandler,
		AssetsHandler: app.AssetsHandler,
		BucketHandler: app.BucketHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return memorystore.New(), nil
	}
}

func buildServices(app *App) {
	var userRepo users.Repo
	var assetRepo assets.Repo

	if app.DB != nil {
		userRepo = &users.PGRepo{DB: app.DB}
		assetRepo = &assets.PGRepo{DB: app.DB}
	} else {
		userRepo = users.NewMemoryRepo()
		assetRepo = assets.NewMemoryRepo()
	}

	userSvc := users.NewService(userRepo)
	assetSvc := &assets.Service{
		Repo:   assetRepo,
		Owners: userRepo,
		Store:  app.Store,
	}
	bucketSvc := bucket.NewService(app.Store)

	app.UsersRepo = userRepo
	app.AssetsRepo = assetRepo
	app.UsersService = userSvc
	app.AssetsService = assetSvc
	app.BucketService = bucketSvc
	app.UsersHandler = users.NewHandler(userSvc)
	app.AssetsHandler = assets.NewHandler(assetSvc)
	app.BucketHandler = bucket.NewHandler(bucketSvc)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
