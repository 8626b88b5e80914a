package app

import (
	"context"
	"cs_hub_backend/internal/config"
	"cs_hub_backend/internal/controller"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/service"
	"cs_hub_backend/pkg/database"
	"cs_hub_backend/pkg/logger"
	"cs_hub_backend/pkg/monitoring"
	"cs_hub_backend/pkg/security"
	"cs_hub_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerShutdown func(context.Context) error
}

type repositories struct {
	user       *repository.UserRepository
	subject    *repository.SubjectRepository
	chapter    *repository.ChapterRepository
	exercise   *repository.ExerciseRepository
	progress   *repository.ProgressRepository
	submission *repository.SubmissionRepository
	document   *repository.DocumentRepository
	message    *repository.MessageRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	subject   *service.SubjectService
	exercise  *service.ExerciseService
	authoring *service.ExerciseAuthoringService
	sync      *service.ExerciseSyncService
	document  *service.DocumentService
	message   *service.MessageService
}

type controllers struct {
	auth          *controller.AuthController
	subject       *controller.SubjectController
	exercise      *controller.ExerciseController
	adminExercise *controller.AdminExerciseController
	document      *controller.DocumentController
	message       *controller.MessageController
	health        *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		subject:    repository.NewSubjectRepository(db),
		chapter:    repository.NewChapterRepository(db),
		exercise:   repository.NewExerciseRepository(db),
		progress:   repository.NewProgressRepository(db),
		submission: repository.NewSubmissionRepository(db),
		document:   repository.NewDocumentRepository(db),
		message:    repository.NewMessageRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	s := &services{storage: storage}
	s.auth = service.NewAuthService(repos.user, cfg)
	s.subject = service.NewSubjectService(repos.subject, repos.chapter)
	s.exercise = service.NewExerciseService(repos.exercise, repos.chapter, repos.progress, repos.submission, rdb, cfg.Content.CacheTTL)
	s.authoring = service.NewExerciseAuthoringService(cfg.Content.ExercisesDir)
	s.sync = service.NewExerciseSyncService(repos.exercise, repos.chapter, rdb, cfg.Content.ExercisesDir)
	s.document = service.NewDocumentService(repos.document, repos.subject, storage)
	s.message = service.NewMessageService(repos.message, repos.user)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:          controller.NewAuthController(s.auth),
		subject:       controller.NewSubjectController(s.subject),
		exercise:      controller.NewExerciseController(s.exercise),
		adminExercise: controller.NewAdminExerciseController(s.authoring, s.sync),
		document:      controller.NewDocumentController(s.document),
		message:       controller.NewMessageController(s.message),
		health:        controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, cfg.ForceMigrate)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	if cfg.MigrateOnly {
		return app, nil
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		return nil, err
	}
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg.Server.Mode))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("cs-hub", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, err
		}
		app.tracerShutdown = tp.Shutdown
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.tracerShutdown != nil {
		if err := a.tracerShutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if err := a.Redis.Close(); err != nil {
		logger.Log.Error("Failed to close redis", zap.Error(err))
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
