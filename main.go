package main

import (
	"cs_hub_backend/internal/app"
	"cs_hub_backend/internal/config"
	"cs_hub_backend/pkg/configwatcher"
	"cs_hub_backend/pkg/database"
	"cs_hub_backend/pkg/logger"
	"flag"
	"log"
	"path/filepath"

	"go.uber.org/zap"
)

// @title CS Hub API
// @version 1.0
// @description Backend chia sẻ tài liệu và luyện bài tập cho sinh viên CNTT.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	configDir := flag.String("config", "configs", "thư mục chứa file cấu hình")
	migrate := flag.Bool("migrate", false, "chạy migration trước khi khởi động")
	migrateOnly := flag.Bool("migrate-only", false, "chỉ chạy migration rồi thoát")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if cfg.MigrateOnly {
		if err := database.Migrate(application.DB); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration completed")
		return
	}

	configFile := filepath.Join(*configDir, "config.yaml")
	go configwatcher.WatchConfig(configFile, func(next *config.Config) {
		logger.Log.Info("Config file reloaded",
			zap.String("path", configFile),
			zap.String("mode", next.Server.Mode))
	})

	application.Run()
}
