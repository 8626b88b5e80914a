// Script đồng bộ thủ công cây thư mục bài tập vào database.
//
// Chức năng này đã có endpoint POST /api/admin/exercises/sync trong app
// chính. Script này chỉ dùng khi cần chạy tay, ví dụ lần deploy đầu tiên
// hoặc sau khi import hàng loạt bài tập mới vào thư mục content.
//
// Cách dùng: go run scripts/sync_exercises.go

package main

import (
	"context"
	"cs_hub_backend/internal/config"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/service"
	"cs_hub_backend/pkg/database"
	"cs_hub_backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Không đọc được file cấu hình: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, false)
	if err != nil {
		log.Fatalf("Kết nối database thất bại: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Kết nối redis thất bại: %v", err)
	}

	syncService := service.NewExerciseSyncService(
		repository.NewExerciseRepository(db),
		repository.NewChapterRepository(db),
		rdb,
		cfg.Content.ExercisesDir,
	)

	log.Println("Bắt đầu đồng bộ bài tập...")
	result, err := syncService.Run(context.Background())
	if err != nil {
		if result != nil {
			log.Fatalf("Đồng bộ thất bại: %v\n%s", err, result.Output)
		}
		log.Fatalf("Đồng bộ thất bại: %v", err)
	}
	log.Printf("Xong! Đã đồng bộ %d bài tập, lỗi %d.\n%s",
		result.Synced, result.Failed, result.Output)
}
