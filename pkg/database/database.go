package database

import (
	"cs_hub_backend/internal/config"
	"cs_hub_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string, forceMigrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logMode := logger.Warn
	if mode == "debug" {
		logMode = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Chỉ migrate ở chế độ debug hoặc khi có cờ -migrate
	if mode != "release" || forceMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")
	}

	if err := seedSubjects(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Exercise{},
		&model.UserExerciseProgress{},
		&model.ExerciseSubmission{},
		&model.Document{},
		&model.Conversation{},
		&model.ConversationParticipant{},
		&model.Message{},
	)
}

// seedSubjects chèn danh sách môn học mặc định khi bảng còn trống
func seedSubjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []struct {
		subject  model.Subject
		chapters []string
	}{
		{
			subject: model.Subject{
				Slug:        "lap-trinh-c",
				Name:        "Lập trình C",
				Category:    model.CategoryCS,
				Description: "Ngôn ngữ C từ cơ bản đến con trỏ và cấp phát động",
				Icon:        "code",
				Color:       "#2563eb",
			},
			chapters: []string{
				"Nhập môn và môi trường",
				"Biến, kiểu dữ liệu và toán tử",
				"Cấu trúc điều khiển",
				"Hàm và đệ quy",
				"Mảng và chuỗi",
				"Con trỏ",
			},
		},
		{
			subject: model.Subject{
				Slug:        "ctdl-gt",
				Name:        "Cấu trúc dữ liệu và giải thuật",
				Category:    model.CategoryCS,
				Description: "Danh sách, cây, đồ thị và các giải thuật kinh điển",
				Icon:        "git-branch",
				Color:       "#16a34a",
			},
			chapters: []string{
				"Độ phức tạp thuật toán",
				"Danh sách liên kết",
				"Ngăn xếp và hàng đợi",
				"Cây nhị phân",
			},
		},
		{
			subject: model.Subject{
				Slug:        "toan-roi-rac",
				Name:        "Toán rời rạc",
				Category:    model.CategoryCS,
				Description: "Logic, tập hợp, tổ hợp và lý thuyết đồ thị",
				Icon:        "sigma",
				Color:       "#9333ea",
			},
			chapters: []string{
				"Logic mệnh đề",
				"Tập hợp và ánh xạ",
				"Tổ hợp",
			},
		},
		{
			subject: model.Subject{
				Slug:        "tieng-anh",
				Name:        "Tiếng Anh",
				Category:    model.CategoryGeneral,
				Description: "Tiếng Anh học thuật cho sinh viên CNTT",
				Icon:        "languages",
				Color:       "#ea580c",
			},
			chapters: []string{
				"Reading comprehension",
				"Technical vocabulary",
			},
		},
	}

	for _, d := range defaults {
		if err := db.Create(&d.subject).Error; err != nil {
			return err
		}
		for i, title := range d.chapters {
			chapter := model.Chapter{
				SubjectSlug:   d.subject.Slug,
				ChapterNumber: i + 1,
				Title:         title,
				IsPublished:   true,
			}
			if err := db.Create(&chapter).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded subject: %s", d.subject.Name)
	}

	return nil
}
