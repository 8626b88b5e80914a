package repository

import (
	"cs_hub_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// RecordSubmission upsert tiến độ theo khóa (user_id, exercise_id):
// lần đầu tạo bản ghi attempts=1, các lần sau tăng attempts ngay
// trên server bằng biểu thức attempts + 1 nên hai lần nộp đồng thời
// không làm mất lượt đếm. Mọi lần nộp đều ép status=completed —
// hệ thống không chấm bài, nộp tức là hoàn thành.
func (r *ProgressRepository) RecordSubmission(userID, exerciseID uint, answer string, score int) error {
	now := time.Now()
	progress := model.UserExerciseProgress{
		UserID:      userID,
		ExerciseID:  exerciseID,
		Status:      model.StatusCompleted,
		Attempts:    1,
		Score:       score,
		StartedAt:   &now,
		CompletedAt: &now,
		LastAnswer:  answer,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "exercise_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":       model.StatusCompleted,
			"attempts":     gorm.Expr("attempts + 1"),
			"score":        score,
			"completed_at": now,
			"last_answer":  answer,
			"updated_at":   now,
		}),
	}).Create(&progress).Error
}

func (r *ProgressRepository) FindByUser(userID uint) ([]model.UserExerciseProgress, error) {
	var progress []model.UserExerciseProgress
	err := r.DB.Where("user_id = ?", userID).Find(&progress).Error
	return progress, err
}

func (r *ProgressRepository) FindByUserAndExercise(userID, exerciseID uint) (*model.UserExerciseProgress, error) {
	var progress model.UserExerciseProgress
	err := r.DB.Where("user_id = ? AND exercise_id = ?", userID, exerciseID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
