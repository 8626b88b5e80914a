package repository

import (
	"cs_hub_backend/internal/model"

	"gorm.io/gorm"
)

// SubmissionRepository ghi log nộp bài. Bảng append-only: chỉ có
// Create và các hàm đọc, không update không delete.
type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.ExerciseSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByUserAndExercise(userID, exerciseID uint) ([]model.ExerciseSubmission, error) {
	var submissions []model.ExerciseSubmission
	err := r.DB.
		Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Order("created_at asc").
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) CountByUserAndExercise(userID, exerciseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ExerciseSubmission{}).
		Where("user_id = ? AND exercise_id = ?", userID, exerciseID).
		Count(&count).Error
	return count, err
}
