package repository

import (
	"cs_hub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExerciseRepository struct {
	DB *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{DB: db}
}

// Upsert ghi đè toàn bộ bản ghi khi trùng slug thay vì merge từng
// field; slug là khóa upsert ổn định nên chạy lại sync không tạo
// bản ghi trùng.
func (r *ExerciseRepository) Upsert(exercise *model.Exercise) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subject_slug", "chapter_number", "exercise_number", "title",
			"difficulty", "content", "solution", "hints", "tags",
			"points", "time_limit", "is_published", "updated_at",
		}),
	}).Create(exercise).Error
}

// FindPublishedBySubject liệt kê bài tập đã publish của một môn,
// sắp theo chương rồi số bài tăng dần; chapter != nil thì lọc thêm.
func (r *ExerciseRepository) FindPublishedBySubject(subjectSlug string, chapter *int) ([]model.Exercise, error) {
	query := r.DB.
		Where("subject_slug = ? AND is_published = ?", subjectSlug, true).
		Order("chapter_number asc").
		Order("exercise_number asc")

	if chapter != nil {
		query = query.Where("chapter_number = ?", *chapter)
	}

	var exercises []model.Exercise
	err := query.Find(&exercises).Error
	return exercises, err
}

func (r *ExerciseRepository) FindPublishedBySlug(slug string) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.Where("slug = ? AND is_published = ?", slug, true).First(&exercise).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) FindByID(id uint) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.DB.First(&exercise, id).Error
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *ExerciseRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Exercise{}).Count(&count).Error
	return count, err
}
