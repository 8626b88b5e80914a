package repository

import (
	"cs_hub_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

// EnsureExists chèn chương nếu chưa có, giữ nguyên title đã đặt tay
// khi đụng khóa (subject_slug, chapter_number).
func (r *ChapterRepository) EnsureExists(chapter *model.Chapter) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_slug"}, {Name: "chapter_number"}},
		DoNothing: true,
	}).Create(chapter).Error
}

func (r *ChapterRepository) FindPublishedBySubject(subjectSlug string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.
		Where("subject_slug = ? AND is_published = ?", subjectSlug, true).
		Order("chapter_number asc").
		Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) FindBySubject(subjectSlug string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.
		Where("subject_slug = ?", subjectSlug).
		Order("chapter_number asc").
		Find(&chapters).Error
	return chapters, err
}
