package repository

import (
	"cs_hub_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindAll() ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Order("name asc").Find(&subjects).Error
	return subjects, err
}

func (r *SubjectRepository) FindBySlug(slug string) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Where("slug = ?", slug).First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

// CountChaptersBySubject gom số chương theo slug môn học
func (r *SubjectRepository) CountChaptersBySubject() (map[string]int64, error) {
	return r.countGrouped(&model.Chapter{})
}

func (r *SubjectRepository) CountDocumentsBySubject() (map[string]int64, error) {
	return r.countGrouped(&model.Document{})
}

func (r *SubjectRepository) countGrouped(m interface{}) (map[string]int64, error) {
	type row struct {
		SubjectSlug string
		Total       int64
	}
	var rows []row
	err := r.DB.Model(m).
		Select("subject_slug, count(*) as total").
		Group("subject_slug").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.SubjectSlug] = row.Total
	}
	return counts, nil
}
