package repository

import (
	"cs_hub_backend/internal/model"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(document *model.Document) error {
	return r.DB.Create(document).Error
}

// FindAll lọc theo môn/chương/từ khóa, mới nhất trước
func (r *DocumentRepository) FindAll(subjectSlug string, chapterID *uint, search string) ([]model.Document, error) {
	query := r.DB.Preload("UploadedBy").Order("created_at desc")

	if subjectSlug != "" {
		query = query.Where("subject_slug = ?", subjectSlug)
	}
	if chapterID != nil {
		query = query.Where("chapter_id = ?", *chapterID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var documents []model.Document
	err := query.Find(&documents).Error
	return documents, err
}

func (r *DocumentRepository) FindByID(id uint) (*model.Document, error) {
	var document model.Document
	err := r.DB.Preload("UploadedBy").First(&document, id).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// IncrementDownloads tăng bộ đếm ngay trên server, không read-modify-write
func (r *DocumentRepository) IncrementDownloads(id uint) error {
	return r.DB.Model(&model.Document{}).Where("id = ?", id).
		Update("downloads", gorm.Expr("downloads + 1")).Error
}
