package service

import (
	"context"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/util"
	"errors"
	"io"
	"path/filepath"

	"gorm.io/gorm"
)

type DocumentService struct {
	DocumentRepo *repository.DocumentRepository
	SubjectRepo  *repository.SubjectRepository
	Storage      *StorageService
}

func NewDocumentService(documentRepo *repository.DocumentRepository, subjectRepo *repository.SubjectRepository, storage *StorageService) *DocumentService {
	return &DocumentService{
		DocumentRepo: documentRepo,
		SubjectRepo:  subjectRepo,
		Storage:      storage,
	}
}

type UploadDocumentRequest struct {
	Title       string
	Description string
	SubjectSlug string
	ChapterID   *uint
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Upload đẩy file lên storage rồi ghi metadata; tên file lưu trữ
// là uuid để không đụng nhau, giữ lại phần mở rộng gốc.
func (s *DocumentService) Upload(ctx context.Context, userID uint, req UploadDocumentRequest) (*model.Document, error) {
	if req.Title == "" {
		return nil, util.NewValidationError("title", "không được để trống")
	}

	if req.SubjectSlug != "" {
		if _, err := s.SubjectRepo.FindBySlug(req.SubjectSlug); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrSubjectNotFound
			}
			return nil, err
		}
	}

	storedName := model.GenerateUUID() + filepath.Ext(req.Filename)
	url, err := s.Storage.Upload(ctx, storedName, req.Reader, req.Size, req.ContentType)
	if err != nil {
		return nil, err
	}

	document := model.Document{
		Title:        req.Title,
		Description:  req.Description,
		SubjectSlug:  req.SubjectSlug,
		ChapterID:    req.ChapterID,
		FileURL:      url,
		FileType:     req.ContentType,
		FileSize:     req.Size,
		UploadedByID: userID,
	}
	if err := s.DocumentRepo.Create(&document); err != nil {
		return nil, err
	}

	return s.DocumentRepo.FindByID(document.ID)
}

func (s *DocumentService) GetDocuments(subjectSlug string, chapterID *uint, search string) ([]model.Document, error) {
	return s.DocumentRepo.FindAll(subjectSlug, chapterID, search)
}

func (s *DocumentService) GetDocument(id uint) (*model.Document, error) {
	document, err := s.DocumentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDocumentNotFound
	}
	return document, err
}

// Download tăng bộ đếm và trả lại URL file cho client tự tải
func (s *DocumentService) Download(id uint) (*model.Document, error) {
	document, err := s.GetDocument(id)
	if err != nil {
		return nil, err
	}

	if err := s.DocumentRepo.IncrementDownloads(id); err != nil {
		return nil, err
	}
	document.Downloads++

	return document, nil
}
