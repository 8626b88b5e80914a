package service

import (
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
	ChapterRepo *repository.ChapterRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, chapterRepo *repository.ChapterRepository) *SubjectService {
	return &SubjectService{
		SubjectRepo: subjectRepo,
		ChapterRepo: chapterRepo,
	}
}

// SubjectWithCounts kèm số chương và số tài liệu cho trang danh sách
type SubjectWithCounts struct {
	model.Subject
	ChapterCount  int64 `json:"chapterCount"`
	DocumentCount int64 `json:"documentCount"`
}

func (s *SubjectService) GetSubjects() ([]SubjectWithCounts, error) {
	subjects, err := s.SubjectRepo.FindAll()
	if err != nil {
		return nil, err
	}

	chapterCounts, err := s.SubjectRepo.CountChaptersBySubject()
	if err != nil {
		return nil, err
	}
	documentCounts, err := s.SubjectRepo.CountDocumentsBySubject()
	if err != nil {
		return nil, err
	}

	result := make([]SubjectWithCounts, 0, len(subjects))
	for _, subject := range subjects {
		result = append(result, SubjectWithCounts{
			Subject:       subject,
			ChapterCount:  chapterCounts[subject.Slug],
			DocumentCount: documentCounts[subject.Slug],
		})
	}
	return result, nil
}

// SubjectDetail là môn học kèm danh sách chương của nó
type SubjectDetail struct {
	model.Subject
	Chapters []model.Chapter `json:"chapters"`
}

func (s *SubjectService) GetSubjectBySlug(slug string) (*SubjectDetail, error) {
	subject, err := s.SubjectRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	chapters, err := s.ChapterRepo.FindBySubject(slug)
	if err != nil {
		return nil, err
	}

	return &SubjectDetail{Subject: *subject, Chapters: chapters}, nil
}

func (s *SubjectService) CreateSubject(subject *model.Subject) error {
	if subject.Name == "" {
		return util.NewValidationError("name", "không được để trống")
	}
	if subject.Slug == "" {
		subject.Slug = util.Slugify(subject.Name)
	}
	if !util.IsValidSlug(subject.Slug) {
		return util.NewValidationError("slug", "slug không hợp lệ")
	}
	if subject.Category == "" {
		subject.Category = model.CategoryCS
	}

	return s.SubjectRepo.Create(subject)
}
