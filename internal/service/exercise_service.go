package service

import (
	"context"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/util"
	"cs_hub_backend/pkg/logger"
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func chapterCacheKey(subjectSlug string) string {
	return "cs_hub:chapters:" + subjectSlug
}

// ExerciseService là lớp đọc trên canonical store cộng flow nộp
// bài. Mọi truy vấn chỉ thấy nội dung đã publish, bất kể người gọi.
type ExerciseService struct {
	ExerciseRepo   *repository.ExerciseRepository
	ChapterRepo    *repository.ChapterRepository
	ProgressRepo   *repository.ProgressRepository
	SubmissionRepo *repository.SubmissionRepository
	Redis          *redis.Client
	CacheTTL       time.Duration
}

func NewExerciseService(
	exerciseRepo *repository.ExerciseRepository,
	chapterRepo *repository.ChapterRepository,
	progressRepo *repository.ProgressRepository,
	submissionRepo *repository.SubmissionRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *ExerciseService {
	return &ExerciseService{
		ExerciseRepo:   exerciseRepo,
		ChapterRepo:    chapterRepo,
		ProgressRepo:   progressRepo,
		SubmissionRepo: submissionRepo,
		Redis:          rdb,
		CacheTTL:       cacheTTL,
	}
}

func (s *ExerciseService) GetExercises(subjectSlug string, chapter *int) ([]model.Exercise, error) {
	return s.ExerciseRepo.FindPublishedBySubject(subjectSlug, chapter)
}

func (s *ExerciseService) GetExerciseBySlug(slug string) (*model.Exercise, error) {
	exercise, err := s.ExerciseRepo.FindPublishedBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExerciseNotFound
	}
	return exercise, err
}

// GetChapters đọc danh sách chương đã publish của một môn, cache
// redis theo TTL; cache hỏng thì rơi về database.
func (s *ExerciseService) GetChapters(ctx context.Context, subjectSlug string) ([]model.Chapter, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, chapterCacheKey(subjectSlug)).Bytes()
		if err == nil {
			var chapters []model.Chapter
			if err := json.Unmarshal(cached, &chapters); err == nil {
				return chapters, nil
			}
		}
	}

	chapters, err := s.ChapterRepo.FindPublishedBySubject(subjectSlug)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(chapters); err == nil {
			if err := s.Redis.Set(ctx, chapterCacheKey(subjectSlug), payload, s.CacheTTL).Err(); err != nil {
				logger.Log.Warn("chapter cache write failed", zap.Error(err))
			}
		}
	}

	return chapters, nil
}

// GetUserProgress đọc toàn bộ tiến độ của user một lượt, đánh index
// theo exercise id để view tra O(1).
func (s *ExerciseService) GetUserProgress(userID uint) (map[uint]model.UserExerciseProgress, error) {
	rows, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	progress := make(map[uint]model.UserExerciseProgress, len(rows))
	for _, row := range rows {
		progress[row.ExerciseID] = row
	}
	return progress, nil
}

// Submit ghi một lượt nộp bài: log submission trước (insert hỏng
// thì cả lượt fail), rồi upsert tiến độ. Không có bước chấm bài —
// nộp bất kỳ nội dung gì cũng tính là hoàn thành; score lưu bằng
// điểm của bài tập.
func (s *ExerciseService) Submit(userID uint, exerciseSlug, answer string) (*model.UserExerciseProgress, error) {
	exercise, err := s.GetExerciseBySlug(exerciseSlug)
	if err != nil {
		return nil, err
	}

	submission := model.ExerciseSubmission{
		UserID:     userID,
		ExerciseID: exercise.ID,
		Content:    answer,
	}
	if err := s.SubmissionRepo.Create(&submission); err != nil {
		return nil, err
	}

	if err := s.ProgressRepo.RecordSubmission(userID, exercise.ID, answer, exercise.Points); err != nil {
		return nil, err
	}

	return s.ProgressRepo.FindByUserAndExercise(userID, exercise.ID)
}

// ChapterProgressSummary là phần trăm hoàn thành của user trong một
// chương, tính lại từ tập bài tập và tiến độ mỗi lần gọi.
type ChapterProgressSummary struct {
	Chapter   model.Chapter `json:"chapter"`
	Total     int           `json:"total"`
	Completed int           `json:"completed"`
	Percent   int           `json:"percent"`
}

// GetChapterSummaries tính completed/total cho từng chương của môn.
// Chương không có bài tập thì percent là 0, không chia cho 0.
func (s *ExerciseService) GetChapterSummaries(ctx context.Context, subjectSlug string, userID uint) ([]ChapterProgressSummary, error) {
	chapters, err := s.GetChapters(ctx, subjectSlug)
	if err != nil {
		return nil, err
	}

	exercises, err := s.ExerciseRepo.FindPublishedBySubject(subjectSlug, nil)
	if err != nil {
		return nil, err
	}

	progress, err := s.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ChapterProgressSummary, 0, len(chapters))
	for _, chapter := range chapters {
		summary := ChapterProgressSummary{Chapter: chapter}
		for _, exercise := range exercises {
			if exercise.ChapterNumber != chapter.ChapterNumber {
				continue
			}
			summary.Total++
			if p, ok := progress[exercise.ID]; ok && p.Status == model.StatusCompleted {
				summary.Completed++
			}
		}
		if summary.Total > 0 {
			summary.Percent = int(math.Round(float64(summary.Completed) / float64(summary.Total) * 100))
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
