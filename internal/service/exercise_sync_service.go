package service

import (
	"context"
	"cs_hub_backend/internal/contentstore"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/pkg/logger"
	"cs_hub_backend/pkg/monitoring"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// maxRunOutput chặn trần log của một lần sync (5 MiB); vượt trần
// thì cả run fail thay vì phình bộ nhớ.
const maxRunOutput = 5 * 1024 * 1024

var errOutputCeiling = errors.New("sync output exceeded buffer ceiling")

// ExerciseSyncService quét toàn bộ content store và upsert từng bài
// tập vào database theo slug. Lỗi của từng bài được ghi nhận và đếm
// nhưng không làm dừng cả lượt chạy.
type ExerciseSyncService struct {
	ExerciseRepo *repository.ExerciseRepository
	ChapterRepo  *repository.ChapterRepository
	Redis        *redis.Client // nil thì bỏ qua invalidate cache
	Root         string
}

func NewExerciseSyncService(exerciseRepo *repository.ExerciseRepository, chapterRepo *repository.ChapterRepository, rdb *redis.Client, root string) *ExerciseSyncService {
	return &ExerciseSyncService{
		ExerciseRepo: exerciseRepo,
		ChapterRepo:  chapterRepo,
		Redis:        rdb,
		Root:         root,
	}
}

type SyncResult struct {
	Synced int    `json:"synced"`
	Failed int    `json:"failed"`
	Output string `json:"output"`
}

// runLog gom output của một lượt sync, fail khi vượt trần
type runLog struct {
	b strings.Builder
}

func (l *runLog) printf(format string, args ...interface{}) error {
	line := fmt.Sprintf(format, args...)
	if l.b.Len()+len(line)+1 > maxRunOutput {
		return errOutputCeiling
	}
	l.b.WriteString(line)
	l.b.WriteString("\n")
	return nil
}

// Run quét cây bài tập. Kết quả luôn được trả về kèm tally; err
// khác nil khi có ít nhất một bài lỗi hoặc khi cả run không chạy
// được (thiếu thư mục, tràn buffer).
func (s *ExerciseSyncService) Run(ctx context.Context) (*SyncResult, error) {
	out := &runLog{}
	result := &SyncResult{}

	if _, err := os.Stat(s.Root); err != nil {
		monitoring.SyncRunCounter.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("không tìm thấy thư mục %s: %w", s.Root, err)
	}

	out.printf("Đang đồng bộ bài tập từ %s", s.Root)
	touched := map[string]bool{}
	lastSubject := ""

	walkErr := contentstore.Walk(s.Root, func(entry contentstore.Entry) error {
		if entry.SubjectSlug != lastSubject {
			lastSubject = entry.SubjectSlug
			if err := out.printf("Môn học: %s", entry.SubjectSlug); err != nil {
				return err
			}
		}

		raw, err := os.ReadFile(entry.ReadmePath())
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Log.Warn("exercise missing README, skipped",
					zap.String("dir", entry.Dir))
				return out.printf("  Bỏ qua %s - không có README.md", entry.Rel())
			}
			result.Failed++
			monitoring.SyncItemCounter.WithLabelValues("error").Inc()
			return out.printf("  Lỗi đọc %s: %v", entry.Rel(), err)
		}

		exercise, err := s.buildExercise(entry, raw)
		if err != nil {
			result.Failed++
			monitoring.SyncItemCounter.WithLabelValues("error").Inc()
			logger.Log.Error("exercise parse failed",
				zap.String("dir", entry.Dir), zap.Error(err))
			return out.printf("  Lỗi parse %s: %v", entry.Rel(), err)
		}

		if err := s.ExerciseRepo.Upsert(exercise); err != nil {
			result.Failed++
			monitoring.SyncItemCounter.WithLabelValues("error").Inc()
			logger.Log.Error("exercise upsert failed",
				zap.String("slug", exercise.Slug), zap.Error(err))
			return out.printf("  Lỗi %s: %v", entry.Rel(), err)
		}

		// Chương sinh ngầm định từ bài tập, giữ title nếu đã có
		chapter := model.Chapter{
			SubjectSlug:   entry.SubjectSlug,
			ChapterNumber: entry.ChapterNumber,
			Title:         fmt.Sprintf("Chương %d", entry.ChapterNumber),
			IsPublished:   true,
		}
		if err := s.ChapterRepo.EnsureExists(&chapter); err != nil {
			result.Failed++
			monitoring.SyncItemCounter.WithLabelValues("error").Inc()
			return out.printf("  Lỗi chương %s: %v", entry.Rel(), err)
		}

		result.Synced++
		monitoring.SyncItemCounter.WithLabelValues("ok").Inc()
		touched[entry.SubjectSlug] = true
		return out.printf("  Đã sync: %s - %s", entry.Rel(), exercise.Title)
	})

	if walkErr != nil {
		monitoring.SyncRunCounter.WithLabelValues("error").Inc()
		result.Output = out.b.String()
		return result, walkErr
	}

	s.invalidateCache(ctx, touched)

	out.printf("Kết quả: %d đã đồng bộ, %d lỗi", result.Synced, result.Failed)
	result.Output = out.b.String()

	if result.Failed > 0 {
		monitoring.SyncRunCounter.WithLabelValues("error").Inc()
		return result, fmt.Errorf("%d bài tập đồng bộ thất bại", result.Failed)
	}

	monitoring.SyncRunCounter.WithLabelValues("ok").Inc()
	logger.Log.Info("exercise sync completed", zap.Int("synced", result.Synced))
	return result, nil
}

// buildExercise chuyển một thư mục bài tập thành bản ghi database,
// áp dụng đủ chuỗi fallback của format: id -> pattern, title ->
// dòng đầu thân bài -> "Bài tập <n>", difficulty/points/time_limit
// về mặc định khi thiếu.
func (s *ExerciseSyncService) buildExercise(entry contentstore.Entry, raw []byte) (*model.Exercise, error) {
	fm, body, err := contentstore.ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	slug := fm.ID
	if slug == "" {
		slug = contentstore.ExerciseID(entry.SubjectSlug, entry.ChapterNumber, entry.ExerciseNumber)
	}

	title := fm.Title
	if title == "" {
		firstLine := strings.TrimSpace(strings.SplitN(body, "\n", 2)[0])
		title = strings.TrimPrefix(firstLine, "# ")
	}
	if title == "" {
		title = fmt.Sprintf("Bài tập %d", entry.ExerciseNumber)
	}

	difficulty := fm.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	points := fm.Points
	if points == 0 {
		points = model.DefaultPoints
	}
	timeLimit := fm.TimeLimit
	if timeLimit == 0 {
		timeLimit = model.DefaultTimeLimit
	}

	solution := ""
	if raw, err := os.ReadFile(entry.SolutionPath()); err == nil {
		solution = string(raw)
	}

	var hints []string
	if raw, err := os.ReadFile(entry.HintsPath()); err == nil {
		hints = contentstore.ParseHints(raw)
	}

	var hintsJSON json.RawMessage
	if len(hints) > 0 {
		hintsJSON, _ = json.Marshal(hints)
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, _ := json.Marshal(tags)

	return &model.Exercise{
		Slug:           slug,
		SubjectSlug:    entry.SubjectSlug,
		ChapterNumber:  entry.ChapterNumber,
		ExerciseNumber: entry.ExerciseNumber,
		Title:          title,
		Difficulty:     difficulty,
		Content:        body,
		Solution:       solution,
		Hints:          hintsJSON,
		Tags:           tagsJSON,
		Points:         points,
		TimeLimit:      timeLimit,
		IsPublished:    true,
	}, nil
}

func (s *ExerciseSyncService) invalidateCache(ctx context.Context, subjects map[string]bool) {
	if s.Redis == nil {
		return
	}
	for subject := range subjects {
		if err := s.Redis.Del(ctx, chapterCacheKey(subject)).Err(); err != nil {
			logger.Log.Warn("cache invalidation failed",
				zap.String("subject", subject), zap.Error(err))
		}
	}
}
