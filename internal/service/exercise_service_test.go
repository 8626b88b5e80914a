package service

import (
	"context"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"cs_hub_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExerciseService(t *testing.T, db *gorm.DB) *ExerciseService {
	t.Helper()
	return NewExerciseService(
		repository.NewExerciseRepository(db),
		repository.NewChapterRepository(db),
		repository.NewProgressRepository(db),
		repository.NewSubmissionRepository(db),
		nil, // không dùng redis trong test
		time.Minute,
	)
}

func seedExercise(t *testing.T, db *gorm.DB, slug, subject string, chapter, number, points int, published bool) *model.Exercise {
	t.Helper()
	exercise := &model.Exercise{
		Slug:           slug,
		SubjectSlug:    subject,
		ChapterNumber:  chapter,
		ExerciseNumber: number,
		Title:          "Bài " + slug,
		Difficulty:     model.DifficultyMedium,
		Points:         points,
		TimeLimit:      30,
		IsPublished:    published,
	}
	require.NoError(t, db.Create(exercise).Error)
	return exercise
}

func seedChapter(t *testing.T, db *gorm.DB, subject string, number int, published bool) {
	t.Helper()
	require.NoError(t, db.Create(&model.Chapter{
		SubjectSlug:   subject,
		ChapterNumber: number,
		Title:         "Chương test",
		IsPublished:   published,
	}).Error)
}

func TestGetExercisesFiltersByChapter(t *testing.T) {
	db := newTestDB(t)
	svc := newExerciseService(t, db)

	seedExercise(t, db, "lap-trinh-c-ch01-bt01", "lap-trinh-c", 1, 1, 10, true)
	seedExercise(t, db, "lap-trinh-c-ch02-bt01", "lap-trinh-c", 2, 1, 10, true)
	seedExercise(t, db, "lap-trinh-c-ch02-bt02", "lap-trinh-c", 2, 2, 10, false)

	all, err := svc.GetExercises("lap-trinh-c", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	two := 2
	filtered, err := svc.GetExercises("lap-trinh-c", &two)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "lap-trinh-c-ch02-bt01", filtered[0].Slug)
}

func TestGetExerciseBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := newExerciseService(t, db)

	seedExercise(t, db, "ctdl-gt-ch01-bt01", "ctdl-gt", 1, 1, 10, true)
	seedExercise(t, db, "ctdl-gt-ch01-bt02", "ctdl-gt", 1, 2, 10, false)

	exercise, err := svc.GetExerciseBySlug("ctdl-gt-ch01-bt01")
	require.NoError(t, err)
	assert.Equal(t, "ctdl-gt-ch01-bt01", exercise.Slug)

	// Bài chưa publish và bài không tồn tại đều trả cùng một lỗi
	_, err = svc.GetExerciseBySlug("ctdl-gt-ch01-bt02")
	assert.ErrorIs(t, err, util.ErrExerciseNotFound)
	_, err = svc.GetExerciseBySlug("khong-co")
	assert.ErrorIs(t, err, util.ErrExerciseNotFound)
}

func TestSubmit(t *testing.T) {
	db := newTestDB(t)
	svc := newExerciseService(t, db)
	exercise := seedExercise(t, db, "lap-trinh-c-ch01-bt01", "lap-trinh-c", 1, 1, 15, true)

	progress, err := svc.Submit(7, exercise.Slug, "int main() { return 0; }")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, progress.Status)
	assert.Equal(t, 1, progress.Attempts)
	assert.Equal(t, 15, progress.Score)
	require.NotNil(t, progress.CompletedAt)
	assert.Equal(t, "int main() { return 0; }", progress.LastAnswer)

	// Nộp lần hai: attempts tăng, vẫn một bản ghi tiến độ duy nhất
	progress, err = svc.Submit(7, exercise.Slug, "câu trả lời khác")
	require.NoError(t, err)
	assert.Equal(t, 2, progress.Attempts)
	assert.Equal(t, "câu trả lời khác", progress.LastAnswer)

	var progressCount int64
	require.NoError(t, db.Model(&model.UserExerciseProgress{}).Count(&progressCount).Error)
	assert.EqualValues(t, 1, progressCount)

	// Mỗi lần nộp thêm một dòng log submission
	var submissionCount int64
	require.NoError(t, db.Model(&model.ExerciseSubmission{}).Count(&submissionCount).Error)
	assert.EqualValues(t, 2, submissionCount)
}

func TestSubmitUnknownExercise(t *testing.T) {
	db := newTestDB(t)
	svc := newExerciseService(t, db)

	_, err := svc.Submit(7, "khong-ton-tai", "x")
	assert.ErrorIs(t, err, util.ErrExerciseNotFound)

	var count int64
	require.NoError(t, db.Model(&model.ExerciseSubmission{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitIsolatedPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newExerciseService(t, db)
	exercise := seedExercise(t, db, "lap-trinh-c-ch01-bt01", "lap-trinh-c", 1, 1, 10, true)

	_, err := svc.Submit(1, exercise.Slug, "của user 1")
	require.NoError(t, err)
	progress, err := svc.Submit(2, exercise.Slug, "của user 2")
	require.NoError(t, err)
	assert.Equal(t, 1, progress.Attempts)

	byUser, err := svc.GetUserProgress(1)
	require.NoError(t, err)
	require.Contains(t, byUser, exercise.ID)
	assert.Equal(t, "của user 1", byUser[exercise.ID].LastAnswer)
}

func TestGetChapterSummaries(t *testing.T) {
	db := newTestDB(t)
	svc := newExerciseService(t, db)
	ctx := context.Background()

	seedChapter(t, db, "lap-trinh-c", 1, true)
	seedChapter(t, db, "lap-trinh-c", 2, true)
	seedChapter(t, db, "lap-trinh-c", 3, true) // chương không có bài tập

	seedExercise(t, db, "lap-trinh-c-ch01-bt01", "lap-trinh-c", 1, 1, 10, true)
	seedExercise(t, db, "lap-trinh-c-ch01-bt02", "lap-trinh-c", 1, 2, 10, true)
	seedExercise(t, db, "lap-trinh-c-ch01-bt03", "lap-trinh-c", 1, 3, 10, true)
	seedExercise(t, db, "lap-trinh-c-ch02-bt01", "lap-trinh-c", 2, 1, 10, true)

	_, err := svc.Submit(7, "lap-trinh-c-ch01-bt01", "xong")
	require.NoError(t, err)
	_, err = svc.Submit(7, "lap-trinh-c-ch01-bt02", "xong")
	require.NoError(t, err)

	summaries, err := svc.GetChapterSummaries(ctx, "lap-trinh-c", 7)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, 3, summaries[0].Total)
	assert.Equal(t, 2, summaries[0].Completed)
	assert.Equal(t, 67, summaries[0].Percent)

	assert.Equal(t, 1, summaries[1].Total)
	assert.Equal(t, 0, summaries[1].Completed)
	assert.Equal(t, 0, summaries[1].Percent)

	// Chương rỗng: percent 0 chứ không chia cho 0
	assert.Equal(t, 0, summaries[2].Total)
	assert.Equal(t, 0, summaries[2].Percent)
}
