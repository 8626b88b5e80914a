package service

import (
	"context"
	"cs_hub_backend/internal/contentstore"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/repository"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSyncService(t *testing.T, db *gorm.DB, root string) *ExerciseSyncService {
	t.Helper()
	return NewExerciseSyncService(
		repository.NewExerciseRepository(db),
		repository.NewChapterRepository(db),
		nil, // không cần redis trong test
		root,
	)
}

func writeExerciseDir(t *testing.T, root, subject string, chapter, exercise int, files map[string]string) string {
	t.Helper()
	dir := contentstore.ExerciseDir(root, subject, chapter, exercise)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const sampleReadme = `---
id: lap-trinh-c-ch01-bt01
title: "Mảng một chiều"
difficulty: easy
tags: ["mang"]
points: 15
time_limit: 45
---

# Bài tập 1: Mảng một chiều

Cho một mảng số nguyên...
`

func TestSyncRun(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	writeExerciseDir(t, root, "lap-trinh-c", 1, 1, map[string]string{
		"README.md":   sampleReadme,
		"solution.md": "# Lời giải\n\nDuyệt một vòng.\n",
		"hints.md":    "## Gợi ý 1\n> Dùng vòng lặp.\n",
	})

	svc := newSyncService(t, db, root)
	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 0, result.Failed)
	assert.Contains(t, result.Output, "lap-trinh-c")

	var exercise model.Exercise
	require.NoError(t, db.Where("slug = ?", "lap-trinh-c-ch01-bt01").First(&exercise).Error)
	assert.Equal(t, "Mảng một chiều", exercise.Title)
	assert.Equal(t, "easy", exercise.Difficulty)
	assert.Equal(t, 15, exercise.Points)
	assert.Equal(t, 45, exercise.TimeLimit)
	assert.True(t, exercise.IsPublished)
	assert.Equal(t, []string{"Dùng vòng lặp."}, exercise.HintList())
	assert.Equal(t, []string{"mang"}, exercise.TagList())
	assert.Contains(t, exercise.Solution, "Duyệt một vòng.")

	// Chương được sinh ngầm định từ bài tập
	var chapter model.Chapter
	require.NoError(t, db.Where("subject_slug = ? AND chapter_number = ?", "lap-trinh-c", 1).First(&chapter).Error)
	assert.Equal(t, "Chương 1", chapter.Title)
}

// Chạy sync hai lần trên cùng nội dung không được nhân đôi bản ghi,
// sửa nội dung rồi sync lại thì bản ghi cũ được cập nhật theo slug.
func TestSyncRunIdempotent(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	dir := writeExerciseDir(t, root, "lap-trinh-c", 1, 1, map[string]string{
		"README.md": sampleReadme,
	})

	svc := newSyncService(t, db, root)
	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	_, err = svc.Run(context.Background())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Exercise{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	require.NoError(t, db.Model(&model.Chapter{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	updated := `---
id: lap-trinh-c-ch01-bt01
title: "Tiêu đề mới"
points: 99
---

Nội dung mới.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(updated), 0o644))
	_, err = svc.Run(context.Background())
	require.NoError(t, err)

	var exercise model.Exercise
	require.NoError(t, db.Where("slug = ?", "lap-trinh-c-ch01-bt01").First(&exercise).Error)
	assert.Equal(t, "Tiêu đề mới", exercise.Title)
	assert.Equal(t, 99, exercise.Points)
	require.NoError(t, db.Model(&model.Exercise{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// README thiếu metadata: slug suy ra từ vị trí thư mục, title lấy
// dòng đầu của thân bài, các trường còn lại về mặc định.
func TestSyncRunFallbacks(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	writeExerciseDir(t, root, "ctdl-gt", 2, 3, map[string]string{
		"README.md": "# Cây nhị phân tìm kiếm\n\nCài đặt BST.\n",
	})

	svc := newSyncService(t, db, root)
	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)

	var exercise model.Exercise
	require.NoError(t, db.Where("slug = ?", "ctdl-gt-ch02-bt03").First(&exercise).Error)
	assert.Equal(t, "Cây nhị phân tìm kiếm", exercise.Title)
	assert.Equal(t, "medium", exercise.Difficulty)
	assert.Equal(t, model.DefaultPoints, exercise.Points)
	assert.Equal(t, model.DefaultTimeLimit, exercise.TimeLimit)
	assert.Nil(t, exercise.HintList())
	assert.Equal(t, []string{}, exercise.TagList())
}

// Chương đã có title đặt tay phải giữ nguyên qua các lượt sync,
// không bị ghi đè bằng "Chương <n>" mặc định.
func TestSyncRunKeepsExistingChapterTitle(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	writeExerciseDir(t, root, "lap-trinh-c", 1, 1, map[string]string{
		"README.md": sampleReadme,
	})

	require.NoError(t, db.Create(&model.Chapter{
		SubjectSlug:   "lap-trinh-c",
		ChapterNumber: 1,
		Title:         "Con trỏ và bộ nhớ",
		IsPublished:   true,
	}).Error)

	svc := newSyncService(t, db, root)
	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	var chapter model.Chapter
	require.NoError(t, db.Where("subject_slug = ? AND chapter_number = ?", "lap-trinh-c", 1).First(&chapter).Error)
	assert.Equal(t, "Con trỏ và bộ nhớ", chapter.Title)

	var count int64
	require.NoError(t, db.Model(&model.Chapter{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// Sync xong phải xóa cache danh sách chương của đúng các môn có bài
// được đồng bộ; cache của môn không bị đụng tới thì giữ nguyên.
func TestSyncRunInvalidatesChapterCache(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	writeExerciseDir(t, root, "lap-trinh-c", 1, 1, map[string]string{
		"README.md": sampleReadme,
	})

	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer rdb.Close()

	require.NoError(t, srv.Set(chapterCacheKey("lap-trinh-c"), `[{"title":"cũ"}]`))
	require.NoError(t, srv.Set(chapterCacheKey("ctdl-gt"), `[{"title":"không đụng"}]`))

	svc := NewExerciseSyncService(
		repository.NewExerciseRepository(db),
		repository.NewChapterRepository(db),
		rdb,
		root,
	)
	_, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, srv.Exists(chapterCacheKey("lap-trinh-c")))
	assert.True(t, srv.Exists(chapterCacheKey("ctdl-gt")))
}

func TestSyncRunSkipsMissingReadme(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	writeExerciseDir(t, root, "lap-trinh-c", 1, 1, map[string]string{
		"README.md": sampleReadme,
	})
	// Thư mục hợp lệ nhưng không có README
	writeExerciseDir(t, root, "lap-trinh-c", 1, 2, map[string]string{
		"solution.md": "# Lời giải\n",
	})

	svc := newSyncService(t, db, root)
	result, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 0, result.Failed)
	assert.Contains(t, result.Output, "Bỏ qua")

	var count int64
	require.NoError(t, db.Model(&model.Exercise{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSyncRunMissingRoot(t *testing.T) {
	db := newTestDB(t)
	svc := newSyncService(t, db, filepath.Join(t.TempDir(), "khong-ton-tai"))

	result, err := svc.Run(context.Background())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestSyncRunCountsParseFailure(t *testing.T) {
	db := newTestDB(t)
	root := t.TempDir()
	writeExerciseDir(t, root, "lap-trinh-c", 1, 1, map[string]string{
		"README.md": "---\ntitle: [hỏng\n---\nthân\n",
	})
	writeExerciseDir(t, root, "lap-trinh-c", 1, 2, map[string]string{
		"README.md": sampleReadme,
	})

	svc := newSyncService(t, db, root)
	result, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Synced)
}
