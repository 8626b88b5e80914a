package service

import (
	"cs_hub_backend/internal/contentstore"
	"cs_hub_backend/internal/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func validCreateRequest() CreateExerciseRequest {
	return CreateExerciseRequest{
		Subject:    "Lập Trình C",
		Chapter:    1,
		Exercise:   2,
		Title:      "Con trỏ cơ bản",
		Difficulty: "easy",
		Tags:       []string{"Con Trỏ", "Bộ Nhớ"},
		Content:    "# Đề bài\n\nViết chương trình hoán đổi hai số qua con trỏ.",
		Solution:   "```c\nvoid swap(int *a, int *b);\n```",
		Hints:      []string{"Truyền địa chỉ chứ không truyền giá trị."},
	}
}

func TestCreateExercise(t *testing.T) {
	svc := NewExerciseAuthoringService(t.TempDir())

	result, err := svc.CreateExercise(validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "lap-trinh-c-ch01-bt02", result.ID)
	assert.Equal(t, "lap-trinh-c", result.Subject)
	assert.Equal(t, 1, result.Chapter)
	assert.Equal(t, 2, result.Exercise)
	assert.Equal(t, []string{"README.md", "solution.md", "hints.md", "assets/"}, result.Files)

	// Đủ 4 artifact trên đĩa
	for _, name := range []string{"README.md", "solution.md", "hints.md"} {
		_, err := os.Stat(filepath.Join(result.Path, name))
		assert.NoError(t, err, name)
	}
	info, err := os.Stat(filepath.Join(result.Path, "assets"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// README phải đọc lại được với metadata đã chuẩn hoá
	raw, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	require.NoError(t, err)
	fm, _, err := contentstore.ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "lap-trinh-c-ch01-bt02", fm.ID)
	assert.Equal(t, []string{"con-tro", "bo-nho"}, fm.Tags)
	assert.Equal(t, 10, fm.Points)
	assert.Equal(t, 30, fm.TimeLimit)
}

func TestCreateExerciseValidation(t *testing.T) {
	svc := NewExerciseAuthoringService(t.TempDir())

	cases := []struct {
		name   string
		mutate func(*CreateExerciseRequest)
	}{
		{"thieu title", func(r *CreateExerciseRequest) { r.Title = "" }},
		{"thieu content", func(r *CreateExerciseRequest) { r.Content = "" }},
		{"subject khong slug duoc", func(r *CreateExerciseRequest) { r.Subject = "###" }},
		{"chapter am", func(r *CreateExerciseRequest) { r.Chapter = -1 }},
		{"exercise bang 0", func(r *CreateExerciseRequest) { r.Exercise = 0 }},
		{"points am", func(r *CreateExerciseRequest) { r.Points = f64(-5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			_, err := svc.CreateExercise(req)
			var verr *util.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCreateExerciseFloorsFractional(t *testing.T) {
	svc := NewExerciseAuthoringService(t.TempDir())

	req := validCreateRequest()
	req.Chapter = 3.9
	req.Exercise = 1.5
	req.Points = f64(12.7)

	result, err := svc.CreateExercise(req)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Chapter)
	assert.Equal(t, 1, result.Exercise)

	raw, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	require.NoError(t, err)
	fm, _, err := contentstore.ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, 12, fm.Points)
}

func TestCreateExerciseConflict(t *testing.T) {
	svc := NewExerciseAuthoringService(t.TempDir())

	first, err := svc.CreateExercise(validCreateRequest())
	require.NoError(t, err)
	before, err := os.ReadFile(filepath.Join(first.Path, "README.md"))
	require.NoError(t, err)

	// Tạo trùng không force: lỗi kèm đường dẫn, file cũ không suy chuyển
	req := validCreateRequest()
	req.Title = "Tiêu đề khác hẳn"
	_, err = svc.CreateExercise(req)
	var exists *util.ExerciseExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, first.Path, exists.Path)

	after, err := os.ReadFile(filepath.Join(first.Path, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// Bật force thì ghi đè
	req.Force = true
	result, err := svc.CreateExercise(req)
	require.NoError(t, err)
	overwritten, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(overwritten), "Tiêu đề khác hẳn")
}

func TestCreateExerciseUnknownDifficultyFallsBack(t *testing.T) {
	svc := NewExerciseAuthoringService(t.TempDir())

	req := validCreateRequest()
	req.Difficulty = "impossible"
	result, err := svc.CreateExercise(req)
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(result.Path, "README.md"))
	require.NoError(t, err)
	fm, _, err := contentstore.ParseDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, "medium", fm.Difficulty)
}

func TestListSubjects(t *testing.T) {
	root := t.TempDir()
	svc := NewExerciseAuthoringService(filepath.Join(root, "exercises"))

	// Root chưa tồn tại: tự tạo, danh sách rỗng chứ không lỗi
	subjects, err := svc.ListSubjects()
	require.NoError(t, err)
	assert.Empty(t, subjects)

	for _, s := range []string{"tieng-anh", "lap-trinh-c", "ctdl-gt"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, "exercises", s), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "exercises", "ghi-chu.txt"), []byte("x"), 0o644))

	subjects, err = svc.ListSubjects()
	require.NoError(t, err)
	assert.Equal(t, []string{"ctdl-gt", "lap-trinh-c", "tieng-anh"}, subjects)
}
