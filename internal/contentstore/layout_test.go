package contentstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "01", FormatNumber(1))
	assert.Equal(t, "09", FormatNumber(9))
	assert.Equal(t, "10", FormatNumber(10))
	assert.Equal(t, "123", FormatNumber(123))
}

func TestExerciseID(t *testing.T) {
	assert.Equal(t, "lap-trinh-c-ch01-bt02", ExerciseID("lap-trinh-c", 1, 2))
	assert.Equal(t, "ctdl-gt-ch12-bt05", ExerciseID("ctdl-gt", 12, 5))
}

func TestExerciseDir(t *testing.T) {
	want := filepath.Join("exercises", "lap-trinh-c", "chapter-03", "bai-tap-01")
	assert.Equal(t, want, ExerciseDir("exercises", "lap-trinh-c", 3, 1))
}

func TestParseChapterDir(t *testing.T) {
	n, ok := ParseChapterDir("chapter-07")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	// Tên sinh ra phải parse ngược lại được
	n, ok = ParseChapterDir(ChapterDirName(15))
	assert.True(t, ok)
	assert.Equal(t, 15, n)

	for _, name := range []string{"chapter-", "chapter-ab", "chuong-01", "chapter-01x", ""} {
		_, ok := ParseChapterDir(name)
		assert.False(t, ok, "không được nhận %q", name)
	}
}

func TestParseExerciseDir(t *testing.T) {
	n, ok := ParseExerciseDir("bai-tap-02")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = ParseExerciseDir(ExerciseDirName(9))
	assert.True(t, ok)
	assert.Equal(t, 9, n)

	for _, name := range []string{"bai-tap-", "exercise-01", "bai-tap-1a"} {
		_, ok := ParseExerciseDir(name)
		assert.False(t, ok, "không được nhận %q", name)
	}
}
