// Package contentstore định nghĩa cấu trúc cây thư mục bài tập trên đĩa:
//
//	exercises/<môn>/chapter-<NN>/bai-tap-<NN>/{README.md, solution.md, hints.md, assets/}
//
// Đây là nơi soạn bài (authoring surface); dữ liệu chỉ chảy một chiều
// từ đây vào database qua job sync.
package contentstore

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

const (
	ReadmeFile   = "README.md"
	SolutionFile = "solution.md"
	HintsFile    = "hints.md"
	AssetsDir    = "assets"
)

var (
	chapterDirPattern  = regexp.MustCompile(`^chapter-(\d+)$`)
	exerciseDirPattern = regexp.MustCompile(`^bai-tap-(\d+)$`)
)

// FormatNumber đệm số thành 2 chữ số: 3 -> "03"
func FormatNumber(n int) string {
	return fmt.Sprintf("%02d", n)
}

func ChapterDirName(n int) string {
	return "chapter-" + FormatNumber(n)
}

func ExerciseDirName(n int) string {
	return "bai-tap-" + FormatNumber(n)
}

// ExerciseID sinh slug định danh duy nhất: <môn>-ch<NN>-bt<NN>
func ExerciseID(subject string, chapter, exercise int) string {
	return fmt.Sprintf("%s-ch%s-bt%s", subject, FormatNumber(chapter), FormatNumber(exercise))
}

// ExerciseDir trả về đường dẫn thư mục của một bài tập dưới root
func ExerciseDir(root, subject string, chapter, exercise int) string {
	return filepath.Join(root, subject, ChapterDirName(chapter), ExerciseDirName(exercise))
}

// ParseChapterDir đọc số chương từ tên thư mục dạng chapter-<n>,
// trả về false nếu tên không khớp.
func ParseChapterDir(name string) (int, bool) {
	m := chapterDirPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func ParseExerciseDir(name string) (int, bool) {
	m := exerciseDirPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
