package contentstore

import (
	"os"
	"path/filepath"
)

// Entry là một thư mục bài tập tìm thấy khi duyệt cây content store
type Entry struct {
	SubjectSlug    string
	ChapterNumber  int
	ExerciseNumber int
	Dir            string
}

func (e Entry) ReadmePath() string {
	return filepath.Join(e.Dir, ReadmeFile)
}

func (e Entry) SolutionPath() string {
	return filepath.Join(e.Dir, SolutionFile)
}

func (e Entry) HintsPath() string {
	return filepath.Join(e.Dir, HintsFile)
}

// Rel trả về đường dẫn ngắn dạng chapter-01/bai-tap-02 để ghi log
func (e Entry) Rel() string {
	return filepath.Join(ChapterDirName(e.ChapterNumber), ExerciseDirName(e.ExerciseNumber))
}

// Walk duyệt root theo thứ tự môn -> chương -> bài tập và gọi fn cho
// từng thư mục bài tập. Thư mục không khớp pattern chapter-<n> /
// bai-tap-<n> bị bỏ qua. fn trả lỗi thì dừng toàn bộ.
func Walk(root string, fn func(Entry) error) error {
	subjects, err := os.ReadDir(root)
	if err != nil {
		return err
	}

	for _, subject := range subjects {
		if !subject.IsDir() {
			continue
		}
		subjectPath := filepath.Join(root, subject.Name())

		chapters, err := os.ReadDir(subjectPath)
		if err != nil {
			return err
		}

		for _, chapter := range chapters {
			if !chapter.IsDir() {
				continue
			}
			chapterNum, ok := ParseChapterDir(chapter.Name())
			if !ok {
				continue
			}
			chapterPath := filepath.Join(subjectPath, chapter.Name())

			exercises, err := os.ReadDir(chapterPath)
			if err != nil {
				return err
			}

			for _, exercise := range exercises {
				if !exercise.IsDir() {
					continue
				}
				exerciseNum, ok := ParseExerciseDir(exercise.Name())
				if !ok {
					continue
				}

				entry := Entry{
					SubjectSlug:    subject.Name(),
					ChapterNumber:  chapterNum,
					ExerciseNumber: exerciseNum,
					Dir:            filepath.Join(chapterPath, exercise.Name()),
				}
				if err := fn(entry); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
