package service

import (
	"cs_hub_backend/internal/contentstore"
	"cs_hub_backend/internal/util"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExerciseAuthoringService tạo bài tập mới dưới dạng file Markdown
// trong content store. Chỉ đụng filesystem — muốn bài tập xuất hiện
// trong database phải chạy sync riêng.
type ExerciseAuthoringService struct {
	Root string
}

func NewExerciseAuthoringService(root string) *ExerciseAuthoringService {
	return &ExerciseAuthoringService{Root: root}
}

type CreateExerciseRequest struct {
	Subject    string   `json:"subject"`
	Chapter    float64  `json:"chapter"`
	Exercise   float64  `json:"exercise"`
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	Points     *float64 `json:"points"`
	TimeLimit  *float64 `json:"timeLimit"`
	Content    string   `json:"content"`
	Solution   string   `json:"solution"`
	Hints      []string `json:"hints"`
	Force      bool     `json:"force"`
}

type CreateExerciseResult struct {
	ID       string   `json:"id"`
	Subject  string   `json:"subject"`
	Chapter  int      `json:"chapter"`
	Exercise int      `json:"exercise"`
	Path     string   `json:"path"`
	Files    []string `json:"files"`
}

// parsePositive ép về số nguyên dương bằng floor, lỗi kèm tên field
func parsePositive(value float64, field string) (int, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, util.NewValidationError(field, "phải là số dương")
	}
	return int(math.Floor(value)), nil
}

// CreateExercise validate đầu vào rồi ghi README.md, solution.md,
// hints.md và thư mục assets/ vào đúng vị trí trong cây bài tập.
// Thư mục đã tồn tại mà không bật force thì trả ExerciseExistsError
// kèm đường dẫn, file cũ giữ nguyên.
func (s *ExerciseAuthoringService) CreateExercise(req CreateExerciseRequest) (*CreateExerciseResult, error) {
	if req.Subject == "" || req.Title == "" || req.Content == "" {
		return nil, util.NewValidationError("subject", "thiếu trường bắt buộc: subject, title, content")
	}

	subject := util.Slugify(req.Subject)
	if subject == "" || !util.IsValidSlug(subject) {
		return nil, util.NewValidationError("subject", "tên môn học không hợp lệ")
	}

	chapter, err := parsePositive(req.Chapter, "chapter")
	if err != nil {
		return nil, err
	}
	exercise, err := parsePositive(req.Exercise, "exercise")
	if err != nil {
		return nil, err
	}

	difficulty := "medium"
	if req.Difficulty == "easy" || req.Difficulty == "hard" {
		difficulty = req.Difficulty
	}

	var tags []string
	for _, tag := range req.Tags {
		if t := util.Slugify(tag); t != "" {
			tags = append(tags, t)
		}
	}

	points := 10
	if req.Points != nil {
		if points, err = parsePositive(*req.Points, "points"); err != nil {
			return nil, err
		}
	}
	timeLimit := 30
	if req.TimeLimit != nil {
		if timeLimit, err = parsePositive(*req.TimeLimit, "timeLimit"); err != nil {
			return nil, err
		}
	}

	fullDir := contentstore.ExerciseDir(s.Root, subject, chapter, exercise)

	// Phân loại lỗi stat thay vì coi mọi lỗi là "chưa tồn tại":
	// lỗi quyền truy cập phải nổi lên chứ không được ghi đè nhầm.
	_, statErr := os.Stat(fullDir)
	switch {
	case statErr == nil:
		if !req.Force {
			return nil, &util.ExerciseExistsError{Path: fullDir}
		}
	case errors.Is(statErr, fs.ErrNotExist):
		// thư mục trống, tạo mới
	default:
		return nil, statErr
	}

	if err := os.MkdirAll(filepath.Join(fullDir, contentstore.AssetsDir), 0755); err != nil {
		return nil, err
	}

	id := contentstore.ExerciseID(subject, chapter, exercise)
	readme := contentstore.BuildReadme(contentstore.ReadmeParams{
		ID:         id,
		Subject:    subject,
		Chapter:    chapter,
		Exercise:   exercise,
		Title:      strings.TrimSpace(req.Title),
		Difficulty: difficulty,
		Tags:       tags,
		Points:     points,
		TimeLimit:  timeLimit,
		Content:    req.Content,
	})

	files := map[string]string{
		contentstore.ReadmeFile:   readme,
		contentstore.SolutionFile: contentstore.BuildSolution(req.Solution),
		contentstore.HintsFile:    contentstore.BuildHints(req.Hints),
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(fullDir, name), []byte(content), 0644); err != nil {
			return nil, err
		}
	}

	return &CreateExerciseResult{
		ID:       id,
		Subject:  subject,
		Chapter:  chapter,
		Exercise: exercise,
		Path:     fullDir,
		Files:    []string{contentstore.ReadmeFile, contentstore.SolutionFile, contentstore.HintsFile, contentstore.AssetsDir + "/"},
	}, nil
}

// ListSubjects trả về tên các thư mục môn học trong content store,
// sắp theo alphabet; root chưa tồn tại thì tạo luôn.
func (s *ExerciseAuthoringService) ListSubjects() ([]string, error) {
	if err := os.MkdirAll(s.Root, 0755); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}

	subjects := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			subjects = append(subjects, entry.Name())
		}
	}
	sort.Strings(subjects)
	return subjects, nil
}
