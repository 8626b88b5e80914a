package model

import "time"

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
	// StatusAbandoned được giữ trong schema nhưng chưa có flow nào ghi
	StatusAbandoned ProgressStatus = "abandoned"
)

// UserExerciseProgress theo dõi tiến độ của một user trên một bài
// tập, duy nhất theo (user, bài tập). Tạo lần đầu khi nộp bài,
// không bao giờ bị xóa bởi flow thông thường.
// swagger:model UserExerciseProgress
type UserExerciseProgress struct {
	BaseModel
	UserID      uint           `gorm:"uniqueIndex:idx_user_exercise;not null" json:"userId"`
	ExerciseID  uint           `gorm:"uniqueIndex:idx_user_exercise;not null" json:"exerciseId"`
	Status      ProgressStatus `gorm:"size:20;default:'not_started'" json:"status"`
	Attempts    int            `gorm:"default:0" json:"attempts"`
	Score       int            `gorm:"default:0" json:"score"`
	StartedAt   *time.Time     `json:"startedAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	TimeSpent   int            `gorm:"default:0" json:"timeSpent"` // giây
	LastAnswer  string         `gorm:"type:text" json:"lastAnswer,omitempty"`
}

func (UserExerciseProgress) TableName() string {
	return "user_exercise_progress"
}

// ExerciseSubmission là log nộp bài append-only: mỗi lần nộp một
// dòng, không sửa không xóa.
// swagger:model ExerciseSubmission
type ExerciseSubmission struct {
	BaseModel
	UserID     uint   `gorm:"index;not null" json:"userId"`
	ExerciseID uint   `gorm:"index;not null" json:"exerciseId"`
	Content    string `gorm:"type:text" json:"content"`
}

func (ExerciseSubmission) TableName() string {
	return "exercise_submissions"
}
