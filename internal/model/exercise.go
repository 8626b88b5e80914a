package model

import "encoding/json"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	DefaultPoints    = 10
	DefaultTimeLimit = 30
)

// Exercise là bản ghi chuẩn của một bài tập trong database, được
// sync một chiều từ content store. Slug dạng <môn>-ch<NN>-bt<NN>
// là khóa upsert.
// swagger:model Exercise
type Exercise struct {
	BaseModel
	Slug           string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	SubjectSlug    string          `gorm:"size:100;index;not null" json:"subjectSlug"`
	ChapterNumber  int             `gorm:"not null" json:"chapterNumber"`
	ExerciseNumber int             `gorm:"not null" json:"exerciseNumber"`
	Title          string          `gorm:"size:255;not null" json:"title"`
	Difficulty     string          `gorm:"size:20;default:'medium'" json:"difficulty"` // easy, medium, hard
	Content        string          `gorm:"type:text" json:"content"`
	Solution       string          `gorm:"type:text" json:"solution,omitempty"`
	Hints          json.RawMessage `gorm:"type:json" json:"hints"`
	Tags           json.RawMessage `gorm:"type:json" json:"tags"`
	Points         int             `gorm:"default:10" json:"points"`
	TimeLimit      int             `gorm:"default:30" json:"timeLimit"` // phút
	IsPublished    bool            `gorm:"default:false;index" json:"isPublished"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// HintList giải mã cột JSON hints về slice, cột rỗng trả về nil
func (e *Exercise) HintList() []string {
	var hints []string
	if len(e.Hints) > 0 {
		json.Unmarshal(e.Hints, &hints)
	}
	return hints
}

func (e *Exercise) TagList() []string {
	var tags []string
	if len(e.Tags) > 0 {
		json.Unmarshal(e.Tags, &tags)
	}
	return tags
}
