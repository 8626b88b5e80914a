package model

type SubjectCategory string

const (
	CategoryCS      SubjectCategory = "cs"
	CategoryGeneral SubjectCategory = "general"
)

// Subject là một môn học; slug là định danh dùng trong URL và
// trong tên thư mục của content store.
// swagger:model Subject
type Subject struct {
	BaseModel
	Slug        string          `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Category    SubjectCategory `gorm:"size:20;default:'cs'" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Icon        string          `gorm:"size:100" json:"icon"`
	Color       string          `gorm:"size:20" json:"color"`
}

func (Subject) TableName() string {
	return "subjects"
}

// Chapter thuộc về một môn học, duy nhất theo (môn, số chương).
// Được tạo khi seed môn học hoặc ngầm định khi sync bài tập.
// swagger:model Chapter
type Chapter struct {
	BaseModel
	SubjectSlug   string `gorm:"size:100;uniqueIndex:idx_subject_chapter;not null" json:"subjectSlug"`
	ChapterNumber int    `gorm:"uniqueIndex:idx_subject_chapter;not null" json:"chapterNumber"`
	Title         string `gorm:"size:255;not null" json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	EstimatedTime int    `gorm:"default:0" json:"estimatedTime"`
	IsPublished   bool   `gorm:"default:true" json:"isPublished"`
}

func (Chapter) TableName() string {
	return "chapters"
}
