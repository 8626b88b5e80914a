package model

// Document là tài liệu sinh viên chia sẻ, gắn với một môn học và
// tùy chọn một chương. File thật nằm ở storage (local/minio).
// swagger:model Document
type Document struct {
	BaseModel
	Title        string `gorm:"size:255;not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	SubjectSlug  string `gorm:"size:100;index" json:"subjectSlug"`
	ChapterID    *uint  `gorm:"index" json:"chapterId,omitempty"`
	FileURL      string `gorm:"size:500;not null" json:"fileUrl"`
	FileType     string `gorm:"size:100" json:"fileType"`
	FileSize     int64  `gorm:"default:0" json:"fileSize"`
	UploadedByID uint   `gorm:"index;not null" json:"uploadedById"`
	UploadedBy   User   `gorm:"foreignKey:UploadedByID" json:"uploadedBy"`
	Downloads    int    `gorm:"default:0" json:"downloads"`
}

func (Document) TableName() string {
	return "documents"
}
