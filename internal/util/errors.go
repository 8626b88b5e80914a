package util

import "errors"

var (
	ErrUserNotFound     = errors.New("người dùng không tồn tại")
	ErrEmailRegistered  = errors.New("email đã được đăng ký")
	ErrExerciseNotFound = errors.New("không tìm thấy bài tập")
	ErrSubjectNotFound  = errors.New("không tìm thấy môn học")
	ErrDocumentNotFound = errors.New("không tìm thấy tài liệu")
	ErrNotParticipant   = errors.New("không thuộc cuộc trò chuyện này")
	ErrPermissionDenied = errors.New("permission denied")
)

// ExerciseExistsError báo conflict khi thư mục bài tập đã tồn tại
// mà không bật force; Path được trả về cho caller quyết định ghi đè.
type ExerciseExistsError struct {
	Path string
}

func (e *ExerciseExistsError) Error() string {
	return "bài tập đã tồn tại: " + e.Path
}

// ValidationError gắn lỗi với field cụ thể trong request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
