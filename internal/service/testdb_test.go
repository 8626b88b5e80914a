package service

import (
	"cs_hub_backend/internal/model"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB mở một database sqlite riêng cho mỗi test và migrate
// đủ schema mà các service cần.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "cs_hub_test.db")),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Exercise{},
		&model.UserExerciseProgress{},
		&model.ExerciseSubmission{},
		&model.Document{},
		&model.Conversation{},
		&model.ConversationParticipant{},
		&model.Message{},
	))
	return db
}
