package services

import (
	"testing"

	"InnerVoiceGo/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 建一个内存sqlite库并迁移全部表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.MoodEntry{},
		&models.JournalEntry{},
	))

	// 每个用例从空表开始
	db.Exec("DELETE FROM accounts")
	db.Exec("DELETE FROM mood_entries")
	db.Exec("DELETE FROM journal_entries")

	return db
}
