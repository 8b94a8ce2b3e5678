package logging

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/jobboard/jobboard-api/internal/models"
)

// StartCleanup schedules a daily purge of system_logs older than
// retentionDays. Stop the returned scheduler on shutdown.
func StartCleanup(db *gorm.DB, retentionDays int) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		PurgeLogs(db, time.Now().AddDate(0, 0, -retentionDays))
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// PurgeLogs deletes system logs recorded before cutoff.
func PurgeLogs(db *gorm.DB, cutoff time.Time) {
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
