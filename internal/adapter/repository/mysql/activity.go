package mysql

import (
	"context"
	"log"
	"time"

	"library-backend/internal/domain/activity"

	"gorm.io/gorm"
)

// ActivityLog writes audit entries outside any caller transaction. A write
// failure is logged and swallowed: activity logging must never roll back a
// ledger mutation.
type ActivityLog struct{ db *gorm.DB }

func NewActivityLog(db *gorm.DB) *ActivityLog { return &ActivityLog{db: db} }

func (a *ActivityLog) Record(ctx context.Context, action, details string) {
	e := activity.Entry{
		Timestamp: time.Now().UTC(),
		Username:  "system",
		Action:    action,
		Details:   details,
	}
	if err := a.db.WithContext(ctx).Create(&e).Error; err != nil {
		log.Printf("activity log: %v", err)
	}
}
