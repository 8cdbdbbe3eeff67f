package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table. GuideID is a weak reference by
// design: rows survive the deletion of the guide they point at, and no
// foreign key enforces the link after the initial write.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GuideID   uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
