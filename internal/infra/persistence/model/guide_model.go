package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// StepDocument is the JSON shape of one step inside the guide's embedded step
// sequence. Array order carries the caller-supplied step order.
type StepDocument struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Order       int    `json:"order"`
}

// StepList stores the whole step sequence as a single JSONB column, keeping
// the guide a self-contained document the way the source's collection layout
// embedded steps. Steps have no identity outside their parent guide.
type StepList []StepDocument

// Value implements driver.Valuer, serializing the step sequence to JSON.
func (s StepList) Value() (driver.Value, error) {
	if s == nil {
		s = StepList{}
	}

	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal steps")
	}

	return data, nil
}

// Scan implements sql.Scanner, deserializing the JSONB column.
func (s *StepList) Scan(value any) error {
	if value == nil {
		*s = StepList{}

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported steps column type %T", value)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return errors.Wrap(err, "failed to unmarshal steps")
	}

	return nil
}

// GuideModel mirrors the 'guides' table. Steps are embedded as a JSONB
// document; OwnerID references users.id without a cascading constraint.
type GuideModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Steps       StepList  `gorm:"type:jsonb;not null;default:'[]'"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuideModel) TableName() string {
	return "guides"
}
