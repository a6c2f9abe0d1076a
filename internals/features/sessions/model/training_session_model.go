package model

import (
	"time"

	"github.com/lib/pq"
)

// TrainingSessionModel is a trainer's saved working-set of trainees and
// instruments for a planned session; it is not itself validated.
type TrainingSessionModel struct {
	ID            string         `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	TrainerID     string         `gorm:"column:trainer_id;type:text;not null;index"                  json:"trainerId"`
	Name          string         `gorm:"column:name;type:text;not null"                              json:"name"`
	TraineeIDs    pq.StringArray `gorm:"column:trainee_ids;type:text[];not null"                     json:"traineeIds"`
	InstrumentIDs pq.StringArray `gorm:"column:instrument_ids;type:text[];not null"                  json:"instrumentIds"`
	Location      *string        `gorm:"column:location;type:text"                                   json:"location"`
	CreatedAt     time.Time      `gorm:"column:created_at;type:timestamptz;autoCreateTime"           json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;type:timestamptz;autoUpdateTime"           json:"updatedAt"`
}

func (TrainingSessionModel) TableName() string {
	return "training_sessions"
}
