package model

import "time"

// Entity types and actions recorded in the audit trail.
const (
	EntityTrainingElement = "training_element"
	EntityValidation      = "validation"
	EntityComfortRating   = "comfort_rating"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ModificationHistoryModel rows are append-only; nothing updates or deletes
// them once written.
type ModificationHistoryModel struct {
	ID            string    `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	EntityType    string    `gorm:"column:entity_type;type:text;not null;index:idx_modification_history_entity" json:"entityType"`
	EntityID      string    `gorm:"column:entity_id;type:text;not null;index:idx_modification_history_entity" json:"entityId"`
	Action        string    `gorm:"column:action;type:text;not null"                            json:"action"`
	ModifiedBy    string    `gorm:"column:modified_by;type:text;not null"                       json:"modifiedBy"`
	ModifiedAt    time.Time `gorm:"column:modified_at;type:timestamptz;autoCreateTime"          json:"modifiedAt"`
	PreviousValue *string   `gorm:"column:previous_value;type:text"                             json:"previousValue"`
	NewValue      *string   `gorm:"column:new_value;type:text"                                  json:"newValue"`
}

func (ModificationHistoryModel) TableName() string {
	return "modification_history"
}
