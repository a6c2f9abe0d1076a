package model

import "time"

type ValidationModel struct {
	ID                string    `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	TraineeID         string    `gorm:"column:trainee_id;type:text;not null;uniqueIndex:ux_validations_trainee_element;index" json:"traineeId"`
	TrainingElementID string    `gorm:"column:training_element_id;type:text;not null;uniqueIndex:ux_validations_trainee_element" json:"trainingElementId"`
	TrainerID         string    `gorm:"column:trainer_id;type:text;not null"                        json:"trainerId"`
	ValidatedAt       time.Time `gorm:"column:validated_at;type:timestamptz;autoCreateTime"         json:"validatedAt"`
	TrainingLocation  *string   `gorm:"column:training_location;type:text"                          json:"trainingLocation"`
}

func (ValidationModel) TableName() string {
	return "validations"
}
