package model

import "time"

type ComfortRatingModel struct {
	ID                string    `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	TraineeID         string    `gorm:"column:trainee_id;type:text;not null;uniqueIndex:ux_comfort_ratings_trainee_element;index" json:"traineeId"`
	TrainingElementID string    `gorm:"column:training_element_id;type:text;not null;uniqueIndex:ux_comfort_ratings_trainee_element" json:"trainingElementId"`
	Rating            int       `gorm:"column:rating;not null"                                      json:"rating"` // 1-5 scale
	RatedAt           time.Time `gorm:"column:rated_at;type:timestamptz;autoCreateTime"             json:"ratedAt"`
	IsRevision        bool      `gorm:"column:is_revision;default:false"                            json:"isRevision"`
}

func (ComfortRatingModel) TableName() string {
	return "comfort_ratings"
}
