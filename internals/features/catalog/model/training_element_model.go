package model

type TrainingElementModel struct {
	ID           string  `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	SubChapterID string  `gorm:"column:sub_chapter_id;type:text;not null;index"              json:"subChapterId"`
	Name         string  `gorm:"column:name;type:text;not null"                              json:"name"`
	Description  *string `gorm:"column:description;type:text"                                json:"description"`
	ExternalLink *string `gorm:"column:external_link;type:text"                              json:"externalLink"`
	Order        int     `gorm:"column:order;not null;default:0"                             json:"order"`
}

func (TrainingElementModel) TableName() string {
	return "training_elements"
}
