package model

type InstrumentModel struct {
	ID          string  `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string  `gorm:"column:name;type:text;not null"                              json:"name"`
	Description *string `gorm:"column:description;type:text"                                json:"description"`
	Icon        *string `gorm:"column:icon;type:text"                                       json:"icon"`
}

func (InstrumentModel) TableName() string {
	return "instruments"
}
