package model

type LaboratoryModel struct {
	ID   string `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	Name string `gorm:"column:name;type:text;not null"                              json:"name"`
	Code string `gorm:"column:code;type:text;not null;uniqueIndex"                  json:"code"`
}

func (LaboratoryModel) TableName() string {
	return "laboratories"
}
