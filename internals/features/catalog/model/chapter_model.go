package model

type ChapterModel struct {
	ID           string `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	InstrumentID string `gorm:"column:instrument_id;type:text;not null;index"               json:"instrumentId"`
	Name         string `gorm:"column:name;type:text;not null"                              json:"name"`
	Order        int    `gorm:"column:order;not null;default:0"                             json:"order"`
}

func (ChapterModel) TableName() string {
	return "chapters"
}

type SubChapterModel struct {
	ID        string `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	ChapterID string `gorm:"column:chapter_id;type:text;not null;index"                  json:"chapterId"`
	Name      string `gorm:"column:name;type:text;not null"                              json:"name"`
	Order     int    `gorm:"column:order;not null;default:0"                             json:"order"`
}

func (SubChapterModel) TableName() string {
	return "sub_chapters"
}
