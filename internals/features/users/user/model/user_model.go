package model

type UserModel struct {
	ID           string  `gorm:"column:id;type:varchar;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string  `gorm:"column:username;type:text;not null;uniqueIndex"              json:"username"`
	Password     string  `gorm:"column:password;type:text;not null"                          json:"-"`
	Role         string  `gorm:"column:role;type:text;not null;default:trainee"              json:"role"`
	LaboratoryID *string `gorm:"column:laboratory_id;type:text;index"                        json:"laboratoryId"`
	Name         string  `gorm:"column:name;type:text;not null"                              json:"name"`
	Email        *string `gorm:"column:email;type:text"                                      json:"email"`
}

func (UserModel) TableName() string {
	return "users"
}
