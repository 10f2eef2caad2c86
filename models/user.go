package models

type User struct {
	Username string `json:"username" gorm:"primaryKey;size:16"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized

	Games []Game `json:"-" gorm:"foreignKey:Username;references:Username"`
}

func (User) TableName() string {
	return "user"
}
