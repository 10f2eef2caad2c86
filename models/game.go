package models

import "time"

type Game struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"-" gorm:"size:16;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title" gorm:"not null"`
	Platform  string    `json:"platform" gorm:"not null"`
}

func (Game) TableName() string {
	return "game"
}
