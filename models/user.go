package models

type User struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	Nom            string   `json:"nom" gorm:"size:50;not null"`
	Email          string   `json:"email" gorm:"size:100;not null;unique"`
	Username       string   `json:"username" gorm:"size:30;not null;unique"`
	HashedPassword string   `json:"-" gorm:"not null"`
	Role           string   `json:"role" gorm:"size:20;default:user"`
	Players        []Player `json:"-" gorm:"foreignKey:OwnerID"`
}
