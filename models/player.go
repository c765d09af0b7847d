package models

// Player is always owned by exactly one user. Non-admin queries must
// filter on OwnerID; the column is never taken from request input.
type Player struct {
	ID      uint     `json:"id" gorm:"primaryKey"`
	Nom     string   `json:"nom" gorm:"size:30;not null"`
	Classe  string   `json:"classe" gorm:"size:20;not null"`
	Niveau  int      `json:"niveau" gorm:"default:1"`
	Trophe  []string `json:"trophe" gorm:"serializer:json"`
	Actif   bool     `json:"actif" gorm:"default:true"`
	OwnerID uint     `json:"owner_id" gorm:"not null;index"`
	Owner   *User    `json:"-" gorm:"foreignKey:OwnerID"`
}
