package models

import "time"

type Hero struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:100;not null;unique;index"`
	FirstName  string    `json:"first_name" gorm:"size:100"`
	Occupation []string  `json:"occupation" gorm:"serializer:json"`
	Powers     []string  `json:"powers" gorm:"serializer:json"`
	Hobbies    []string  `json:"hobbies" gorm:"serializer:json"`
	Type       string    `json:"type" gorm:"size:50;index"`
	Rank       *int      `json:"rank" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidHeroTypes is the closed set accepted by create and update.
var ValidHeroTypes = []string{
	"vigilante", "alien", "amazon", "mutated", "tech",
	"enhanced", "god", "mutant", "magic", "cosmic",
}

func IsValidHeroType(t string) bool {
	for _, v := range ValidHeroTypes {
		if t == v {
			return true
		}
	}
	return false
}
