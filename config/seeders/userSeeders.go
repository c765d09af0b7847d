package seeders

import (
	"log"
	"os"

	"github.com/Jackson-git-lab/players-api/config"
	"github.com/Jackson-git-lab/players-api/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUser creates the initial admin account. Registration always
// assigns the "user" role, so without this seed no caller could ever
// reach the /admin endpoints.
func SeedAdminUser() {
	var count int64
	config.DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count)

	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "Admin1234"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Nom:            "Administrateur",
		Email:          "admin@players-api.local",
		Username:       "admin",
		HashedPassword: string(hashed),
		Role:           "admin",
	}

	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin user: %v", err)
		return
	}

	log.Printf("Admin user created: %s (%s)", admin.Username, admin.Email)
}
