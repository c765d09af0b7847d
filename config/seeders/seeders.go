package seeders

import "log"

// SeedAllData runs all seeders
func SeedAllData() {
	log.Println("=== Starting Database Seeding ===")

	SeedAdminUser()

	log.Println("=== Database Seeding Completed ===")
}
