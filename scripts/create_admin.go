// scripts/create_admin.go
//
// Seeds the staff login row. Direct-connection mode only; in Supabase mode
// create the row from the dashboard instead.
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thsdbgh/jinhak2025-backend/config"
	"github.com/thsdbgh/jinhak2025-backend/models"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set; this script needs a direct connection")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Staff{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "1234"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.Staff
	if err := db.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query staffs: %v", err)
		}
	} else {
		fmt.Println("staff user already exists with username:", username)
		os.Exit(0)
	}

	st := models.Staff{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.Create(&st).Error; err != nil {
		log.Fatalf("failed to insert staff: %v", err)
	}

	fmt.Println("staff user created")
	fmt.Println("   username:", username)
	fmt.Println("   password:", password, "(plain, change it after first login)")
}
