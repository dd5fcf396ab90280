package database

import (
	"log"

	"farm-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders creates the default sign-in accounts when they do not exist yet.
func RunSeeders(db *gorm.DB) {
	users := []struct {
		Email    string
		Password string
		Name     string
		Role     string
	}{
		{"admin@farm.gov.lk", "admin123", "Farm Administrator", models.RoleAdmin},
		{"staff@farm.gov.lk", "staff123", "Farm Staff", models.RoleStaff},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				hashed, hashErr := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
				if hashErr != nil {
					log.Println("Failed to hash seed password:", hashErr)
					continue
				}
				db.Create(&models.User{
					Email:    u.Email,
					Password: string(hashed),
					Name:     u.Name,
					Role:     u.Role,
					IsActive: true,
				})
			}
		}
	}
}
