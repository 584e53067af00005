package db

import (
	"gorm.io/gorm"

	"usersapi/internal/models"
)

// SeedUsers добавляет демонстрационных пользователей, если таблица пуста.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	users := []models.User{
		{Name: "Alice Anderson", Email: "alice@example.com"},
		{Name: "Bob Brown", Email: "bob@example.com"},
		{Name: "Carol Clark", Email: "carol@example.com"},
	}
	return db.Create(&users).Error
}
