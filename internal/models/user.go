package models

import "time"

// User — строка таблицы users. Уникальность email действует только среди
// активных записей: частичный индекс позволяет переиспользовать email
// удалённого пользователя.
type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(100);not null" json:"name"`
	Email     string     `gorm:"type:varchar(255);not null;index:uix_users_active_email,unique,where:is_deleted = false" json:"email"`
	IsDeleted bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
