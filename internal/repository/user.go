package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"usersapi/internal/models"
)

// Users выполняет запросы к таблице users. Все выборки фильтруют
// is_deleted внутри: «сырой» доступ к удалённым строкам наружу не отдаётся.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create вставляет новую строку. Дубликат email по частичному индексу
// приходит как gorm.ErrDuplicatedKey — его разбирает сервис.
func (r *Users) Create(name, email string) (*models.User, error) {
	u := models.User{Name: name, Email: email}
	if err := r.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID возвращает активного пользователя или nil, если его нет.
func (r *Users) GetByID(id uint) (*models.User, error) {
	var u models.User
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByEmail ищет активного пользователя по точному совпадению email
// (сравнение с учётом регистра, как и уникальность).
func (r *Users) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.Where("email = ? AND is_deleted = ?", email, false).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// ListActive возвращает страницу активных пользователей и их общее число.
// total не зависит от limit/offset.
func (r *Users) ListActive(limit, offset int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}
	var users []models.User
	err := r.db.Where("is_deleted = ?", false).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// EmailExists сообщает, занят ли email активным пользователем.
// excludeID == 0 означает «без исключений».
func (r *Users) EmailExists(email string, excludeID uint) (bool, error) {
	q := r.db.Model(&models.User{}).Where("email = ? AND is_deleted = ?", email, false)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// UpdateFields меняет name и email активной строки и проставляет updated_at.
// Флаг is_deleted через этот путь недостижим. Возвращает nil, nil если
// активной строки с таким id нет.
func (r *Users) UpdateFields(id uint, name, email string) (*models.User, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"name":       name,
			"email":      email,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// SoftDelete помечает активную строку удалённой. false — строки не было
// или она уже удалена.
func (r *Users) SoftDelete(id uint) (bool, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("soft delete user: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
