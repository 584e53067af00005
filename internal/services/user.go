package services

import (
	"errors"

	"gorm.io/gorm"

	"usersapi/internal/models"
	"usersapi/internal/repository"
)

// Users — бизнес-правила над репозиторием: занятость email, существование
// цели перед изменением. Состояния не держит.
type Users struct {
	repo *repository.Users
}

func NewUsers(repo *repository.Users) *Users {
	return &Users{repo: repo}
}

// Create создаёт пользователя. Предварительная проверка email даёт понятную
// ошибку, но решает хранилище: проигрыш гонки двух одинаковых create тоже
// возвращается как ErrEmailTaken.
func (s *Users) Create(name, email string) (*models.User, error) {
	taken, err := s.repo.EmailExists(email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrEmailTaken
	}
	u, err := s.repo.Create(name, email)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Users) Get(id uint) (*models.User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

func (s *Users) List(limit, offset int) ([]models.User, int64, error) {
	return s.repo.ListActive(limit, offset)
}

// Update применяет name и email. Занятость email проверяется только когда
// он действительно меняется, с исключением самой цели.
func (s *Users) Update(id uint, name, email string) (*models.User, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, models.ErrUserNotFound
	}
	if email != current.Email {
		taken, err := s.repo.EmailExists(email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.ErrEmailTaken
		}
	}
	u, err := s.repo.UpdateFields(id, name, email)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, models.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

// Delete помечает пользователя удалённым. Повторное удаление — ErrUserNotFound.
func (s *Users) Delete(id uint) error {
	ok, err := s.repo.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return models.ErrUserNotFound
	}
	return nil
}
