package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"usersapi/internal/models"
	"usersapi/internal/services"
)

type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateUserRequest — схемные проверки до вызова сервиса.
func validateUserRequest(r UserRequest) string {
	if r.Name == "" {
		return "name is required"
	}
	if len(r.Name) > 100 {
		return "name must be at most 100 characters"
	}
	if r.Email == "" {
		return "email is required"
	}
	if len(r.Email) > 255 {
		return "email must be at most 255 characters"
	}
	if !emailRe.MatchString(r.Email) {
		return "email is not a valid address"
	}
	return ""
}

// CreateUser godoc
// @Summary Создать пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param input body UserRequest true "данные"
// @Success 201 {object} Response
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /users [post]
func CreateUser(svc *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r UserRequest
		if err := c.ShouldBindJSON(&r); err != nil {
			respondFail(c, http.StatusUnprocessableEntity, "invalid json")
			return
		}
		if msg := validateUserRequest(r); msg != "" {
			respondFail(c, http.StatusUnprocessableEntity, msg)
			return
		}
		u, err := svc.Create(r.Name, r.Email)
		if errors.Is(err, models.ErrEmailTaken) {
			respondFail(c, http.StatusConflict, "email already exists")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "db error")
			return
		}
		respondSuccess(c, http.StatusCreated, "Created", newUserResponse(u))
	}
}

// ListUsers godoc
// @Summary Список пользователей
// @Tags users
// @Produce json
// @Param limit query int false "размер страницы (1-100)"
// @Param offset query int false "смещение"
// @Success 200 {object} Response
// @Failure 422 {object} Response
// @Router /users [get]
func ListUsers(svc *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, err := parsePagination(c)
		if err != nil {
			respondFail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		users, total, err := svc.List(limit, offset)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "db error")
			return
		}
		respondSuccess(c, http.StatusOK, "Success", newUserListResponse(users, total, limit, offset))
	}
}

// GetUser godoc
// @Summary Получить пользователя
// @Tags users
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /users/{id} [get]
func GetUser(svc *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondFail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		u, err := svc.Get(id)
		if errors.Is(err, models.ErrUserNotFound) {
			respondFail(c, http.StatusNotFound, "user not found")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "db error")
			return
		}
		respondSuccess(c, http.StatusOK, "Success", newUserResponse(u))
	}
}

// UpdateUser godoc
// @Summary Изменить пользователя
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param input body UserRequest true "данные"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /users/{id} [put]
func UpdateUser(svc *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondFail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		var r UserRequest
		if err := c.ShouldBindJSON(&r); err != nil {
			respondFail(c, http.StatusUnprocessableEntity, "invalid json")
			return
		}
		if msg := validateUserRequest(r); msg != "" {
			respondFail(c, http.StatusUnprocessableEntity, msg)
			return
		}
		u, err := svc.Update(id, r.Name, r.Email)
		if errors.Is(err, models.ErrUserNotFound) {
			respondFail(c, http.StatusNotFound, "user not found")
			return
		}
		if errors.Is(err, models.ErrEmailTaken) {
			respondFail(c, http.StatusConflict, "email already exists")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "db error")
			return
		}
		respondSuccess(c, http.StatusOK, "Success", newUserResponse(u))
	}
}

// DeleteUser godoc
// @Summary Удалить пользователя
// @Tags users
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 422 {object} Response
// @Router /users/{id} [delete]
func DeleteUser(svc *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			respondFail(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		err = svc.Delete(id)
		if errors.Is(err, models.ErrUserNotFound) {
			respondFail(c, http.StatusNotFound, "user not found")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "db error")
			return
		}
		respondSuccess(c, http.StatusOK, "Deleted user successfully", nil)
	}
}
