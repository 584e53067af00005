package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"usersapi/internal/models"
)

// Единый конверт ответа: "fail" для клиентских ошибок, "error" для серверных.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"
)

type UserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UserListResponse struct {
	Users  []UserResponse `json:"users"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func newUserListResponse(users []models.User, total int64, limit, offset int) UserListResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, newUserResponse(&users[i]))
	}
	return UserListResponse{Users: out, Total: total, Limit: limit, Offset: offset}
}

func respondSuccess(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{Status: statusSuccess, Message: message, Data: data})
}

func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: statusFail, Message: message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: statusError, Message: message})
}
