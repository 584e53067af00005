package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthData struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// Health godoc
// @Summary Проверка состояния сервиса
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router / [get]
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			respondError(c, http.StatusServiceUnavailable, "db error")
			return
		}
		if err := sqlDB.Ping(); err != nil {
			respondError(c, http.StatusServiceUnavailable, "db down")
			return
		}
		respondSuccess(c, http.StatusOK, "Users API is running!", HealthData{
			Service: "usersapi",
			Version: "0.1.0",
			Docs:    "/swagger/index.html",
		})
	}
}
