package handlers

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"usersapi/internal/models"
	"usersapi/internal/repository"
	"usersapi/internal/services"
)

// setupTest создаёт in-memory БД и маршруты для тестов.
func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	svc := services.NewUsers(repository.NewUsers(db))

	r := gin.Default()
	r.GET("/", Health(db))
	r.GET("/health", Health(db))

	users := r.Group("/users")
	users.POST("", CreateUser(svc))
	users.GET("", ListUsers(svc))
	users.GET("/:id", GetUser(svc))
	users.PUT("/:id", UpdateUser(svc))
	users.DELETE("/:id", DeleteUser(svc))

	return db, r
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func parseEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatalf("envelope parse: %v (%s)", err, body)
	}
	return e
}

func parseUser(t *testing.T, data json.RawMessage) UserResponse {
	t.Helper()
	var u UserResponse
	if err := json.Unmarshal(data, &u); err != nil {
		t.Fatalf("user parse: %v (%s)", err, data)
	}
	return u
}
