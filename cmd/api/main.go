// @title Users API
// @version 0.1.0
// @description REST API управления пользователями
// @BasePath /

package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"usersapi/config"
	"usersapi/internal/db"
	"usersapi/internal/handlers"
	"usersapi/internal/repository"
	"usersapi/internal/services"

	docs "usersapi/docs"
)

func main() {
	// 1. Загружаем конфиг из .env / окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	// 1.1 Определяем режим запуска (dev/prod)
	env := os.Getenv("APP_ENV")
	if env == "prod" || env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// 2. Открываем GORM-подключение
	gormDB, err := db.NewDB(cfg.DSN)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	docs.SwaggerInfo.BasePath = "/"

	repo := repository.NewUsers(gormDB)
	svc := services.NewUsers(repo)

	// 3. Создаём Gin-роутер и регистрируем маршруты
	r := gin.Default()
	r.Use(cors.Default())
	r.GET("/", handlers.Health(gormDB))
	r.GET("/health", handlers.Health(gormDB))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	users.POST("", handlers.CreateUser(svc))
	users.GET("", handlers.ListUsers(svc))
	users.GET("/:id", handlers.GetUser(svc))
	users.PUT("/:id", handlers.UpdateUser(svc))
	users.DELETE("/:id", handlers.DeleteUser(svc))

	// 4. Запускаем сервер
	addr := ":" + cfg.Port
	log.Printf("listening on %s …", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
