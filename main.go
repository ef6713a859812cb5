package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"pdf-annotator-backend/internal/api"
	"pdf-annotator-backend/internal/db"
	"pdf-annotator-backend/internal/db/migrate"
	"pdf-annotator-backend/internal/queue"
	"pdf-annotator-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if os.Getenv("GO_ENV") != "production" {
		// 测试环境下 .env
		if err := godotenv.Load(); err != nil {
			log.Fatal("Failed to load .env file")
		}
	}

	// PostgreSQL
	db.InitPostgres()

	// 数据库的迁移
	migrate.DBMigrateAll()
	migrate.InitSequences()
	migrate.InitIndices()

	// fiber 实例
	app := fiber.New(fiber.Config{
		BodyLimit: 50 * 1024 * 1024, // 50 MB
	})

	// CORS 中间件
	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("FRONTEND_URL"),
		AllowMethods: "*",
		AllowHeaders: "*",
	}))

	// 前端静态资源
	app.Static("/", "./public")

	// 上传文件服务，静态路由 /uploads 对外提供 PDF
	uploadFileService := service.NewLocalFileService(app, "/uploads", "./uploads")

	// 存储与发号器
	annotationStore := service.NewGormAnnotationStore(db.Instance())
	fileStore := service.NewGormFileStore(db.Instance())
	processIDs := service.NewSequenceIDSource(db.Instance())

	annotationService := service.NewAnnotationService(annotationStore)

	// 路由
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api.RegisterUploadRoutes(app, uploadFileService, fileStore, processIDs)
	api.RegisterAnnotationRoutes(app, annotationService)
	api.RegisterFieldSchemaRoutes(app, annotationService)
	api.RegisterFileListRoute(app, fileStore)

	// 异步补齐 PDF 页数
	queue.ConsumeInspectPDF(fileStore, 2)

	// 孤儿文件清理
	service.RegisterOrphanSweeper(uploadFileService, fileStore, 24*time.Hour, time.Hour)

	// 端口监听
	log.Fatal(app.Listen(fmt.Sprintf(":%s", os.Getenv("BACKEND_PORT"))))
}
