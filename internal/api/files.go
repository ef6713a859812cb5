package api

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pdf-annotator-backend/internal/service"
)

// RegisterFileListRoute 注册分页文件列表接口 /api/files/list
func RegisterFileListRoute(app fiber.Router, files service.FileStore) {
	app.Get("/api/files/list", func(c *fiber.Ctx) error {
		// 解析 page 和 pageSize 参数，默认 page=1, pageSize=20
		page := 1
		pageSize := 20

		if val := c.Query("page"); val != "" {
			if p, err := strconv.Atoi(val); err == nil && p > 0 {
				page = p
			} else if err != nil {
				log.Printf("invalid page parameter: %v", err)
			}
		}

		if val := c.Query("pageSize"); val != "" {
			if ps, err := strconv.Atoi(val); err == nil && ps > 0 {
				pageSize = ps
			} else if err != nil {
				log.Printf("invalid pageSize parameter: %v", err)
			}
		}

		offset := (page - 1) * pageSize

		records, err := files.List(pageSize, offset)
		if err != nil {
			log.Println("File list error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "store_error"})
		}

		return c.JSON(fiber.Map{
			"page":     page,
			"pageSize": pageSize,
			"count":    len(records),
			"files":    records,
		})
	})
}
