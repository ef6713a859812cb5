package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"pdf-annotator-backend/internal/service"
)

// RegisterAnnotationRoutes 注册标注批量提交路由
func RegisterAnnotationRoutes(app fiber.Router, svc *service.AnnotationService) {
	app.Post("/api/pdf-annotation-mappings/bulk/", BulkAnnotationHandler(svc))
}

// BulkAnnotationHandler 接受单个标注对象或标注数组，整批落库。
// 任何一条不合法则整批拒绝，不产生部分写入
func BulkAnnotationHandler(svc *service.AnnotationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := decodeAnnotationPayload(c.Body())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_payload"})
		}

		annotations, err := svc.BulkIngest(items)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": verr.Code,
					"field": verr.Field,
					"item":  verr.Item,
				})
			}
			log.Println("Bulk annotation insert error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "store_error"})
		}

		return c.JSON(fiber.Map{
			"ok":             true,
			"inserted_count": len(annotations),
			"annotations":    annotations,
		})
	}
}

// decodeAnnotationPayload 单对象和数组两种形式都接受，统一成序列
func decodeAnnotationPayload(body []byte) ([]map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty payload")
	}

	if body[0] == '[' {
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var item map[string]any
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, err
	}
	return []map[string]any{item}, nil
}
