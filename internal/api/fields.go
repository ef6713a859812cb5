package api

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"pdf-annotator-backend/internal/service"
	"pdf-annotator-backend/internal/util"
)

// RegisterFieldSchemaRoutes 注册字段投影路由，动态表格前端消费
func RegisterFieldSchemaRoutes(app fiber.Router, svc *service.AnnotationService) {
	app.Post("/app_admin/api/fetch-create-table/", FetchFieldSchemaHandler(svc))
}

// FetchFieldSchemaHandler 按 (process_id, form_id) 取字段描述。
// 两个标识都必填；没有匹配记录返回空数组，不算错误
func FetchFieldSchemaHandler(svc *service.AnnotationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req map[string]any
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_payload"})
		}

		processID, verr := requiredIntParam(req, "process_id")
		if verr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(verr)
		}
		formID, verr := requiredIntParam(req, "form_id")
		if verr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(verr)
		}

		descriptors, err := svc.ProjectFields(processID, formID)
		if err != nil {
			log.Println("Field schema fetch error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "store_error"})
		}

		return c.JSON(descriptors)
	}
}

func requiredIntParam(req map[string]any, key string) (int, fiber.Map) {
	v, ok := req[key]
	if !ok || v == nil {
		return 0, fiber.Map{"error": "missing_field", "field": key}
	}
	n, ok := util.ToInt(v)
	if !ok {
		return 0, fiber.Map{"error": "invalid_field", "field": key}
	}
	return n, nil
}
