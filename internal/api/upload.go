package api

import (
	"log"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pdf-annotator-backend/internal/model"
	"pdf-annotator-backend/internal/queue"
	"pdf-annotator-backend/internal/service"
	"pdf-annotator-backend/internal/util"
)

// RegisterUploadRoutes 注册上传路由
func RegisterUploadRoutes(app fiber.Router, fileService service.FileService, files service.FileStore, ids service.ProcessIDSource) {
	app.Post("/api/upload-pdf", UploadPDFHandler(fileService, files, ids))
}

// UploadPDFHandler 接收单个 PDF，返回后续标注要用的 pdf_id / form_id
func UploadPDFHandler(fileService service.FileService, files service.FileStore, ids service.ProcessIDSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no_file"})
		}

		if !util.IsPDF(fileHeader.Filename) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid_file"})
		}

		// process_id 缺失或非正数时由发号器补
		processID, err := strconv.Atoi(c.FormValue("process_id"))
		if err != nil || processID <= 0 {
			processID, err = ids.Next()
			if err != nil {
				log.Println("Process id generation error:", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload_failed"})
			}
		}

		formID, err := strconv.Atoi(c.FormValue("form_id"))
		if err != nil {
			formID = 0
		}

		record, err := storeUploadedPDF(fileHeader, fileService, files, processID, formID)
		if err != nil {
			log.Println("Upload error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload_failed"})
		}

		return c.JSON(fiber.Map{
			"ok":        true,
			"pdf_id":    record.PdfID,
			"form_id":   record.FormID,
			"file_path": record.FilePath,
			"file":      record,
		})
	}
}

// storeUploadedPDF 先落盘再写库：写库失败不会留下半条记录，
// 落盘成功但写库失败的孤儿文件交给清理任务
func storeUploadedPDF(fileHeader *multipart.FileHeader, fileService service.FileService, files service.FileStore, processID, formID int) (*model.PdfFile, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("failed to close uploaded file: %v", cerr)
		}
	}()

	data := make([]byte, fileHeader.Size)
	if _, err := f.Read(data); err != nil {
		return nil, err
	}

	storedName := uuid.NewString() + "_" + util.SanitizeFileName(fileHeader.Filename)
	publicPath, err := fileService.Put(storedName, data)
	if err != nil {
		return nil, err
	}

	record := &model.PdfFile{
		PdfID:      processID,
		FormID:     formID,
		FileName:   fileHeader.Filename,
		FilePath:   publicPath,
		UploadedAt: time.Now(),
	}
	if err := files.Insert(record); err != nil {
		return nil, err
	}

	queue.ProduceInspectPDF(record.ID, fileService.DiskPath(storedName))

	return record, nil
}
