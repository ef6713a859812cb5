package queue

import (
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"pdf-annotator-backend/internal/service"
)

// InspectPayload 待检查的已落盘 PDF
type InspectPayload struct {
	FileID   uint
	DiskPath string
}

// ProduceInspectPDF 上传成功后入队，异步补齐页数
func ProduceInspectPDF(fileID uint, diskPath string) {
	GlobalQueue.Produce("inspect_pdf", InspectPayload{
		FileID:   fileID,
		DiskPath: diskPath,
	})
}

// ConsumeInspectPDF 启动 n 个并发消费者读取 PDF 页数并回写。
// 检查失败只记日志，上传本身已经成功
func ConsumeInspectPDF(files service.FileStore, n int) {
	GlobalQueue.RegisterConsumer("inspect_pdf", func(msg Message) {
		payload, ok := msg.Data.(InspectPayload)
		if !ok {
			log.Println("Invalid payload for inspect_pdf, skipping")
			return
		}

		pageCount, err := api.PageCountFile(payload.DiskPath)
		if err != nil {
			log.Println("PDF page count error:", payload.DiskPath, err)
			return
		}

		if err := files.UpdatePageCount(payload.FileID, pageCount); err != nil {
			log.Println("Update page count error:", err)
		}
	}, n)
}
