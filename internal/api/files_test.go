package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-annotator-backend/internal/model"
)

func TestFileListRoute(t *testing.T) {
	files := &fakeFileStore{}
	for i := 0; i < 3; i++ {
		require.NoError(t, files.Insert(&model.PdfFile{
			PdfID:      100 + i,
			FilePath:   "/uploads/f.pdf",
			UploadedAt: time.Now(),
		}))
	}

	app := fiber.New()
	RegisterFileListRoute(app, files)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/files/list?page=1&pageSize=2", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Page     int             `json:"page"`
		PageSize int             `json:"pageSize"`
		Count    int             `json:"count"`
		Files    []model.PdfFile `json:"files"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 2, body.PageSize)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Files, 2)
}
