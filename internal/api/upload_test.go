package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-annotator-backend/internal/service"
)

func newUploadApp(t *testing.T, files *fakeFileStore, ids service.ProcessIDSource) (*fiber.App, string) {
	t.Helper()
	app := fiber.New()
	dir := t.TempDir()
	fs := service.NewLocalFileService(app, "/uploads", dir)
	require.NotNil(t, fs)
	RegisterUploadRoutes(app, fs, files, ids)
	return app, dir
}

func multipartUpload(t *testing.T, fileName string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4\n%fake test content\n"))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-pdf", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadPDFHandler_GeneratesProcessID(t *testing.T) {
	files := &fakeFileStore{}
	app, dir := newUploadApp(t, files, &stubIDSource{id: 4321})

	resp, err := app.Test(multipartUpload(t, "my form.pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		OK       bool   `json:"ok"`
		PdfID    int    `json:"pdf_id"`
		FormID   int    `json:"form_id"`
		FilePath string `json:"file_path"`
	}
	decodeBody(t, resp, &body)

	assert.True(t, body.OK)
	assert.Equal(t, 4321, body.PdfID)
	assert.Equal(t, 0, body.FormID)
	assert.True(t, strings.HasPrefix(body.FilePath, "/uploads/"))
	assert.True(t, strings.HasSuffix(body.FilePath, "_my_form.pdf"))

	// 落盘与写库都要完成，且互相一致
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, files.files, 1)
	assert.Equal(t, "/uploads/"+entries[0].Name(), files.files[0].FilePath)
	assert.Equal(t, "my form.pdf", files.files[0].FileName)
	assert.Equal(t, 4321, files.files[0].PdfID)
}

func TestUploadPDFHandler_ExplicitIdentifiers(t *testing.T) {
	files := &fakeFileStore{}
	app, _ := newUploadApp(t, files, &stubIDSource{id: 4321})

	resp, err := app.Test(multipartUpload(t, "form.pdf", map[string]string{
		"process_id": "77",
		"form_id":    "3",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		PdfID  int `json:"pdf_id"`
		FormID int `json:"form_id"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 77, body.PdfID)
	assert.Equal(t, 3, body.FormID)
}

func TestUploadPDFHandler_NonPositiveProcessIDRegenerated(t *testing.T) {
	files := &fakeFileStore{}
	app, _ := newUploadApp(t, files, &stubIDSource{id: 555})

	resp, err := app.Test(multipartUpload(t, "form.pdf", map[string]string{"process_id": "-4"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		PdfID int `json:"pdf_id"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 555, body.PdfID)
}

func TestUploadPDFHandler_NoFile(t *testing.T) {
	files := &fakeFileStore{}
	app, _ := newUploadApp(t, files, &stubIDSource{id: 1})

	resp, err := app.Test(multipartUpload(t, "", map[string]string{"process_id": "5"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "no_file", body.Error)
	assert.Empty(t, files.files)
}

func TestUploadPDFHandler_RejectsNonPDF(t *testing.T) {
	files := &fakeFileStore{}
	app, dir := newUploadApp(t, files, &stubIDSource{id: 1})

	resp, err := app.Test(multipartUpload(t, "notes.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "invalid_file", body.Error)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadPDFHandler_StoreFailureLeavesNoRecord(t *testing.T) {
	files := &fakeFileStore{failInsert: true}
	app, _ := newUploadApp(t, files, &stubIDSource{id: 1})

	resp, err := app.Test(multipartUpload(t, "form.pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "upload_failed", body.Error)
	assert.Empty(t, files.files)
}
