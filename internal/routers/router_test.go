package routers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/notevault/note-storage-service/internal/app"
	"github.com/notevault/note-storage-service/internal/dao"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter wires a full service against a temp-dir sqlite database and
// a temp uploads directory.
func newTestRouter(t *testing.T) (*gin.Engine, *app.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()

	cfg := &app.AppConfig{}
	require.NoError(t, defaults.Set(cfg))
	cfg.Database.Path = filepath.Join(dir, "notes.db")
	cfg.LocalFS.SavePath = filepath.Join(dir, "uploads")
	// Small ceiling so the oversize test does not need a 100 MiB body.
	cfg.App.UploadMaxSizeMB = 1

	db, err := dao.NewDBEngine(dao.DatabaseConfig{
		Type:            cfg.Database.Type,
		Path:            cfg.Database.Path,
		AutoMigrate:     true,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	a, err := app.NewApp(cfg, zap.NewNop(), db)
	require.NoError(t, err)

	return NewRouter(a), a
}

func doJSON(t *testing.T, r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doUpload(t *testing.T, r *gin.Engine, noteName string, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if noteName != "" {
		require.NoError(t, mw.WriteField("noteName", noteName))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestNoteReadNeverWritten(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/note/never-written", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content": ""}`, w.Body.String())
}

func TestNoteWriteReadRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/note/abc", map[string]string{"content": "hello"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/note/abc", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"content": "hello"}`, w.Body.String())
}

func TestNoteUpsertReplaces(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/note/abc", map[string]string{"content": "first"})
	doJSON(t, r, http.MethodPost, "/note/abc", map[string]string{"content": "second"})

	w := doJSON(t, r, http.MethodGet, "/note/abc", nil)
	assert.JSONEq(t, `{"content": "second"}`, w.Body.String())
}

func TestNoteWriteEmptyBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/note/empty", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/note/empty", nil)
	assert.JSONEq(t, `{"content": ""}`, w.Body.String())
}

func TestUploadCreatesNoteImplicitly(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doUpload(t, r, "fresh-note", "report.pdf", []byte("0123456789"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "report.pdf", body["filename"])
	assert.Equal(t, float64(10), body["size"])
	assert.NotZero(t, body["fileId"])

	// The implicitly created note reads back as empty content.
	w = doJSON(t, r, http.MethodGet, "/note/fresh-note", nil)
	assert.JSONEq(t, `{"content": ""}`, w.Body.String())
}

func TestFileListingOrderedNewestFirst(t *testing.T) {
	r, _ := newTestRouter(t)

	for i := 1; i <= 3; i++ {
		w := doUpload(t, r, "abc", fmt.Sprintf("doc-%d.txt", i), []byte("data"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/files/abc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Files []struct {
			ID           int64  `json:"id"`
			OriginalName string `json:"original_name"`
			FileSize     int64  `json:"file_size"`
			MimeType     string `json:"mime_type"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Files, 3)
	assert.Equal(t, "doc-3.txt", resp.Files[0].OriginalName)
	assert.Equal(t, "doc-2.txt", resp.Files[1].OriginalName)
	assert.Equal(t, "doc-1.txt", resp.Files[2].OriginalName)
}

func TestFileListingEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/files/nothing-here", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"files": []}`, w.Body.String())
}

func TestDownloadRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	content := []byte("attachment bytes")
	w := doUpload(t, r, "abc", "data.bin", content)
	require.Equal(t, http.StatusOK, w.Code)
	fileID := decode(t, w)["fileId"]

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/file/%v", fileID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `attachment; filename="data.bin"`)
}

func TestDownloadUnknownFile(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/file/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "File not found"}`, w.Body.String())
}

func TestDownloadBlobMissingOnDisk(t *testing.T) {
	r, a := newTestRouter(t)

	w := doUpload(t, r, "abc", "gone.txt", []byte("soon gone"))
	require.Equal(t, http.StatusOK, w.Code)
	fileID := decode(t, w)["fileId"]

	// Remove the blob behind the record's back; the dangling record must
	// surface as not-found.
	entries, err := os.ReadDir(a.Store.Config.SavePath)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, os.Remove(filepath.Join(a.Store.Config.SavePath, e.Name())))
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/file/%v", fileID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "File not found on disk"}`, w.Body.String())
}

func TestDeleteFile(t *testing.T) {
	r, a := newTestRouter(t)

	w := doUpload(t, r, "abc", "bye.txt", []byte("bye"))
	require.Equal(t, http.StatusOK, w.Code)
	fileID := decode(t, w)["fileId"]

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/file/%v", fileID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	// Gone from listings, undownloadable, and the blob directory is empty.
	w = doJSON(t, r, http.MethodGet, "/files/abc", nil)
	assert.JSONEq(t, `{"files": []}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/file/%v", fileID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	entries, err := os.ReadDir(a.Store.Config.SavePath)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting twice answers not-found the second time.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/file/%v", fileID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteToleratesMissingBlob(t *testing.T) {
	r, a := newTestRouter(t)

	w := doUpload(t, r, "abc", "dangling.txt", []byte("x"))
	require.Equal(t, http.StatusOK, w.Code)
	fileID := decode(t, w)["fileId"]

	entries, err := os.ReadDir(a.Store.Config.SavePath)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, os.Remove(filepath.Join(a.Store.Config.SavePath, e.Name())))
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/file/%v", fileID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
}

func TestUploadMissingFilePart(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doUpload(t, r, "abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "No file uploaded"}`, w.Body.String())

	// Nothing was created as a side effect.
	w = doJSON(t, r, http.MethodGet, "/files/abc", nil)
	assert.JSONEq(t, `{"files": []}`, w.Body.String())
}

func TestUploadMissingNoteName(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doUpload(t, r, "", "file.txt", []byte("data"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Note name is required"}`, w.Body.String())
}

func TestUploadOversizedPayloadRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	// The test router caps uploads at 1 MiB.
	big := bytes.Repeat([]byte("a"), 2*1024*1024)
	w := doUpload(t, r, "abc", "big.bin", big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error": "Request entity too large"}`, w.Body.String())

	// No record was left behind.
	w = doJSON(t, r, http.MethodGet, "/files/abc", nil)
	assert.JSONEq(t, `{"files": []}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "API not found"}`, w.Body.String())
}

func TestHealthAndVersion(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])

	w = doJSON(t, r, http.MethodGet, "/version", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["version"])
}
