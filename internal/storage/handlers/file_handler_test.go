package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/Team-DAS/profile-cell/internal/storage/models"
	"github.com/Team-DAS/profile-cell/internal/storage/service"
)

type memObjectStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemObjectStore() *memObjectStore {
	return &memObjectStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func (m *memObjectStore) Put(_ context.Context, path string, reader io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.objects[path] = data
	m.types[path] = contentType
	return nil
}

func (m *memObjectStore) Stat(_ context.Context, path string) (models.ObjectInfo, error) {
	data, ok := m.objects[path]
	if !ok {
		return models.ObjectInfo{}, models.ErrObjectNotFound
	}
	return models.ObjectInfo{ContentType: m.types[path], Size: int64(len(data))}, nil
}

func (m *memObjectStore) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := m.objects[path]
	if !ok {
		return nil, models.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memObjectStore) Remove(_ context.Context, path string) error {
	delete(m.objects, path)
	delete(m.types, path)
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := service.NewFileService(newMemObjectStore(), "profiles", "http://localhost:9000")

	app := fiber.New()
	NewFileHandler(svc).RegisterRoutes(app)
	return app
}

func multipartBody(t *testing.T, filename, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("creating multipart part failed: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing multipart content failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer failed: %v", err)
	}
	return buf, writer.FormDataContentType()
}

func TestUploadUnknownCategory(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "cv.pdf", "application/pdf", "data")
	req := httptest.NewRequest(http.MethodPost, "/files/avatars", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", resp.StatusCode)
	}
}

func TestUploadMissingFilePart(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/files/profile_cvs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("expected 400 without multipart file, got %d", resp.StatusCode)
	}
}

func TestUploadDownloadDelete(t *testing.T) {
	app := newTestApp(t)

	body, contentType := multipartBody(t, "cv.pdf", "application/pdf", "pdf-bytes")
	req := httptest.NewRequest(http.MethodPost, "/files/profile_cvs", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("upload request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var descriptor models.FileDescriptor
	if err := json.NewDecoder(resp.Body).Decode(&descriptor); err != nil {
		t.Fatalf("decoding descriptor failed: %v", err)
	}
	if descriptor.Key == "" || descriptor.Category != models.ProfileCVs {
		t.Fatalf("unexpected descriptor: %+v", descriptor)
	}

	req = httptest.NewRequest(http.MethodGet, "/files/profile_cvs/"+descriptor.Key, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("download request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Disposition"); got != "attachment; filename="+descriptor.Key {
		t.Errorf("unexpected Content-Disposition: %q", got)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading download failed: %v", err)
	}
	if string(data) != "pdf-bytes" {
		t.Errorf("downloaded content mismatch: %q", data)
	}

	req = httptest.NewRequest(http.MethodDelete, "/files/profile_cvs/"+descriptor.Key, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("delete request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	req = httptest.NewRequest(http.MethodGet, "/files/profile_cvs/"+descriptor.Key, nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("second download request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestDownloadMissingKey(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/files/profile_images/nope_photo.png", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}
