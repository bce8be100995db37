package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Team-DAS/profile-cell/internal/storage/models"
	"github.com/Team-DAS/profile-cell/internal/storage/service"
)

type FileHandler struct {
	fileService *service.FileService
}

func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

func (h *FileHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.HealthCheck)

	files := app.Group("/files")
	files.Post("/:category", h.UploadFile)
	files.Get("/:category/:key", h.DownloadFile)
	files.Delete("/:category/:key", h.DeleteFile)
}

func (h *FileHandler) HealthCheck(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": "file-service",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (h *FileHandler) UploadFile(c fiber.Ctx) error {
	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "Multipart field 'file' is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file: %v", err)
		return writeError(c, fiber.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	descriptor, err := h.fileService.Upload(
		ctx,
		category,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return h.fail(c, err, "Failed to upload file")
	}

	return c.Status(fiber.StatusCreated).JSON(descriptor)
}

func (h *FileHandler) DownloadFile(c fiber.Ctx) error {
	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	key := c.Params("key")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	content, contentType, size, err := h.fileService.Download(ctx, category, key)
	if err != nil {
		return h.fail(c, err, "Failed to download file")
	}

	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "attachment; filename="+key)
	c.Set("Content-Length", strconv.FormatInt(size, 10))

	return c.SendStream(content)
}

func (h *FileHandler) DeleteFile(c fiber.Ctx) error {
	category, err := models.ParseCategory(c.Params("category"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, err.Error())
	}
	key := c.Params("key")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.fileService.Delete(ctx, category, key); err != nil {
		return h.fail(c, err, "Failed to delete file")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FileHandler) fail(c fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, service.ErrFileNotFound):
		return writeError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidData):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("%s: %v", message, err)
		return writeError(c, fiber.StatusInternalServerError, message)
	}
}

func writeError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
		Path:      c.Path(),
	})
}
