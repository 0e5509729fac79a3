package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/resumeflow/api/http/presenter"
	"github.com/artem13815/resumeflow/pkg/resume"
)

const defaultUploadMaxBytes = 15 << 20

type ResumeHandler struct {
	svc  resume.IngestUseCase
	errs *ErrorMapper
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.IngestUseCase, errs *ErrorMapper, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = defaultUploadMaxBytes
	}
	return &ResumeHandler{svc: svc, errs: errs, maxBytes: maxBytes}
}

// Upload принимает PDF-резюме, извлекает поля через LLM и сохраняет запись.
// @Summary Загрузка резюме
// @Description Принимает файл резюме (PDF или DOCX), извлекает текст, структурирует его через LLM и сохраняет запись.
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Файл резюме"
// @Success 200 {object} presenter.SuccessResponse{data=resume.Record}
// @Failure 400 {object} presenter.ErrorResponse "Нет файла, файл не читается или слишком большой"
// @Failure 500 {object} presenter.ErrorResponse "Ошибка LLM или хранилища"
// @Router  /upload [post]
func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.Ingest(c.UserContext(), data)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return presenter.OK(c, rec)
}

// Get возвращает сохранённую запись по идентификатору.
// @Summary Получить резюме
// @Tags    Резюме
// @Produce json
// @Param   id path string true "Идентификатор записи (UUID)"
// @Success 200 {object} presenter.SuccessResponse{data=resume.Record}
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /user/{id} [get]
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return h.errs.Respond(c, resume.ErrNotFound)
	}
	rec, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return h.errs.Respond(c, err)
	}
	return presenter.OK(c, rec)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
