package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-service/internal/api/dto"
	"github.com/spec-kit/shift-service/internal/auth"
	"github.com/spec-kit/shift-service/internal/service"
	apperrors "github.com/spec-kit/shift-service/pkg/util"
)

// ImportsHandler exposes the bulk shift import endpoints.
type ImportsHandler struct {
	imports *service.ImportService
}

// NewImportsHandler constructs handler.
func NewImportsHandler(imports *service.ImportService) *ImportsHandler {
	return &ImportsHandler{imports: imports}
}

// Preview handles POST /api/v1/imports/preview. The upload is either a
// multipart "file" part or the raw request body.
func (h *ImportsHandler) Preview(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	fileName, text, err := uploadText(c)
	if err != nil {
		return err
	}
	if text == "" {
		return apperrors.NewValidationError("empty upload", nil)
	}

	session, err := h.imports.Preview(c.UserContext(), actor, fileName, text)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewImportPreviewResponse(session)})
}

// Commit handles POST /api/v1/imports/:id/commit.
func (h *ImportsHandler) Commit(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	sessionID := c.Params("id")
	if sessionID == "" {
		return apperrors.NewValidationError("session id required", nil)
	}

	var req dto.ImportCommitRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	result, err := h.imports.Commit(c.UserContext(), actor, sessionID, req.ColumnMapping())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewImportResultResponse(result))
}

// Direct handles POST /api/v1/imports, a JSON batch without a preview
// round trip.
func (h *ImportsHandler) Direct(c *fiber.Ctx) error {
	actor, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.DirectImportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if len(req.Shifts) == 0 {
		return apperrors.NewValidationError("shifts required", nil)
	}

	result, err := h.imports.ImportDirect(c.UserContext(), actor, req.Candidates())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewImportResultResponse(result))
}

func uploadText(c *fiber.Ctx) (fileName, text string, err error) {
	if header, ferr := c.FormFile("file"); ferr == nil && header != nil {
		file, oerr := header.Open()
		if oerr != nil {
			return "", "", apperrors.NewValidationError("unreadable upload", nil)
		}
		defer file.Close()
		data, rerr := io.ReadAll(file)
		if rerr != nil {
			return "", "", apperrors.NewValidationError("unreadable upload", nil)
		}
		return header.Filename, string(data), nil
	}
	if c.Is("multipart") {
		return "", "", apperrors.NewValidationError("multipart upload missing file part", nil)
	}
	return "", string(c.Body()), nil
}
