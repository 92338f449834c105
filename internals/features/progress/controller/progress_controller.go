// file: internals/features/progress/controller/progress_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	pdto "akademiku_backend/internals/features/progress/dto"
	pservice "akademiku_backend/internals/features/progress/service"
	helper "akademiku_backend/internals/helpers"
)

type ProgressController struct {
	Service *pservice.ProgressService
}

func NewProgressController(service *pservice.ProgressService) *ProgressController {
	return &ProgressController{Service: service}
}

var validate = validator.New()

// GET /api/u/programs/:program_id/progress
func (h *ProgressController) GetProgress(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	programID, err := helper.ParseUUIDParam(c, "program_id")
	if err != nil {
		return err
	}

	resp, err := h.Service.GetProgress(c.Context(), studentID, programID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Progress program", resp)
}

// GET /api/u/blocks/:block_id/summary
func (h *ProgressController) GetBlockSummary(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	blockID, err := helper.ParseUUIDParam(c, "block_id")
	if err != nil {
		return err
	}

	sep := helper.DecimalSepFromLocale(c.Query("locale"))
	resp, err := h.Service.GetBlockSummary(c.Context(), studentID, blockID, sep)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Ringkasan blok", resp)
}

// POST /api/u/sessions/ping
// Akumulasi menit koneksi hari ini; ping kedua menambah, bukan menimpa.
func (h *ProgressController) SessionPing(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req pdto.SessionPingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := h.Service.RecordSessionPing(c.Context(), studentID, req.Minutes); err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Sesi tercatat", nil)
}
