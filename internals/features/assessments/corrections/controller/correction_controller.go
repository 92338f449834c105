// file: internals/features/assessments/corrections/controller/correction_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	cdto "akademiku_backend/internals/features/assessments/corrections/dto"
	corrservice "akademiku_backend/internals/features/assessments/corrections/service"
	helper "akademiku_backend/internals/helpers"
)

type CorrectionController struct {
	Service *corrservice.CorrectionWorkflowService
}

func NewCorrectionController(service *corrservice.CorrectionWorkflowService) *CorrectionController {
	return &CorrectionController{Service: service}
}

var validate = validator.New()

// POST /api/a/submissions/:submission_id/corrections
// Panggilan penutup koreksi: semua pertanyaan wajib diberi skor sekaligus.
// 422 incomplete kalau ada yang kosong, 422 missing justification kalau
// menimpa nilai delivered tanpa alasan.
func (h *CorrectionController) SubmitCorrections(c *fiber.Ctx) error {
	correctorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	submissionID, err := helper.ParseUUIDParam(c, "submission_id")
	if err != nil {
		return err
	}

	var req cdto.SubmitCorrectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sep := helper.DecimalSepFromLocale(c.Query("locale"))
	resp, err := h.Service.SubmitCorrections(c.Context(), submissionID, correctorID, req, sep)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Koreksi tersimpan", resp)
}

// PUT /api/a/submissions/:submission_id/corrections/checkpoint
// Simpan koreksi satu pertanyaan tanpa menutup submission.
func (h *CorrectionController) CheckpointQuestion(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}
	submissionID, err := helper.ParseUUIDParam(c, "submission_id")
	if err != nil {
		return err
	}

	var req cdto.CheckpointQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	state, err := h.Service.CheckpointQuestion(c.Context(), submissionID, req)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Checkpoint tersimpan", fiber.Map{
		"submission_id":  submissionID,
		"workflow_state": state,
	})
}
