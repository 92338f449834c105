// file: internals/features/assessments/submissions/controller/submission_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	sdto "akademiku_backend/internals/features/assessments/submissions/dto"
	sservice "akademiku_backend/internals/features/assessments/submissions/service"
	helper "akademiku_backend/internals/helpers"
)

type SubmissionController struct {
	Service *sservice.SubmissionService
}

func NewSubmissionController(service *sservice.SubmissionService) *SubmissionController {
	return &SubmissionController{Service: service}
}

var validate = validator.New()

// POST /api/u/case-studies/:case_study_id/submissions
// Satu submission per (siswa, case study); yang kedua ditolak 409.
func (h *SubmissionController) CreateSubmission(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	caseStudyID, err := helper.ParseUUIDParam(c, "case_study_id")
	if err != nil {
		return err
	}

	var req sdto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := h.Service.CreateSubmission(c.Context(), studentID, caseStudyID, req)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Submission diterima", resp)
}

// GET /api/a/submissions/:submission_id
// Detail untuk corrector: semua pertanyaan aktif (dengan penanda dijawab /
// tidak), koreksi tersimpan, attachment signed URL, nilai terdahulu.
func (h *SubmissionController) GetSubmissionDetail(c *fiber.Ctx) error {
	submissionID, err := helper.ParseUUIDParam(c, "submission_id")
	if err != nil {
		return err
	}

	sep := helper.DecimalSepFromLocale(c.Query("locale"))
	resp, err := h.Service.GetSubmissionDetail(c.Context(), submissionID, sep)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Detail submission", resp)
}
