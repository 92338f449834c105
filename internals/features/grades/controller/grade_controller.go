// file: internals/features/grades/controller/grade_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	gdto "akademiku_backend/internals/features/grades/dto"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	helper "akademiku_backend/internals/helpers"
)

type GradeController struct {
	Service *gservice.GradeService
}

func NewGradeController(service *gservice.GradeService) *GradeController {
	return &GradeController{Service: service}
}

var validate = validator.New()

// POST /api/a/grades/manual
// Entri nilai manual oleh admin/teacher. Tanpa ledger: ini jalur entri
// biasa, bukan override hasil koreksi.
func (h *GradeController) UpsertManualGrade(c *fiber.Ctx) error {
	var req gdto.UpsertManualGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := h.Service.UpsertManualGrade(c.Context(), gservice.ManualGradeInput{
		StudentID:        req.StudentID,
		EvaluationID:     req.EvaluationID,
		BlockID:          req.BlockID,
		Score:            *req.Score,
		Max:              req.Max,
		TimeSpentMinutes: req.TimeSpentMinutes,
	})
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	sep := helper.DecimalSepFromLocale(c.Query("locale"))
	return helper.Success(c, "Nilai tersimpan", gdto.FromGradeRecordModel(*rec, sep))
}

// POST /api/u/chapters/:chapter_id/read
// Siswa menandai chapter selesai dibaca.
func (h *GradeController) MarkChapterRead(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	chapterID, err := helper.ParseUUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}

	var req gdto.MarkChapterReadRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := h.Service.MarkChapterRead(c.Context(), studentID, chapterID, req.TimeSpentMinutes)
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	sep := helper.DecimalSepFromLocale(c.Query("locale"))
	return helper.Success(c, "Chapter ditandai selesai", gdto.FromGradeRecordModel(*rec, sep))
}

// GET /api/a/grades/:kind/:evaluation_id/modifications
// Audit trail perubahan nilai satu evaluation, terbaru dulu.
func (h *GradeController) ListModifications(c *fiber.Ctx) error {
	kind := gmodel.EvaluationKind(strings.TrimSpace(c.Params("kind")))
	if !kind.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Kind tidak dikenal")
	}
	evaluationID, err := helper.ParseUUIDParam(c, "evaluation_id")
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)
	entries, total, err := h.Service.ListModifications(c.Context(), kind, evaluationID, p.Limit, p.Offset)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessList(c, "Riwayat perubahan nilai", gdto.FromGradeModificationModels(entries), helper.BuildPagination(p, total, len(entries)))
}
