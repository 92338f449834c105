// file: internals/features/assessments/quizzes/controller/quiz_attempt_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	qdto "akademiku_backend/internals/features/assessments/quizzes/dto"
	qservice "akademiku_backend/internals/features/assessments/quizzes/service"
	helper "akademiku_backend/internals/helpers"
)

type QuizAttemptController struct {
	Service *qservice.QuizAttemptService
}

func NewQuizAttemptController(service *qservice.QuizAttemptService) *QuizAttemptController {
	return &QuizAttemptController{Service: service}
}

var validate = validator.New()

// POST /api/u/quizzes/:quiz_id/attempts
// Siswa menyelesaikan quiz; attempt baru selalu ditambah, tidak pernah
// menimpa attempt lama.
func (h *QuizAttemptController) RecordAttemptFinished(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	quizID, err := helper.ParseUUIDParam(c, "quiz_id")
	if err != nil {
		return err
	}

	var req qdto.RecordAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	attempt, err := h.Service.RecordAttemptFinished(c.Context(), studentID, quizID, *req.Score, req.TimeSpentMinutes)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attempt tersimpan", qdto.FromQuizAttemptModel(*attempt))
}

// GET /api/u/quizzes/:quiz_id/attempts
func (h *QuizAttemptController) ListAttempts(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	quizID, err := helper.ParseUUIDParam(c, "quiz_id")
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)
	attempts, total, err := h.Service.ListAttempts(c.Context(), studentID, quizID, p.Limit, p.Offset)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessList(c, "Daftar attempt", qdto.FromQuizAttemptModels(attempts), helper.BuildPagination(p, total, len(attempts)))
}
