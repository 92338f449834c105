// file: internals/features/students/controller/student_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	progressservice "akademiku_backend/internals/features/progress/service"
	stservice "akademiku_backend/internals/features/students/service"
	helper "akademiku_backend/internals/helpers"
)

type StudentController struct {
	Service  *stservice.StudentService
	Progress *progressservice.ProgressService
}

func NewStudentController(service *stservice.StudentService, progress *progressservice.ProgressService) *StudentController {
	return &StudentController{Service: service, Progress: progress}
}

var validate = validator.New()

type enrollStudentRequest struct {
	UserID    uuid.UUID  `json:"user_id" validate:"required"`
	FullName  string     `json:"full_name" validate:"required,min=3,max=160"`
	ProgramID *uuid.UUID `json:"program_id,omitempty"`
}

// GET /api/u/me
func (h *StudentController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	student, err := h.Service.ByUserID(c.Context(), userID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Profil student", student)
}

// GET /api/u/me/progress
// Shortcut: progress program tempat student ter-enroll.
func (h *StudentController) MyProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	student, err := h.Service.ByUserID(c.Context(), userID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	if student.StudentProgramID == nil {
		return fiber.NewError(fiber.StatusConflict, "Belum ter-enroll di program manapun")
	}

	// aktivitas (grades, attempts, submissions) di-key pakai user id token
	resp, err := h.Progress.GetProgress(c.Context(), userID, *student.StudentProgramID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Progress program", resp)
}

// POST /api/a/students
func (h *StudentController) Enroll(c *fiber.Ctx) error {
	var req enrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.FullName = strings.TrimSpace(req.FullName)
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := h.Service.Enroll(c.Context(), req.UserID, req.FullName, req.ProgramID)
	if err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Student ter-enroll", student)
}
