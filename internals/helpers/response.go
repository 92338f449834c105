// file: internals/helpers/response.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/helpers/errs"
)

// Success Response tanpa custom code (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// Success Response dengan custom code (contoh 201 untuk created)
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// Success Response untuk daftar, membawa blok pagination
func SuccessList(c *fiber.Ctx, message string, data interface{}, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"code":       fiber.StatusOK,
		"status":     "success",
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

// Error Response sederhana
func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// Error Response advance (opsional), bisa kirim multiple field error
func ErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// Khusus error validasi (validator.v10)
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Error(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string)
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return ErrorWithDetails(c, fiber.StatusBadRequest, "Validation failed", errorsMap)
}

/* ===============================
   Domain error -> HTTP mapping
   Satu pintu supaya taxonomy error domain konsisten di semua controller.
=================================*/

func FromDomainError(c *fiber.Ctx, err error) error {
	var (
		notFound      *errs.NotFound
		duplicate     *errs.DuplicateSubmission
		incomplete    *errs.IncompleteCorrection
		noJustif      *errs.MissingJustification
		badCascade    *errs.InconsistentCascade
		writeConflict *errs.ConcurrencyConflict
	)

	switch {
	case errors.As(err, &notFound):
		return ErrorWithDetails(c, fiber.StatusNotFound, notFound.Error(), fiber.Map{
			"entity": notFound.Entity,
			"id":     notFound.ID,
		})
	case errors.As(err, &duplicate):
		return ErrorWithDetails(c, fiber.StatusConflict, duplicate.Error(), fiber.Map{
			"student_id":    duplicate.StudentID,
			"case_study_id": duplicate.CaseStudyID,
		})
	case errors.As(err, &incomplete):
		return ErrorWithDetails(c, fiber.StatusUnprocessableEntity, incomplete.Error(), fiber.Map{
			"submission_id":        incomplete.SubmissionID,
			"missing_question_ids": incomplete.MissingQuestionIDs,
		})
	case errors.As(err, &noJustif):
		return ErrorWithDetails(c, fiber.StatusUnprocessableEntity, noJustif.Error(), fiber.Map{
			"evaluation_id": noJustif.EvaluationID,
			"old_score":     noJustif.OldScore,
			"new_score":     noJustif.NewScore,
		})
	case errors.As(err, &badCascade):
		return ErrorWithDetails(c, fiber.StatusInternalServerError, badCascade.Error(), fiber.Map{
			"stage": badCascade.Stage,
		})
	case errors.As(err, &writeConflict):
		return ErrorWithDetails(c, fiber.StatusConflict, writeConflict.Error(), fiber.Map{
			"entity":   writeConflict.Entity,
			"attempts": writeConflict.Attempts,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Error(c, fiber.StatusNotFound, "Data not found")
	}

	// fiber.NewError dari layer bawah tetap dihormati
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe.Message)
	}

	return Error(c, fiber.StatusInternalServerError, err.Error())
}
