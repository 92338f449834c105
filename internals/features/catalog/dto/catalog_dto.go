// file: internals/features/catalog/dto/catalog_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

/* ===============================
   Requests (authoring minimal)
=================================*/

type CreateProgramRequest struct {
	Title string `json:"title" validate:"required,min=3,max=160"`
}

type CreateBlockRequest struct {
	ProgramID uuid.UUID `json:"program_id" validate:"required"`
	Title     string    `json:"title" validate:"required,min=3,max=160"`
	Position  int       `json:"position" validate:"min=0"`
}

type CreateCourseRequest struct {
	BlockID  uuid.UUID `json:"block_id" validate:"required"`
	Title    string    `json:"title" validate:"required,min=3,max=160"`
	Position int       `json:"position" validate:"min=0"`
}

type CreateChapterRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
	Title    string    `json:"title" validate:"required,min=3,max=160"`
	Kind     string    `json:"kind" validate:"required,oneof=text slide video resource"`
	Position int       `json:"position" validate:"min=0"`
}

type CreateQuizRequest struct {
	ChapterID uuid.UUID `json:"chapter_id" validate:"required"`
	Title     string    `json:"title" validate:"required,min=3,max=160"`
}

type CaseStudyQuestionInput struct {
	Position int     `json:"position" validate:"min=0"`
	Kind     string  `json:"kind" validate:"required,oneof=open_text single_choice multi_choice true_false attachment"`
	Text     string  `json:"text" validate:"required"`
	Points   float64 `json:"points" validate:"gt=0"`
	Options  any     `json:"options,omitempty"`
}

type CreateCaseStudyRequest struct {
	CourseID  uuid.UUID                `json:"course_id" validate:"required"`
	Title     string                   `json:"title" validate:"required,min=3,max=160"`
	DueDate   *time.Time               `json:"due_date,omitempty"`
	MaxPoints *float64                 `json:"max_points,omitempty" validate:"omitempty,gt=0"`
	Questions []CaseStudyQuestionInput `json:"questions,omitempty" validate:"omitempty,dive"`
}
