// file: internals/features/assessments/corrections/dto/correction_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===============================
   Requests
=================================*/

// PerQuestionGradeInput: Score pointer sengaja, supaya "lupa mengisi"
// terdeteksi sebagai incomplete, bukan diam-diam jadi 0.
type PerQuestionGradeInput struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Score      *float64  `json:"score" validate:"required"`
	Max        *float64  `json:"max,omitempty" validate:"omitempty,gt=0"`
	Comment    *string   `json:"comment,omitempty"`
}

type SubmitCorrectionsRequest struct {
	PerQuestionGrades  []PerQuestionGradeInput `json:"per_question_grades" validate:"dive"`
	GlobalComment      *string                 `json:"global_comment,omitempty"`
	ExternalDocGrade   *float64                `json:"external_doc_grade,omitempty"`
	ExternalDocComment *string                 `json:"external_doc_comment,omitempty"`
	Justification      *string                 `json:"justification,omitempty"`
}

// CheckpointQuestionRequest: simpan koreksi satu pertanyaan tanpa
// menyelesaikan seluruh submission.
type CheckpointQuestionRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Score      float64   `json:"score"`
	Max        *float64  `json:"max,omitempty" validate:"omitempty,gt=0"`
	Comment    *string   `json:"comment,omitempty"`
}

/* ===============================
   Responses
=================================*/

type CorrectionResultResponse struct {
	SubmissionID     uuid.UUID `json:"submission_id"`
	Composite        float64   `json:"composite"`
	CompositeDisplay string    `json:"composite_display"`
	Max              float64   `json:"max"`
	LedgerWritten    bool      `json:"ledger_written"`
	OldScore         *float64  `json:"old_score,omitempty"`
	WorkflowState    string    `json:"workflow_state"`
}
