// file: internals/features/assessments/submissions/dto/submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	smodel "akademiku_backend/internals/features/assessments/submissions/model"
	cmodel "akademiku_backend/internals/features/catalog/model"
	gdto "akademiku_backend/internals/features/grades/dto"
)

/* ===============================
   Requests
=================================*/

type AttachmentInput struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	FileRef    string    `json:"file_ref" validate:"required"`
	FileName   string    `json:"file_name"`
}

type CreateSubmissionRequest struct {
	// key = question_id (string uuid), value = jawaban inline
	Answers     map[string]interface{} `json:"answers"`
	Attachments []AttachmentInput      `json:"attachments,omitempty" validate:"omitempty,dive"`
	Comment     *string                `json:"comment,omitempty"`
}

/* ===============================
   Responses
=================================*/

type SubmissionResponse struct {
	SubmissionID      uuid.UUID               `json:"submission_id"`
	StudentID         uuid.UUID               `json:"student_id"`
	CaseStudyID       uuid.UUID               `json:"case_study_id"`
	Status            smodel.SubmissionStatus `json:"status"`
	Grade             *float64                `json:"grade,omitempty"`
	CorrectorID       *uuid.UUID              `json:"corrector_id,omitempty"`
	CorrectedAt       *time.Time              `json:"corrected_at,omitempty"`
	CorrectionComment *string                 `json:"correction_comment,omitempty"`
	Comment           *string                 `json:"comment,omitempty"`
	SubmittedAt       time.Time               `json:"submitted_at"`
}

func FromSubmissionModel(m smodel.SubmissionModel) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID:      m.SubmissionID,
		StudentID:         m.SubmissionStudentID,
		CaseStudyID:       m.SubmissionCaseStudyID,
		Status:            m.SubmissionStatus,
		Grade:             m.SubmissionGrade,
		CorrectorID:       m.SubmissionCorrectorID,
		CorrectedAt:       m.SubmissionCorrectedAt,
		CorrectionComment: m.SubmissionCorrectionComment,
		Comment:           m.SubmissionComment,
		SubmittedAt:       m.SubmissionSubmittedAt,
	}
}

type QuestionCorrectionView struct {
	Score   float64 `json:"score"`
	Max     float64 `json:"max"`
	Comment *string `json:"comment,omitempty"`
}

// QuestionDetail: satu pertanyaan untuk tampilan corrector.
// Answered=false adalah penanda eksplisit "tidak dijawab" (bukan null bocor).
type QuestionDetail struct {
	QuestionID    uuid.UUID                    `json:"question_id"`
	Position      int                          `json:"position"`
	Kind          cmodel.CaseStudyQuestionKind `json:"kind"`
	Text          string                       `json:"text"`
	Points        float64                      `json:"points"`
	Answered      bool                         `json:"answered"`
	Answer        interface{}                  `json:"answer,omitempty"`
	AttachmentURL *string                      `json:"attachment_url,omitempty"`
	Correction    *QuestionCorrectionView      `json:"correction,omitempty"`
}

type SubmissionDetailResponse struct {
	Submission    SubmissionResponse        `json:"submission"`
	CaseStudy     CaseStudyView             `json:"case_study"`
	Questions     []QuestionDetail          `json:"questions"`
	PriorGrade    *gdto.GradeRecordResponse `json:"prior_grade,omitempty"`
	WorkflowState string                    `json:"workflow_state"`
}

type CaseStudyView struct {
	CaseStudyID uuid.UUID  `json:"case_study_id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	MaxPoints   float64    `json:"max_points"`
}

func FromCaseStudyModel(m cmodel.CaseStudyModel) CaseStudyView {
	return CaseStudyView{
		CaseStudyID: m.CaseStudyID,
		Title:       m.CaseStudyTitle,
		DueDate:     m.CaseStudyDueDate,
		MaxPoints:   m.CaseStudyMaxPoints,
	}
}
