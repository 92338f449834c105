// file: internals/features/assessments/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubmissionStatus string

const (
	SubmissionStatusPending   SubmissionStatus = "pending"
	SubmissionStatusCorrected SubmissionStatus = "corrected"
)

// SubmissionAttachment: referensi file yang disimpan apa adanya.
// Resolve ke URL hanya saat menyusun correction detail.
type SubmissionAttachment struct {
	QuestionID uuid.UUID `json:"question_id"`
	FileRef    string    `json:"file_ref"`
	FileName   string    `json:"file_name"`
}

// SubmissionModel: unik per (student, case study); submission kedua ditolak,
// bukan di-merge. Tanpa soft delete supaya unique index tetap bersih; baris
// hilang hanya lewat cascade penghapusan case study.
type SubmissionModel struct {
	SubmissionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:submission_id" json:"submission_id"`
	SubmissionStudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_student_case_study,priority:1;column:submission_student_id" json:"submission_student_id"`
	SubmissionCaseStudyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_submissions_student_case_study,priority:2;column:submission_case_study_id" json:"submission_case_study_id"`

	// Jawaban per pertanyaan, key = question_id (string uuid).
	SubmissionAnswers     datatypes.JSONMap `gorm:"type:jsonb;column:submission_answers" json:"submission_answers,omitempty"`
	SubmissionAttachments datatypes.JSON    `gorm:"type:jsonb;column:submission_attachments" json:"submission_attachments,omitempty"`
	SubmissionComment     *string           `gorm:"type:text;column:submission_comment" json:"submission_comment,omitempty"`

	SubmissionStatus SubmissionStatus `gorm:"type:varchar(16);not null;default:'pending';column:submission_status" json:"submission_status"`

	// Terisi saat corrected.
	SubmissionGrade             *float64   `gorm:"type:numeric(5,2);column:submission_grade" json:"submission_grade,omitempty"`
	SubmissionCorrectorID       *uuid.UUID `gorm:"type:uuid;column:submission_corrector_id" json:"submission_corrector_id,omitempty"`
	SubmissionCorrectedAt       *time.Time `gorm:"type:timestamptz;column:submission_corrected_at" json:"submission_corrected_at,omitempty"`
	SubmissionCorrectionComment *string    `gorm:"type:text;column:submission_correction_comment" json:"submission_correction_comment,omitempty"`

	SubmissionSubmittedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_submitted_at" json:"submission_submitted_at"`
	SubmissionCreatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_created_at" json:"submission_created_at"`
	SubmissionUpdatedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:submission_updated_at" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }

// QuestionCorrectionModel: satu baris per (submission, question), di-upsert.
// Max default 20 kalau corrector tidak mengisi.
type QuestionCorrectionModel struct {
	QuestionCorrectionID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:question_correction_id" json:"question_correction_id"`
	QuestionCorrectionSubmissionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_question_corrections_submission_question,priority:1;column:question_correction_submission_id" json:"question_correction_submission_id"`
	QuestionCorrectionQuestionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_question_corrections_submission_question,priority:2;column:question_correction_question_id" json:"question_correction_question_id"`

	QuestionCorrectionScore   float64 `gorm:"type:numeric(5,2);not null;column:question_correction_score" json:"question_correction_score"`
	QuestionCorrectionMax     float64 `gorm:"type:numeric(5,2);not null;default:20;column:question_correction_max" json:"question_correction_max"`
	QuestionCorrectionComment *string `gorm:"type:text;column:question_correction_comment" json:"question_correction_comment,omitempty"`

	QuestionCorrectionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_correction_created_at" json:"question_correction_created_at"`
	QuestionCorrectionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:question_correction_updated_at" json:"question_correction_updated_at"`
}

func (QuestionCorrectionModel) TableName() string { return "question_corrections" }
