// file: internals/helpers/errs/errs.go
package errs

import (
	"fmt"

	"github.com/google/uuid"
)

/* ===============================
   Domain error taxonomy
   Semua error di sini recoverable oleh caller dan membawa
   entity kind + id supaya bisa ditindaklanjuti.
=================================*/

// NotFound: entitas yang direferensikan tidak ada / sudah tidak aktif.
type NotFound struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFound(entity string, id uuid.UUID) error {
	return &NotFound{Entity: entity, ID: id}
}

// DuplicateSubmission: submission kedua untuk pasangan (student, case study).
// Terminal, bukan untuk di-retry.
type DuplicateSubmission struct {
	StudentID   uuid.UUID
	CaseStudyID uuid.UUID
}

func (e *DuplicateSubmission) Error() string {
	return fmt.Sprintf("submission already exists for student %s on case study %s", e.StudentID, e.CaseStudyID)
}

// IncompleteCorrection: submitCorrections dipanggil tanpa skor untuk semua
// pertanyaan aktif dari case study.
type IncompleteCorrection struct {
	SubmissionID       uuid.UUID
	MissingQuestionIDs []uuid.UUID
}

func (e *IncompleteCorrection) Error() string {
	return fmt.Sprintf("correction for submission %s is missing scores for %d question(s)", e.SubmissionID, len(e.MissingQuestionIDs))
}

// MissingJustification: override nilai yang sudah delivered dengan selisih
// material (> 0.01) tanpa justification.
type MissingJustification struct {
	EvaluationID uuid.UUID
	OldScore     float64
	NewScore     float64
}

func (e *MissingJustification) Error() string {
	return fmt.Sprintf("replacing grade %.2f with %.2f on evaluation %s requires a justification", e.OldScore, e.NewScore, e.EvaluationID)
}

// InconsistentCascade: salah satu tahap cascading delete gagal.
// Stage menyebut sub-resource yang gagal supaya cleanup manual bisa dilakukan.
type InconsistentCascade struct {
	Stage string
	Err   error
}

func (e *InconsistentCascade) Error() string {
	return fmt.Sprintf("cascade aborted at stage %q: %v", e.Stage, e.Err)
}

func (e *InconsistentCascade) Unwrap() error { return e.Err }

// ConcurrencyConflict: pelanggaran unique constraint yang tidak terselesaikan
// setelah retry terbatas.
type ConcurrencyConflict struct {
	Entity   string
	Attempts int
}

func (e *ConcurrencyConflict) Error() string {
	return fmt.Sprintf("could not resolve concurrent write on %s after %d attempt(s)", e.Entity, e.Attempts)
}
