// file: internals/features/grades/model/grade_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Diskriminator sumber nilai. Satu skema untuk tiga sumber (tagged variant,
// bukan hirarki kelas); komputasi spesifik-kind hidup di fungsi, bukan method
// virtual.
type EvaluationKind string

const (
	EvaluationKindManual    EvaluationKind = "manual"
	EvaluationKindQuiz      EvaluationKind = "quiz"
	EvaluationKindCaseStudy EvaluationKind = "case_study"
)

func (k EvaluationKind) Valid() bool {
	switch k {
	case EvaluationKindManual, EvaluationKindQuiz, EvaluationKindCaseStudy:
		return true
	}
	return false
}

// Skala default per kind: quiz 0-100, sisanya 0-20.
func (k EvaluationKind) DefaultMax() float64 {
	if k == EvaluationKindQuiz {
		return 100
	}
	return 20
}

// GradeRecordModel: nilai otoritatif per (student, kind, evaluation).
// Unik lewat composite unique index; upsert ON CONFLICT di service.
// Tidak pakai soft delete: baris hanya hilang lewat cascade penghapusan
// evaluasi pemiliknya.
type GradeRecordModel struct {
	GradeRecordID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_record_id" json:"grade_record_id"`
	GradeRecordStudentID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_grade_records_student_kind_eval,priority:1;column:grade_record_student_id" json:"grade_record_student_id"`
	GradeRecordKind         EvaluationKind `gorm:"type:varchar(16);not null;uniqueIndex:uq_grade_records_student_kind_eval,priority:2;column:grade_record_kind" json:"grade_record_kind"`
	GradeRecordEvaluationID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_grade_records_student_kind_eval,priority:3;column:grade_record_evaluation_id" json:"grade_record_evaluation_id"`

	GradeRecordBlockID uuid.UUID `gorm:"type:uuid;not null;index;column:grade_record_block_id" json:"grade_record_block_id"`

	// NULL = placeholder (belum delivered). Ledger & justification gate hanya
	// berlaku untuk nilai yang sudah delivered (non-NULL).
	GradeRecordScore *float64 `gorm:"type:numeric(6,2);column:grade_record_score" json:"grade_record_score,omitempty"`
	GradeRecordMax   float64  `gorm:"type:numeric(6,2);not null;default:20;column:grade_record_max" json:"grade_record_max"`

	GradeRecordTimeSpentMinutes *int `gorm:"column:grade_record_time_spent_minutes" json:"grade_record_time_spent_minutes,omitempty"`

	// Ordering by graded_at desc is load-bearing untuk summary "2 nilai terakhir".
	GradeRecordGradedAt time.Time `gorm:"type:timestamptz;not null;default:now();index;column:grade_record_graded_at" json:"grade_record_graded_at"`

	GradeRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_record_created_at" json:"grade_record_created_at"`
	GradeRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_record_updated_at" json:"grade_record_updated_at"`
}

func (GradeRecordModel) TableName() string { return "grade_records" }
