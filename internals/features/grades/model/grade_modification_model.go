// file: internals/features/grades/model/grade_modification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeModificationModel: audit trail append-only. Ditulis hanya saat nilai
// delivered diganti dengan selisih > 0.01 dan caller memberi justification.
// Tidak ada update/delete pada tabel ini.
type GradeModificationModel struct {
	GradeModificationID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_modification_id" json:"grade_modification_id"`
	GradeModificationStudentID    uuid.UUID      `gorm:"type:uuid;not null;index;column:grade_modification_student_id" json:"grade_modification_student_id"`
	GradeModificationKind         EvaluationKind `gorm:"type:varchar(16);not null;column:grade_modification_kind" json:"grade_modification_kind"`
	GradeModificationEvaluationID uuid.UUID      `gorm:"type:uuid;not null;index;column:grade_modification_evaluation_id" json:"grade_modification_evaluation_id"`

	GradeModificationOldScore float64 `gorm:"type:numeric(6,2);not null;column:grade_modification_old_score" json:"grade_modification_old_score"`
	GradeModificationNewScore float64 `gorm:"type:numeric(6,2);not null;column:grade_modification_new_score" json:"grade_modification_new_score"`

	GradeModificationJustification string    `gorm:"type:text;not null;column:grade_modification_justification" json:"grade_modification_justification"`
	GradeModificationCorrectorID   uuid.UUID `gorm:"type:uuid;not null;column:grade_modification_corrector_id" json:"grade_modification_corrector_id"`

	GradeModificationCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_modification_created_at" json:"grade_modification_created_at"`
}

func (GradeModificationModel) TableName() string { return "grade_modifications" }
