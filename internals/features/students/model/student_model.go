// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel: learner yang sudah di-unlock dari applicant.
// Program nullable sebelum enrollment. Aktivitas (grades, attempts,
// submissions) di-key pakai user id token, bukan student_id.
type StudentModel struct {
	StudentID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex;column:student_user_id" json:"student_user_id"`
	StudentFullName  string     `gorm:"type:varchar(160);not null;column:student_full_name" json:"student_full_name"`
	StudentProgramID *uuid.UUID `gorm:"type:uuid;column:student_program_id" json:"student_program_id,omitempty"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
