// file: internals/features/catalog/model/case_study_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis pertanyaan case study.
type CaseStudyQuestionKind string

const (
	CaseStudyQuestionKindOpenText     CaseStudyQuestionKind = "open_text"
	CaseStudyQuestionKindSingleChoice CaseStudyQuestionKind = "single_choice"
	CaseStudyQuestionKindMultiChoice  CaseStudyQuestionKind = "multi_choice"
	CaseStudyQuestionKindTrueFalse    CaseStudyQuestionKind = "true_false"
	CaseStudyQuestionKindAttachment   CaseStudyQuestionKind = "attachment"
)

// CaseStudyModel: maksimal satu case study aktif per course.
type CaseStudyModel struct {
	CaseStudyID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:case_study_id" json:"case_study_id"`
	CaseStudyCourseID  uuid.UUID  `gorm:"type:uuid;not null;index;column:case_study_course_id" json:"case_study_course_id"`
	CaseStudyTitle     string     `gorm:"type:varchar(160);not null;column:case_study_title" json:"case_study_title"`
	CaseStudyDueDate   *time.Time `gorm:"type:timestamptz;column:case_study_due_date" json:"case_study_due_date,omitempty"`
	CaseStudyMaxPoints float64    `gorm:"type:numeric(5,2);not null;default:20;column:case_study_max_points" json:"case_study_max_points"`
	CaseStudyIsActive  bool       `gorm:"not null;default:true;column:case_study_is_active" json:"case_study_is_active"`

	CaseStudyCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:case_study_created_at" json:"case_study_created_at"`
	CaseStudyUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:case_study_updated_at" json:"case_study_updated_at"`
	CaseStudyDeletedAt gorm.DeletedAt `gorm:"column:case_study_deleted_at;index" json:"case_study_deleted_at,omitempty"`
}

func (CaseStudyModel) TableName() string { return "case_studies" }

// CaseStudyQuestionModel: bobot poin per pertanyaan.
// Options JSONB untuk kind pilihan (single/multi/true_false).
type CaseStudyQuestionModel struct {
	CaseStudyQuestionID          uuid.UUID             `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:case_study_question_id" json:"case_study_question_id"`
	CaseStudyQuestionCaseStudyID uuid.UUID             `gorm:"type:uuid;not null;index;column:case_study_question_case_study_id" json:"case_study_question_case_study_id"`
	CaseStudyQuestionPosition    int                   `gorm:"not null;default:0;column:case_study_question_position" json:"case_study_question_position"`
	CaseStudyQuestionKind        CaseStudyQuestionKind `gorm:"type:varchar(16);not null;default:'open_text';column:case_study_question_kind" json:"case_study_question_kind"`
	CaseStudyQuestionText        string                `gorm:"type:text;not null;column:case_study_question_text" json:"case_study_question_text"`
	CaseStudyQuestionPoints      float64               `gorm:"type:numeric(5,2);not null;default:20;column:case_study_question_points" json:"case_study_question_points"`
	CaseStudyQuestionOptions     datatypes.JSON        `gorm:"type:jsonb;column:case_study_question_options" json:"case_study_question_options,omitempty"`
	CaseStudyQuestionIsActive    bool                  `gorm:"not null;default:true;column:case_study_question_is_active" json:"case_study_question_is_active"`

	CaseStudyQuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:case_study_question_created_at" json:"case_study_question_created_at"`
	CaseStudyQuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:case_study_question_updated_at" json:"case_study_question_updated_at"`
}

func (CaseStudyQuestionModel) TableName() string { return "case_study_questions" }
