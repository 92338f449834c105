// file: internals/features/catalog/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis konten chapter. Hanya text & slide yang masuk denominator progression.
type ChapterKind string

const (
	ChapterKindText     ChapterKind = "text"
	ChapterKindSlide    ChapterKind = "slide"
	ChapterKindVideo    ChapterKind = "video"
	ChapterKindResource ChapterKind = "resource"
)

// CountsTowardProgress: video & resource tidak dihitung.
func (k ChapterKind) CountsTowardProgress() bool {
	return k == ChapterKindText || k == ChapterKindSlide
}

// CourseModel: milik satu block. Published = punya >=1 chapter dan semua
// chapternya aktif (derived, tidak disimpan).
type CourseModel struct {
	CourseID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`
	CourseBlockID  uuid.UUID `gorm:"type:uuid;not null;index;column:course_block_id" json:"course_block_id"`
	CoursePosition int       `gorm:"not null;default:0;column:course_position" json:"course_position"`
	CourseTitle    string    `gorm:"type:varchar(160);not null;column:course_title" json:"course_title"`

	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

type ChapterModel struct {
	ChapterID       uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:chapter_id" json:"chapter_id"`
	ChapterCourseID uuid.UUID   `gorm:"type:uuid;not null;index;column:chapter_course_id" json:"chapter_course_id"`
	ChapterPosition int         `gorm:"not null;default:0;column:chapter_position" json:"chapter_position"`
	ChapterTitle    string      `gorm:"type:varchar(160);not null;column:chapter_title" json:"chapter_title"`
	ChapterKind     ChapterKind `gorm:"type:varchar(16);not null;default:'text';column:chapter_kind" json:"chapter_kind"`
	ChapterIsActive bool        `gorm:"not null;default:true;column:chapter_is_active" json:"chapter_is_active"`

	ChapterCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:chapter_created_at" json:"chapter_created_at"`
	ChapterUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:chapter_updated_at" json:"chapter_updated_at"`
	ChapterDeletedAt gorm.DeletedAt `gorm:"column:chapter_deleted_at;index" json:"chapter_deleted_at,omitempty"`
}

func (ChapterModel) TableName() string { return "chapters" }
