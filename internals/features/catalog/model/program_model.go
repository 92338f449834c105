// file: internals/features/catalog/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgramModel (formation): kurikulum bernama, pemilik competency blocks.
type ProgramModel struct {
	ProgramID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`
	ProgramTitle    string    `gorm:"type:varchar(160);not null;column:program_title" json:"program_title"`
	ProgramIsActive bool      `gorm:"not null;default:true;column:program_is_active" json:"program_is_active"`

	ProgramCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:program_created_at" json:"program_created_at"`
	ProgramUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:program_updated_at" json:"program_updated_at"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }

// CompetencyBlockModel: unit rata-rata nilai & tampilan progression.
type CompetencyBlockModel struct {
	CompetencyBlockID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:competency_block_id" json:"competency_block_id"`
	CompetencyBlockProgramID uuid.UUID `gorm:"type:uuid;not null;index;column:competency_block_program_id" json:"competency_block_program_id"`
	CompetencyBlockPosition  int       `gorm:"not null;default:0;column:competency_block_position" json:"competency_block_position"`
	CompetencyBlockTitle     string    `gorm:"type:varchar(160);not null;column:competency_block_title" json:"competency_block_title"`
	CompetencyBlockIsActive  bool      `gorm:"not null;default:true;column:competency_block_is_active" json:"competency_block_is_active"`

	CompetencyBlockCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:competency_block_created_at" json:"competency_block_created_at"`
	CompetencyBlockUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:competency_block_updated_at" json:"competency_block_updated_at"`
	CompetencyBlockDeletedAt gorm.DeletedAt `gorm:"column:competency_block_deleted_at;index" json:"competency_block_deleted_at,omitempty"`
}

func (CompetencyBlockModel) TableName() string { return "competency_blocks" }
