// file: internals/features/grades/dto/grade_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	gmodel "akademiku_backend/internals/features/grades/model"
	helper "akademiku_backend/internals/helpers"
)

/* ===============================
   Requests
=================================*/

// UpsertManualGradeRequest: entri nilai manual oleh admin/teacher.
// EvaluationID bebas (umumnya chapter id untuk penanda "sudah dibaca").
type UpsertManualGradeRequest struct {
	StudentID        uuid.UUID `json:"student_id" validate:"required"`
	EvaluationID     uuid.UUID `json:"evaluation_id" validate:"required"`
	BlockID          uuid.UUID `json:"block_id" validate:"required"`
	Score            *float64  `json:"score" validate:"required"`
	Max              *float64  `json:"max,omitempty" validate:"omitempty,gt=0"`
	TimeSpentMinutes *int      `json:"time_spent_minutes,omitempty" validate:"omitempty,min=0"`
}

// MarkChapterReadRequest: siswa menandai chapter selesai dibaca.
type MarkChapterReadRequest struct {
	TimeSpentMinutes *int `json:"time_spent_minutes,omitempty" validate:"omitempty,min=0"`
}

/* ===============================
   Responses
=================================*/

type GradeRecordResponse struct {
	GradeRecordID    uuid.UUID             `json:"grade_record_id"`
	StudentID        uuid.UUID             `json:"student_id"`
	Kind             gmodel.EvaluationKind `json:"kind"`
	EvaluationID     uuid.UUID             `json:"evaluation_id"`
	BlockID          uuid.UUID             `json:"block_id"`
	Score            *float64              `json:"score"`
	ScoreDisplay     *string               `json:"score_display"`
	Max              float64               `json:"max"`
	TimeSpentMinutes *int                  `json:"time_spent_minutes,omitempty"`
	GradedAt         time.Time             `json:"graded_at"`
}

func FromGradeRecordModel(m gmodel.GradeRecordModel, decimalSep string) GradeRecordResponse {
	var display *string
	if m.GradeRecordScore != nil {
		s := helper.FormatScore(*m.GradeRecordScore, decimalSep)
		display = &s
	}
	return GradeRecordResponse{
		GradeRecordID:    m.GradeRecordID,
		StudentID:        m.GradeRecordStudentID,
		Kind:             m.GradeRecordKind,
		EvaluationID:     m.GradeRecordEvaluationID,
		BlockID:          m.GradeRecordBlockID,
		Score:            m.GradeRecordScore,
		ScoreDisplay:     display,
		Max:              m.GradeRecordMax,
		TimeSpentMinutes: m.GradeRecordTimeSpentMinutes,
		GradedAt:         m.GradeRecordGradedAt,
	}
}

func FromGradeRecordModels(ms []gmodel.GradeRecordModel, decimalSep string) []GradeRecordResponse {
	out := make([]GradeRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGradeRecordModel(m, decimalSep))
	}
	return out
}

type GradeModificationResponse struct {
	GradeModificationID uuid.UUID             `json:"grade_modification_id"`
	StudentID           uuid.UUID             `json:"student_id"`
	Kind                gmodel.EvaluationKind `json:"kind"`
	EvaluationID        uuid.UUID             `json:"evaluation_id"`
	OldScore            float64               `json:"old_score"`
	NewScore            float64               `json:"new_score"`
	Justification       string                `json:"justification"`
	CorrectorID         uuid.UUID             `json:"corrector_id"`
	CreatedAt           time.Time             `json:"created_at"`
}

func FromGradeModificationModels(ms []gmodel.GradeModificationModel) []GradeModificationResponse {
	out := make([]GradeModificationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, GradeModificationResponse{
			GradeModificationID: m.GradeModificationID,
			StudentID:           m.GradeModificationStudentID,
			Kind:                m.GradeModificationKind,
			EvaluationID:        m.GradeModificationEvaluationID,
			OldScore:            m.GradeModificationOldScore,
			NewScore:            m.GradeModificationNewScore,
			Justification:       m.GradeModificationJustification,
			CorrectorID:         m.GradeModificationCorrectorID,
			CreatedAt:           m.GradeModificationCreatedAt,
		})
	}
	return out
}
