// file: internals/features/progress/dto/progress_dto.go
package dto

import (
	"github.com/google/uuid"

	gdto "akademiku_backend/internals/features/grades/dto"
)

/* ===============================
   Requests
=================================*/

// SessionPingRequest: akumulasi menit koneksi hari ini.
type SessionPingRequest struct {
	Minutes int `json:"minutes" validate:"required,min=1,max=1440"`
}

/* ===============================
   Responses
=================================*/

type DayActivity struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Minutes int    `json:"minutes"`
}

type ProgressResponse struct {
	StudentID       uuid.UUID `json:"student_id"`
	ProgramID       uuid.UUID `json:"program_id"`
	TotalItems      int       `json:"total_items"`
	CompletedItems  int       `json:"completed_items"`
	ProgressPercent int       `json:"progress_percent"`

	ChaptersRead        int `json:"chapters_read"`
	QuizzesFinished     int `json:"quizzes_finished"`
	CaseStudiesHandedIn int `json:"case_studies_handed_in"`

	TotalTimeMinutes int           `json:"total_time_minutes"`
	WeeklyActivity   []DayActivity `json:"weekly_activity"`
}

// BlockSummaryResponse: view transkrip per blok. LatestGrades maksimal dua
// entri terbaru, murni display, bukan rata-rata akademik.
type BlockSummaryResponse struct {
	BlockID      uuid.UUID                  `json:"block_id"`
	LatestGrades []gdto.GradeRecordResponse `json:"latest_grades"`
	GradeCount   int                        `json:"grade_count"`
}
