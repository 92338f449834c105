// file: internals/features/assessments/quizzes/dto/quiz_attempt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	qmodel "akademiku_backend/internals/features/assessments/quizzes/model"
)

type RecordAttemptRequest struct {
	Score            *float64 `json:"score" validate:"required"`
	TimeSpentMinutes *int     `json:"time_spent_minutes,omitempty" validate:"omitempty,min=0"`
}

type QuizAttemptResponse struct {
	QuizAttemptID    uuid.UUID  `json:"quiz_attempt_id"`
	StudentID        uuid.UUID  `json:"student_id"`
	QuizID           uuid.UUID  `json:"quiz_id"`
	AttemptNumber    int        `json:"attempt_number"`
	Score            float64    `json:"score"`
	IsFinished       bool       `json:"is_finished"`
	TimeSpentMinutes *int       `json:"time_spent_minutes,omitempty"`
	StartedAt        time.Time  `json:"started_at"`
	FinishedAt       *time.Time `json:"finished_at,omitempty"`
}

func FromQuizAttemptModel(m qmodel.QuizAttemptModel) QuizAttemptResponse {
	return QuizAttemptResponse{
		QuizAttemptID:    m.QuizAttemptID,
		StudentID:        m.QuizAttemptStudentID,
		QuizID:           m.QuizAttemptQuizID,
		AttemptNumber:    m.QuizAttemptNumber,
		Score:            m.QuizAttemptScore,
		IsFinished:       m.QuizAttemptIsFinished,
		TimeSpentMinutes: m.QuizAttemptTimeSpentMinutes,
		StartedAt:        m.QuizAttemptStartedAt,
		FinishedAt:       m.QuizAttemptFinishedAt,
	}
}

func FromQuizAttemptModels(ms []qmodel.QuizAttemptModel) []QuizAttemptResponse {
	out := make([]QuizAttemptResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromQuizAttemptModel(m))
	}
	return out
}
