// file: internals/features/assessments/quizzes/model/quiz_attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttemptModel: boleh banyak attempt per (student, quiz); hanya yang
// finished yang dihitung progression. Skor skala 0-100.
type QuizAttemptModel struct {
	QuizAttemptID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_attempt_id" json:"quiz_attempt_id"`
	QuizAttemptStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quiz_attempts_student_quiz_number,priority:1;column:quiz_attempt_student_id" json:"quiz_attempt_student_id"`
	QuizAttemptQuizID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quiz_attempts_student_quiz_number,priority:2;column:quiz_attempt_quiz_id" json:"quiz_attempt_quiz_id"`
	QuizAttemptNumber    int       `gorm:"not null;default:1;uniqueIndex:uq_quiz_attempts_student_quiz_number,priority:3;column:quiz_attempt_number" json:"quiz_attempt_number"`

	QuizAttemptScore            float64 `gorm:"type:numeric(5,2);not null;default:0;column:quiz_attempt_score" json:"quiz_attempt_score"`
	QuizAttemptIsFinished       bool    `gorm:"not null;default:false;column:quiz_attempt_is_finished" json:"quiz_attempt_is_finished"`
	QuizAttemptTimeSpentMinutes *int    `gorm:"column:quiz_attempt_time_spent_minutes" json:"quiz_attempt_time_spent_minutes,omitempty"`

	QuizAttemptStartedAt  time.Time  `gorm:"type:timestamptz;not null;default:now();column:quiz_attempt_started_at" json:"quiz_attempt_started_at"`
	QuizAttemptFinishedAt *time.Time `gorm:"type:timestamptz;column:quiz_attempt_finished_at" json:"quiz_attempt_finished_at,omitempty"`

	QuizAttemptCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_attempt_created_at" json:"quiz_attempt_created_at"`
	QuizAttemptUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_attempt_updated_at" json:"quiz_attempt_updated_at"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }
