// file: internals/features/catalog/model/quiz_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizModel: maksimal satu quiz aktif per chapter (dipakai begitu oleh FE).
type QuizModel struct {
	QuizID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_id" json:"quiz_id"`
	QuizChapterID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_chapter_id" json:"quiz_chapter_id"`
	QuizTitle     string    `gorm:"type:varchar(160);not null;column:quiz_title" json:"quiz_title"`
	QuizIsActive  bool      `gorm:"not null;default:true;column:quiz_is_active" json:"quiz_is_active"`

	QuizCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:quiz_created_at" json:"quiz_created_at"`
	QuizUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:quiz_updated_at" json:"quiz_updated_at"`
	QuizDeletedAt gorm.DeletedAt `gorm:"column:quiz_deleted_at;index" json:"quiz_deleted_at,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

type QuizQuestionModel struct {
	QuizQuestionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_question_id" json:"quiz_question_id"`
	QuizQuestionQuizID   uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_question_quiz_id" json:"quiz_question_quiz_id"`
	QuizQuestionPosition int       `gorm:"not null;default:0;column:quiz_question_position" json:"quiz_question_position"`
	QuizQuestionText     string    `gorm:"type:text;not null;column:quiz_question_text" json:"quiz_question_text"`

	QuizQuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_question_created_at" json:"quiz_question_created_at"`
	QuizQuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_question_updated_at" json:"quiz_question_updated_at"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

type QuizAnswerModel struct {
	QuizAnswerID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_answer_id" json:"quiz_answer_id"`
	QuizAnswerQuestionID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_answer_question_id" json:"quiz_answer_question_id"`
	QuizAnswerText       string    `gorm:"type:text;not null;column:quiz_answer_text" json:"quiz_answer_text"`
	QuizAnswerIsCorrect  bool      `gorm:"not null;default:false;column:quiz_answer_is_correct" json:"quiz_answer_is_correct"`

	QuizAnswerCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_answer_created_at" json:"quiz_answer_created_at"`
	QuizAnswerUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:quiz_answer_updated_at" json:"quiz_answer_updated_at"`
}

func (QuizAnswerModel) TableName() string { return "quiz_answers" }
