// file: internals/features/assessments/quizzes/service/quiz_attempt_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	qmodel "akademiku_backend/internals/features/assessments/quizzes/model"
	catalogservice "akademiku_backend/internals/features/catalog/service"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	"akademiku_backend/internals/helpers/errs"
)

/* =======================================================================
   Quiz attempt intake
   recordQuizAttemptFinished: append attempt finished + upsert GradeRecord
   kind=quiz (skala 0-100).
======================================================================= */

type QuizAttemptService struct {
	DB      *gorm.DB
	Catalog *catalogservice.CatalogService
	Grades  gservice.GradeStore
}

func NewQuizAttemptService(db *gorm.DB, catalog *catalogservice.CatalogService, grades gservice.GradeStore) *QuizAttemptService {
	return &QuizAttemptService{DB: db, Catalog: catalog, Grades: grades}
}

const attemptNumberRetryLimit = 3

func (s *QuizAttemptService) RecordAttemptFinished(
	ctx context.Context,
	studentID, quizID uuid.UUID,
	score float64,
	timeSpentMinutes *int,
) (*qmodel.QuizAttemptModel, error) {
	// quiz harus ada & aktif; sekalian dapat block pemilik
	blockID, err := s.Catalog.BlockForQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	score = gservice.ClampScore(score, 100)
	now := time.Now()

	var attempt *qmodel.QuizAttemptModel
	for tries := 1; tries <= attemptNumberRetryLimit; tries++ {
		next, err := s.nextAttemptNumber(ctx, studentID, quizID)
		if err != nil {
			return nil, err
		}

		candidate := qmodel.QuizAttemptModel{
			QuizAttemptStudentID:        studentID,
			QuizAttemptQuizID:           quizID,
			QuizAttemptNumber:           next,
			QuizAttemptScore:            score,
			QuizAttemptIsFinished:       true,
			QuizAttemptTimeSpentMinutes: timeSpentMinutes,
			QuizAttemptFinishedAt:       &now,
		}
		err = s.DB.WithContext(ctx).Create(&candidate).Error
		if err == nil {
			attempt = &candidate
			break
		}
		// nomor attempt keduluan writer lain: hitung ulang
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	if attempt == nil {
		return nil, &errs.ConcurrencyConflict{Entity: "quiz_attempt", Attempts: attemptNumberRetryLimit}
	}

	// nilai otoritatif ikut attempt terakhir yang selesai
	if _, err := s.Grades.Upsert(ctx, gservice.UpsertGradeInput{
		StudentID:        studentID,
		Kind:             gmodel.EvaluationKindQuiz,
		EvaluationID:     quizID,
		BlockID:          blockID,
		Score:            &score,
		Max:              100,
		TimeSpentMinutes: timeSpentMinutes,
	}); err != nil {
		return nil, err
	}

	log.Printf("[QuizAttempt] student=%s quiz=%s attempt=%d score=%.2f",
		studentID, quizID, attempt.QuizAttemptNumber, score)
	return attempt, nil
}

func (s *QuizAttemptService) nextAttemptNumber(ctx context.Context, studentID, quizID uuid.UUID) (int, error) {
	var current int
	err := s.DB.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(quiz_attempt_number), 0) FROM quiz_attempts
			WHERE quiz_attempt_student_id = ? AND quiz_attempt_quiz_id = ?`, studentID, quizID).
		Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}

// ListAttempts: riwayat attempt satu quiz, limit <= 0 berarti tanpa paging.
func (s *QuizAttemptService) ListAttempts(ctx context.Context, studentID, quizID uuid.UUID, limit, offset int) ([]qmodel.QuizAttemptModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).
		Model(&qmodel.QuizAttemptModel{}).
		Where("quiz_attempt_student_id = ? AND quiz_attempt_quiz_id = ?", studentID, quizID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := s.DB.WithContext(ctx).
		Where("quiz_attempt_student_id = ? AND quiz_attempt_quiz_id = ?", studentID, quizID).
		Order("quiz_attempt_number ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var attempts []qmodel.QuizAttemptModel
	err := q.Find(&attempts).Error
	return attempts, total, err
}
