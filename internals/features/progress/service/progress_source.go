// file: internals/features/progress/service/progress_source.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qmodel "akademiku_backend/internals/features/assessments/quizzes/model"
	smodel "akademiku_backend/internals/features/assessments/submissions/model"
	gmodel "akademiku_backend/internals/features/grades/model"
	pmodel "akademiku_backend/internals/features/progress/model"
)

// ProgressSource: pembacaan aktivitas siswa yang dibutuhkan aggregator.
// Dipisah dari catalog supaya fake in-memory untuk test cukup kecil.
type ProgressSource interface {
	// ChaptersRead: chapter id yang punya GradeRecord manual (penanda dibaca).
	ChaptersRead(ctx context.Context, studentID uuid.UUID, chapterIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// QuizzesFinished: quiz id dengan >=1 attempt finished.
	QuizzesFinished(ctx context.Context, studentID uuid.UUID, quizIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// CaseStudiesSubmitted: case study id yang sudah punya submission.
	CaseStudiesSubmitted(ctx context.Context, studentID uuid.UUID, caseStudyIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	// TotalTimeMinutes: jumlah time_spent GradeRecord manual + quiz, lintas blok.
	TotalTimeMinutes(ctx context.Context, studentID uuid.UUID) (int, error)
	SessionsSince(ctx context.Context, studentID uuid.UUID, since time.Time) ([]pmodel.ConnectionSessionModel, error)
	AddSessionMinutes(ctx context.Context, studentID uuid.UUID, day time.Time, minutes int) error
}

type GormProgressSource struct {
	DB *gorm.DB
}

func NewGormProgressSource(db *gorm.DB) *GormProgressSource {
	return &GormProgressSource{DB: db}
}

var _ ProgressSource = (*GormProgressSource)(nil)

func (s *GormProgressSource) ChaptersRead(ctx context.Context, studentID uuid.UUID, chapterIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(chapterIDs))
	if len(chapterIDs) == 0 {
		return out, nil
	}
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&gmodel.GradeRecordModel{}).
		Where("grade_record_student_id = ? AND grade_record_kind = ? AND grade_record_evaluation_id IN ?",
			studentID, gmodel.EvaluationKindManual, chapterIDs).
		Pluck("grade_record_evaluation_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *GormProgressSource) QuizzesFinished(ctx context.Context, studentID uuid.UUID, quizIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(quizIDs))
	if len(quizIDs) == 0 {
		return out, nil
	}
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&qmodel.QuizAttemptModel{}).
		Distinct("quiz_attempt_quiz_id").
		Where("quiz_attempt_student_id = ? AND quiz_attempt_is_finished = TRUE AND quiz_attempt_quiz_id IN ?",
			studentID, quizIDs).
		Pluck("quiz_attempt_quiz_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *GormProgressSource) CaseStudiesSubmitted(ctx context.Context, studentID uuid.UUID, caseStudyIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(caseStudyIDs))
	if len(caseStudyIDs) == 0 {
		return out, nil
	}
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Model(&smodel.SubmissionModel{}).
		Where("submission_student_id = ? AND submission_case_study_id IN ?", studentID, caseStudyIDs).
		Pluck("submission_case_study_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (s *GormProgressSource) TotalTimeMinutes(ctx context.Context, studentID uuid.UUID) (int, error) {
	var total *int
	err := s.DB.WithContext(ctx).
		Model(&gmodel.GradeRecordModel{}).
		Select("SUM(grade_record_time_spent_minutes)").
		Where("grade_record_student_id = ? AND grade_record_kind IN ?",
			studentID, []gmodel.EvaluationKind{gmodel.EvaluationKindManual, gmodel.EvaluationKindQuiz}).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (s *GormProgressSource) SessionsSince(ctx context.Context, studentID uuid.UUID, since time.Time) ([]pmodel.ConnectionSessionModel, error) {
	var out []pmodel.ConnectionSessionModel
	err := s.DB.WithContext(ctx).
		Where("connection_session_student_id = ? AND connection_session_day >= ?", studentID, since.Format("2006-01-02")).
		Order("connection_session_day ASC").
		Find(&out).Error
	return out, err
}

// AddSessionMinutes: akumulasi, bukan overwrite; ping kedua di hari yang
// sama menambah menit.
func (s *GormProgressSource) AddSessionMinutes(ctx context.Context, studentID uuid.UUID, day time.Time, minutes int) error {
	row := pmodel.ConnectionSessionModel{
		ConnectionSessionStudentID: studentID,
		ConnectionSessionDay:       day,
		ConnectionSessionMinutes:   minutes,
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "connection_session_student_id"},
				{Name: "connection_session_day"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"connection_session_minutes": gorm.Expr("connection_sessions.connection_session_minutes + ?", minutes),
				"updated_at":                 time.Now(),
			}),
		}).
		Create(&row).Error
}
