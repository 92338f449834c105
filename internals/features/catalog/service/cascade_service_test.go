// file: internals/features/catalog/service/cascade_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"akademiku_backend/internals/helpers/errs"
)

func newCascadeMock(t *testing.T) (*CascadeService, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	catalog := NewCatalogService(db)
	return NewCascadeService(db, catalog), mock, func() { sqlDB.Close() }
}

// Teardown course menjalankan DELETE untuk SEMUA tabel anak, leaf-first,
// di dalam satu transaksi. Ekspektasi mock berurutan, jadi urutan tahap
// ikut terverifikasi, bukan cuma daftar namanya.
func TestDeleteCourseRemovesAllDescendants(t *testing.T) {
	svc, mock, closeFn := newCascadeMock(t)
	defer closeFn()

	courseID := uuid.New()
	blockID := uuid.New()
	programID := uuid.New()
	chapterA := uuid.New()
	chapterB := uuid.New()
	quizID := uuid.New()
	caseStudyID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_block_id"}).
			AddRow(courseID.String(), blockID.String()))
	mock.ExpectQuery(`SELECT chapter_id::text FROM chapters`).
		WillReturnRows(sqlmock.NewRows([]string{"chapter_id"}).
			AddRow(chapterA.String()).AddRow(chapterB.String()))
	mock.ExpectQuery(`SELECT quiz_id::text FROM quizzes`).
		WillReturnRows(sqlmock.NewRows([]string{"quiz_id"}).AddRow(quizID.String()))
	mock.ExpectQuery(`SELECT case_study_id::text FROM case_studies`).
		WillReturnRows(sqlmock.NewRows([]string{"case_study_id"}).AddRow(caseStudyID.String()))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM quiz_answers`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`DELETE FROM quiz_questions`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM quiz_attempts`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM grade_records WHERE grade_record_kind = 'quiz'`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "quizzes"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM question_corrections`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM submissions`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM grade_records WHERE grade_record_kind = 'case_study'`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM case_study_questions`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "case_studies"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM grade_records WHERE grade_record_kind = 'manual'`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "chapters"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "courses"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// invalidasi cache setelah commit
	mock.ExpectQuery(`SELECT competency_block_program_id::text FROM competency_blocks`).
		WillReturnRows(sqlmock.NewRows([]string{"competency_block_program_id"}).
			AddRow(programID.String()))

	if err := svc.DeleteCourse(context.Background(), courseID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("ada tahap yang tidak jalan atau keluar urutan: %v", err)
	}
}

// Tahap yang gagal membatalkan seluruh transaksi dan melaporkan nama tahapnya.
func TestDeleteCourseRollsBackOnStageFailure(t *testing.T) {
	svc, mock, closeFn := newCascadeMock(t)
	defer closeFn()

	courseID := uuid.New()
	chapterID := uuid.New()
	quizID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_block_id"}).
			AddRow(courseID.String(), uuid.New().String()))
	mock.ExpectQuery(`SELECT chapter_id::text FROM chapters`).
		WillReturnRows(sqlmock.NewRows([]string{"chapter_id"}).AddRow(chapterID.String()))
	mock.ExpectQuery(`SELECT quiz_id::text FROM quizzes`).
		WillReturnRows(sqlmock.NewRows([]string{"quiz_id"}).AddRow(quizID.String()))
	mock.ExpectQuery(`SELECT case_study_id::text FROM case_studies`).
		WillReturnRows(sqlmock.NewRows([]string{"case_study_id"}))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM quiz_answers`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM quiz_questions`).WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err := svc.DeleteCourse(context.Background(), courseID)
	var ic *errs.InconsistentCascade
	if !errors.As(err, &ic) {
		t.Fatalf("got err=%v, want InconsistentCascade", err)
	}
	if ic.Stage != "quiz_questions" {
		t.Errorf("got stage=%q, want quiz_questions", ic.Stage)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("ekspektasi tidak terpenuhi: %v", err)
	}
}
