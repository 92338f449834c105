// file: internals/features/assessments/submissions/service/submission_store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	smodel "akademiku_backend/internals/features/assessments/submissions/model"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
)

/* =======================================================================
   Submission store
   Kontrak untuk Submission Store + unit atomik finalize milik Correction
   Workflow (update submission + upsert GradeRecord + ledger dalam satu
   transaksi). Fake in-memory untuk test mengimplement interface yang sama.
======================================================================= */

// FinalizeInput: steps 5-6 dari workflow sebagai satu unit logis.
type FinalizeInput struct {
	SubmissionID uuid.UUID
	StudentID    uuid.UUID
	CaseStudyID  uuid.UUID
	BlockID      uuid.UUID

	Composite         float64
	CompositeMax      float64
	CorrectionComment *string
	CorrectorID       uuid.UUID
	Justification     *string
}

type FinalizeResult struct {
	LedgerWritten bool
	OldScore      *float64
	Grade         float64
}

type SubmissionStore interface {
	// Insert: false kalau pasangan (student, case study) sudah punya
	// submission; isi submission pertama tidak boleh berubah.
	Insert(ctx context.Context, sub *smodel.SubmissionModel) (bool, error)
	ByID(ctx context.Context, id uuid.UUID) (*smodel.SubmissionModel, error)
	UpsertQuestionCorrection(ctx context.Context, qc *smodel.QuestionCorrectionModel) error
	CorrectionsForSubmission(ctx context.Context, submissionID uuid.UUID) ([]smodel.QuestionCorrectionModel, error)
	// Finalize menjalankan justification gate terhadap GradeRecord TERKINI
	// (bukan stale read) lalu menulis submission + grade + ledger atomik.
	// Gate gagal -> tidak ada mutasi sama sekali.
	Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error)
}

/* ===============================
   GORM implementation
=================================*/

type GormSubmissionStore struct {
	DB     *gorm.DB
	Grades *gservice.GradeStoreService
}

func NewGormSubmissionStore(db *gorm.DB, grades *gservice.GradeStoreService) *GormSubmissionStore {
	return &GormSubmissionStore{DB: db, Grades: grades}
}

var _ SubmissionStore = (*GormSubmissionStore)(nil)

func (st *GormSubmissionStore) Insert(ctx context.Context, sub *smodel.SubmissionModel) (bool, error) {
	res := st.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "submission_student_id"},
				{Name: "submission_case_study_id"},
			},
			DoNothing: true,
		}).
		Create(sub)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (st *GormSubmissionStore) ByID(ctx context.Context, id uuid.UUID) (*smodel.SubmissionModel, error) {
	var sub smodel.SubmissionModel
	err := st.DB.WithContext(ctx).Where("submission_id = ?", id).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (st *GormSubmissionStore) UpsertQuestionCorrection(ctx context.Context, qc *smodel.QuestionCorrectionModel) error {
	qc.QuestionCorrectionUpdatedAt = time.Now()
	return st.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "question_correction_submission_id"},
				{Name: "question_correction_question_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"question_correction_score",
				"question_correction_max",
				"question_correction_comment",
				"question_correction_updated_at",
			}),
		}).
		Create(qc).Error
}

func (st *GormSubmissionStore) CorrectionsForSubmission(ctx context.Context, submissionID uuid.UUID) ([]smodel.QuestionCorrectionModel, error) {
	var out []smodel.QuestionCorrectionModel
	err := st.DB.WithContext(ctx).
		Where("question_correction_submission_id = ?", submissionID).
		Find(&out).Error
	return out, err
}

func (st *GormSubmissionStore) Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	var result FinalizeResult

	err := st.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// baca grade TERKINI dengan row lock: corrector kedua melihat hasil
		// corrector pertama, bukan stale read
		var current gmodel.GradeRecordModel
		currentPtr := &current
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("grade_record_student_id = ? AND grade_record_kind = ? AND grade_record_evaluation_id = ?",
				in.StudentID, gmodel.EvaluationKindCaseStudy, in.CaseStudyID).
			First(&current).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			currentPtr = nil
		} else if err != nil {
			return err
		}

		writeLedger, err := gservice.DecideOverride(currentPtr, in.Composite, in.Justification, in.CaseStudyID)
		if err != nil {
			return err // MissingJustification: rollback, submission tidak tersentuh
		}

		now := time.Now()
		updates := map[string]interface{}{
			"submission_status":             smodel.SubmissionStatusCorrected,
			"submission_grade":              in.Composite,
			"submission_corrector_id":       in.CorrectorID,
			"submission_corrected_at":       now,
			"submission_correction_comment": in.CorrectionComment,
			"submission_updated_at":         now,
		}
		if err := tx.Model(&smodel.SubmissionModel{}).
			Where("submission_id = ?", in.SubmissionID).
			Updates(updates).Error; err != nil {
			return err
		}

		composite := in.Composite
		if _, err := st.Grades.WithTx(tx).Upsert(ctx, gservice.UpsertGradeInput{
			StudentID:    in.StudentID,
			Kind:         gmodel.EvaluationKindCaseStudy,
			EvaluationID: in.CaseStudyID,
			BlockID:      in.BlockID,
			Score:        &composite,
			Max:          in.CompositeMax,
		}); err != nil {
			return err
		}

		if writeLedger {
			// writeLedger true hanya saat nilai lama delivered (non-NULL)
			entry := gmodel.GradeModificationModel{
				GradeModificationStudentID:     in.StudentID,
				GradeModificationKind:          gmodel.EvaluationKindCaseStudy,
				GradeModificationEvaluationID:  in.CaseStudyID,
				GradeModificationOldScore:      *current.GradeRecordScore,
				GradeModificationNewScore:      in.Composite,
				GradeModificationJustification: *in.Justification,
				GradeModificationCorrectorID:   in.CorrectorID,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			result.LedgerWritten = true
			result.OldScore = current.GradeRecordScore
		} else if currentPtr != nil {
			result.OldScore = current.GradeRecordScore
		}

		result.Grade = in.Composite
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
