// file: internals/features/grades/service/grade_store_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gmodel "akademiku_backend/internals/features/grades/model"
	"akademiku_backend/internals/helpers/errs"
)

/* =======================================================================
   Grade Store
   Satu baris otoritatif per (student, kind, evaluation). Penegakan lewat
   composite unique index + ON CONFLICT DO UPDATE; retry terbatas kalau
   race tetap lolos.
======================================================================= */

type UpsertGradeInput struct {
	StudentID    uuid.UUID
	Kind         gmodel.EvaluationKind
	EvaluationID uuid.UUID
	BlockID      uuid.UUID
	// nil = placeholder (pending, belum delivered)
	Score            *float64
	Max              float64 // 0 -> default per kind (quiz 100, lainnya 20)
	TimeSpentMinutes *int
}

// GradeStore: kontrak store supaya Correction Workflow & Progress Aggregator
// tidak terikat ke GORM. Implementasi produksi di bawah; fake in-memory
// hidup di test.
type GradeStore interface {
	// Get mengembalikan nil (bukan error) saat record belum ada.
	Get(ctx context.Context, studentID uuid.UUID, kind gmodel.EvaluationKind, evaluationID uuid.UUID) (*gmodel.GradeRecordModel, error)
	Upsert(ctx context.Context, in UpsertGradeInput) (*gmodel.GradeRecordModel, error)
	// Urut graded_at DESC; ordering ini load-bearing untuk summary blok.
	ListForBlock(ctx context.Context, studentID, blockID uuid.UUID) ([]gmodel.GradeRecordModel, error)
	AppendModification(ctx context.Context, entry *gmodel.GradeModificationModel) error
	// Urut created_at DESC; limit <= 0 berarti tanpa paging.
	ListModifications(ctx context.Context, kind gmodel.EvaluationKind, evaluationID uuid.UUID, limit, offset int) ([]gmodel.GradeModificationModel, int64, error)
}

const upsertRetryLimit = 3

type GradeStoreService struct {
	DB *gorm.DB
}

func NewGradeStoreService(db *gorm.DB) *GradeStoreService {
	return &GradeStoreService{DB: db}
}

var _ GradeStore = (*GradeStoreService)(nil)

// WithTx: salinan store yang terikat transaksi berjalan, supaya upsert grade
// bisa ikut unit atomik milik caller.
func (s *GradeStoreService) WithTx(tx *gorm.DB) *GradeStoreService {
	return &GradeStoreService{DB: tx}
}

func (s *GradeStoreService) Get(ctx context.Context, studentID uuid.UUID, kind gmodel.EvaluationKind, evaluationID uuid.UUID) (*gmodel.GradeRecordModel, error) {
	var rec gmodel.GradeRecordModel
	err := s.DB.WithContext(ctx).
		Where("grade_record_student_id = ? AND grade_record_kind = ? AND grade_record_evaluation_id = ?",
			studentID, kind, evaluationID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *GradeStoreService) Upsert(ctx context.Context, in UpsertGradeInput) (*gmodel.GradeRecordModel, error) {
	max := in.Max
	if max <= 0 {
		max = in.Kind.DefaultMax()
	}

	var score *float64
	if in.Score != nil {
		clamped := ClampScore(*in.Score, max)
		score = &clamped
	}

	now := time.Now()
	rec := gmodel.GradeRecordModel{
		GradeRecordStudentID:        in.StudentID,
		GradeRecordKind:             in.Kind,
		GradeRecordEvaluationID:     in.EvaluationID,
		GradeRecordBlockID:          in.BlockID,
		GradeRecordScore:            score,
		GradeRecordMax:              max,
		GradeRecordTimeSpentMinutes: in.TimeSpentMinutes,
		GradeRecordGradedAt:         now,
		GradeRecordUpdatedAt:        now,
	}

	for attempt := 1; attempt <= upsertRetryLimit; attempt++ {
		err := s.DB.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "grade_record_student_id"},
					{Name: "grade_record_kind"},
					{Name: "grade_record_evaluation_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"grade_record_block_id",
					"grade_record_score",
					"grade_record_max",
					"grade_record_time_spent_minutes",
					"grade_record_graded_at",
					"grade_record_updated_at",
				}),
			}).
			Create(&rec).Error
		if err == nil {
			return s.mustGet(ctx, in)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, &errs.ConcurrencyConflict{Entity: "grade_record", Attempts: upsertRetryLimit}
}

// mustGet: baca ulang setelah upsert supaya caller pegang state tersimpan
// (termasuk id record lama saat conflict-update).
func (s *GradeStoreService) mustGet(ctx context.Context, in UpsertGradeInput) (*gmodel.GradeRecordModel, error) {
	rec, err := s.Get(ctx, in.StudentID, in.Kind, in.EvaluationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, &errs.ConcurrencyConflict{Entity: "grade_record", Attempts: 1}
	}
	return rec, nil
}

func (s *GradeStoreService) ListForBlock(ctx context.Context, studentID, blockID uuid.UUID) ([]gmodel.GradeRecordModel, error) {
	var recs []gmodel.GradeRecordModel
	err := s.DB.WithContext(ctx).
		Where("grade_record_student_id = ? AND grade_record_block_id = ?", studentID, blockID).
		Order("grade_record_graded_at DESC").
		Find(&recs).Error
	return recs, err
}

func (s *GradeStoreService) AppendModification(ctx context.Context, entry *gmodel.GradeModificationModel) error {
	return s.DB.WithContext(ctx).Create(entry).Error
}

func (s *GradeStoreService) ListModifications(ctx context.Context, kind gmodel.EvaluationKind, evaluationID uuid.UUID, limit, offset int) ([]gmodel.GradeModificationModel, int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).
		Model(&gmodel.GradeModificationModel{}).
		Where("grade_modification_kind = ? AND grade_modification_evaluation_id = ?", kind, evaluationID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := s.DB.WithContext(ctx).
		Where("grade_modification_kind = ? AND grade_modification_evaluation_id = ?", kind, evaluationID).
		Order("grade_modification_created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var entries []gmodel.GradeModificationModel
	err := q.Find(&entries).Error
	return entries, total, err
}
