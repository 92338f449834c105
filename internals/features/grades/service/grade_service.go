// file: internals/features/grades/service/grade_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	cservice "akademiku_backend/internals/features/catalog/service"
	gmodel "akademiku_backend/internals/features/grades/model"
)

/* =======================================================================
   Grade service
   Orkestrasi entri nilai manual: entri admin/teacher dan penanda
   "chapter sudah dibaca" dari siswa. Dua-duanya GradeRecord kind manual;
   upsert polos, ledger tetap urusan Correction Workflow.
======================================================================= */

// Penanda baca chapter disimpan sebagai nilai manual penuh.
const chapterReadScore = 20.0

// BlockResolver: resolve blok pemilik sebuah chapter.
type BlockResolver interface {
	BlockForChapter(ctx context.Context, chapterID uuid.UUID) (uuid.UUID, error)
}

var _ BlockResolver = (*cservice.CatalogService)(nil)

type GradeService struct {
	Catalog BlockResolver
	Store   GradeStore
}

func NewGradeService(catalog BlockResolver, store GradeStore) *GradeService {
	return &GradeService{Catalog: catalog, Store: store}
}

type ManualGradeInput struct {
	StudentID        uuid.UUID
	EvaluationID     uuid.UUID
	BlockID          uuid.UUID
	Score            float64
	Max              *float64
	TimeSpentMinutes *int
}

// UpsertManualGrade: entri nilai manual oleh admin/teacher.
func (s *GradeService) UpsertManualGrade(ctx context.Context, in ManualGradeInput) (*gmodel.GradeRecordModel, error) {
	max := gmodel.EvaluationKindManual.DefaultMax()
	if in.Max != nil && *in.Max > 0 {
		max = *in.Max
	}
	score := in.Score
	return s.Store.Upsert(ctx, UpsertGradeInput{
		StudentID:        in.StudentID,
		Kind:             gmodel.EvaluationKindManual,
		EvaluationID:     in.EvaluationID,
		BlockID:          in.BlockID,
		Score:            &score,
		Max:              max,
		TimeSpentMinutes: in.TimeSpentMinutes,
	})
}

// MarkChapterRead: siswa menandai chapter selesai. Diwujudkan sebagai
// GradeRecord manual ber-key chapter id; keberadaannya yang dihitung
// progression, nilainya sendiri nominal.
func (s *GradeService) MarkChapterRead(ctx context.Context, studentID, chapterID uuid.UUID, timeSpentMinutes *int) (*gmodel.GradeRecordModel, error) {
	blockID, err := s.Catalog.BlockForChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	score := chapterReadScore
	rec, err := s.Store.Upsert(ctx, UpsertGradeInput{
		StudentID:        studentID,
		Kind:             gmodel.EvaluationKindManual,
		EvaluationID:     chapterID,
		BlockID:          blockID,
		Score:            &score,
		Max:              chapterReadScore,
		TimeSpentMinutes: timeSpentMinutes,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[GradeService] chapter read student=%s chapter=%s", studentID, chapterID)
	return rec, nil
}

// ListModifications: audit trail satu evaluation, terbaru dulu.
func (s *GradeService) ListModifications(ctx context.Context, kind gmodel.EvaluationKind, evaluationID uuid.UUID, limit, offset int) ([]gmodel.GradeModificationModel, int64, error) {
	return s.Store.ListModifications(ctx, kind, evaluationID, limit, offset)
}
