// file: internals/features/catalog/service/cascade_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "akademiku_backend/internals/features/catalog/model"
	"akademiku_backend/internals/helpers/errs"
)

/* =======================================================================
   Cascading deletion
   Rencana hapus berurutan leaf-first, dieksekusi dalam SATU transaksi.
   Tahap gagal -> seluruh cascade batal, InconsistentCascade menyebut
   tahap yang gagal.
======================================================================= */

type CascadeService struct {
	DB      *gorm.DB
	Catalog *CatalogService
}

func NewCascadeService(db *gorm.DB, catalog *CatalogService) *CascadeService {
	return &CascadeService{DB: db, Catalog: catalog}
}

// cascadeStage: satu langkah hapus dengan nama untuk pelaporan error.
type cascadeStage struct {
	Name string
	Run  func(tx *gorm.DB) error
}

// CourseCascadeStageOrder: urutan tahap untuk penghapusan course, leaf-first.
// Dipisah sebagai data supaya urutannya bisa diverifikasi.
func CourseCascadeStageOrder() []string {
	return []string{
		"quiz_answers",
		"quiz_questions",
		"quiz_attempts",
		"quiz_grade_records",
		"quizzes",
		"question_corrections",
		"submissions",
		"case_study_grade_records",
		"case_study_questions",
		"case_studies",
		"chapter_grade_records",
		"chapters",
		"course",
	}
}

// DeleteCourse: teardown penuh. Chapter-scoped variant ada di DeleteChapter.
func (s *CascadeService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	var course cmodel.CourseModel
	if err := s.DB.WithContext(ctx).Where("course_id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("course", courseID)
		}
		return err
	}

	chapterIDs, err := s.collectIDs(ctx, `SELECT chapter_id::text FROM chapters WHERE chapter_course_id = ?`, courseID)
	if err != nil {
		return err
	}
	quizIDs, err := s.collectQuizIDs(ctx, chapterIDs)
	if err != nil {
		return err
	}
	caseStudyIDs, err := s.collectIDs(ctx, `SELECT case_study_id::text FROM case_studies WHERE case_study_course_id = ?`, courseID)
	if err != nil {
		return err
	}

	stages := s.teardownStages(chapterIDs, quizIDs, caseStudyIDs)
	stages = append(stages, cascadeStage{
		Name: "course",
		Run: func(tx *gorm.DB) error {
			return tx.Unscoped().Where("course_id = ?", courseID).Delete(&cmodel.CourseModel{}).Error
		},
	})

	if err := s.runStages(ctx, stages); err != nil {
		return err
	}

	s.invalidateForBlock(ctx, course.CourseBlockID)
	log.Printf("[Cascade] course=%s deleted (%d chapters, %d quizzes, %d case studies)",
		courseID, len(chapterIDs), len(quizIDs), len(caseStudyIDs))
	return nil
}

// DeleteChapter: teardown quiz di-scope satu chapter; sibling tidak tersentuh.
// Case study milik course, bukan chapter, jadi tidak ikut dihapus di sini.
func (s *CascadeService) DeleteChapter(ctx context.Context, chapterID uuid.UUID) error {
	var chapter cmodel.ChapterModel
	if err := s.DB.WithContext(ctx).Where("chapter_id = ?", chapterID).First(&chapter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("chapter", chapterID)
		}
		return err
	}

	chapterIDs := []uuid.UUID{chapterID}
	quizIDs, err := s.collectQuizIDs(ctx, chapterIDs)
	if err != nil {
		return err
	}

	stages := s.quizStages(quizIDs)
	stages = append(stages,
		cascadeStage{Name: "chapter_grade_records", Run: func(tx *gorm.DB) error {
			return tx.Exec(`DELETE FROM grade_records WHERE grade_record_kind = 'manual' AND grade_record_evaluation_id = ?`, chapterID).Error
		}},
		cascadeStage{Name: "chapter", Run: func(tx *gorm.DB) error {
			return tx.Unscoped().Where("chapter_id = ?", chapterID).Delete(&cmodel.ChapterModel{}).Error
		}},
	)

	if err := s.runStages(ctx, stages); err != nil {
		return err
	}

	blockID, berr := s.Catalog.BlockForChapter(ctx, chapterID)
	if berr == nil {
		s.invalidateForBlock(ctx, blockID)
	} else {
		// chapter sudah hilang; resolve via course saja
		s.invalidateForBlockOfCourse(ctx, chapter.ChapterCourseID)
	}
	return nil
}

/* ===============================
   Stage builders
=================================*/

func (s *CascadeService) quizStages(quizIDs []uuid.UUID) []cascadeStage {
	return []cascadeStage{
		{Name: "quiz_answers", Run: func(tx *gorm.DB) error {
			if len(quizIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM quiz_answers WHERE quiz_answer_question_id IN (
				SELECT quiz_question_id FROM quiz_questions WHERE quiz_question_quiz_id IN ?)`, quizIDs).Error
		}},
		{Name: "quiz_questions", Run: func(tx *gorm.DB) error {
			if len(quizIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM quiz_questions WHERE quiz_question_quiz_id IN ?`, quizIDs).Error
		}},
		{Name: "quiz_attempts", Run: func(tx *gorm.DB) error {
			if len(quizIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM quiz_attempts WHERE quiz_attempt_quiz_id IN ?`, quizIDs).Error
		}},
		{Name: "quiz_grade_records", Run: func(tx *gorm.DB) error {
			if len(quizIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM grade_records WHERE grade_record_kind = 'quiz' AND grade_record_evaluation_id IN ?`, quizIDs).Error
		}},
		{Name: "quizzes", Run: func(tx *gorm.DB) error {
			if len(quizIDs) == 0 {
				return nil
			}
			return tx.Unscoped().Where("quiz_id IN ?", quizIDs).Delete(&cmodel.QuizModel{}).Error
		}},
	}
}

func (s *CascadeService) teardownStages(chapterIDs, quizIDs, caseStudyIDs []uuid.UUID) []cascadeStage {
	stages := s.quizStages(quizIDs)

	stages = append(stages,
		cascadeStage{Name: "question_corrections", Run: func(tx *gorm.DB) error {
			if len(caseStudyIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM question_corrections WHERE question_correction_submission_id IN (
				SELECT submission_id FROM submissions WHERE submission_case_study_id IN ?)`, caseStudyIDs).Error
		}},
		cascadeStage{Name: "submissions", Run: func(tx *gorm.DB) error {
			if len(caseStudyIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM submissions WHERE submission_case_study_id IN ?`, caseStudyIDs).Error
		}},
		cascadeStage{Name: "case_study_grade_records", Run: func(tx *gorm.DB) error {
			if len(caseStudyIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM grade_records WHERE grade_record_kind = 'case_study' AND grade_record_evaluation_id IN ?`, caseStudyIDs).Error
		}},
		cascadeStage{Name: "case_study_questions", Run: func(tx *gorm.DB) error {
			if len(caseStudyIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM case_study_questions WHERE case_study_question_case_study_id IN ?`, caseStudyIDs).Error
		}},
		cascadeStage{Name: "case_studies", Run: func(tx *gorm.DB) error {
			if len(caseStudyIDs) == 0 {
				return nil
			}
			return tx.Unscoped().Where("case_study_id IN ?", caseStudyIDs).Delete(&cmodel.CaseStudyModel{}).Error
		}},
		cascadeStage{Name: "chapter_grade_records", Run: func(tx *gorm.DB) error {
			if len(chapterIDs) == 0 {
				return nil
			}
			return tx.Exec(`DELETE FROM grade_records WHERE grade_record_kind = 'manual' AND grade_record_evaluation_id IN ?`, chapterIDs).Error
		}},
		cascadeStage{Name: "chapters", Run: func(tx *gorm.DB) error {
			if len(chapterIDs) == 0 {
				return nil
			}
			return tx.Unscoped().Where("chapter_id IN ?", chapterIDs).Delete(&cmodel.ChapterModel{}).Error
		}},
	)
	return stages
}

func (s *CascadeService) runStages(ctx context.Context, stages []cascadeStage) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stage := range stages {
			if err := stage.Run(tx); err != nil {
				return &errs.InconsistentCascade{Stage: stage.Name, Err: err}
			}
		}
		return nil
	})
}

/* ===============================
   ID collectors & cache invalidation
=================================*/

func (s *CascadeService) collectIDs(ctx context.Context, query string, arg interface{}) ([]uuid.UUID, error) {
	var raw []string
	if err := s.DB.WithContext(ctx).Raw(query, arg).Scan(&raw).Error; err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

func (s *CascadeService) collectQuizIDs(ctx context.Context, chapterIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(chapterIDs) == 0 {
		return nil, nil
	}
	var raw []string
	if err := s.DB.WithContext(ctx).
		Raw(`SELECT quiz_id::text FROM quizzes WHERE quiz_chapter_id IN ?`, chapterIDs).
		Scan(&raw).Error; err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

func (s *CascadeService) invalidateForBlock(ctx context.Context, blockID uuid.UUID) {
	var programIDStr string
	err := s.DB.WithContext(ctx).
		Raw(`SELECT competency_block_program_id::text FROM competency_blocks WHERE competency_block_id = ?`, blockID).
		Scan(&programIDStr).Error
	if err != nil || strings.TrimSpace(programIDStr) == "" {
		s.Catalog.InvalidateAll()
		return
	}
	if programID, err := uuid.Parse(strings.TrimSpace(programIDStr)); err == nil {
		s.Catalog.InvalidateProgram(programID)
	} else {
		s.Catalog.InvalidateAll()
	}
}

func (s *CascadeService) invalidateForBlockOfCourse(ctx context.Context, courseID uuid.UUID) {
	var blockIDStr string
	err := s.DB.WithContext(ctx).
		Raw(`SELECT course_block_id::text FROM courses WHERE course_id = ?`, courseID).
		Scan(&blockIDStr).Error
	if err != nil || strings.TrimSpace(blockIDStr) == "" {
		s.Catalog.InvalidateAll()
		return
	}
	if blockID, err := uuid.Parse(strings.TrimSpace(blockIDStr)); err == nil {
		s.invalidateForBlock(ctx, blockID)
	} else {
		s.Catalog.InvalidateAll()
	}
}
