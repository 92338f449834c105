// file: internals/features/catalog/service/catalog_service.go
package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	cmodel "akademiku_backend/internals/features/catalog/model"
	"akademiku_backend/internals/helpers/errs"
)

/* =======================================================================
   Evaluation Catalog (read side)
   View read-only di atas hierarki program -> block -> course -> chapter
   -> {quiz | case study}. Authoring subsystem yang memiliki datanya;
   engine hanya membaca.
======================================================================= */

type CatalogService struct {
	DB *gorm.DB

	mu    sync.RWMutex
	cache map[uuid.UUID]*ProgramContent // key: program_id
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		DB:    db,
		cache: make(map[uuid.UUID]*ProgramContent),
	}
}

// ProgramContent: snapshot hierarki satu program untuk aggregator.
type ProgramContent struct {
	ProgramID uuid.UUID
	Blocks    []BlockContent
}

type BlockContent struct {
	Block   cmodel.CompetencyBlockModel
	Courses []CourseContent
}

type CourseContent struct {
	Course      cmodel.CourseModel
	Chapters    []cmodel.ChapterModel
	Quizzes     []cmodel.QuizModel
	CaseStudies []cmodel.CaseStudyModel
	Published   bool
}

// CourseIsPublished: >=1 chapter dan semua chapter aktif. Derived, tidak
// pernah disimpan di kolom.
func CourseIsPublished(chapters []cmodel.ChapterModel) bool {
	if len(chapters) == 0 {
		return false
	}
	for _, ch := range chapters {
		if !ch.ChapterIsActive {
			return false
		}
	}
	return true
}

/* ===============================
   Accessors (default: hanya baris aktif)
=================================*/

func (s *CatalogService) BlocksForProgram(ctx context.Context, programID uuid.UUID, includeInactive bool) ([]cmodel.CompetencyBlockModel, error) {
	q := s.DB.WithContext(ctx).
		Where("competency_block_program_id = ?", programID).
		Order("competency_block_position ASC")
	if !includeInactive {
		q = q.Where("competency_block_is_active = TRUE")
	}
	var blocks []cmodel.CompetencyBlockModel
	if err := q.Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (s *CatalogService) CoursesForBlock(ctx context.Context, blockID uuid.UUID) ([]cmodel.CourseModel, error) {
	var courses []cmodel.CourseModel
	err := s.DB.WithContext(ctx).
		Where("course_block_id = ?", blockID).
		Order("course_position ASC").
		Find(&courses).Error
	return courses, err
}

func (s *CatalogService) ChaptersForCourse(ctx context.Context, courseID uuid.UUID, includeInactive bool) ([]cmodel.ChapterModel, error) {
	q := s.DB.WithContext(ctx).
		Where("chapter_course_id = ?", courseID).
		Order("chapter_position ASC")
	if !includeInactive {
		q = q.Where("chapter_is_active = TRUE")
	}
	var chapters []cmodel.ChapterModel
	if err := q.Find(&chapters).Error; err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *CatalogService) QuizzesForChapter(ctx context.Context, chapterID uuid.UUID) ([]cmodel.QuizModel, error) {
	var quizzes []cmodel.QuizModel
	err := s.DB.WithContext(ctx).
		Where("quiz_chapter_id = ? AND quiz_is_active = TRUE", chapterID).
		Find(&quizzes).Error
	return quizzes, err
}

func (s *CatalogService) CaseStudyForCourse(ctx context.Context, courseID uuid.UUID) (*cmodel.CaseStudyModel, error) {
	var cs cmodel.CaseStudyModel
	err := s.DB.WithContext(ctx).
		Where("case_study_course_id = ? AND case_study_is_active = TRUE", courseID).
		First(&cs).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // course tanpa case study itu normal
		}
		return nil, err
	}
	return &cs, nil
}

func (s *CatalogService) CaseStudyByID(ctx context.Context, caseStudyID uuid.UUID) (*cmodel.CaseStudyModel, error) {
	var cs cmodel.CaseStudyModel
	err := s.DB.WithContext(ctx).
		Where("case_study_id = ? AND case_study_is_active = TRUE", caseStudyID).
		First(&cs).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NewNotFound("case_study", caseStudyID)
		}
		return nil, err
	}
	return &cs, nil
}

func (s *CatalogService) ActiveCaseStudyQuestions(ctx context.Context, caseStudyID uuid.UUID) ([]cmodel.CaseStudyQuestionModel, error) {
	var questions []cmodel.CaseStudyQuestionModel
	err := s.DB.WithContext(ctx).
		Where("case_study_question_case_study_id = ? AND case_study_question_is_active = TRUE", caseStudyID).
		Order("case_study_question_position ASC").
		Find(&questions).Error
	return questions, err
}

/* ===============================
   Block resolvers (evaluation -> block pemilik)
=================================*/

func (s *CatalogService) BlockForChapter(ctx context.Context, chapterID uuid.UUID) (uuid.UUID, error) {
	return s.resolveBlock(ctx, `
		SELECT c.course_block_id::text
		FROM chapters ch
		JOIN courses c ON c.course_id = ch.chapter_course_id AND c.course_deleted_at IS NULL
		WHERE ch.chapter_id = ? AND ch.chapter_deleted_at IS NULL
	`, chapterID, "chapter")
}

func (s *CatalogService) BlockForQuiz(ctx context.Context, quizID uuid.UUID) (uuid.UUID, error) {
	return s.resolveBlock(ctx, `
		SELECT c.course_block_id::text
		FROM quizzes q
		JOIN chapters ch ON ch.chapter_id = q.quiz_chapter_id AND ch.chapter_deleted_at IS NULL
		JOIN courses c ON c.course_id = ch.chapter_course_id AND c.course_deleted_at IS NULL
		WHERE q.quiz_id = ? AND q.quiz_deleted_at IS NULL
	`, quizID, "quiz")
}

func (s *CatalogService) BlockForCaseStudy(ctx context.Context, caseStudyID uuid.UUID) (uuid.UUID, error) {
	return s.resolveBlock(ctx, `
		SELECT c.course_block_id::text
		FROM case_studies cs
		JOIN courses c ON c.course_id = cs.case_study_course_id AND c.course_deleted_at IS NULL
		WHERE cs.case_study_id = ? AND cs.case_study_deleted_at IS NULL
	`, caseStudyID, "case_study")
}

// scan ::text lalu parse, aman untuk driver apa pun
func (s *CatalogService) resolveBlock(ctx context.Context, query string, id uuid.UUID, entity string) (uuid.UUID, error) {
	var blockIDStr string
	if err := s.DB.WithContext(ctx).Raw(query, id).Scan(&blockIDStr).Error; err != nil {
		return uuid.Nil, err
	}
	if strings.TrimSpace(blockIDStr) == "" {
		return uuid.Nil, errs.NewNotFound(entity, id)
	}
	return uuid.Parse(strings.TrimSpace(blockIDStr))
}

/* ===============================
   Read-through cache per program
   Di-invalidate oleh setiap mutasi catalog; bukan singleton proses.
=================================*/

func (s *CatalogService) ProgramContent(ctx context.Context, programID uuid.UUID) (*ProgramContent, error) {
	s.mu.RLock()
	if tree, ok := s.cache[programID]; ok {
		s.mu.RUnlock()
		return tree, nil
	}
	s.mu.RUnlock()

	tree, err := s.buildProgramContent(ctx, programID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[programID] = tree
	s.mu.Unlock()
	return tree, nil
}

// InvalidateProgram: hook yang dipanggil setiap catalog berubah.
func (s *CatalogService) InvalidateProgram(programID uuid.UUID) {
	s.mu.Lock()
	delete(s.cache, programID)
	s.mu.Unlock()
}

// InvalidateAll: untuk mutasi yang program-nya tidak mudah dilacak.
func (s *CatalogService) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[uuid.UUID]*ProgramContent)
	s.mu.Unlock()
}

// buildProgramContent: fan-out read per block lalu per course. Read-only,
// aman di-cancel lewat ctx tanpa side effect.
func (s *CatalogService) buildProgramContent(ctx context.Context, programID uuid.UUID) (*ProgramContent, error) {
	var program cmodel.ProgramModel
	if err := s.DB.WithContext(ctx).
		Where("program_id = ? AND program_is_active = TRUE", programID).
		First(&program).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errs.NewNotFound("program", programID)
		}
		return nil, err
	}

	blocks, err := s.BlocksForProgram(ctx, programID, false)
	if err != nil {
		return nil, err
	}

	tree := &ProgramContent{ProgramID: programID, Blocks: make([]BlockContent, len(blocks))}

	g, gctx := errgroup.WithContext(ctx)
	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			courses, err := s.CoursesForBlock(gctx, block.CompetencyBlockID)
			if err != nil {
				return err
			}

			content := BlockContent{Block: block, Courses: make([]CourseContent, len(courses))}
			cg, cctx := errgroup.WithContext(gctx)
			for j, course := range courses {
				j, course := j, course
				cg.Go(func() error {
					cc, err := s.buildCourseContent(cctx, course)
					if err != nil {
						return err
					}
					content.Courses[j] = *cc
					return nil
				})
			}
			if err := cg.Wait(); err != nil {
				return err
			}
			tree.Blocks[i] = content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tree, nil
}

func (s *CatalogService) buildCourseContent(ctx context.Context, course cmodel.CourseModel) (*CourseContent, error) {
	// published dinilai dari SEMUA chapter (termasuk non-aktif)
	allChapters, err := s.ChaptersForCourse(ctx, course.CourseID, true)
	if err != nil {
		return nil, err
	}

	cc := &CourseContent{Course: course, Published: CourseIsPublished(allChapters)}
	for _, ch := range allChapters {
		if ch.ChapterIsActive {
			cc.Chapters = append(cc.Chapters, ch)
		}
	}

	for _, ch := range cc.Chapters {
		quizzes, err := s.QuizzesForChapter(ctx, ch.ChapterID)
		if err != nil {
			return nil, err
		}
		cc.Quizzes = append(cc.Quizzes, quizzes...)
	}

	cs, err := s.CaseStudyForCourse(ctx, course.CourseID)
	if err != nil {
		return nil, err
	}
	if cs != nil {
		cc.CaseStudies = append(cc.CaseStudies, *cs)
	}
	return cc, nil
}
