// file: internals/features/catalog/controller/catalog_admin_controller.go
package controller

import (
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	cdto "akademiku_backend/internals/features/catalog/dto"
	cmodel "akademiku_backend/internals/features/catalog/model"
	cservice "akademiku_backend/internals/features/catalog/service"
	helper "akademiku_backend/internals/helpers"
)

/* =======================================================================
   Catalog authoring (admin)
   Write-side minimal: cukup untuk menyusun hierarki yang dibaca engine.
   Setiap tulis menggugurkan cache snapshot program.
======================================================================= */

type CatalogAdminController struct {
	DB      *gorm.DB
	Catalog *cservice.CatalogService
	Cascade *cservice.CascadeService
}

func NewCatalogAdminController(db *gorm.DB, catalog *cservice.CatalogService, cascade *cservice.CascadeService) *CatalogAdminController {
	return &CatalogAdminController{DB: db, Catalog: catalog, Cascade: cascade}
}

var validate = validator.New()

// POST /api/a/programs
func (h *CatalogAdminController) CreateProgram(c *fiber.Ctx) error {
	var req cdto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := cmodel.ProgramModel{ProgramTitle: req.Title, ProgramIsActive: true}
	if err := h.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program dibuat", row)
}

// POST /api/a/blocks
func (h *CatalogAdminController) CreateBlock(c *fiber.Ctx) error {
	var req cdto.CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := cmodel.CompetencyBlockModel{
		CompetencyBlockProgramID: req.ProgramID,
		CompetencyBlockTitle:     req.Title,
		CompetencyBlockPosition:  req.Position,
		CompetencyBlockIsActive:  true,
	}
	if err := h.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	h.Catalog.InvalidateProgram(req.ProgramID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Blok dibuat", row)
}

// POST /api/a/courses
func (h *CatalogAdminController) CreateCourse(c *fiber.Ctx) error {
	var req cdto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := cmodel.CourseModel{
		CourseBlockID:  req.BlockID,
		CourseTitle:    req.Title,
		CoursePosition: req.Position,
	}
	if err := h.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	h.Catalog.InvalidateAll()
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course dibuat", row)
}

// POST /api/a/chapters
func (h *CatalogAdminController) CreateChapter(c *fiber.Ctx) error {
	var req cdto.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := cmodel.ChapterModel{
		ChapterCourseID: req.CourseID,
		ChapterTitle:    req.Title,
		ChapterKind:     cmodel.ChapterKind(req.Kind),
		ChapterPosition: req.Position,
		ChapterIsActive: true,
	}
	if err := h.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	h.Catalog.InvalidateAll()
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Chapter dibuat", row)
}

// POST /api/a/quizzes
func (h *CatalogAdminController) CreateQuiz(c *fiber.Ctx) error {
	var req cdto.CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := cmodel.QuizModel{
		QuizChapterID: req.ChapterID,
		QuizTitle:     req.Title,
		QuizIsActive:  true,
	}
	if err := h.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		return helper.FromDomainError(c, err)
	}
	h.Catalog.InvalidateAll()
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Quiz dibuat", row)
}

// POST /api/a/case-studies
// Case study + pertanyaannya dalam satu transaksi.
func (h *CatalogAdminController) CreateCaseStudy(c *fiber.Ctx) error {
	var req cdto.CreateCaseStudyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	maxPoints := 20.0
	if req.MaxPoints != nil {
		maxPoints = *req.MaxPoints
	}
	row := cmodel.CaseStudyModel{
		CaseStudyCourseID:  req.CourseID,
		CaseStudyTitle:     req.Title,
		CaseStudyDueDate:   req.DueDate,
		CaseStudyMaxPoints: maxPoints,
		CaseStudyIsActive:  true,
	}

	err := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			var options datatypes.JSON
			if q.Options != nil {
				raw, err := sonic.Marshal(q.Options)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Options tidak valid")
				}
				options = datatypes.JSON(raw)
			}
			question := cmodel.CaseStudyQuestionModel{
				CaseStudyQuestionCaseStudyID: row.CaseStudyID,
				CaseStudyQuestionPosition:    q.Position,
				CaseStudyQuestionKind:        cmodel.CaseStudyQuestionKind(q.Kind),
				CaseStudyQuestionText:        q.Text,
				CaseStudyQuestionPoints:      q.Points,
				CaseStudyQuestionOptions:     options,
				CaseStudyQuestionIsActive:    true,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.FromDomainError(c, err)
	}

	h.Catalog.InvalidateAll()
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Case study dibuat", row)
}

// DELETE /api/a/courses/:course_id
// Cascade leaf-first; gagal di tengah -> batal semua + nama stage.
func (h *CatalogAdminController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "course_id")
	if err != nil {
		return err
	}
	if err := h.Cascade.DeleteCourse(c.Context(), courseID); err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Course dihapus", fiber.Map{"course_id": courseID})
}

// DELETE /api/a/chapters/:chapter_id
// Teardown quiz scoped ke satu chapter; sibling tidak tersentuh.
func (h *CatalogAdminController) DeleteChapter(c *fiber.Ctx) error {
	chapterID, err := helper.ParseUUIDParam(c, "chapter_id")
	if err != nil {
		return err
	}
	if err := h.Cascade.DeleteChapter(c.Context(), chapterID); err != nil {
		return helper.FromDomainError(c, err)
	}
	return helper.Success(c, "Chapter dihapus", fiber.Map{"chapter_id": chapterID})
}
