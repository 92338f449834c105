// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	corrcontroller "akademiku_backend/internals/features/assessments/corrections/controller"
	corrservice "akademiku_backend/internals/features/assessments/corrections/service"
	quizcontroller "akademiku_backend/internals/features/assessments/quizzes/controller"
	quizservice "akademiku_backend/internals/features/assessments/quizzes/service"
	subcontroller "akademiku_backend/internals/features/assessments/submissions/controller"
	subservice "akademiku_backend/internals/features/assessments/submissions/service"
	catalogcontroller "akademiku_backend/internals/features/catalog/controller"
	catalogservice "akademiku_backend/internals/features/catalog/service"
	gradecontroller "akademiku_backend/internals/features/grades/controller"
	gradeservice "akademiku_backend/internals/features/grades/service"
	progresscontroller "akademiku_backend/internals/features/progress/controller"
	progressservice "akademiku_backend/internals/features/progress/service"
	studentcontroller "akademiku_backend/internals/features/students/controller"
	studentservice "akademiku_backend/internals/features/students/service"
)

// Deps: satu graph service untuk seluruh engine. Catalog dibangun sekali
// supaya cache snapshot program tidak terbelah antar route group.
type Deps struct {
	Quiz       *quizcontroller.QuizAttemptController
	Grade      *gradecontroller.GradeController
	Submission *subcontroller.SubmissionController
	Correction *corrcontroller.CorrectionController
	Progress   *progresscontroller.ProgressController
	Catalog    *catalogcontroller.CatalogAdminController
	Student    *studentcontroller.StudentController
}

func NewDeps(db *gorm.DB) *Deps {
	catalog := catalogservice.NewCatalogService(db)
	cascade := catalogservice.NewCascadeService(db, catalog)

	grades := gradeservice.NewGradeStoreService(db)
	gradeSvc := gradeservice.NewGradeService(catalog, grades)
	quizSvc := quizservice.NewQuizAttemptService(db, catalog, grades)

	subStore := subservice.NewGormSubmissionStore(db, grades)
	subSvc := subservice.NewSubmissionService(subStore, catalog, grades)
	corrSvc := corrservice.NewCorrectionWorkflowService(subStore, catalog, grades)

	progressSvc := progressservice.NewProgressService(catalog, progressservice.NewGormProgressSource(db), grades)
	studentSvc := studentservice.NewStudentService(db)

	return &Deps{
		Quiz:       quizcontroller.NewQuizAttemptController(quizSvc),
		Grade:      gradecontroller.NewGradeController(gradeSvc),
		Submission: subcontroller.NewSubmissionController(subSvc),
		Correction: corrcontroller.NewCorrectionController(corrSvc),
		Progress:   progresscontroller.NewProgressController(progressSvc),
		Catalog:    catalogcontroller.NewCatalogAdminController(db, catalog, cascade),
		Student:    studentcontroller.NewStudentController(studentSvc, progressSvc),
	}
}

// AcademicUserRoutes: aktivitas siswa (sudah login).
func AcademicUserRoutes(r fiber.Router, d *Deps) {
	r.Get("/me", d.Student.Me)
	r.Get("/me/progress", d.Student.MyProgress)

	r.Post("/chapters/:chapter_id/read", d.Grade.MarkChapterRead)

	r.Post("/quizzes/:quiz_id/attempts", d.Quiz.RecordAttemptFinished)
	r.Get("/quizzes/:quiz_id/attempts", d.Quiz.ListAttempts)

	r.Post("/case-studies/:case_study_id/submissions", d.Submission.CreateSubmission)

	r.Get("/programs/:program_id/progress", d.Progress.GetProgress)
	r.Get("/blocks/:block_id/summary", d.Progress.GetBlockSummary)
	r.Post("/sessions/ping", d.Progress.SessionPing)
}

// AcademicAdminRoutes: koreksi, entri nilai manual, authoring catalog.
func AcademicAdminRoutes(r fiber.Router, d *Deps) {
	r.Post("/students", d.Student.Enroll)

	r.Post("/grades/manual", d.Grade.UpsertManualGrade)
	r.Get("/grades/:kind/:evaluation_id/modifications", d.Grade.ListModifications)

	r.Get("/submissions/:submission_id", d.Submission.GetSubmissionDetail)
	r.Post("/submissions/:submission_id/corrections", d.Correction.SubmitCorrections)
	r.Put("/submissions/:submission_id/corrections/checkpoint", d.Correction.CheckpointQuestion)

	r.Post("/programs", d.Catalog.CreateProgram)
	r.Post("/blocks", d.Catalog.CreateBlock)
	r.Post("/courses", d.Catalog.CreateCourse)
	r.Post("/chapters", d.Catalog.CreateChapter)
	r.Post("/quizzes", d.Catalog.CreateQuiz)
	r.Post("/case-studies", d.Catalog.CreateCaseStudy)
	r.Delete("/courses/:course_id", d.Catalog.DeleteCourse)
	r.Delete("/chapters/:chapter_id", d.Catalog.DeleteChapter)
}
