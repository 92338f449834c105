// file: internals/features/progress/service/progress_service.go
package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	cservice "akademiku_backend/internals/features/catalog/service"
	gdto "akademiku_backend/internals/features/grades/dto"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	pdto "akademiku_backend/internals/features/progress/dto"
	pmodel "akademiku_backend/internals/features/progress/model"
)

/* =======================================================================
   Progress Aggregator
   On-demand, tanpa tabel agregat: progression dihitung ulang dari catalog
   + aktivitas siswa setiap request.
======================================================================= */

// ContentProvider: satu-satunya hal yang aggregator butuhkan dari catalog.
type ContentProvider interface {
	ProgramContent(ctx context.Context, programID uuid.UUID) (*cservice.ProgramContent, error)
}

var _ ContentProvider = (*cservice.CatalogService)(nil)

type ProgressService struct {
	Catalog ContentProvider
	Source  ProgressSource
	Grades  gservice.GradeStore
}

func NewProgressService(catalog ContentProvider, source ProgressSource, grades gservice.GradeStore) *ProgressService {
	return &ProgressService{Catalog: catalog, Source: source, Grades: grades}
}

/* ===============================
   Pure helpers
=================================*/

// RoundPercent: pembagi nol berarti belum ada item gradable, 0 (bukan error).
func RoundPercent(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(numerator) / float64(denominator) * 100))
}

// LatestTwo mengambil dua entri pertama dari list yang sudah terurut
// graded_at DESC; display logic, bukan rata-rata.
func LatestTwo(records []gmodel.GradeRecordModel) []gmodel.GradeRecordModel {
	if len(records) > 2 {
		return records[:2]
	}
	return records
}

// ZeroFilledWeek: 7 hari kalender berakhir di today, satu bucket per hari,
// hari tanpa session tetap muncul dengan 0 menit.
func ZeroFilledWeek(today time.Time, sessions []pmodel.ConnectionSessionModel) []pdto.DayActivity {
	const layout = "2006-01-02"
	minutesByDay := make(map[string]int, len(sessions))
	for _, s := range sessions {
		minutesByDay[s.ConnectionSessionDay.Format(layout)] += s.ConnectionSessionMinutes
	}

	out := make([]pdto.DayActivity, 0, 7)
	start := today.AddDate(0, 0, -6)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i).Format(layout)
		out = append(out, pdto.DayActivity{Day: day, Minutes: minutesByDay[day]})
	}
	return out
}

/* ===============================
   Gradable items per program
=================================*/

// GradableItems: daftar item per jenis dari snapshot catalog. Hanya course
// published dalam block aktif yang dihitung; block tanpa item gradable
// tidak menyumbang pembagi.
type GradableItems struct {
	ChapterIDs   []uuid.UUID // chapter kind text/slide
	QuizIDs      []uuid.UUID
	CaseStudyIDs []uuid.UUID
}

func (g GradableItems) Total() int {
	return len(g.ChapterIDs) + len(g.QuizIDs) + len(g.CaseStudyIDs)
}

func CollectGradableItems(content *cservice.ProgramContent) GradableItems {
	var items GradableItems
	for _, block := range content.Blocks {
		for _, course := range block.Courses {
			if !course.Published {
				continue
			}
			for _, ch := range course.Chapters {
				if ch.ChapterKind.CountsTowardProgress() {
					items.ChapterIDs = append(items.ChapterIDs, ch.ChapterID)
				}
			}
			for _, q := range course.Quizzes {
				items.QuizIDs = append(items.QuizIDs, q.QuizID)
			}
			for _, cs := range course.CaseStudies {
				items.CaseStudyIDs = append(items.CaseStudyIDs, cs.CaseStudyID)
			}
		}
	}
	return items
}

/* ===============================
   Operations
=================================*/

// GetProgress menghitung progression (student, program): pembilang item
// yang attempted, pembagi semua item gradable, plus agregat waktu.
func (s *ProgressService) GetProgress(ctx context.Context, studentID, programID uuid.UUID) (*pdto.ProgressResponse, error) {
	content, err := s.Catalog.ProgramContent(ctx, programID)
	if err != nil {
		return nil, err
	}
	items := CollectGradableItems(content)

	var (
		chaptersRead map[uuid.UUID]bool
		quizzesDone  map[uuid.UUID]bool
		caseStudies  map[uuid.UUID]bool
		totalMinutes int
		sessions     []pmodel.ConnectionSessionModel
	)

	today := time.Now()
	weekStart := today.AddDate(0, 0, -6)

	// lima pembacaan independen, fan-out
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		chaptersRead, err = s.Source.ChaptersRead(gctx, studentID, items.ChapterIDs)
		return err
	})
	g.Go(func() error {
		var err error
		quizzesDone, err = s.Source.QuizzesFinished(gctx, studentID, items.QuizIDs)
		return err
	})
	g.Go(func() error {
		var err error
		caseStudies, err = s.Source.CaseStudiesSubmitted(gctx, studentID, items.CaseStudyIDs)
		return err
	})
	g.Go(func() error {
		var err error
		totalMinutes, err = s.Source.TotalTimeMinutes(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		sessions, err = s.Source.SessionsSince(gctx, studentID, weekStart)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	numerator := len(chaptersRead) + len(quizzesDone) + len(caseStudies)
	denominator := items.Total()

	return &pdto.ProgressResponse{
		StudentID:           studentID,
		ProgramID:           programID,
		TotalItems:          denominator,
		CompletedItems:      numerator,
		ProgressPercent:     RoundPercent(numerator, denominator),
		ChaptersRead:        len(chaptersRead),
		QuizzesFinished:     len(quizzesDone),
		CaseStudiesHandedIn: len(caseStudies),
		TotalTimeMinutes:    totalMinutes,
		WeeklyActivity:      ZeroFilledWeek(today, sessions),
	}, nil
}

// GetBlockSummary: dua nilai terbaru blok untuk view transkrip.
func (s *ProgressService) GetBlockSummary(ctx context.Context, studentID, blockID uuid.UUID, decimalSep string) (*pdto.BlockSummaryResponse, error) {
	records, err := s.Grades.ListForBlock(ctx, studentID, blockID)
	if err != nil {
		return nil, err
	}
	return &pdto.BlockSummaryResponse{
		BlockID:      blockID,
		LatestGrades: gdto.FromGradeRecordModels(LatestTwo(records), decimalSep),
		GradeCount:   len(records),
	}, nil
}

// RecordSessionPing menambah menit koneksi untuk hari ini.
func (s *ProgressService) RecordSessionPing(ctx context.Context, studentID uuid.UUID, minutes int) error {
	return s.Source.AddSessionMinutes(ctx, studentID, StartOfDay(time.Now()), minutes)
}

// StartOfDay: tengah malam kalender lokal. Bucket harian mengikuti kalender
// yang sama dengan ZeroFilledWeek, bukan kelipatan 24 jam sejak epoch UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
