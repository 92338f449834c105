// file: internals/features/progress/service/progress_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	cmodel "akademiku_backend/internals/features/catalog/model"
	cservice "akademiku_backend/internals/features/catalog/service"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	pmodel "akademiku_backend/internals/features/progress/model"
)

/* ===============================
   Pure helpers
=================================*/

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		name       string
		num, denom int
		want       int
	}{
		{"empat dari enam", 4, 6, 67},
		{"nol item", 0, 0, 0},
		{"pembagi nol dengan pembilang", 3, 0, 0},
		{"semua selesai", 6, 6, 100},
		{"belum mulai", 0, 9, 0},
		{"sepertiga", 1, 3, 33},
		{"dua pertiga", 2, 3, 67},
		{"setengah", 1, 2, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundPercent(tt.num, tt.denom); got != tt.want {
				t.Errorf("RoundPercent(%d, %d) = %d, want %d", tt.num, tt.denom, got, tt.want)
			}
		})
	}
}

func TestLatestTwo(t *testing.T) {
	mk := func(n int) []gmodel.GradeRecordModel {
		out := make([]gmodel.GradeRecordModel, n)
		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		for i := range out {
			// input sudah DESC: index 0 paling baru
			out[i].GradeRecordGradedAt = base.Add(-time.Duration(i) * time.Hour)
		}
		return out
	}

	if got := LatestTwo(mk(0)); len(got) != 0 {
		t.Errorf("kosong: got %d", len(got))
	}
	if got := LatestTwo(mk(1)); len(got) != 1 {
		t.Errorf("satu: got %d", len(got))
	}
	got := LatestTwo(mk(5))
	if len(got) != 2 {
		t.Fatalf("lima: got %d, want 2", len(got))
	}
	if !got[0].GradeRecordGradedAt.After(got[1].GradeRecordGradedAt) {
		t.Error("urutan terbaru-dulu tidak terjaga")
	}
}

func TestZeroFilledWeek(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	sid := uuid.New()
	sessions := []pmodel.ConnectionSessionModel{
		{ConnectionSessionStudentID: sid, ConnectionSessionDay: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), ConnectionSessionMinutes: 30},
		{ConnectionSessionStudentID: sid, ConnectionSessionDay: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), ConnectionSessionMinutes: 45},
	}

	week := ZeroFilledWeek(today, sessions)
	if len(week) != 7 {
		t.Fatalf("got %d buckets, want 7", len(week))
	}
	if week[0].Day != "2026-03-04" || week[6].Day != "2026-03-10" {
		t.Errorf("rentang salah: %s .. %s", week[0].Day, week[6].Day)
	}
	byDay := map[string]int{}
	for _, d := range week {
		byDay[d.Day] = d.Minutes
	}
	if byDay["2026-03-10"] != 30 || byDay["2026-03-07"] != 45 {
		t.Errorf("menit tidak cocok: %+v", byDay)
	}
	// hari tanpa sesi tetap muncul dengan 0
	for _, empty := range []string{"2026-03-04", "2026-03-05", "2026-03-06", "2026-03-08", "2026-03-09"} {
		if v, ok := byDay[empty]; !ok || v != 0 {
			t.Errorf("hari %s harus 0 menit, got %v (ada=%v)", empty, v, ok)
		}
	}
}

/* ===============================
   CollectGradableItems
=================================*/

func buildContent() (*cservice.ProgramContent, GradableItems) {
	programID := uuid.New()

	chapter := func(kind cmodel.ChapterKind) cmodel.ChapterModel {
		return cmodel.ChapterModel{ChapterID: uuid.New(), ChapterKind: kind, ChapterIsActive: true}
	}

	published := cservice.CourseContent{
		Course:    cmodel.CourseModel{CourseID: uuid.New()},
		Chapters:  []cmodel.ChapterModel{chapter(cmodel.ChapterKindText), chapter(cmodel.ChapterKindSlide), chapter(cmodel.ChapterKindVideo)},
		Quizzes:   []cmodel.QuizModel{{QuizID: uuid.New()}, {QuizID: uuid.New()}},
		Published: true,
	}
	published.CaseStudies = []cmodel.CaseStudyModel{{CaseStudyID: uuid.New()}}

	unpublished := cservice.CourseContent{
		Course:    cmodel.CourseModel{CourseID: uuid.New()},
		Chapters:  []cmodel.ChapterModel{chapter(cmodel.ChapterKindText)},
		Quizzes:   []cmodel.QuizModel{{QuizID: uuid.New()}},
		Published: false,
	}

	content := &cservice.ProgramContent{
		ProgramID: programID,
		Blocks: []cservice.BlockContent{
			{
				Block:   cmodel.CompetencyBlockModel{CompetencyBlockID: uuid.New(), CompetencyBlockIsActive: true},
				Courses: []cservice.CourseContent{published, unpublished},
			},
			{
				// blok tanpa item gradable: tidak menyumbang pembagi
				Block: cmodel.CompetencyBlockModel{CompetencyBlockID: uuid.New(), CompetencyBlockIsActive: true},
			},
		},
	}
	return content, CollectGradableItems(content)
}

func TestCollectGradableItems(t *testing.T) {
	_, items := buildContent()

	// video chapter tidak dihitung; course unpublished di-skip seluruhnya
	if len(items.ChapterIDs) != 2 {
		t.Errorf("got %d chapters, want 2 (text+slide saja)", len(items.ChapterIDs))
	}
	if len(items.QuizIDs) != 2 {
		t.Errorf("got %d quizzes, want 2", len(items.QuizIDs))
	}
	if len(items.CaseStudyIDs) != 1 {
		t.Errorf("got %d case studies, want 1", len(items.CaseStudyIDs))
	}
	if items.Total() != 5 {
		t.Errorf("got total=%d, want 5", items.Total())
	}
}

/* ===============================
   GetProgress end-to-end (fakes)
=================================*/

type staticContent struct {
	content *cservice.ProgramContent
}

func (s staticContent) ProgramContent(context.Context, uuid.UUID) (*cservice.ProgramContent, error) {
	return s.content, nil
}

type fakeSource struct {
	read      map[uuid.UUID]bool
	finished  map[uuid.UUID]bool
	submitted map[uuid.UUID]bool
	minutes   int
	sessions  []pmodel.ConnectionSessionModel
}

var _ ProgressSource = (*fakeSource)(nil)

func pick(set map[uuid.UUID]bool, ids []uuid.UUID) map[uuid.UUID]bool {
	out := map[uuid.UUID]bool{}
	for _, id := range ids {
		if set[id] {
			out[id] = true
		}
	}
	return out
}

func (f *fakeSource) ChaptersRead(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	return pick(f.read, ids), nil
}
func (f *fakeSource) QuizzesFinished(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	return pick(f.finished, ids), nil
}
func (f *fakeSource) CaseStudiesSubmitted(_ context.Context, _ uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	return pick(f.submitted, ids), nil
}
func (f *fakeSource) TotalTimeMinutes(context.Context, uuid.UUID) (int, error) {
	return f.minutes, nil
}
func (f *fakeSource) SessionsSince(context.Context, uuid.UUID, time.Time) ([]pmodel.ConnectionSessionModel, error) {
	return f.sessions, nil
}
func (f *fakeSource) AddSessionMinutes(context.Context, uuid.UUID, time.Time, int) error {
	return nil
}

type nilGradeStore struct{}

var _ gservice.GradeStore = nilGradeStore{}

func (nilGradeStore) Get(context.Context, uuid.UUID, gmodel.EvaluationKind, uuid.UUID) (*gmodel.GradeRecordModel, error) {
	return nil, nil
}
func (nilGradeStore) Upsert(context.Context, gservice.UpsertGradeInput) (*gmodel.GradeRecordModel, error) {
	return nil, nil
}
func (nilGradeStore) ListForBlock(context.Context, uuid.UUID, uuid.UUID) ([]gmodel.GradeRecordModel, error) {
	return nil, nil
}
func (nilGradeStore) AppendModification(context.Context, *gmodel.GradeModificationModel) error {
	return nil
}
func (nilGradeStore) ListModifications(context.Context, gmodel.EvaluationKind, uuid.UUID, int, int) ([]gmodel.GradeModificationModel, int64, error) {
	return nil, 0, nil
}

func TestGetProgress(t *testing.T) {
	content, items := buildContent()

	// 4 dari 5 item attempted: 2 chapter, 1 quiz, 1 case study... pembilang 4
	source := &fakeSource{
		read:      map[uuid.UUID]bool{items.ChapterIDs[0]: true, items.ChapterIDs[1]: true},
		finished:  map[uuid.UUID]bool{items.QuizIDs[0]: true},
		submitted: map[uuid.UUID]bool{items.CaseStudyIDs[0]: true},
		minutes:   95,
	}

	svc := NewProgressService(staticContent{content}, source, nilGradeStore{})
	resp, err := svc.GetProgress(context.Background(), uuid.New(), content.ProgramID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if resp.TotalItems != 5 || resp.CompletedItems != 4 {
		t.Errorf("got %d/%d, want 4/5", resp.CompletedItems, resp.TotalItems)
	}
	if resp.ProgressPercent != 80 {
		t.Errorf("got percent=%d, want 80", resp.ProgressPercent)
	}
	if resp.TotalTimeMinutes != 95 {
		t.Errorf("got minutes=%d, want 95", resp.TotalTimeMinutes)
	}
	if len(resp.WeeklyActivity) != 7 {
		t.Errorf("got %d buckets, want 7", len(resp.WeeklyActivity))
	}
	if resp.ChaptersRead != 2 || resp.QuizzesFinished != 1 || resp.CaseStudiesHandedIn != 1 {
		t.Errorf("rincian salah: %d/%d/%d", resp.ChaptersRead, resp.QuizzesFinished, resp.CaseStudiesHandedIn)
	}
}

func TestGetProgressEmptyProgram(t *testing.T) {
	content := &cservice.ProgramContent{ProgramID: uuid.New()}
	svc := NewProgressService(staticContent{content}, &fakeSource{}, nilGradeStore{})

	resp, err := svc.GetProgress(context.Background(), uuid.New(), content.ProgramID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.ProgressPercent != 0 || resp.TotalItems != 0 {
		t.Errorf("program kosong harus 0%%, got %d%% (%d item)", resp.ProgressPercent, resp.TotalItems)
	}
}

func TestStartOfDay(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	lima := time.FixedZone("PET", -5*3600)

	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc siang", time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), "2026-03-10"},
		// 02:00 WIB = 19:00 UTC hari sebelumnya; bucket harus ikut kalender lokal
		{"dini hari zona plus", time.Date(2026, 3, 10, 2, 0, 0, 0, jakarta), "2026-03-10"},
		// 23:30 PET = 04:30 UTC hari berikutnya
		{"larut malam zona minus", time.Date(2026, 3, 10, 23, 30, 0, 0, lima), "2026-03-10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StartOfDay(tc.in)
			if got.Format("2006-01-02") != tc.want {
				t.Errorf("got %s, want %s", got.Format("2006-01-02"), tc.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("bukan tengah malam: %v", got)
			}
			if got.Location() != tc.in.Location() {
				t.Errorf("zona berubah: %v", got.Location())
			}
		})
	}
}
