// file: internals/features/assessments/submissions/service/submission_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	sdto "akademiku_backend/internals/features/assessments/submissions/dto"
	smodel "akademiku_backend/internals/features/assessments/submissions/model"
	cmodel "akademiku_backend/internals/features/catalog/model"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	"akademiku_backend/internals/helpers/errs"
)

/* ===============================
   Fakes
=================================*/

type fakeCatalog struct {
	caseStudy *cmodel.CaseStudyModel
	questions []cmodel.CaseStudyQuestionModel
	blockID   uuid.UUID
}

var _ CatalogReader = (*fakeCatalog)(nil)

func (f *fakeCatalog) CaseStudyByID(_ context.Context, id uuid.UUID) (*cmodel.CaseStudyModel, error) {
	if f.caseStudy == nil || f.caseStudy.CaseStudyID != id {
		return nil, nil
	}
	cp := *f.caseStudy
	return &cp, nil
}

func (f *fakeCatalog) ActiveCaseStudyQuestions(context.Context, uuid.UUID) ([]cmodel.CaseStudyQuestionModel, error) {
	return f.questions, nil
}

func (f *fakeCatalog) BlockForCaseStudy(context.Context, uuid.UUID) (uuid.UUID, error) {
	return f.blockID, nil
}

type gradeKey struct {
	student uuid.UUID
	kind    gmodel.EvaluationKind
	eval    uuid.UUID
}

type memGradeStore struct {
	mu      sync.Mutex
	records map[gradeKey]*gmodel.GradeRecordModel
}

func newMemGradeStore() *memGradeStore {
	return &memGradeStore{records: make(map[gradeKey]*gmodel.GradeRecordModel)}
}

var _ gservice.GradeStore = (*memGradeStore)(nil)

func (m *memGradeStore) Get(_ context.Context, studentID uuid.UUID, kind gmodel.EvaluationKind, evaluationID uuid.UUID) (*gmodel.GradeRecordModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[gradeKey{studentID, kind, evaluationID}]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memGradeStore) Upsert(_ context.Context, in gservice.UpsertGradeInput) (*gmodel.GradeRecordModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := in.Max
	if max <= 0 {
		max = in.Kind.DefaultMax()
	}
	var score *float64
	if in.Score != nil {
		clamped := gservice.ClampScore(*in.Score, max)
		score = &clamped
	}
	key := gradeKey{in.StudentID, in.Kind, in.EvaluationID}
	rec, ok := m.records[key]
	if !ok {
		rec = &gmodel.GradeRecordModel{
			GradeRecordID:           uuid.New(),
			GradeRecordStudentID:    in.StudentID,
			GradeRecordKind:         in.Kind,
			GradeRecordEvaluationID: in.EvaluationID,
		}
		m.records[key] = rec
	}
	rec.GradeRecordBlockID = in.BlockID
	rec.GradeRecordScore = score
	rec.GradeRecordMax = max
	rec.GradeRecordGradedAt = time.Now()
	cp := *rec
	return &cp, nil
}

func (m *memGradeStore) ListForBlock(context.Context, uuid.UUID, uuid.UUID) ([]gmodel.GradeRecordModel, error) {
	return nil, nil
}

func (m *memGradeStore) AppendModification(context.Context, *gmodel.GradeModificationModel) error {
	return nil
}

func (m *memGradeStore) ListModifications(context.Context, gmodel.EvaluationKind, uuid.UUID, int, int) ([]gmodel.GradeModificationModel, int64, error) {
	return nil, 0, nil
}

type correctionKey struct {
	submission uuid.UUID
	question   uuid.UUID
}

type memSubmissionStore struct {
	mu          sync.Mutex
	submissions map[uuid.UUID]*smodel.SubmissionModel
	corrections map[correctionKey]*smodel.QuestionCorrectionModel
}

func newMemSubmissionStore() *memSubmissionStore {
	return &memSubmissionStore{
		submissions: make(map[uuid.UUID]*smodel.SubmissionModel),
		corrections: make(map[correctionKey]*smodel.QuestionCorrectionModel),
	}
}

var _ SubmissionStore = (*memSubmissionStore)(nil)

func (m *memSubmissionStore) Insert(_ context.Context, sub *smodel.SubmissionModel) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.submissions {
		if existing.SubmissionStudentID == sub.SubmissionStudentID &&
			existing.SubmissionCaseStudyID == sub.SubmissionCaseStudyID {
			return false, nil
		}
	}
	if sub.SubmissionID == uuid.Nil {
		sub.SubmissionID = uuid.New()
	}
	sub.SubmissionSubmittedAt = time.Now()
	cp := *sub
	m.submissions[sub.SubmissionID] = &cp
	return true, nil
}

func (m *memSubmissionStore) ByID(_ context.Context, id uuid.UUID) (*smodel.SubmissionModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.submissions[id]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (m *memSubmissionStore) UpsertQuestionCorrection(_ context.Context, qc *smodel.QuestionCorrectionModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *qc
	m.corrections[correctionKey{qc.QuestionCorrectionSubmissionID, qc.QuestionCorrectionQuestionID}] = &cp
	return nil
}

func (m *memSubmissionStore) CorrectionsForSubmission(_ context.Context, submissionID uuid.UUID) ([]smodel.QuestionCorrectionModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []smodel.QuestionCorrectionModel
	for key, qc := range m.corrections {
		if key.submission == submissionID {
			out = append(out, *qc)
		}
	}
	return out, nil
}

func (m *memSubmissionStore) Finalize(context.Context, FinalizeInput) (*FinalizeResult, error) {
	return nil, errors.New("not used in this test")
}

/* ===============================
   Fixture
=================================*/

func newSubmissionFixture(questionCount int) (*SubmissionService, *fakeCatalog, *memSubmissionStore, *memGradeStore) {
	caseStudyID := uuid.New()
	questions := make([]cmodel.CaseStudyQuestionModel, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		questions = append(questions, cmodel.CaseStudyQuestionModel{
			CaseStudyQuestionID:          uuid.New(),
			CaseStudyQuestionCaseStudyID: caseStudyID,
			CaseStudyQuestionPosition:    i,
			CaseStudyQuestionKind:        cmodel.CaseStudyQuestionKindOpenText,
			CaseStudyQuestionPoints:      10,
			CaseStudyQuestionIsActive:    true,
		})
	}
	catalog := &fakeCatalog{
		caseStudy: &cmodel.CaseStudyModel{
			CaseStudyID:        caseStudyID,
			CaseStudyTitle:     "Studi Kasus Jaringan",
			CaseStudyMaxPoints: 20,
			CaseStudyIsActive:  true,
		},
		questions: questions,
		blockID:   uuid.New(),
	}
	store := newMemSubmissionStore()
	grades := newMemGradeStore()
	svc := &SubmissionService{Store: store, Catalog: catalog, Grades: grades}
	return svc, catalog, store, grades
}

/* ===============================
   Tests
=================================*/

func TestCreateSubmission(t *testing.T) {
	svc, catalog, _, grades := newSubmissionFixture(2)
	ctx := context.Background()
	studentID := uuid.New()
	caseStudyID := catalog.caseStudy.CaseStudyID

	resp, err := svc.CreateSubmission(ctx, studentID, caseStudyID, sdto.CreateSubmissionRequest{
		Answers: map[string]interface{}{
			catalog.questions[0].CaseStudyQuestionID.String(): "jawaban pertama",
		},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.Status != smodel.SubmissionStatusPending {
		t.Errorf("got status=%s, want pending", resp.Status)
	}

	// placeholder: record ada, score NULL
	rec, _ := grades.Get(ctx, studentID, gmodel.EvaluationKindCaseStudy, caseStudyID)
	if rec == nil {
		t.Fatal("placeholder grade tidak dibuat")
	}
	if rec.GradeRecordScore != nil {
		t.Errorf("placeholder harus NULL, got %v", *rec.GradeRecordScore)
	}
	if rec.GradeRecordBlockID != catalog.blockID {
		t.Error("blok pemilik tidak ter-resolve")
	}
}

func TestCreateSubmissionDuplicate(t *testing.T) {
	svc, catalog, store, _ := newSubmissionFixture(1)
	ctx := context.Background()
	studentID := uuid.New()
	caseStudyID := catalog.caseStudy.CaseStudyID

	first, err := svc.CreateSubmission(ctx, studentID, caseStudyID, sdto.CreateSubmissionRequest{
		Comment: sptrTest("versi pertama"),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err = svc.CreateSubmission(ctx, studentID, caseStudyID, sdto.CreateSubmissionRequest{
		Comment: sptrTest("coba timpa"),
	})
	var dup *errs.DuplicateSubmission
	if !errors.As(err, &dup) {
		t.Fatalf("got err=%v, want DuplicateSubmission", err)
	}
	if dup.StudentID != studentID || dup.CaseStudyID != caseStudyID {
		t.Errorf("isi error salah: %+v", dup)
	}

	// isi submission pertama tidak berubah
	saved, _ := store.ByID(ctx, first.SubmissionID)
	if saved.SubmissionComment == nil || *saved.SubmissionComment != "versi pertama" {
		t.Error("submission pertama termutasi oleh percobaan kedua")
	}
}

func TestCreateSubmissionCaseStudyNotFound(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture(1)
	_, err := svc.CreateSubmission(context.Background(), uuid.New(), uuid.New(), sdto.CreateSubmissionRequest{})
	var nf *errs.NotFound
	if !errors.As(err, &nf) {
		t.Fatalf("got err=%v, want NotFound", err)
	}
	if nf.Entity != "case_study" {
		t.Errorf("got entity=%s, want case_study", nf.Entity)
	}
}

func TestGetSubmissionDetail(t *testing.T) {
	svc, catalog, store, _ := newSubmissionFixture(3)
	ctx := context.Background()
	studentID := uuid.New()
	caseStudyID := catalog.caseStudy.CaseStudyID

	answered := catalog.questions[0].CaseStudyQuestionID
	resp, err := svc.CreateSubmission(ctx, studentID, caseStudyID, sdto.CreateSubmissionRequest{
		Answers: map[string]interface{}{answered.String(): "jawaban saya"},
	})
	if err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	// koreksi tersimpan untuk pertanyaan kedua
	checkpointed := catalog.questions[1].CaseStudyQuestionID
	_ = store.UpsertQuestionCorrection(ctx, &smodel.QuestionCorrectionModel{
		QuestionCorrectionSubmissionID: resp.SubmissionID,
		QuestionCorrectionQuestionID:   checkpointed,
		QuestionCorrectionScore:        6,
		QuestionCorrectionMax:          10,
	})

	detail, err := svc.GetSubmissionDetail(ctx, resp.SubmissionID, ".")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(detail.Questions) != 3 {
		t.Fatalf("got %d questions, want semua 3 (termasuk yang tidak dijawab)", len(detail.Questions))
	}
	byID := map[uuid.UUID]int{}
	for i, q := range detail.Questions {
		byID[q.QuestionID] = i
	}

	if q := detail.Questions[byID[answered]]; !q.Answered || q.Answer != "jawaban saya" {
		t.Errorf("pertanyaan terjawab salah: %+v", q)
	}
	if q := detail.Questions[byID[catalog.questions[2].CaseStudyQuestionID]]; q.Answered || q.Answer != nil {
		t.Errorf("pertanyaan kosong harus Answered=false eksplisit: %+v", q)
	}
	if q := detail.Questions[byID[checkpointed]]; q.Correction == nil || q.Correction.Score != 6 {
		t.Errorf("koreksi tersimpan tidak muncul: %+v", q.Correction)
	}

	// placeholder NULL tidak ditampilkan sebagai prior grade
	if detail.PriorGrade != nil {
		t.Errorf("placeholder tidak boleh muncul sebagai prior grade: %+v", detail.PriorGrade)
	}
	if detail.WorkflowState != WorkflowStatePartiallyGraded {
		t.Errorf("got state=%s, want partially_graded", detail.WorkflowState)
	}
}

func TestGetSubmissionDetailNotFound(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture(1)
	_, err := svc.GetSubmissionDetail(context.Background(), uuid.New(), ".")
	var nf *errs.NotFound
	if !errors.As(err, &nf) {
		t.Fatalf("got err=%v, want NotFound", err)
	}
}

func TestDeriveWorkflowState(t *testing.T) {
	tests := []struct {
		name   string
		status smodel.SubmissionStatus
		count  int
		want   string
	}{
		{"belum ada koreksi", smodel.SubmissionStatusPending, 0, WorkflowStatePending},
		{"sebagian terkoreksi", smodel.SubmissionStatusPending, 2, WorkflowStatePartiallyGraded},
		{"sudah graded", smodel.SubmissionStatusCorrected, 3, WorkflowStateGraded},
		{"graded tanpa koreksi tersisa", smodel.SubmissionStatusCorrected, 0, WorkflowStateGraded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveWorkflowState(tt.status, tt.count); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func sptrTest(s string) *string { return &s }
