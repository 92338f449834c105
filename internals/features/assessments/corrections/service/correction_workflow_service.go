// file: internals/features/assessments/corrections/service/correction_workflow_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	cdto "akademiku_backend/internals/features/assessments/corrections/dto"
	smodel "akademiku_backend/internals/features/assessments/submissions/model"
	sservice "akademiku_backend/internals/features/assessments/submissions/service"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	helper "akademiku_backend/internals/helpers"
	"akademiku_backend/internals/helpers/errs"
)

/* =======================================================================
   Correction workflow
   Pending -> PartiallyGraded -> Graded. Graded terminal tapi bisa masuk
   ulang: submit ulang menghitung ulang composite dan bisa memicu ledger.
======================================================================= */

type CorrectionWorkflowService struct {
	Store   sservice.SubmissionStore
	Catalog sservice.CatalogReader
	Grades  gservice.GradeStore
}

func NewCorrectionWorkflowService(store sservice.SubmissionStore, catalog sservice.CatalogReader, grades gservice.GradeStore) *CorrectionWorkflowService {
	return &CorrectionWorkflowService{Store: store, Catalog: catalog, Grades: grades}
}

// SubmitCorrections: transisi penyelesaian koreksi. Semua pertanyaan aktif
// wajib dapat skor dalam satu panggilan; checkpoint per-pertanyaan tetap
// lewat CheckpointQuestion. Gate justification dicek SEBELUM tulis apa pun,
// lalu dicek ulang di Finalize terhadap nilai terkini (bukan stale read).
func (s *CorrectionWorkflowService) SubmitCorrections(ctx context.Context, submissionID, correctorID uuid.UUID, req cdto.SubmitCorrectionsRequest, decimalSep string) (*cdto.CorrectionResultResponse, error) {
	sub, err := s.Store.ByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, &errs.NotFound{Entity: "submission", ID: submissionID}
	}

	cs, err := s.Catalog.CaseStudyByID(ctx, sub.SubmissionCaseStudyID)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, &errs.NotFound{Entity: "case_study", ID: sub.SubmissionCaseStudyID}
	}

	questions, err := s.Catalog.ActiveCaseStudyQuestions(ctx, cs.CaseStudyID)
	if err != nil {
		return nil, err
	}

	gradeByQuestion := make(map[uuid.UUID]cdto.PerQuestionGradeInput, len(req.PerQuestionGrades))
	for _, g := range req.PerQuestionGrades {
		gradeByQuestion[g.QuestionID] = g
	}

	// completeness gate: setiap pertanyaan aktif harus punya skor numerik
	var missing []uuid.UUID
	for _, q := range questions {
		g, ok := gradeByQuestion[q.CaseStudyQuestionID]
		if !ok || g.Score == nil {
			missing = append(missing, q.CaseStudyQuestionID)
		}
	}
	if len(missing) > 0 {
		return nil, &errs.IncompleteCorrection{SubmissionID: submissionID, MissingQuestionIDs: missing}
	}

	// composite dihitung murni dari request; retry aman karena langkah ini
	// tidak membaca state
	grades := make([]QuestionGrade, 0, len(questions))
	corrections := make([]smodel.QuestionCorrectionModel, 0, len(questions))
	for _, q := range questions {
		g := gradeByQuestion[q.CaseStudyQuestionID]
		max := q.CaseStudyQuestionPoints
		if g.Max != nil {
			max = *g.Max
		}
		// skor per soal ikut aturan clamp [0, max] sebelum disimpan
		score := gservice.ClampScore(*g.Score, max)
		grades = append(grades, QuestionGrade{Score: score, Max: max})
		corrections = append(corrections, smodel.QuestionCorrectionModel{
			QuestionCorrectionSubmissionID: submissionID,
			QuestionCorrectionQuestionID:   q.CaseStudyQuestionID,
			QuestionCorrectionScore:        score,
			QuestionCorrectionMax:          max,
			QuestionCorrectionComment:      g.Comment,
		})
	}
	composite := ComputeComposite(grades, req.ExternalDocGrade)

	// cek gate lebih dulu supaya panggilan yang pasti gagal tidak
	// meninggalkan partial write sama sekali
	current, err := s.Grades.Get(ctx, sub.SubmissionStudentID, gmodel.EvaluationKindCaseStudy, cs.CaseStudyID)
	if err != nil {
		return nil, err
	}
	if _, err := gservice.DecideOverride(current, composite, req.Justification, cs.CaseStudyID); err != nil {
		return nil, err
	}

	blockID, err := s.Catalog.BlockForCaseStudy(ctx, cs.CaseStudyID)
	if err != nil {
		return nil, err
	}

	// upsert per-pertanyaan boleh paralel (key beda-beda); barrier dulu
	// sebelum composite ditulis
	g, gctx := errgroup.WithContext(ctx)
	for i := range corrections {
		qc := corrections[i]
		g.Go(func() error {
			return s.Store.UpsertQuestionCorrection(gctx, &qc)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := s.Store.Finalize(ctx, sservice.FinalizeInput{
		SubmissionID:      submissionID,
		StudentID:         sub.SubmissionStudentID,
		CaseStudyID:       cs.CaseStudyID,
		BlockID:           blockID,
		Composite:         composite,
		CompositeMax:      cs.CaseStudyMaxPoints,
		CorrectionComment: MergeCorrectionComment(req.GlobalComment, req.ExternalDocComment),
		CorrectorID:       correctorID,
		Justification:     req.Justification,
	})
	if err != nil {
		return nil, err
	}

	if result.LedgerWritten {
		log.Printf("[CorrectionWorkflow] override submission=%s old=%.2f new=%.2f corrector=%s",
			submissionID, *result.OldScore, result.Grade, correctorID)
	}

	return &cdto.CorrectionResultResponse{
		SubmissionID:     submissionID,
		Composite:        result.Grade,
		CompositeDisplay: helper.FormatScore(result.Grade, decimalSep),
		Max:              cs.CaseStudyMaxPoints,
		LedgerWritten:    result.LedgerWritten,
		OldScore:         result.OldScore,
		WorkflowState:    sservice.WorkflowStateGraded,
	}, nil
}

// CheckpointQuestion menyimpan koreksi satu pertanyaan tanpa menutup
// submission; dipakai corrector untuk nyicil.
func (s *CorrectionWorkflowService) CheckpointQuestion(ctx context.Context, submissionID uuid.UUID, req cdto.CheckpointQuestionRequest) (string, error) {
	sub, err := s.Store.ByID(ctx, submissionID)
	if err != nil {
		return "", err
	}
	if sub == nil {
		return "", &errs.NotFound{Entity: "submission", ID: submissionID}
	}

	max := 20.0
	if req.Max != nil {
		max = *req.Max
	}
	qc := smodel.QuestionCorrectionModel{
		QuestionCorrectionSubmissionID: submissionID,
		QuestionCorrectionQuestionID:   req.QuestionID,
		QuestionCorrectionScore:        req.Score,
		QuestionCorrectionMax:          max,
		QuestionCorrectionComment:      req.Comment,
	}
	if err := s.Store.UpsertQuestionCorrection(ctx, &qc); err != nil {
		return "", err
	}

	existing, err := s.Store.CorrectionsForSubmission(ctx, submissionID)
	if err != nil {
		return "", err
	}
	return sservice.DeriveWorkflowState(sub.SubmissionStatus, len(existing)), nil
}
