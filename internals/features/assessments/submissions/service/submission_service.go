// file: internals/features/assessments/submissions/service/submission_service.go
package service

import (
	"context"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	sdto "akademiku_backend/internals/features/assessments/submissions/dto"
	smodel "akademiku_backend/internals/features/assessments/submissions/model"
	cmodel "akademiku_backend/internals/features/catalog/model"
	cservice "akademiku_backend/internals/features/catalog/service"
	gdto "akademiku_backend/internals/features/grades/dto"
	gmodel "akademiku_backend/internals/features/grades/model"
	gservice "akademiku_backend/internals/features/grades/service"
	"akademiku_backend/internals/helpers/errs"
	"akademiku_backend/internals/helpers/oss"
)

/* =======================================================================
   Submission service
   Intake submission siswa + penyusunan detail koreksi untuk corrector.
======================================================================= */

const (
	WorkflowStatePending         = "pending"
	WorkflowStatePartiallyGraded = "partially_graded"
	WorkflowStateGraded          = "graded"
)

// DeriveWorkflowState murni dari status submission + jumlah koreksi
// per-pertanyaan yang sudah tersimpan.
func DeriveWorkflowState(status smodel.SubmissionStatus, correctedCount int) string {
	if status == smodel.SubmissionStatusCorrected {
		return WorkflowStateGraded
	}
	if correctedCount > 0 {
		return WorkflowStatePartiallyGraded
	}
	return WorkflowStatePending
}

// CatalogReader: potongan catalog yang dibutuhkan alur case study.
// *cservice.CatalogService memenuhinya; test pakai fake kecil.
type CatalogReader interface {
	CaseStudyByID(ctx context.Context, caseStudyID uuid.UUID) (*cmodel.CaseStudyModel, error)
	ActiveCaseStudyQuestions(ctx context.Context, caseStudyID uuid.UUID) ([]cmodel.CaseStudyQuestionModel, error)
	BlockForCaseStudy(ctx context.Context, caseStudyID uuid.UUID) (uuid.UUID, error)
}

var _ CatalogReader = (*cservice.CatalogService)(nil)

type SubmissionService struct {
	Store   SubmissionStore
	Catalog CatalogReader
	Grades  gservice.GradeStore
	OSS     *oss.OSSService
}

func NewSubmissionService(store SubmissionStore, catalog CatalogReader, grades gservice.GradeStore) *SubmissionService {
	return &SubmissionService{
		Store:   store,
		Catalog: catalog,
		Grades:  grades,
		OSS:     oss.DefaultOSS(),
	}
}

// CreateSubmission menyimpan submission pertama untuk (student, case study).
// Submission kedua ditolak utuh, isi yang pertama tidak berubah. Sesudah
// insert berhasil, placeholder GradeRecord (score NULL) di-upsert supaya
// case study langsung terhitung "attempted" di progress.
func (s *SubmissionService) CreateSubmission(ctx context.Context, studentID, caseStudyID uuid.UUID, req sdto.CreateSubmissionRequest) (*sdto.SubmissionResponse, error) {
	cs, err := s.Catalog.CaseStudyByID(ctx, caseStudyID)
	if err != nil {
		return nil, err
	}
	if cs == nil {
		return nil, &errs.NotFound{Entity: "case_study", ID: caseStudyID}
	}
	blockID, err := s.Catalog.BlockForCaseStudy(ctx, caseStudyID)
	if err != nil {
		return nil, err
	}

	answers := datatypes.JSONMap{}
	for k, v := range req.Answers {
		answers[k] = v
	}

	var attachments datatypes.JSON
	if len(req.Attachments) > 0 {
		rows := make([]smodel.SubmissionAttachment, 0, len(req.Attachments))
		for _, a := range req.Attachments {
			rows = append(rows, smodel.SubmissionAttachment{
				QuestionID: a.QuestionID,
				FileRef:    a.FileRef,
				FileName:   a.FileName,
			})
		}
		raw, err := sonic.Marshal(rows)
		if err != nil {
			return nil, err
		}
		attachments = datatypes.JSON(raw)
	}

	sub := smodel.SubmissionModel{
		SubmissionStudentID:   studentID,
		SubmissionCaseStudyID: caseStudyID,
		SubmissionAnswers:     answers,
		SubmissionAttachments: attachments,
		SubmissionComment:     req.Comment,
		SubmissionStatus:      smodel.SubmissionStatusPending,
	}

	created, err := s.Store.Insert(ctx, &sub)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, &errs.DuplicateSubmission{StudentID: studentID, CaseStudyID: caseStudyID}
	}

	// placeholder: NULL score = submitted tapi belum dikoreksi
	if _, err := s.Grades.Upsert(ctx, gservice.UpsertGradeInput{
		StudentID:    studentID,
		Kind:         gmodel.EvaluationKindCaseStudy,
		EvaluationID: caseStudyID,
		BlockID:      blockID,
		Score:        nil,
		Max:          cs.CaseStudyMaxPoints,
	}); err != nil {
		return nil, err
	}

	resp := sdto.FromSubmissionModel(sub)
	return &resp, nil
}

// GetSubmissionDetail menyusun tampilan koreksi: semua pertanyaan aktif
// (dijawab maupun tidak, dengan penanda Answered eksplisit), koreksi yang
// sudah tersimpan, attachment sebagai signed URL, dan nilai terdahulu.
func (s *SubmissionService) GetSubmissionDetail(ctx context.Context, submissionID uuid.UUID, decimalSep string) (*sdto.SubmissionDetailResponse, error) {
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

	var (
		questions   []cmodel.CaseStudyQuestionModel
		corrections []smodel.QuestionCorrectionModel
		prior       *gmodel.GradeRecordModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		questions, err = s.Catalog.ActiveCaseStudyQuestions(gctx, cs.CaseStudyID)
		return err
	})
	g.Go(func() error {
		var err error
		corrections, err = s.Store.CorrectionsForSubmission(gctx, submissionID)
		return err
	})
	g.Go(func() error {
		var err error
		prior, err = s.Grades.Get(gctx, sub.SubmissionStudentID, gmodel.EvaluationKindCaseStudy, sub.SubmissionCaseStudyID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	correctionByQuestion := make(map[uuid.UUID]smodel.QuestionCorrectionModel, len(corrections))
	for _, qc := range corrections {
		correctionByQuestion[qc.QuestionCorrectionQuestionID] = qc
	}
	attachmentByQuestion := s.attachmentURLs(sub.SubmissionAttachments)

	details := make([]sdto.QuestionDetail, 0, len(questions))
	for _, q := range questions {
		d := sdto.QuestionDetail{
			QuestionID: q.CaseStudyQuestionID,
			Position:   q.CaseStudyQuestionPosition,
			Kind:       q.CaseStudyQuestionKind,
			Text:       q.CaseStudyQuestionText,
			Points:     q.CaseStudyQuestionPoints,
		}
		if ans, ok := sub.SubmissionAnswers[q.CaseStudyQuestionID.String()]; ok && ans != nil {
			d.Answered = true
			d.Answer = ans
		}
		if url, ok := attachmentByQuestion[q.CaseStudyQuestionID]; ok {
			u := url
			d.AttachmentURL = &u
			d.Answered = true
		}
		if qc, ok := correctionByQuestion[q.CaseStudyQuestionID]; ok {
			d.Correction = &sdto.QuestionCorrectionView{
				Score:   qc.QuestionCorrectionScore,
				Max:     qc.QuestionCorrectionMax,
				Comment: qc.QuestionCorrectionComment,
			}
		}
		details = append(details, d)
	}

	var priorResp *gdto.GradeRecordResponse
	if prior != nil && prior.GradeRecordScore != nil {
		r := gdto.FromGradeRecordModel(*prior, decimalSep)
		priorResp = &r
	}

	return &sdto.SubmissionDetailResponse{
		Submission:    sdto.FromSubmissionModel(*sub),
		CaseStudy:     sdto.FromCaseStudyModel(*cs),
		Questions:     details,
		PriorGrade:    priorResp,
		WorkflowState: DeriveWorkflowState(sub.SubmissionStatus, len(corrections)),
	}, nil
}

// attachmentURLs: resolve file_ref ke signed URL berbatas waktu. OSS yang
// belum dikonfigurasi atau gagal sign tidak menggagalkan detail view.
func (s *SubmissionService) attachmentURLs(raw datatypes.JSON) map[uuid.UUID]string {
	out := map[uuid.UUID]string{}
	if len(raw) == 0 {
		return out
	}
	var rows []smodel.SubmissionAttachment
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		log.Printf("[SubmissionService] attachments rusak: %v", err)
		return out
	}
	for _, a := range rows {
		if s.OSS == nil {
			out[a.QuestionID] = a.FileRef
			continue
		}
		url, err := s.OSS.SignedURL(a.FileRef)
		if err != nil {
			log.Printf("[SubmissionService] gagal sign %s: %v", a.FileRef, err)
			out[a.QuestionID] = a.FileRef
			continue
		}
		out[a.QuestionID] = url
	}
	return out
}
