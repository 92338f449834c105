// file: internals/features/assessments/corrections/service/composite.go
package service

import (
	gservice "akademiku_backend/internals/features/grades/service"
)

// QuestionGrade: pasangan skor/max satu pertanyaan, bahan hitung composite.
type QuestionGrade struct {
	Score float64
	Max   float64
}

const compositeMax = 20.0

// QuestionComponent menormalkan total poin ke skala 0-20.
// Tanpa bobot (pointsMax 0) komponennya 0, bukan NaN.
func QuestionComponent(grades []QuestionGrade) float64 {
	var awarded, max float64
	for _, g := range grades {
		awarded += g.Score
		max += g.Max
	}
	if max <= 0 {
		return 0
	}
	return awarded / max * compositeMax
}

// ComputeComposite: nilai akhir case study.
//   - ada pertanyaan + dokumen eksternal -> rata-rata dua komponen
//   - tanpa pertanyaan -> nilai dokumen eksternal apa adanya
//   - hasil selalu di-clamp ke [0, 20], input minus/over-max sekalipun
func ComputeComposite(grades []QuestionGrade, externalDocGrade *float64) float64 {
	qc := QuestionComponent(grades)

	var composite float64
	switch {
	case externalDocGrade == nil:
		composite = qc
	case len(grades) > 0:
		ext := gservice.ClampScore(*externalDocGrade, compositeMax)
		composite = (qc + ext) / 2
	default:
		composite = gservice.ClampScore(*externalDocGrade, compositeMax)
	}
	return gservice.ClampScore(composite, compositeMax)
}

// MergeCorrectionComment menempelkan catatan dokumen eksternal ke komentar
// utama di bawah section berpembatas, tidak menimpa komentar utama.
func MergeCorrectionComment(globalComment, externalDocComment *string) *string {
	if externalDocComment == nil || *externalDocComment == "" {
		return globalComment
	}
	base := ""
	if globalComment != nil {
		base = *globalComment
	}
	merged := base + "\n\n=== Catatan dokumen eksternal ===\n" + *externalDocComment
	return &merged
}
