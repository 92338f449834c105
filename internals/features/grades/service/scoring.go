// file: internals/features/grades/service/scoring.go
package service

import (
	"math"
	"strings"

	"github.com/google/uuid"

	gmodel "akademiku_backend/internals/features/grades/model"
	"akademiku_backend/internals/helpers/errs"
)

// Selisih nilai di bawah ini dianggap tidak material: overwrite diam-diam,
// tanpa entri ledger.
const LedgerEpsilon = 0.01

// ClampScore: semua nilai dipaksa masuk [0, max] sebelum persist.
func ClampScore(score, max float64) float64 {
	if max <= 0 {
		return 0
	}
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// MateriallyDifferent: true kalau penggantian nilai butuh justification +
// entri ledger.
func MateriallyDifferent(oldScore, newScore float64) bool {
	return math.Abs(newScore-oldScore) > LedgerEpsilon
}

// DecideOverride: aturan audit saat menimpa GradeRecord yang sudah ada.
//   - belum ada record / masih placeholder (score NULL) -> tulis, tanpa ledger
//   - selisih <= epsilon      -> overwrite diam-diam, tanpa ledger
//   - selisih > epsilon       -> wajib justification; tanpa itu error dan
//     TIDAK ADA mutasi sama sekali
//
// Dipakai oleh implementasi Finalize (produksi & fake) supaya gate-nya satu.
func DecideOverride(current *gmodel.GradeRecordModel, newScore float64, justification *string, evaluationID uuid.UUID) (writeLedger bool, err error) {
	if current == nil || current.GradeRecordScore == nil {
		return false, nil
	}
	if !MateriallyDifferent(*current.GradeRecordScore, newScore) {
		return false, nil
	}
	if justification == nil || strings.TrimSpace(*justification) == "" {
		return false, &errs.MissingJustification{
			EvaluationID: evaluationID,
			OldScore:     *current.GradeRecordScore,
			NewScore:     newScore,
		}
	}
	return true, nil
}
