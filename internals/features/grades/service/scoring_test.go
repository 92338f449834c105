// file: internals/features/grades/service/scoring_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	gmodel "akademiku_backend/internals/features/grades/model"
	"akademiku_backend/internals/helpers/errs"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func TestClampScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		max   float64
		want  float64
	}{
		{"dalam rentang", 14, 20, 14},
		{"negatif jadi nol", -3, 20, 0},
		{"lebih dari max", 27.5, 20, 20},
		{"pas di max", 20, 20, 20},
		{"pas di nol", 0, 20, 0},
		{"max nol", 10, 0, 0},
		{"skala quiz", 150, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScore(tt.score, tt.max); got != tt.want {
				t.Errorf("ClampScore(%v, %v) = %v, want %v", tt.score, tt.max, got, tt.want)
			}
		})
	}
}

func TestMateriallyDifferent(t *testing.T) {
	tests := []struct {
		name     string
		old, new float64
		want     bool
	}{
		{"identik", 12, 12, false},
		{"selisih tepat epsilon", 12, 12.01, false},
		{"selisih di atas epsilon", 12, 12.02, true},
		{"selisih besar", 12, 15, true},
		{"turun", 15, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MateriallyDifferent(tt.old, tt.new); got != tt.want {
				t.Errorf("MateriallyDifferent(%v, %v) = %v, want %v", tt.old, tt.new, got, tt.want)
			}
		})
	}
}

func TestDecideOverride(t *testing.T) {
	evalID := uuid.New()
	record := func(score *float64) *gmodel.GradeRecordModel {
		return &gmodel.GradeRecordModel{
			GradeRecordEvaluationID: evalID,
			GradeRecordScore:        score,
		}
	}

	t.Run("record belum ada", func(t *testing.T) {
		ledger, err := DecideOverride(nil, 15, nil, evalID)
		if err != nil || ledger {
			t.Fatalf("got ledger=%v err=%v, want false nil", ledger, err)
		}
	})

	t.Run("placeholder score NULL", func(t *testing.T) {
		ledger, err := DecideOverride(record(nil), 15, nil, evalID)
		if err != nil || ledger {
			t.Fatalf("got ledger=%v err=%v, want false nil", ledger, err)
		}
	})

	t.Run("selisih kecil overwrite diam-diam", func(t *testing.T) {
		ledger, err := DecideOverride(record(fptr(15.005)), 15, nil, evalID)
		if err != nil || ledger {
			t.Fatalf("got ledger=%v err=%v, want false nil", ledger, err)
		}
	})

	t.Run("selisih material tanpa justification", func(t *testing.T) {
		_, err := DecideOverride(record(fptr(12)), 15, nil, evalID)
		var mj *errs.MissingJustification
		if !errors.As(err, &mj) {
			t.Fatalf("got err=%v, want MissingJustification", err)
		}
		if mj.OldScore != 12 || mj.NewScore != 15 {
			t.Errorf("got old=%v new=%v, want 12 15", mj.OldScore, mj.NewScore)
		}
	})

	t.Run("justification kosong dihitung absen", func(t *testing.T) {
		_, err := DecideOverride(record(fptr(12)), 15, sptr("   "), evalID)
		var mj *errs.MissingJustification
		if !errors.As(err, &mj) {
			t.Fatalf("got err=%v, want MissingJustification", err)
		}
	})

	t.Run("selisih material dengan justification", func(t *testing.T) {
		ledger, err := DecideOverride(record(fptr(12)), 15, sptr("salah jumlah poin"), evalID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !ledger {
			t.Error("want writeLedger=true")
		}
	})
}
