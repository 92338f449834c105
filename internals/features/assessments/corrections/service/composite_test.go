// file: internals/features/assessments/corrections/service/composite_test.go
package service

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }
func sptr(s string) *string   { return &s }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeComposite(t *testing.T) {
	tests := []struct {
		name   string
		grades []QuestionGrade
		extDoc *float64
		want   float64
	}{
		{
			// dua pertanyaan bobot 10, nilai 8 dan 6: 14/20 * 20 = 14
			name:   "dua pertanyaan tanpa dokumen",
			grades: []QuestionGrade{{Score: 8, Max: 10}, {Score: 6, Max: 10}},
			want:   14,
		},
		{
			name:   "dua pertanyaan plus dokumen 18",
			grades: []QuestionGrade{{Score: 8, Max: 10}, {Score: 6, Max: 10}},
			extDoc: fptr(18),
			want:   16, // (14+18)/2
		},
		{
			name:   "tanpa pertanyaan hanya dokumen 17",
			extDoc: fptr(17),
			want:   17, // tidak dibagi dua
		},
		{
			name: "tanpa pertanyaan tanpa dokumen",
			want: 0,
		},
		{
			name:   "total bobot nol",
			grades: []QuestionGrade{{Score: 5, Max: 0}},
			want:   0, // komponen 0, bukan pembagian dengan nol
		},
		{
			name:   "skor minus ke-clamp nol",
			grades: []QuestionGrade{{Score: -10, Max: 10}},
			want:   0,
		},
		{
			name:   "skor over-max ke-clamp 20",
			grades: []QuestionGrade{{Score: 30, Max: 10}},
			want:   20,
		},
		{
			name:   "dokumen over-max ke-clamp sebelum rata-rata",
			grades: []QuestionGrade{{Score: 10, Max: 10}},
			extDoc: fptr(35),
			want:   20, // (20+20)/2
		},
		{
			name:   "dokumen minus ke-clamp nol",
			extDoc: fptr(-5),
			want:   0,
		},
		{
			name:   "nilai pecahan",
			grades: []QuestionGrade{{Score: 7, Max: 10}, {Score: 5, Max: 10}},
			want:   12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeComposite(tt.grades, tt.extDoc)
			if !almostEqual(got, tt.want) {
				t.Errorf("ComputeComposite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeCompositeTotalBobotNol(t *testing.T) {
	// bobot total 0: komponen pertanyaan 0, bukan NaN/Inf
	got := ComputeComposite([]QuestionGrade{{Score: 0, Max: 0}}, nil)
	if got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Error("hasil tidak boleh NaN/Inf")
	}
}

func TestMergeCorrectionComment(t *testing.T) {
	t.Run("tanpa catatan dokumen", func(t *testing.T) {
		got := MergeCorrectionComment(sptr("bagus"), nil)
		if got == nil || *got != "bagus" {
			t.Errorf("got %v, want 'bagus'", got)
		}
	})
	t.Run("catatan dokumen kosong", func(t *testing.T) {
		got := MergeCorrectionComment(sptr("bagus"), sptr(""))
		if got == nil || *got != "bagus" {
			t.Errorf("got %v, want 'bagus'", got)
		}
	})
	t.Run("dua-duanya ada", func(t *testing.T) {
		got := MergeCorrectionComment(sptr("bagus"), sptr("kurang rapi"))
		want := "bagus\n\n=== Catatan dokumen eksternal ===\nkurang rapi"
		if got == nil || *got != want {
			t.Errorf("got %q, want %q", *got, want)
		}
	})
	t.Run("komentar utama tidak tertimpa", func(t *testing.T) {
		got := MergeCorrectionComment(nil, sptr("hanya dokumen"))
		want := "\n\n=== Catatan dokumen eksternal ===\nhanya dokumen"
		if got == nil || *got != want {
			t.Errorf("got %q, want %q", *got, want)
		}
	})
}
