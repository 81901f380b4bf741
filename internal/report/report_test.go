package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/febbyRG/juz-amma/internal/models"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name  string
		surah models.Surah
		want  string
	}{
		{
			name:  "counts match",
			surah: models.Surah{AyahCount: 2, Ayahs: []models.Verse{{Number: 1}, {Number: 2}}},
			want:  StatusOK,
		},
		{
			name:  "failed fetch",
			surah: models.Surah{AyahCount: 3, Ayahs: []models.Verse{}},
			want:  StatusEmpty,
		},
		{
			name:  "count differs",
			surah: models.Surah{AyahCount: 3, Ayahs: []models.Verse{{Number: 1}}},
			want:  StatusMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.surah); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	corpus := &models.Corpus{JuzAmma: []models.Surah{
		{Number: 103, NameTransliteration: "Al-'Asr", AyahCount: 3,
			Ayahs: []models.Verse{{Number: 1}, {Number: 2}, {Number: 3}}},
		{Number: 108, NameTransliteration: "Al-Kawthar", AyahCount: 3,
			Ayahs: []models.Verse{}},
	}}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := Write(path, corpus); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening report: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 surahs", len(rows))
	}
	if rows[0][0] != "Surah" || rows[0][4] != "Status" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "Al-'Asr" || rows[1][4] != StatusOK {
		t.Errorf("surah 103 row = %v", rows[1])
	}
	if rows[2][4] != StatusEmpty {
		t.Errorf("surah 108 row = %v, want EMPTY status", rows[2])
	}
}
