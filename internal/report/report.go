// Package report writes the reviewer-facing verification spreadsheet: one
// row per surah comparing the declared ayah count against what was fetched.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/febbyRG/juz-amma/internal/models"
	apperrors "github.com/febbyRG/juz-amma/pkg/errors"
)

const sheet = "Sheet1"

// Statuses in the verification column.
const (
	StatusOK       = "OK"
	StatusEmpty    = "EMPTY"
	StatusMismatch = "MISMATCH"
)

var headers = []string{"Surah", "Name", "Declared Ayahs", "Fetched Ayahs", "Status"}

// Write saves the verification report for corpus to path as an xlsx file.
func Write(path string, corpus *models.Corpus) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeReportFailed, "writing header row")
		}
	}

	for i, surah := range corpus.JuzAmma {
		row := i + 2
		values := []interface{}{
			surah.Number,
			surah.NameTransliteration,
			surah.AyahCount,
			len(surah.Ayahs),
			Status(surah),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return apperrors.Wrap(err, apperrors.ErrCodeReportFailed,
					fmt.Sprintf("writing row for surah %d", surah.Number))
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeReportFailed, "saving report file")
	}
	return nil
}

// Status classifies a surah for the report: EMPTY when the fetch failed
// outright, MISMATCH when the fetched count differs from the declared one.
func Status(surah models.Surah) string {
	switch {
	case len(surah.Ayahs) == 0:
		return StatusEmpty
	case len(surah.Ayahs) != surah.AyahCount:
		return StatusMismatch
	default:
		return StatusOK
	}
}
