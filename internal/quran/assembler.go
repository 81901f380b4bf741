package quran

import (
	"context"
	"fmt"

	"github.com/febbyRG/juz-amma/internal/models"
	apperrors "github.com/febbyRG/juz-amma/pkg/errors"
	"github.com/febbyRG/juz-amma/pkg/logger"
)

// Assembler walks the fixed surah range in ascending order and composes the
// output corpus from static metadata plus fetched verses.
type Assembler struct {
	Fetcher *Fetcher

	// Range and metadata lookup default to the Juz Amma table; tests swap
	// in narrower ranges and synthetic tables.
	First    int
	Last     int
	Metadata func(number int) (models.SurahMetadata, bool)
}

func NewAssembler(fetcher *Fetcher) *Assembler {
	return &Assembler{
		Fetcher:  fetcher,
		First:    models.FirstSurah,
		Last:     models.LastSurah,
		Metadata: models.MetadataFor,
	}
}

// Build fetches every surah in the range and returns the assembled corpus.
// A surah whose fetch fails ends up with an empty verse list; a missing
// metadata entry inside the range is a configuration defect and aborts the
// build, because silently skipping it would ship an incomplete corpus.
func (a *Assembler) Build(ctx context.Context) (*models.Corpus, error) {
	corpus := &models.Corpus{JuzAmma: make([]models.Surah, 0, a.Last-a.First+1)}

	for number := a.First; number <= a.Last; number++ {
		meta, ok := a.Metadata(number)
		if !ok {
			return nil, apperrors.New(apperrors.ErrCodeMetadataMissing,
				fmt.Sprintf("no metadata for surah %d", number))
		}

		logger.Info("Fetching surah", "number", number, "name", meta.Transliteration)

		verses, err := a.Fetcher.FetchSurahVerses(ctx, number)
		if err != nil {
			logger.Error("Surah fetch failed, continuing with empty verse list",
				"number", number, "error", err)
			verses = []models.Verse{}
		} else {
			logger.Info("Fetched verses", "number", number, "count", len(verses))
		}

		corpus.JuzAmma = append(corpus.JuzAmma, models.Surah{
			Number:              number,
			NameArabic:          meta.Name,
			NameTransliteration: meta.Transliteration,
			NameTranslation:     meta.Translation,
			AyahCount:           meta.AyahCount,
			Revelation:          meta.Revelation,
			Ayahs:               verses,
		})
	}

	logger.Info("Corpus assembled",
		"surahs", len(corpus.JuzAmma), "verses", corpus.TotalVerses())

	return corpus, nil
}
