package quran

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/febbyRG/juz-amma/internal/models"
	"github.com/febbyRG/juz-amma/internal/text"
	apperrors "github.com/febbyRG/juz-amma/pkg/errors"
)

// Languages a translation source can be requested for.
const (
	LanguageEnglish    = "english"
	LanguageIndonesian = "indonesian"
)

// TranslationRequest names one quran.com translation source and the output
// field its text belongs to.
type TranslationRequest struct {
	ID       int
	Language string
}

// Fetcher retrieves the verses of one surah at a time: one call for the
// Arabic text, then one per requested translation, strictly in order.
type Fetcher struct {
	client       *Client
	translations []TranslationRequest
}

func NewFetcher(client *Client, translations []TranslationRequest) *Fetcher {
	return &Fetcher{client: client, translations: translations}
}

// FetchSurahVerses returns the ordered verse list for a surah. If any of
// the calls fails the whole surah is reported failed; the caller falls back
// to an empty verse list so one bad surah cannot sink the run. A partially
// translated surah is never produced by a failed call.
func (f *Fetcher) FetchSurahVerses(ctx context.Context, surahNumber int) ([]models.Verse, error) {
	arabic, err := f.client.SurahVerses(ctx, surahNumber)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeFetchFailed, fmt.Sprintf("surah %d arabic text", surahNumber))
	}

	// Translation lists are aligned with the Arabic list by position within
	// the per-surah response, not reconciled by verse key.
	translated := make(map[string][]TranslationData, len(f.translations))
	for _, tr := range f.translations {
		list, err := f.client.SurahTranslations(ctx, tr.ID, surahNumber)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeFetchFailed,
				fmt.Sprintf("surah %d %s translation (source %d)", surahNumber, tr.Language, tr.ID))
		}
		translated[tr.Language] = list
	}

	verses := make([]models.Verse, 0, len(arabic))
	for i, v := range arabic {
		verse := models.Verse{
			Number:     verseNumber(v.VerseKey, i),
			TextArabic: text.FixDiacriticOrder(v.TextUthmani),
		}
		if list := translated[LanguageEnglish]; i < len(list) {
			verse.TranslationEnglish = text.StripMarkup(list[i].Text)
		}
		if list := translated[LanguageIndonesian]; i < len(list) {
			verse.TranslationIndonesian = text.StripMarkup(list[i].Text)
		}
		verses = append(verses, verse)
	}

	return verses, nil
}

// verseNumber parses the trailing component of a "surah:verse" key. An
// absent or malformed key falls back to the verse's 1-based position.
func verseNumber(verseKey string, position int) int {
	if idx := strings.LastIndex(verseKey, ":"); idx >= 0 {
		if n, err := strconv.Atoi(verseKey[idx+1:]); err == nil {
			return n
		}
	}
	return position + 1
}
