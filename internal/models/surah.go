package models

// Revelation place of a surah
const (
	RevelationMakkah  = "Makkah"
	RevelationMadinah = "Madinah"
)

// Verse is a single ayah. TextArabic is already diacritic-normalized and
// translations are already stripped of markup by the time a Verse exists.
type Verse struct {
	Number                int    `json:"number"`
	TextArabic            string `json:"textArabic"`
	TextTransliteration   string `json:"textTransliteration,omitempty"`
	TranslationEnglish    string `json:"translationEnglish,omitempty"`
	TranslationIndonesian string `json:"translationIndonesian,omitempty"`
}

// Surah combines the static metadata fields with the fetched verses.
// Ayahs is ordered by ascending verse number, as returned by the source.
type Surah struct {
	Number              int     `json:"number"`
	NameArabic          string  `json:"nameArabic"`
	NameTransliteration string  `json:"nameTransliteration"`
	NameTranslation     string  `json:"nameTranslation"`
	AyahCount           int     `json:"ayahCount"`
	Revelation          string  `json:"revelation"`
	Ayahs               []Verse `json:"ayahs"`
}

// Corpus is the root output document.
type Corpus struct {
	JuzAmma []Surah `json:"juzAmma"`
}

// TotalVerses returns the number of verses actually fetched, across all
// surahs. Surahs that failed to fetch contribute zero.
func (c *Corpus) TotalVerses() int {
	total := 0
	for _, s := range c.JuzAmma {
		total += len(s.Ayahs)
	}
	return total
}
