package quran

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/febbyRG/juz-amma/internal/models"
)

func TestWriteCorpus(t *testing.T) {
	corpus := &models.Corpus{JuzAmma: []models.Surah{
		{
			Number:              112,
			NameArabic:          "الإخلاص",
			NameTransliteration: "Al-Ikhlas",
			NameTranslation:     "The Sincerity",
			AyahCount:           4,
			Revelation:          models.RevelationMakkah,
			Ayahs: []models.Verse{
				{Number: 1, TextArabic: "قُلْ هُوَ ٱللَّهُ أَحَدٌ", TranslationEnglish: "Say, \"He is Allah, [who is] One\""},
			},
		},
	}}

	path := filepath.Join(t.TempDir(), "juz_amma_data.json")
	if err := WriteCorpus(corpus, path); err != nil {
		t.Fatalf("WriteCorpus() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(raw)

	// Arabic must land in the file literally, not as \u escapes.
	if !strings.Contains(content, "الإخلاص") {
		t.Error("output does not contain literal Arabic text")
	}
	if strings.Contains(content, `\u0`) {
		t.Error("output contains escaped unicode")
	}
	if !strings.Contains(content, "  \"juzAmma\"") && !strings.Contains(content, "\"juzAmma\"") {
		t.Error("output missing juzAmma root key")
	}
	if !strings.Contains(content, "\n  ") {
		t.Error("output is not indented")
	}

	var decoded models.Corpus
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("output does not round-trip: %v", err)
	}
	if len(decoded.JuzAmma) != 1 || decoded.JuzAmma[0].Number != 112 {
		t.Errorf("decoded corpus = %+v", decoded)
	}
	if decoded.JuzAmma[0].Ayahs[0].TranslationEnglish == "" {
		t.Error("translation field lost in serialization")
	}
}

func TestWriteCorpus_OmitsEmptyOptionalFields(t *testing.T) {
	corpus := &models.Corpus{JuzAmma: []models.Surah{
		{Number: 103, Ayahs: []models.Verse{{Number: 1, TextArabic: "وَٱلْعَصْرِ"}}},
	}}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteCorpus(corpus, path); err != nil {
		t.Fatalf("WriteCorpus() error = %v", err)
	}

	raw, _ := os.ReadFile(path)
	for _, field := range []string{"textTransliteration", "translationEnglish", "translationIndonesian"} {
		if strings.Contains(string(raw), field) {
			t.Errorf("empty optional field %q serialized", field)
		}
	}
}

func TestWriteCorpus_WriteFailure(t *testing.T) {
	corpus := &models.Corpus{}
	err := WriteCorpus(corpus, filepath.Join(t.TempDir(), "missing", "out.json"))
	if err == nil {
		t.Fatal("WriteCorpus() error = nil, want failure for unwritable path")
	}
}
