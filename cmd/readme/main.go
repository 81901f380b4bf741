// Command readme regenerates README.md from the template below. The file is
// fully generated; edit the template here, not the output.
package main

import (
	"log"
	"os"
)

const readmeContent = `# Juz Amma - Data Preparation

Tooling that builds the offline Quran dataset bundled with the Juz Amma
mobile app.

Made with love for Muslims worldwide

---

## Overview

The app ships the 37 surahs of Juz Amma (surahs 78-114) as a single JSON
document so all core features work offline. This repository fetches that
data from the Quran.com API, normalizes the Arabic text, strips markup from
translations, and writes the final artifact.

### What the pipeline does

- Fetches Uthmani-script Arabic text per surah
- Optionally fetches English and Indonesian translations
- Reorders SHADDA+KASRA diacritic pairs for correct rendering
- Removes footnote markup and HTML tags from translation text
- Emits pretty-printed UTF-8 JSON with literal Arabic characters
- Optionally writes an xlsx verification report for review

## Usage

` + "```bash" + `
go run ./cmd/fetch      # writes juz_amma_data.json
go run ./cmd/readme     # regenerates this README
` + "```" + `

Configuration is read from the environment (a local .env file is honored):

| Variable | Default | Purpose |
|---|---|---|
| QURAN_API_BASE_URL | https://api.quran.com/api/v4 | Upstream API |
| OUTPUT_PATH | juz_amma_data.json | Output document |
| REPORT_PATH | (empty) | Optional xlsx verification report |
| CACHE_PATH | (empty) | Optional SQLite response cache |
| FETCH_DELAY | 500ms | Minimum interval between API calls |
| HTTP_TIMEOUT | 15s | Per-request timeout |
| ENGLISH_TRANSLATION_ID | 0 | Quran.com source id (20 = Sahih International) |
| INDONESIAN_TRANSLATION_ID | 0 | Quran.com source id (33 = Kementerian Agama RI) |

With both translation ids left at 0 the pipeline fetches Arabic text only;
the app downloads translations on demand.

## Output shape

` + "```json" + `
{
  "juzAmma": [
    {
      "number": 114,
      "nameArabic": "الناس",
      "nameTransliteration": "An-Nas",
      "nameTranslation": "Mankind",
      "ayahCount": 6,
      "revelation": "Makkah",
      "ayahs": [
        { "number": 1, "textArabic": "..." }
      ]
    }
  ]
}
` + "```" + `

## Data Source

- Source: Quran.com API (free, open-source)
- Arabic text: Uthmani script
- Translations: Sahih International (English), Kementerian Agama RI
  (Indonesian), more available from Quran.com

## Islamic Context

Juz Amma is the 30th and final section (Juz) of the Holy Quran. It contains
37 short surahs from Surah An-Naba (78) to Surah An-Nas (114) and is the
most commonly memorized section, used daily in Salat.

This project is maintained as Sadaqah Jariyah (ongoing charity) to help
Muslims worldwide memorize the Quran.
`

func main() {
	if err := os.WriteFile("README.md", []byte(readmeContent), 0o644); err != nil {
		log.Fatal("failed to write README.md:", err)
	}
	log.Println("README.md updated")
}
