package quran

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/febbyRG/juz-amma/internal/models"
	apperrors "github.com/febbyRG/juz-amma/pkg/errors"
)

// WriteCorpus serializes the corpus to path as pretty-printed UTF-8 JSON.
// HTML escaping is off so the Arabic text lands in the file literally, and
// the document is written in a single shot once assembly is complete.
func WriteCorpus(corpus *models.Corpus, path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(corpus); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeWriteFailed, "encoding corpus")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeWriteFailed, "writing corpus file")
	}
	return nil
}
