package text

// Arabic combining marks whose relative order matters to some layout engines.
const (
	shadda = 'ّ'
	kasra  = 'ِ'
)

// FixDiacriticOrder rewrites every SHADDA+KASRA pair as KASRA+SHADDA.
// The scan is a single left-to-right pass over code points: after a swap the
// cursor moves past both characters, so a pair formed across the swap
// boundary is not matched again. For SHADDA,KASRA,KASRA the first pair is
// swapped and the trailing KASRA stays where it is.
func FixDiacriticOrder(s string) string {
	runes := []rune(s)
	for i := 0; i < len(runes)-1; {
		if runes[i] == shadda && runes[i+1] == kasra {
			runes[i], runes[i+1] = runes[i+1], runes[i]
			i += 2
		} else {
			i++
		}
	}
	return string(runes)
}
