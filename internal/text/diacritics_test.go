package text

import "testing"

func TestFixDiacriticOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "no diacritics",
			input: "بسم الله",
			want:  "بسم الله",
		},
		{
			name:  "single shadda kasra pair",
			input: "بِّ",
			want:  "بِّ",
		},
		{
			name:  "already ordered pair untouched",
			input: "بِّ",
			want:  "بِّ",
		},
		{
			name:  "two independent pairs",
			input: "ِّبِّ",
			want:  "ِّبِّ",
		},
		{
			name:  "shadda kasra kasra advances past the swap",
			input: "ِِّ",
			want:  "ِِّ",
		},
		{
			name:  "shadda shadda kasra swaps the second pair only",
			input: "ِّّ",
			want:  "ِّّ",
		},
		{
			name:  "lone shadda at end",
			input: "بّ",
			want:  "بّ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixDiacriticOrder(tt.input); got != tt.want {
				t.Errorf("FixDiacriticOrder(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixDiacriticOrder_OnlyPairPositionsChange(t *testing.T) {
	input := "قُلْ هُوَ ٱللَّهُ أَحَدٌ"
	got := FixDiacriticOrder(input)

	inRunes := []rune(input)
	outRunes := []rune(got)
	if len(inRunes) != len(outRunes) {
		t.Fatalf("length changed: %d -> %d", len(inRunes), len(outRunes))
	}

	// Every position must hold the same rune unless it took part in a swap.
	for i := range inRunes {
		if inRunes[i] == outRunes[i] {
			continue
		}
		swappedLeft := i+1 < len(inRunes) && inRunes[i] == shadda && inRunes[i+1] == kasra
		swappedRight := i > 0 && inRunes[i-1] == shadda && inRunes[i] == kasra
		if !swappedLeft && !swappedRight {
			t.Errorf("position %d altered outside a SHADDA+KASRA swap: %q -> %q", i, inRunes[i], outRunes[i])
		}
	}
}
