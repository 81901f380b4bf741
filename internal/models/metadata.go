package models

// Juz Amma covers surahs 78 through 114.
const (
	FirstSurah = 78
	LastSurah  = 114
)

// SurahMetadata holds the static per-surah fields that are not served by
// the verse endpoints. AyahCount is the declared count; the fetched verse
// list is expected, but not guaranteed, to match it.
type SurahMetadata struct {
	Name            string
	Transliteration string
	Translation     string
	AyahCount       int
	Revelation      string
}

// MetadataFor looks up the static metadata for a surah number.
func MetadataFor(number int) (SurahMetadata, bool) {
	m, ok := surahMetadata[number]
	return m, ok
}

var surahMetadata = map[int]SurahMetadata{
	78:  {Name: "النبإ", Transliteration: "An-Naba'", Translation: "The Tidings", AyahCount: 40, Revelation: RevelationMakkah},
	79:  {Name: "النازعات", Transliteration: "An-Nazi'at", Translation: "Those Who Pull Out", AyahCount: 46, Revelation: RevelationMakkah},
	80:  {Name: "عبس", Transliteration: "'Abasa", Translation: "He Frowned", AyahCount: 42, Revelation: RevelationMakkah},
	81:  {Name: "التكوير", Transliteration: "At-Takwir", Translation: "The Overthrowing", AyahCount: 29, Revelation: RevelationMakkah},
	82:  {Name: "الانفطار", Transliteration: "Al-Infitar", Translation: "The Cleaving", AyahCount: 19, Revelation: RevelationMakkah},
	83:  {Name: "المطففين", Transliteration: "Al-Mutaffifin", Translation: "The Defrauding", AyahCount: 36, Revelation: RevelationMakkah},
	84:  {Name: "الانشقاق", Transliteration: "Al-Inshiqaq", Translation: "The Splitting Asunder", AyahCount: 25, Revelation: RevelationMakkah},
	85:  {Name: "البروج", Transliteration: "Al-Buruj", Translation: "The Stars", AyahCount: 22, Revelation: RevelationMakkah},
	86:  {Name: "الطارق", Transliteration: "At-Tariq", Translation: "The Nightcomer", AyahCount: 17, Revelation: RevelationMakkah},
	87:  {Name: "الأعلى", Transliteration: "Al-A'la", Translation: "The Most High", AyahCount: 19, Revelation: RevelationMakkah},
	88:  {Name: "الغاشية", Transliteration: "Al-Ghashiyah", Translation: "The Overwhelming", AyahCount: 26, Revelation: RevelationMakkah},
	89:  {Name: "الفجر", Transliteration: "Al-Fajr", Translation: "The Dawn", AyahCount: 30, Revelation: RevelationMakkah},
	90:  {Name: "البلد", Transliteration: "Al-Balad", Translation: "The City", AyahCount: 20, Revelation: RevelationMakkah},
	91:  {Name: "الشمس", Transliteration: "Ash-Shams", Translation: "The Sun", AyahCount: 15, Revelation: RevelationMakkah},
	92:  {Name: "الليل", Transliteration: "Al-Layl", Translation: "The Night", AyahCount: 21, Revelation: RevelationMakkah},
	93:  {Name: "الضحى", Transliteration: "Ad-Duha", Translation: "The Forenoon", AyahCount: 11, Revelation: RevelationMakkah},
	94:  {Name: "الشرح", Transliteration: "Ash-Sharh", Translation: "The Opening Forth", AyahCount: 8, Revelation: RevelationMakkah},
	95:  {Name: "التين", Transliteration: "At-Tin", Translation: "The Fig", AyahCount: 8, Revelation: RevelationMakkah},
	96:  {Name: "العلق", Transliteration: "Al-'Alaq", Translation: "The Clot", AyahCount: 19, Revelation: RevelationMakkah},
	97:  {Name: "القدر", Transliteration: "Al-Qadar", Translation: "The Night of Decree", AyahCount: 5, Revelation: RevelationMakkah},
	98:  {Name: "البينة", Transliteration: "Al-Bayyinah", Translation: "The Clear Evidence", AyahCount: 8, Revelation: RevelationMadinah},
	99:  {Name: "الزلزلة", Transliteration: "Az-Zalzalah", Translation: "The Earthquake", AyahCount: 8, Revelation: RevelationMadinah},
	100: {Name: "العاديات", Transliteration: "Al-'Adiyat", Translation: "The Courser", AyahCount: 11, Revelation: RevelationMakkah},
	101: {Name: "القارعة", Transliteration: "Al-Qari'ah", Translation: "The Striking Hour", AyahCount: 11, Revelation: RevelationMakkah},
	102: {Name: "التكاثر", Transliteration: "At-Takathur", Translation: "The Rivalry", AyahCount: 8, Revelation: RevelationMakkah},
	103: {Name: "العصر", Transliteration: "Al-'Asr", Translation: "The Time", AyahCount: 3, Revelation: RevelationMakkah},
	104: {Name: "الهمزة", Transliteration: "Al-Humazah", Translation: "The Slanderer", AyahCount: 9, Revelation: RevelationMakkah},
	105: {Name: "الفيل", Transliteration: "Al-Fil", Translation: "The Elephant", AyahCount: 5, Revelation: RevelationMakkah},
	106: {Name: "قريش", Transliteration: "Quraysh", Translation: "Quraysh", AyahCount: 4, Revelation: RevelationMakkah},
	107: {Name: "الماعون", Transliteration: "Al-Ma'un", Translation: "The Small Kindnesses", AyahCount: 7, Revelation: RevelationMakkah},
	108: {Name: "الكوثر", Transliteration: "Al-Kawthar", Translation: "The Abundance", AyahCount: 3, Revelation: RevelationMakkah},
	109: {Name: "الكافرون", Transliteration: "Al-Kafirun", Translation: "The Disbelievers", AyahCount: 6, Revelation: RevelationMakkah},
	110: {Name: "النصر", Transliteration: "An-Nasr", Translation: "The Help", AyahCount: 3, Revelation: RevelationMadinah},
	111: {Name: "المسد", Transliteration: "Al-Masad", Translation: "The Palm Fiber", AyahCount: 5, Revelation: RevelationMakkah},
	112: {Name: "الإخلاص", Transliteration: "Al-Ikhlas", Translation: "The Sincerity", AyahCount: 4, Revelation: RevelationMakkah},
	113: {Name: "الفلق", Transliteration: "Al-Falaq", Translation: "The Daybreak", AyahCount: 5, Revelation: RevelationMakkah},
	114: {Name: "الناس", Transliteration: "An-Nas", Translation: "Mankind", AyahCount: 6, Revelation: RevelationMakkah},
}
