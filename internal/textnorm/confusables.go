package textnorm

// Spammers dodge keyword filters by swapping letters for visually identical
// Unicode characters ("ＦＲＥＥ ＧＩＦＴ" in enclosed or mathematical alphabets).
// The table maps every character of the known alphabets back to its plain
// ASCII letter or digit. Alphabets are contiguous code point runs, so the
// table is built from ranges instead of listing each pair.

type confusableRange struct {
	lo, hi rune // inclusive code point run
	base   rune // ASCII equivalent of lo
}

var confusableRanges = []confusableRange{
	{0x1F170, 0x1F189, 'A'}, // negative squared latin: 🅰..🆉
	{0x1D5D4, 0x1D5ED, 'A'}, // mathematical sans-serif bold: 𝗔..𝗭
	{0x1D670, 0x1D689, 'A'}, // mathematical monospace: 𝙰..𝚉
	{0x1D7CE, 0x1D7D6, '0'}, // mathematical bold digits: 𝟎..𝟖
	{0x249C, 0x24B5, 'a'},   // parenthesized latin: ⒜..⒵
	{0x24D0, 0x24E9, 'a'},   // circled latin: ⓐ..ⓩ
}

// single characters seen in the wild that no range covers
var confusableSingles = map[rune]rune{
	'է': 't', // Armenian small letter eh
	'օ': 'o', // Armenian small letter oh
}

var confusables = buildConfusables()

func buildConfusables() map[rune]rune {
	m := make(map[rune]rune, 200)
	for _, cr := range confusableRanges {
		for r := cr.lo; r <= cr.hi; r++ {
			m[r] = cr.base + (r - cr.lo)
		}
	}
	for k, v := range confusableSingles {
		m[k] = v
	}
	return m
}
