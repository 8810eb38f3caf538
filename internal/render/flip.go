package render

import "strings"

// flipPairs lists each letter or digit with its upside-down glyph. Every
// pair is mapped both ways, so the table is its own inverse. Runes missing
// from both columns (o, s, x, z, H, N, O, S, X, Z, 0, 8) flip onto
// themselves.
var flipPairs = [][2]rune{
	{'a', 'ɐ'}, {'b', 'q'}, {'c', 'ɔ'}, {'d', 'p'}, {'e', 'ǝ'},
	{'f', 'ɟ'}, {'g', 'ƃ'}, {'h', 'ɥ'}, {'i', 'ᴉ'}, {'j', 'ɾ'},
	{'k', 'ʞ'}, {'l', 'ʅ'}, {'m', 'ɯ'}, {'n', 'u'}, {'r', 'ɹ'},
	{'t', 'ʇ'}, {'v', 'ʌ'}, {'w', 'ʍ'}, {'y', 'ʎ'},

	{'A', '∀'}, {'B', 'ᗺ'}, {'C', 'Ɔ'}, {'D', 'ᗡ'}, {'E', 'Ǝ'},
	{'F', 'Ⅎ'}, {'G', 'פ'}, {'I', 'Ι'}, {'J', 'ſ'}, {'K', 'ꓘ'},
	{'L', '⅂'}, {'M', 'W'}, {'P', 'Ԁ'}, {'Q', 'Ό'}, {'R', 'ᴚ'},
	{'T', '⊥'}, {'U', '∩'}, {'V', 'Λ'}, {'Y', '⅄'},

	{'1', '⇂'}, {'2', 'ᘔ'}, {'3', 'Ɛ'}, {'4', 'ㄣ'}, {'5', 'ϛ'},
	{'6', '9'}, {'7', 'ㄥ'},
}

var flipTable = buildFlipTable()

func buildFlipTable() map[rune]rune {
	table := make(map[rune]rune, 2*len(flipPairs))
	for _, p := range flipPairs {
		table[p[0]] = p[1]
		table[p[1]] = p[0]
	}
	return table
}

// Flip substitutes every rune with its upside-down glyph. Runes outside the
// table are kept, and Flip(Flip(s)) == s.
func Flip(s string) string {
	return strings.Map(func(r rune) rune {
		if f, ok := flipTable[r]; ok {
			return f
		}
		return r
	}, s)
}

// UpsideDown flips s and reverses its rune order. It is its own inverse.
func UpsideDown(s string) string {
	runes := []rune(Flip(s))
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
