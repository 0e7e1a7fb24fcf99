package asciize

import (
	"fmt"
	"unicode/utf8"
)

// Latin letters without a canonical decomposition that still have an
// obvious single-letter base. Upper and lower case are separate entries.
var singleLatins = map[rune]string{
	'Ø': "O", 'ø': "o",
	'Ǿ': "O", 'ǿ': "o", // Ø with acute decomposes to Ø, not O
	'Ł': "L", 'ł': "l",
	'Ŀ': "L", 'ŀ': "l",
	'Đ': "D", 'đ': "d",
	'Ð': "D", 'ð': "d",
	'Ħ': "H", 'ħ': "h",
	'Ŧ': "T", 'ŧ': "t",
	'Ɨ': "I", 'ɨ': "i",
	'Ƶ': "Z", 'ƶ': "z",
	'Ƀ': "B", 'ƀ': "b",
	'Ȼ': "C", 'ȼ': "c",
	'Ɇ': "E", 'ɇ': "e",
	'Ɉ': "J", 'ɉ': "j",
	'Ɍ': "R", 'ɍ': "r",
	'Ɏ': "Y", 'ɏ': "y",
	'Ⱥ': "A", 'ⱥ': "a",
	'Ƒ': "F", 'ƒ': "f",
	'Ŋ': "N", 'ŋ': "n",
	'ı': "i",
	'ȷ': "j",
	'ĸ': "k",
	'ſ': "s",
}

// Letters and ligatures rendered as more than one ASCII letter. The case of
// the expansion follows the case of the key, titlecase digraphs included.
var multipleLatins = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'ǣ': "ae", 'Ǣ': "AE",
	'ǽ': "ae", 'Ǽ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ĳ': "ij", 'Ĳ': "IJ",
	'þ': "th", 'Þ': "TH",
	'ǆ': "dz", 'ǅ': "Dz", 'Ǆ': "DZ",
	'ǳ': "dz", 'ǲ': "Dz", 'Ǳ': "DZ",
	'ǉ': "lj", 'ǈ': "Lj", 'Ǉ': "LJ",
	'ǌ': "nj", 'ǋ': "Nj", 'Ǌ': "NJ",
	'ﬀ': "ff",
	'ﬁ': "fi",
	'ﬂ': "fl",
	'ﬃ': "ffi",
	'ﬄ': "ffl",
	'ﬅ': "st",
	'ﬆ': "st",
}

func init() {
	if err := validateTables(); err != nil {
		panic(err)
	}
}

// validateTables checks that every table entry is reachable: decomposition
// runs first, so a key it already resolves would silently shadow the table.
func validateTables() error {
	if err := validateTable("single", singleLatins); err != nil {
		return err
	}
	if err := validateTable("multiple", multipleLatins); err != nil {
		return err
	}
	for r := range singleLatins {
		if _, ok := multipleLatins[r]; ok {
			return fmt.Errorf("%U %q is in both exception tables", r, r)
		}
	}
	return nil
}

func validateTable(name string, table map[rune]string) error {
	for r, out := range table {
		if r < utf8.RuneSelf {
			return fmt.Errorf("%s table: key %U is ASCII", name, r)
		}
		if out == "" || !isASCII(out) {
			return fmt.Errorf("%s table: %U %q maps to non-ASCII or empty %q", name, r, r, out)
		}
		if s, ok := RemoveAccents(r); ok {
			return fmt.Errorf("%s table: %U %q is already decomposed to %q", name, r, r, s)
		}
	}
	return nil
}
