// Package asciize reduces Unicode text to plain ASCII Latin letters.
//
// Every character goes through the same fixed pipeline: canonical
// decomposition with the combining marks stripped, then a table of Latin
// letters that have no decomposition (Ø, ł, đ), then a table of letters that
// expand to several ASCII letters (ß, æ, ﬁ). Whatever is still left, such as
// CJK ideographs, other scripts, symbols and emoji, is dropped.
//
//	asciize.Asciize("Øldřichß, Špłačæk") // "Oldrichss, Splacaek"
//	asciize.Asciize("Tiger虎")           // "Tiger"
//
// The conversion is lossy and one-directional. All functions are safe for
// concurrent use.
package asciize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// Stage identifies the pipeline step that produced a conversion.
type Stage int

const (
	StageASCII Stage = iota
	StageDecomposition
	StageSingleLatin
	StageMultipleLatin
	StageRemoved
)

var stageNames = [...]string{
	StageASCII:         "ascii",
	StageDecomposition: "decomposition",
	StageSingleLatin:   "single",
	StageMultipleLatin: "multiple",
	StageRemoved:       "removed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// nonspacing marks; the transformer is stateless so it can be shared.
var markRemover = runes.Remove(runes.In(unicode.Mn))

// RemoveAccents decomposes r and strips its combining marks. The boolean
// reports whether the remainder is pure ASCII and therefore usable.
func RemoveAccents(r rune) (string, bool) {
	if isASCIIRune(r) {
		return string(r), true
	}
	s := markRemover.String(norm.NFD.String(string(r)))
	return s, isASCII(s)
}

// ConvertSingleLatins looks r up among the letters that map to one ASCII
// letter. On a miss it returns r unchanged and false.
func ConvertSingleLatins(r rune) (string, bool) {
	if s, ok := singleLatins[r]; ok {
		return s, true
	}
	return string(r), false
}

// ConvertMultipleLatins looks r up among the letters that expand to several
// ASCII letters. On a miss it returns r unchanged and false.
func ConvertMultipleLatins(r rune) (string, bool) {
	if s, ok := multipleLatins[r]; ok {
		return s, true
	}
	return string(r), false
}

// DirectRemove is the last stage: it drops the character.
func DirectRemove(rune) string {
	return ""
}

// Explain converts r and reports which stage produced the result.
func Explain(r rune) (string, Stage) {
	if isASCIIRune(r) {
		return string(r), StageASCII
	}
	if s, ok := RemoveAccents(r); ok {
		return s, StageDecomposition
	}
	if s, ok := ConvertSingleLatins(r); ok {
		return s, StageSingleLatin
	}
	if s, ok := ConvertMultipleLatins(r); ok {
		return s, StageMultipleLatin
	}
	return DirectRemove(r), StageRemoved
}

// CharacterConversion returns the ASCII replacement of r, possibly empty.
func CharacterConversion(r rune) string {
	s, _ := Explain(r)
	return s
}

// Asciize converts every character of s in order and concatenates the
// results. Invalid UTF-8 is dropped.
func Asciize(s string) string {
	if isASCII(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIIRune(r) {
			b.WriteByte(byte(r))
			continue
		}
		b.WriteString(CharacterConversion(r))
	}
	return b.String()
}

func isASCIIRune(r rune) bool {
	return 0 <= r && r < utf8.RuneSelf
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
