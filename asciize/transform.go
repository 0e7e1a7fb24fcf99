package asciize

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

type transformer struct{ transform.NopResetter }

// Transformer returns a transform.Transformer producing the same output as
// Asciize. It keeps no state and may be chained with other transformers.
func Transformer() transform.Transformer {
	return transformer{}
}

// NewReader returns a reader yielding the asciized contents of r.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, Transformer())
}

func (transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out := CharacterConversion(r)
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}
