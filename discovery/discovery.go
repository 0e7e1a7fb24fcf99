// Package discovery collects the non-ASCII characters found in a text corpus
// and shows how each one is converted. Running it over large lists of names
// is how new exception table entries are found.
package discovery

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"unicode/utf8"

	"github.com/vlcak/asciize/asciize"
	"golang.org/x/exp/slices"
)

const maxLineLength = 1024 * 1024

type Entry struct {
	Rune   rune          `json:"rune"`
	Char   string        `json:"char"`
	Output string        `json:"output"`
	Stage  asciize.Stage `json:"-"`
	Via    string        `json:"stage"`
	Count  int           `json:"count"`
}

type Report struct {
	counts map[rune]int
	lines  int
}

func NewReport() *Report {
	return &Report{
		counts: map[rune]int{},
	}
}

// Scan reads r line by line and returns a report of its non-ASCII
// characters.
func Scan(r io.Reader) (*Report, error) {
	report := NewReport()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		report.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Printf("Can't scan corpus after %d lines: %v", report.lines, err)
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	return report, nil
}

// Add counts the non-ASCII characters of a single line.
func (rp *Report) Add(line string) {
	rp.lines++
	for _, r := range line {
		if r < utf8.RuneSelf {
			continue
		}
		rp.counts[r]++
	}
}

func (rp *Report) Lines() int {
	return rp.lines
}

// Entries returns one entry per distinct character, ordered by code point.
func (rp *Report) Entries() []Entry {
	entries := make([]Entry, 0, len(rp.counts))
	for r, count := range rp.counts {
		out, stage := asciize.Explain(r)
		entries = append(entries, Entry{
			Rune:   r,
			Char:   string(r),
			Output: out,
			Stage:  stage,
			Via:    stage.String(),
			Count:  count,
		})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return int(a.Rune - b.Rune)
	})
	return entries
}

// Removed returns the entries the pipeline drops entirely.
func (rp *Report) Removed() []Entry {
	entries := rp.Entries()
	return slices.DeleteFunc(entries, func(e Entry) bool {
		return e.Stage != asciize.StageRemoved
	})
}

// WriteTo writes the entries as tab separated lines:
// code point, character, conversion, stage, count.
func (rp *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, e := range rp.Entries() {
		n, err := fmt.Fprintf(w, "%U\t%s\t%q\t%s\t%d\n", e.Rune, e.Char, e.Output, e.Via, e.Count)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
