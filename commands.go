package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/vlcak/asciize/asciize"
	"github.com/vlcak/asciize/discovery"
	"github.com/vlcak/asciize/utils"
)

// convert prints each argument asciized on its own line, or streams in to
// out when there are no arguments.
func convert(args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		if _, err := io.Copy(out, asciize.NewReader(in)); err != nil {
			return fmt.Errorf("convert input: %w", err)
		}
		return nil
	}
	for _, arg := range args {
		if _, err := fmt.Fprintln(out, asciize.Asciize(arg)); err != nil {
			return err
		}
	}
	return nil
}

func discover(in io.Reader, out io.Writer) error {
	report, err := discovery.Scan(in)
	if err != nil {
		return err
	}
	log.Printf("Scanned %d lines, %d distinct characters, %d removed", report.Lines(), len(report.Entries()), len(report.Removed()))
	_, err = report.WriteTo(out)
	return err
}

type Comparison struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Similarity float64 `json:"similarity"`
	Match      bool    `json:"match"`
}

func compare(args []string, threshold float64, out io.Writer) error {
	if len(args) != 2 {
		return errors.New("compare needs exactly two names")
	}
	c := Comparison{
		A:          args[0],
		B:          args[1],
		Similarity: utils.Similarity(args[0], args[1]),
		Match:      utils.Match(args[0], args[1], threshold),
	}
	return json.NewEncoder(out).Encode(c)
}
