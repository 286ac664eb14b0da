// Package rle decodes run-length encoded Life patterns.
package rle

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"lifeview/internal/core"
)

// Pattern is the decoded, axis-aligned footprint of an RLE file.
type Pattern struct {
	Width  int
	Height int
	// Rule is the header's rule string, empty when absent.
	Rule  string
	Cells []core.Cell
}

var headerRE = regexp.MustCompile(`^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)(?:\s*,\s*rule\s*=\s*(\S+))?`)

// Parse decodes RLE text held in a string.
func Parse(text string) (*Pattern, error) {
	return Decode(strings.NewReader(text))
}

// MaxCells bounds how many live cells one pattern may decode to.
const MaxCells = 1 << 22

// Decode reads an RLE pattern. Comment lines start with '#'; the header is
// required; decoding stops at '!' or end of input.
func Decode(r io.Reader) (*Pattern, error) {
	br := bufio.NewReader(r)

	var (
		p        *Pattern
		d        decoder
		lineNo   int
		finished bool
	)
	for !finished {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		if raw != "" {
			lineNo++
			line := strings.TrimSpace(raw)
			switch {
			case line == "" || strings.HasPrefix(line, "#"):
			case p == nil:
				hdr, err := parseHeader(line)
				if err != nil {
					return nil, err
				}
				p = hdr
				d.run = 1
			default:
				var err error
				finished, err = d.feed(line, lineNo)
				if err != nil {
					return nil, err
				}
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	if p == nil {
		return nil, ErrMissingHeader
	}
	if d.digits != "" {
		return nil, &TokenError{Token: d.digits, Line: d.digitsLine, Column: d.digitsCol}
	}
	p.Cells = d.cells
	return p, nil
}

func parseHeader(line string) (*Pattern, error) {
	m := headerRE.FindStringSubmatch(line)
	if m == nil {
		return nil, ErrMissingHeader
	}
	w, errW := strconv.Atoi(m[1])
	h, errH := strconv.Atoi(m[2])
	if errW != nil || errH != nil {
		return nil, ErrMissingHeader
	}
	return &Pattern{Width: w, Height: h, Rule: m[3]}, nil
}

type decoder struct {
	x, y  int
	run   int
	cells []core.Cell

	digits     string
	digitsLine int
	digitsCol  int
}

// feed consumes one body line and reports whether the terminator was seen.
func (d *decoder) feed(line string, lineNo int) (bool, error) {
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r':
			continue
		case ch >= '0' && ch <= '9':
			if d.digits == "" {
				d.digitsLine, d.digitsCol = lineNo, i+1
			}
			d.digits += string(ch)
			continue
		}
		if err := d.takeRun(); err != nil {
			return false, err
		}
		switch ch {
		case 'o':
			if d.run > MaxCells-len(d.cells) {
				return false, &LimitError{What: "cells", Limit: MaxCells}
			}
			for k := 0; k < d.run; k++ {
				d.cells = append(d.cells, core.Cell{X: d.x + k, Y: d.y})
			}
			d.x += d.run
		case 'b':
			d.x += d.run
		case '$':
			d.y += d.run
			d.x = 0
		case '!':
			return true, nil
		default:
			return false, &TokenError{Token: string(ch), Line: lineNo, Column: i + 1}
		}
		d.run = 1
	}
	return false, nil
}

func (d *decoder) takeRun() error {
	if d.digits == "" {
		return nil
	}
	n, err := strconv.Atoi(d.digits)
	if err != nil || n <= 0 {
		return &TokenError{Token: d.digits, Line: d.digitsLine, Column: d.digitsCol}
	}
	d.run = n
	d.digits = ""
	return nil
}
