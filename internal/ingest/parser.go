// Package ingest turns the raw delimited history file into typed draw
// records and tables, downloads fresh copies of the file and watches the
// local copy for changes.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ramonehamilton/lotto-companion/internal/lottery"
)

// Parser converts delimited history text into draw records. The expected
// line layout is: date, 5 main numbers, 2 star numbers; extra columns are
// ignored. Lines that fail to parse are skipped and counted, not fatal.
type Parser struct {
	// Separator is the field separator (default ";").
	Separator string

	// DateLayout is the date column layout (default "02/01/2006").
	DateLayout string

	// SkipHeader drops the first line.
	SkipHeader bool
}

// NewParser creates a parser with the common European CSV dialect.
func NewParser() *Parser {
	return &Parser{
		Separator:  ";",
		DateLayout: "02/01/2006",
		SkipHeader: true,
	}
}

// Parse reads delimited history text and returns the parsed records,
// most recent first, along with the number of skipped lines.
func (p *Parser) Parse(r io.Reader) ([]lottery.DrawRecord, int, error) {
	scanner := bufio.NewScanner(r)
	var records []lottery.DrawRecord
	skipped := 0
	first := true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first && p.SkipHeader {
			first = false
			continue
		}
		first = false
		if line == "" {
			continue
		}

		record, err := p.parseLine(line)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("read history: %w", err)
	}
	if len(records) == 0 {
		return nil, skipped, lottery.ErrEmptyTable
	}

	// The source file lists oldest first; the core expects row 0 to be
	// the most recent draw.
	if records[0].Date.Before(records[len(records)-1].Date) {
		for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
			records[i], records[j] = records[j], records[i]
		}
	}
	return records, skipped, nil
}

func (p *Parser) parseLine(line string) (lottery.DrawRecord, error) {
	fields := strings.Split(line, p.Separator)
	if len(fields) < 1+lottery.DrawSize+lottery.StarSize {
		return lottery.DrawRecord{}, fmt.Errorf("expected at least %d fields, got %d",
			1+lottery.DrawSize+lottery.StarSize, len(fields))
	}

	date, err := time.Parse(p.DateLayout, strings.TrimSpace(fields[0]))
	if err != nil {
		return lottery.DrawRecord{}, fmt.Errorf("parse date %q: %w", fields[0], err)
	}

	numbers := make([]int, 0, lottery.DrawSize)
	for _, f := range fields[1 : 1+lottery.DrawSize] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return lottery.DrawRecord{}, fmt.Errorf("parse number %q: %w", f, err)
		}
		if n < 1 || n > lottery.MaxNumber {
			return lottery.DrawRecord{}, fmt.Errorf("number %d: %w", n, lottery.ErrInvalidNumberRange)
		}
		numbers = append(numbers, n)
	}

	stars := make([]int, 0, lottery.StarSize)
	for _, f := range fields[1+lottery.DrawSize : 1+lottery.DrawSize+lottery.StarSize] {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return lottery.DrawRecord{}, fmt.Errorf("parse star %q: %w", f, err)
		}
		if n < 1 || n > lottery.MaxStar {
			return lottery.DrawRecord{}, fmt.Errorf("star %d: %w", n, lottery.ErrInvalidNumberRange)
		}
		stars = append(stars, n)
	}

	return lottery.DrawRecord{Date: date, Numbers: numbers, Stars: stars}, nil
}

// Tables converts records into the draw and star tables consumed by the
// statistics builders, preserving record order.
func Tables(records []lottery.DrawRecord) (lottery.DrawTable, lottery.StarTable) {
	draws := make(lottery.DrawTable, len(records))
	stars := make(lottery.StarTable, len(records))
	for i, r := range records {
		draws[i] = append([]int(nil), r.Numbers...)
		stars[i] = append([]int(nil), r.Stars...)
	}
	return draws, stars
}
