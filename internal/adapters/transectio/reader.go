package transectio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"transect-offset-service/internal/domain"
)

// Rows unparsable during header inference are tolerated only this far
// into the file.
const inferWindow = 5

// ReadOptions controls delimited-file ingestion. Column indexes are
// 1-based. A negative HeadRows enables header inference: unparsable
// rows within the first five rows of the file are skipped as headers,
// but only before any data row has been read.
type ReadOptions struct {
	Delimiter rune
	XCol      int
	YCol      int
	HeadRows  int
}

func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: ',', XCol: 1, YCol: 2, HeadRows: -1}
}

// MalformedRowError reports a data row that could not be parsed as
// coordinates. Ingestion aborts on the first such row rather than
// silently skipping it.
type MalformedRowError struct {
	Row int
	Err error
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %v", e.Row, e.Err)
}

func (e *MalformedRowError) Unwrap() error { return e.Err }

// ReadPoints parses an ordered transect from delimited text.
func ReadPoints(r io.Reader, opts ReadOptions) ([]domain.Point, error) {
	if opts.XCol < 1 || opts.YCol < 1 {
		return nil, fmt.Errorf("read points: column indexes are 1-based (xcol=%d ycol=%d)", opts.XCol, opts.YCol)
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}

	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.FieldsPerRecord = -1
	// Trimming leading space would eat the delimiter itself in
	// space-delimited files.
	cr.TrimLeadingSpace = opts.Delimiter != ' '

	infer := opts.HeadRows < 0
	skip := opts.HeadRows
	if infer {
		skip = 0
	}

	var points []domain.Point
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &MalformedRowError{Row: row, Err: err}
		}
		if row <= skip {
			continue
		}

		p, err := parseRow(record, opts.XCol, opts.YCol)
		if err != nil {
			if infer && len(points) == 0 && row <= inferWindow {
				continue
			}
			return nil, &MalformedRowError{Row: row, Err: err}
		}
		points = append(points, p)
	}

	return points, nil
}

func parseRow(record []string, xcol, ycol int) (domain.Point, error) {
	if len(record) < xcol || len(record) < ycol {
		return domain.Point{}, fmt.Errorf("need %d columns, row has %d", max(xcol, ycol), len(record))
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(record[xcol-1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("x column %d: %w", xcol, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(record[ycol-1]), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("y column %d: %w", ycol, err)
	}

	return domain.Point{X: x, Y: y}, nil
}
