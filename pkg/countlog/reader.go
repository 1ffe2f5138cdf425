package countlog

import (
	"Go2TrafficStats/internal/model"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

const fieldsPerRow = 2

// Reader reads "timestamp count" rows from a count log.
type Reader struct {
	src    io.Reader
	closer io.Closer
	comma  rune
	name   string
}

// NewReader opens the count log at filePath. A zero delimiter means a single space.
func NewReader(filePath string, delimiter rune) (*Reader, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrIO, err)
	}
	r := NewReaderFrom(f, delimiter)
	r.closer = f
	r.name = filePath
	return r, nil
}

// NewReaderFrom reads a count log from an arbitrary stream. The caller owns src.
func NewReaderFrom(src io.Reader, delimiter rune) *Reader {
	if delimiter == 0 {
		delimiter = ' '
	}
	return &Reader{src: src, comma: delimiter, name: "input"}
}

// Close closes the underlying file, if the reader opened one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadRecords parses every row in order and hands it to fn. It stops at the
// first malformed row, read failure or fn error. Blank lines are skipped.
func (r *Reader) ReadRecords(fn func(model.Record) error) error {
	rdr := csv.NewReader(r.src)
	rdr.Comma = r.comma
	rdr.FieldsPerRecord = fieldsPerRow
	rdr.ReuseRecord = true

	for {
		row, err := rdr.Read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return fmt.Errorf("%w: %s line %d: %v", model.ErrMalformedRow, r.name, parseErr.Line, parseErr.Err)
			}
			return fmt.Errorf("%w: reading %s: %v", model.ErrIO, r.name, err)
		}

		line, _ := rdr.FieldPos(0)
		record, err := parseRow(row)
		if err != nil {
			return fmt.Errorf("%w: %s line %d: %v", model.ErrMalformedRow, r.name, line, err)
		}

		if err := fn(record); err != nil {
			return err
		}
	}
}

func parseRow(row []string) (model.Record, error) {
	count, err := strconv.ParseUint(row[1], 10, 32)
	if err != nil {
		return model.Record{}, fmt.Errorf("count %q is not an unsigned 32-bit integer", row[1])
	}
	return model.Record{Timestamp: row[0], Count: uint32(count)}, nil
}
