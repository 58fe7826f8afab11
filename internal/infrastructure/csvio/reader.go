package csvio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Reader wraps encoding/csv with the handling the store-supplied files
// need: BOM stripping, encoding detection, lenient quoting, and a
// data-row counter that ignores the header.
type Reader struct {
	csv     *csv.Reader
	headers []string
	dataRow int
}

// NewReader prepares a reader over CSV content. A leading UTF-8 BOM is
// discarded. Content that is not valid UTF-8 is retried as Shift_JIS,
// the encoding older store POS exports still use; anything else is
// rejected up front rather than surfacing as garbled field values later.
func NewReader(r io.Reader) (*Reader, error) {
	buf := bufio.NewReader(r)

	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}

	var src io.Reader = buf
	if err := checkUTF8(buf); err != nil {
		if err != ErrInvalidEncoding {
			return nil, err
		}
		decoded, decErr := shiftJISReader(buf)
		if decErr != nil {
			return nil, ErrInvalidEncoding
		}
		src = decoded
	}

	cr := csv.NewReader(src)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	return &Reader{csv: cr}, nil
}

// NewReaderFromBytes prepares a reader over in-memory content.
func NewReaderFromBytes(data []byte) (*Reader, error) {
	return NewReader(bytes.NewReader(data))
}

func checkUTF8(r *bufio.Reader) error {
	const probeSize = 4096
	probe, err := r.Peek(probeSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to probe encoding: %w", err)
	}
	if len(probe) == 0 {
		return ErrEmptyFile
	}
	// A multi-byte rune may straddle the probe boundary; trim a partial
	// tail before validating.
	if len(probe) == probeSize {
		for i := 0; i < utf8.UTFMax && len(probe) > 0; i++ {
			r, _ := utf8.DecodeLastRune(probe)
			if r != utf8.RuneError {
				break
			}
			probe = probe[:len(probe)-1]
		}
	}
	if !utf8.Valid(probe) {
		return ErrInvalidEncoding
	}
	return nil
}

// shiftJISReader wraps r in a Shift_JIS decoder after verifying the
// probed prefix actually decodes. The decoder substitutes U+FFFD for
// bytes it cannot map, so presence of a replacement rune in the probe
// means the content is neither UTF-8 nor Shift_JIS.
func shiftJISReader(r *bufio.Reader) (io.Reader, error) {
	const probeSize = 4096
	probe, err := r.Peek(probeSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to probe encoding: %w", err)
	}
	// A double-byte sequence may straddle the probe boundary, so accept
	// if the probe decodes cleanly after trimming at most one byte.
	trims := 1
	if len(probe) < probeSize {
		trims = 0
	}
	for i := 0; i <= trims && i < len(probe); i++ {
		decoded, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), probe[:len(probe)-i])
		if err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
			return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
		}
	}
	return nil, ErrInvalidEncoding
}

// ReadHeader consumes the header row.
func (r *Reader) ReadHeader() ([]string, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	r.headers = record
	return record, nil
}

// Row is one data row with its 1-based position among the data rows.
type Row struct {
	Number int
	Fields []string
}

// Field returns the i-th field, or "" when the row is short.
func (row Row) Field(i int) string {
	if i < 0 || i >= len(row.Fields) {
		return ""
	}
	return row.Fields[i]
}

// IsEmpty reports whether every field is blank.
func (row Row) IsEmpty() bool {
	for _, f := range row.Fields {
		if f != "" {
			return false
		}
	}
	return true
}

// ReadRow returns the next data row, or io.EOF when exhausted.
func (r *Reader) ReadRow() (Row, error) {
	record, err := r.csv.Read()
	if err == io.EOF {
		return Row{}, io.EOF
	}
	r.dataRow++
	if err != nil {
		return Row{Number: r.dataRow}, fmt.Errorf("malformed row %d: %w", r.dataRow, err)
	}
	return Row{Number: r.dataRow, Fields: record}, nil
}

// ReadAll collects every non-empty data row.
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.ReadRow()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
}
