package speaker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"svheader/internal/embeddings"
)

const (
	ColumnName      = "speaker_name"
	ColumnEmbedding = "embedding"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Row is a raw data row before parsing.
type Row struct {
	Index     int
	Name      string
	Embedding string
}

// Reader yields data rows from a delimited table with a header row.
type Reader struct {
	csv      *csv.Reader
	nameCol  int
	embCol   int
	rowIndex int
}

// NewReader consumes the header row and locates the required columns.
func NewReader(r io.Reader, comma rune) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: %w: input has no header row", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	// A repeated column name resolves to its last occurrence.
	nameCol, embCol := -1, -1
	for i, h := range header {
		switch h {
		case ColumnName:
			nameCol = i
		case ColumnEmbedding:
			embCol = i
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnName)
	}
	if embCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnEmbedding)
	}

	return &Reader{csv: cr, nameCol: nameCol, embCol: embCol}, nil
}

// Next returns the next data row, or io.EOF when the input is exhausted.
// Fields missing from a short row read as empty strings.
func (r *Reader) Next() (Row, error) {
	fields, err := r.csv.Read()
	if err != nil {
		if err == io.EOF {
			return Row{}, io.EOF
		}
		return Row{}, fmt.Errorf("read row %d: %w", r.rowIndex, err)
	}
	row := Row{
		Index:     r.rowIndex,
		Name:      field(fields, r.nameCol),
		Embedding: field(fields, r.embCol),
	}
	r.rowIndex++
	return row, nil
}

// Parse turns a raw row into a candidate record.
func Parse(row Row) (Record, error) {
	vec, err := embeddings.Parse(row.Embedding)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:         row.Index,
		Name:       row.Name,
		Identifier: Identifier(row.Name),
		Vector:     vec,
	}, nil
}

func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}
