// Package speaker loads pre-registered speaker embeddings from a delimited
// table and keeps only the rows that agree on a single vector dimension.
package speaker

import (
	"regexp"
	"strings"

	"svheader/internal/embeddings"
)

// IdentifierSuffix is appended to every derived identifier.
const IdentifierSuffix = "_EMB"

var nonSymbol = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Record is one accepted speaker row.
type Record struct {
	ID         int    // zero-based data row index in the input file
	Name       string // display name as written in the input
	Identifier string // symbol name derived from Name
	Vector     embeddings.Vector
}

// Table is the ordered set of accepted records sharing one dimension.
type Table struct {
	Dimension int
	Records   []Record
}

// Len returns the number of accepted records.
func (t Table) Len() int { return len(t.Records) }

// Identifier derives a C symbol name from a display name: each run of
// characters outside [A-Za-z0-9_] becomes a single '_', the result is
// upper-cased and IdentifierSuffix is appended.
//
//	"Viola_Avg"    -> "VIOLA_AVG_EMB"
//	"my-speaker 1" -> "MY_SPEAKER_1_EMB"
func Identifier(name string) string {
	return strings.ToUpper(nonSymbol.ReplaceAllString(name, "_")) + IdentifierSuffix
}
