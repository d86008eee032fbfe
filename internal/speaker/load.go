package speaker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"svheader/internal/embeddings"
)

// ErrNoRecords is returned when no row survives parsing and validation.
var ErrNoRecords = errors.New("no speaker records to process")

// LoadFile opens path read-only and loads it with Load.
func LoadFile(path string, comma rune, log *slog.Logger) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return Load(f, comma, log)
}

// Load reads every row, skipping rows that fail to parse or disagree with
// the fixed dimension. Row-local problems are logged and never returned;
// only header or read failures and an empty result are errors.
func Load(r io.Reader, comma rune, log *slog.Logger) (Table, error) {
	rd, err := NewReader(r, comma)
	if err != nil {
		return Table{}, err
	}

	var (
		v       Validator
		records []Record
		owners  = make(map[string]string)
	)
	for {
		row, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, err
		}

		rec, err := Parse(row)
		if err != nil {
			if errors.Is(err, embeddings.ErrEmpty) {
				log.Warn("embedding is empty, skipping", "speaker", row.Name, "row", row.Index)
			} else {
				log.Error("failed to parse embedding, skipping", "speaker", row.Name, "row", row.Index, "err", err)
			}
			continue
		}

		if err := v.Accept(rec); err != nil {
			var mm *MismatchError
			if errors.As(err, &mm) {
				log.Error("embedding dimension differs, skipping",
					"speaker", rec.Name,
					"row", rec.ID,
					"expected", mm.Expected,
					"actual", mm.Actual,
				)
			} else {
				log.Error("rejected record", "speaker", rec.Name, "row", rec.ID, "err", err)
			}
			continue
		}

		if prev, ok := owners[rec.Identifier]; ok {
			log.Warn("identifier collision; generated header will not compile",
				"identifier", rec.Identifier,
				"speaker", rec.Name,
				"previous", prev,
			)
		} else {
			owners[rec.Identifier] = rec.Name
		}

		if c := rec.Identifier[0]; c >= '0' && c <= '9' {
			log.Warn("identifier starts with a digit; generated header will not compile",
				"identifier", rec.Identifier,
				"speaker", rec.Name,
			)
		}

		log.Debug("accepted speaker",
			"speaker", rec.Name,
			"identifier", rec.Identifier,
			"row", rec.ID,
			"norm", rec.Vector.Norm(),
		)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return Table{}, ErrNoRecords
	}
	return Table{Dimension: v.Dimension(), Records: records}, nil
}
