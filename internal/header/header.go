// Package header renders a speaker table as a C header that declares one
// const float array per speaker and a descriptor list referencing them.
package header

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"svheader/internal/embeddings"
	"svheader/internal/speaker"
)

const (
	// DimensionMacro names the #define holding the embedding dimension.
	DimensionMacro = "SV_EMBEDDING_DIM"
	// DefaultGuard is used when no guard can be derived from a path.
	DefaultGuard = "SV_DATABASE_H"

	valuesPerLine = 8
	indent        = "    "
)

var headerTmpl = template.Must(template.New("header").Funcs(template.FuncMap{
	"values":  formatValues,
	"cstring": quoteC,
	"comment": commentText,
}).Parse(`#ifndef {{.Guard}}
#define {{.Guard}}

// Embedding vector dimension produced by the speaker model
#define {{.DimMacro}} {{.Dimension}}

{{range .Records}}// speaker: {{comment .Name}}
const float {{.Identifier}}[{{$.DimMacro}}] = {
    {{values .Vector}}
};

{{end}}// ====================================================
//     speaker DB structure & list
// ====================================================

// pre-registered speakers consumed by sv_init()
typedef struct {
    int speaker_id;
    const char* name;
    const float* embedding;
} sv_preregistered_speaker_t;

static const sv_preregistered_speaker_t PRE_REGISTERED_SPEAKERS[] = {
{{range .Records}}    {{"{"}}{{.ID}}, {{cstring .Name}}, {{.Identifier}}{{"}"}},
{{end}}};

// enrolled speakers: {{len .Records}}
static const int NUM_PRE_REGISTERED_SPEAKERS = {{len .Records}};

#endif // {{.Guard}}
`))

type headerData struct {
	Guard     string
	DimMacro  string
	Dimension int
	Records   []speaker.Record
}

// Write renders t to w. The output depends only on guard and t, so equal
// inputs always produce byte-identical headers.
func Write(w io.Writer, t speaker.Table, guard string) error {
	if guard == "" {
		guard = DefaultGuard
	}
	return headerTmpl.Execute(w, headerData{
		Guard:     guard,
		DimMacro:  DimensionMacro,
		Dimension: t.Dimension,
		Records:   t.Records,
	})
}

// WriteFile creates (or truncates) path and writes the header for t with
// a guard derived from the file name. A failed write leaves whatever was
// already written in place.
func WriteFile(path string, t speaker.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, t, Guard(path)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

var nonSymbol = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// Guard derives an include-guard macro from a file path:
// "out/sv_database.h" -> "SV_DATABASE_H".
func Guard(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return DefaultGuard
	}
	g := strings.Trim(nonSymbol.ReplaceAllString(base, "_"), "_")
	if g == "" {
		return DefaultGuard
	}
	g = strings.ToUpper(g)
	if g[0] >= '0' && g[0] <= '9' {
		g = "_" + g
	}
	return g
}

// FormatValue renders one component as a C float literal with 8 decimal
// digits, e.g. -0.04500000f.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 8, 64) + "f"
}

// formatValues lays out values as "v, " entries, breaking the line after
// every 8th entry except the last.
func formatValues(vec embeddings.Vector) string {
	var b strings.Builder
	for i, v := range vec {
		b.WriteString(FormatValue(v))
		b.WriteString(", ")
		if (i+1)%valuesPerLine == 0 && i+1 < len(vec) {
			b.WriteString("\n" + indent)
		}
	}
	return b.String()
}

// quoteC returns name as a C string literal. Printable text, including
// UTF-8, passes through unchanged.
func quoteC(name string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, `\%03o`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// commentText keeps a display name on a single // comment line. A
// backslash (or the ??/ trigraph) before the newline would splice the
// next declaration into the comment, so both are rewritten.
func commentText(name string) string {
	return commentReplacer.Replace(name)
}

var commentReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\\", "/",
	"??/", "?? /",
)
