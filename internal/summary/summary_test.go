package summary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svheader/internal/embeddings"
	"svheader/internal/speaker"
)

func TestNew(t *testing.T) {
	table := speaker.Table{
		Dimension: 2,
		Records: []speaker.Record{
			{ID: 0, Name: "A", Identifier: "A_EMB", Vector: embeddings.Vector{3, 4}},
			{ID: 3, Name: "B", Identifier: "B_EMB", Vector: embeddings.Vector{1, 0}},
		},
	}

	s := New("sv_database.h", table)

	assert.Equal(t, "sv_database.h", s.Output)
	assert.Equal(t, 2, s.Dimension)
	assert.Equal(t, 2, s.Count)
	require.Len(t, s.Speakers, 2)
	assert.Equal(t, Speaker{ID: 0, Name: "A", Identifier: "A_EMB", Norm: 5}, s.Speakers[0])
	assert.Equal(t, 3, s.Speakers[1].ID)
	assert.InDelta(t, 1.0, s.Speakers[1].Norm, 1e-12)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.yaml")
	in := Summary{
		Output:    "out.h",
		Dimension: 3,
		Count:     1,
		Speakers:  []Speaker{{ID: 0, Name: "my-speaker 1", Identifier: "MY_SPEAKER_1_EMB", Norm: 1.5}},
	}

	require.NoError(t, WriteFile(path, in))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out Summary
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "nope", "summary.yaml"), Summary{})
	assert.Error(t, err)
}
