package fs_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/outline/pkg/adapters/fs"
	"github.com/aretw0/outline/pkg/core"
)

func TestSerializers_RoundTrip(t *testing.T) {
	snap := sampleDocument("minutes").Snapshot()

	for ext, s := range fs.DefaultSerializers(true) {
		t.Run(ext, func(t *testing.T) {
			data, err := s.Serialize(snap)
			require.NoError(t, err)

			got, err := s.Parse(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, snap, got)
		})
	}
}

func TestYAMLSerializer_Layout(t *testing.T) {
	doc := core.NewDocument("d")
	doc.Body().AddParagraph("item").SetNumbering(1, 0)

	data, err := fs.NewYAMLSerializer(false).Serialize(doc.Snapshot())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "id: d\n")
	assert.Contains(t, out, "num_id: 1\n")
	assert.Contains(t, out, "level: 0\n", "level 0 is kept")
	assert.NotContains(t, out, "left_indent", "zero indent is omitted")
}

func TestYAMLSerializer_EmptyInput(t *testing.T) {
	snap, err := fs.NewYAMLSerializer(true).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, snap.Paragraphs)
}

func TestJSONSerializer_Strict(t *testing.T) {
	input := `{"id":"x","paragraphs":[],"unexpected":true}`

	_, err := fs.NewJSONSerializer(false).Parse(strings.NewReader(input))
	assert.NoError(t, err)

	_, err = fs.NewJSONSerializer(true).Parse(strings.NewReader(input))
	assert.Error(t, err)
}
