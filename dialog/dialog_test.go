package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/escape-artist/parameter"
)

func TestDefaultScript(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	for _, key := range []string{"0,0", "2,0", parameter.ItemReplicator, parameter.ItemEscaper,
		parameter.ItemTreasure, parameter.ItemSignpost1} {
		assert.NotEmpty(t, s[key], key)
	}
	assert.Len(t, s["0,0"], 10)
	assert.Equal(t, "Narrator", s["treasure"][0].Speaker)
	assert.Equal(t, "...Except look awesome.", s["treasure"][4].Text)
}

func TestParseOverridesWholeConversations(t *testing.T) {
	s, err := Parse([]byte(`
"0,0":
  - speaker: Guard
    text: Back in your cell.
bonus:
  - text: Extra.
`))
	require.NoError(t, err)
	assert.Equal(t, []Line{{Speaker: "Guard", Text: "Back in your cell."}}, s["0,0"])
	assert.Len(t, s["bonus"], 1)
	// Untouched keys keep the built-in lines
	assert.Len(t, s["2,0"], 3)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":     "\"0,0\": [",
		"no lines":   "\"0,0\": []",
		"empty text": "\"0,0\":\n  - speaker: Narrator\n",
		"wrong type": "\"0,0\": 5",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, s)

	path := filepath.Join(t.TempDir(), "dialog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("x:\n  - text: hi\n"), 0o644))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", s["x"][0].Text)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "dialog read")
}

func TestPlayer(t *testing.T) {
	p := NewPlayer(Script{
		"a": {{Text: "one"}, {Text: "two"}},
		"b": {{Text: "solo"}},
	})
	assert.False(t, p.Active())
	assert.False(t, p.Advance())
	_, ok := p.Current()
	assert.False(t, ok)

	assert.False(t, p.Start("missing"))
	require.True(t, p.Start("a"))
	assert.Equal(t, "a", p.Key())
	line, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "one", line.Text)

	assert.True(t, p.Advance())
	line, _ = p.Current()
	assert.Equal(t, "two", line.Text)

	assert.False(t, p.Advance())
	assert.False(t, p.Active())
	assert.Empty(t, p.Key())

	// Restarting begins from the first line again
	require.True(t, p.Start("a"))
	line, _ = p.Current()
	assert.Equal(t, "one", line.Text)
}

func TestPlayerMissingKeyKeepsOpenConversation(t *testing.T) {
	p := NewPlayer(Script{"b": {{Text: "solo"}}})
	require.True(t, p.Start("b"))
	assert.False(t, p.Start("nope"))
	assert.True(t, p.Active())
	assert.Equal(t, "b", p.Key())
}
