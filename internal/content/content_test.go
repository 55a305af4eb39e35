package content_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/content"
)

type gadget struct {
	ID    string `yaml:"id"`
	Power int    `yaml:"power"`
}

func (g *gadget) Validate() error {
	if g.ID == "" {
		return errors.New("id must not be empty")
	}
	return nil
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestFiles_AcceptsBothExtensionsInNameOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yml", "id: b\n")
	writeFile(t, dir, "a.yaml", "id: a\n")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0755))

	files, err := content.Files(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), files[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.yml"), files[1].Path)
	assert.Equal(t, "id: b\n", string(files[1].Data))
}

func TestFiles_MissingDirectory(t *testing.T) {
	_, err := content.Files(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorContains(t, err, "cannot read directory")
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.yaml", "id: one\npower: 3\n")
	writeFile(t, dir, "two.yml", "id: two\npower: 5\n")

	gadgets, err := content.Decode[gadget](dir, "gadget")
	require.NoError(t, err)
	require.Len(t, gadgets, 2)
	assert.Equal(t, &gadget{ID: "one", Power: 3}, gadgets[0])
	assert.Equal(t, &gadget{ID: "two", Power: 5}, gadgets[1])
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "id: [unclosed\n")
	_, err := content.Decode[gadget](dir, "gadget")
	assert.ErrorContains(t, err, "cannot parse gadget file")

	dir = t.TempDir()
	writeFile(t, dir, "empty.yml", "power: 1\n")
	_, err = content.Decode[gadget](dir, "gadget")
	assert.ErrorContains(t, err, "invalid gadget")
	assert.ErrorContains(t, err, "id must not be empty")
}

func TestIsYAML(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.StringMatching(`[a-z_]{1,12}`).Draw(t, "base")
		ext := rapid.SampledFrom([]string{".yaml", ".yml", ".json", ".lua", ".yaml.bak", ""}).Draw(t, "ext")
		want := ext == ".yaml" || ext == ".yml"
		if got := content.IsYAML(base + ext); got != want {
			t.Fatalf("IsYAML(%q) = %v, want %v", base+ext, got, want)
		}
	})
}
