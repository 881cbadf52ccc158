package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkillLexicon(t *testing.T) {
	lex := NewSkillLexicon([]string{" Python ", "SQL", "python", "", "Machine Learning"})

	assert.Equal(t, []string{"python", "sql", "machine learning"}, lex.Phrases())
	assert.True(t, lex.Contains("sql"))
	assert.False(t, lex.Contains("SQL"))
	assert.Equal(t, []string{"machine learning"}, lex.MultiWord())
	assert.Equal(t, 3, lex.Len())
}

func TestDefaultSkills(t *testing.T) {
	lex := DefaultSkills()
	assert.True(t, lex.Contains("python"))
	assert.True(t, lex.Contains("c"))
	assert.True(t, lex.Contains("machine learning"))
	assert.Greater(t, lex.Len(), 50)
}

func TestLoadSkills(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(valid, []byte(`["Go", "Kubernetes"]`), 0644))

	malformed := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"not": "an array"}`), 0644))

	tests := []struct {
		name    string
		path    string
		wantLen int
	}{
		{name: "valid file", path: valid, wantLen: 2},
		{name: "missing file degrades to empty", path: filepath.Join(dir, "nope.json"), wantLen: 0},
		{name: "malformed file degrades to empty", path: malformed, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := LoadSkills(tt.path, nil)
			require.NotNil(t, lex)
			assert.Equal(t, tt.wantLen, lex.Len())
		})
	}
}

func TestReadSkills_Error(t *testing.T) {
	_, err := ReadSkills(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	var resErr *ResourceError
	assert.ErrorAs(t, err, &resErr)
	assert.Contains(t, err.Error(), "failed to read skill lexicon")
}
