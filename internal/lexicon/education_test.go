package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationLevels_Level(t *testing.T) {
	levels := DefaultEducationLevels()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "doctorate", text: "Ph.D. in Physics", want: LevelDoctorate},
		{name: "dotted bachelor", text: "B.S. Computer Science", want: LevelBachelor},
		{name: "possessive", text: "Bachelor's degree", want: LevelBachelor},
		{name: "highest wins", text: "BSc 2014\nMSc 2016", want: LevelMaster},
		{name: "mba", text: "M.B.A., Finance", want: LevelMaster},
		{name: "associate", text: "Associate Degree in Nursing", want: LevelAssociate},
		{name: "high school", text: "High School Diploma", want: LevelHighSchool},
		{name: "diacritics folded", text: "Licence, DIPLÔMA", want: LevelHighSchool},
		{name: "no keyword", text: "Self taught", want: LevelUnknown},
		{name: "no partial words", text: "Basketball team", want: LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levels.Level(tt.text))
		})
	}
}

func TestEducationLevels_MinLevel(t *testing.T) {
	levels := DefaultEducationLevels()
	assert.Equal(t, LevelBachelor, levels.MinLevel("Bachelor's or Master's degree in a related field"))
	assert.Equal(t, LevelUnknown, levels.MinLevel("Strong communication"))
}

func TestEducationLevels_LongestKeyword(t *testing.T) {
	levels := DefaultEducationLevels()
	assert.Equal(t, "master of science", levels.LongestKeyword("Master of Science, Statistics"))
	assert.Equal(t, "masters", levels.LongestKeyword("Masters in Data"))
	assert.Equal(t, "", levels.LongestKeyword("Springfield"))
}

func TestNormalizeEducationText(t *testing.T) {
	assert.Equal(t, "bs in cs", NormalizeEducationText("B.S. in CS"))
	assert.Equal(t, "ecole polytechnique", NormalizeEducationText("École Polytechnique"))
}

func TestLoadEducationLevels(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "levels.json")
	require.NoError(t, os.WriteFile(custom, []byte(`{"licence": 3, "doctorat": 5}`), 0644))
	outOfRange := filepath.Join(dir, "range.json")
	require.NoError(t, os.WriteFile(outOfRange, []byte(`{"guru": 9}`), 0644))

	levels, err := LoadEducationLevels(custom)
	require.NoError(t, err)
	assert.Equal(t, LevelDoctorate, levels.Level("Doctorat en chimie"))

	_, err = LoadEducationLevels(outOfRange)
	assert.Error(t, err)

	_, err = LoadEducationLevels(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	levels, err = LoadEducationLevels("")
	require.NoError(t, err)
	assert.Equal(t, LevelBachelor, levels.Level("BA"))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "bachelor's", LevelName(LevelBachelor))
	assert.Equal(t, "doctorate", LevelName(LevelDoctorate))
	assert.Equal(t, "unknown", LevelName(LevelUnknown))
	assert.Equal(t, "unknown", LevelName(42))
}
