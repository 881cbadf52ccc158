package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/nlp/nlptest"
	"github.com/jonathan/resume-matcher/internal/types"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func TestEducationExtractor_Extract(t *testing.T) {
	x := NewEducationExtractor(lexicon.DefaultEducationLevels(), newTestParser())
	h := newAnnotator(t)

	section := "Education\n" +
		"B.S. in Computer Science, Springfield University, May 2016\n" +
		"Springfield Tech | BA, Economics | 2012\n" +
		"High School Diploma, Lincoln High School, 2010\n" +
		"2008 - 2010"

	level, entries := x.Extract(section, h)
	assert.Equal(t, lexicon.LevelBachelor, level)
	require.Len(t, entries, 3)

	tests := []struct {
		degree      string
		institution string
		date        string
	}{
		{"BS in Computer Science", "Springfield University", "May 2016"},
		{"BA", "Springfield Tech", "2012"},
		{"high school", "Lincoln High School", "2010"},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.degree, deref(entries[i].DegreeMention), "entry %d degree", i)
		assert.Equal(t, tt.institution, deref(entries[i].InstitutionMention), "entry %d institution", i)
		assert.Equal(t, tt.date, deref(entries[i].DateMention), "entry %d date", i)
	}
	assert.Equal(t, "Springfield Tech | BA, Economics | 2012", entries[1].Text)
}

func TestEducationExtractor_RichDegree(t *testing.T) {
	x := NewEducationExtractor(lexicon.DefaultEducationLevels(), newTestParser())
	fake := &nlptest.Fake{Orgs: []string{"Stanford University"}}

	level, entries := x.Extract("Master of Science in Electrical Engineering | Stanford University | 2018", fake)
	assert.Equal(t, lexicon.LevelMaster, level)
	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science in Electrical Engineering", deref(entries[0].DegreeMention))
	assert.Equal(t, "Stanford University", deref(entries[0].InstitutionMention))
	assert.Equal(t, "2018", deref(entries[0].DateMention))
}

func TestEducationExtractor_GenericOrgSkipped(t *testing.T) {
	x := NewEducationExtractor(lexicon.DefaultEducationLevels(), newTestParser())
	fake := &nlptest.Fake{Orgs: []string{"University", "Acme Institute of Technology"}}

	_, entries := x.Extract("PhD, Acme Institute of Technology, University", fake)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Institute of Technology", deref(entries[0].InstitutionMention))
	assert.Equal(t, "PhD", deref(entries[0].DegreeMention))
	assert.Nil(t, entries[0].DateMention)
}

func TestEducationExtractor_Empty(t *testing.T) {
	x := NewEducationExtractor(lexicon.DefaultEducationLevels(), newTestParser())
	level, entries := x.Extract("", &nlptest.Fake{})
	assert.Equal(t, lexicon.LevelUnknown, level)
	assert.Equal(t, []types.EducationEntry{}, entries)
}

func TestMentions(t *testing.T) {
	assert.True(t, mentions("B.S., Physics", "BS"))
	assert.False(t, mentions("Business School", "BS"))
	assert.False(t, mentions("anything", ""))
	assert.True(t, mentions("Graduated, MBA", "M.B.A."))
	assert.False(t, mentions("MBAs program", "MBA"))
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		needle string
		want   bool
	}{
		{name: "whole string", s: "bs", needle: "bs", want: true},
		{name: "inside sentence", s: "a bs in physics", needle: "bs", want: true},
		{name: "prefix of word", s: "bsc physics", needle: "bs", want: false},
		{name: "suffix of word", s: "jobs", needle: "bs", want: false},
		{name: "second occurrence", s: "jobs, bs", needle: "bs", want: true},
		{name: "punctuation boundary", s: "(bs)", needle: "bs", want: true},
		{name: "longer than text", s: "b", needle: "bs", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsWord(tt.s, tt.needle))
		})
	}
}
