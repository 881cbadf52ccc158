package segment

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane@example.com
Summary
Backend engineer.
Skills: Python, SQL
Experience
Software Engineer | Acme Corp
Jan 2019 - Dec 2021
Education
B.S. Computer Science`

func TestSegmenter_Segment(t *testing.T) {
	s := NewSegmenter(lexicon.DefaultResumeHeaders(), nil)
	m := s.Segment(sampleResume)

	assert.Equal(t, []string{"header", "summary", "skills", "experience", "education"}, m.Names())
	assert.Equal(t, "Jane Doe\njane@example.com", m.Get("header"))
	assert.Equal(t, "Summary\nBackend engineer.", m.Get("summary"))
	assert.Equal(t, "Skills: Python, SQL", m.Get("skills"))
	assert.Equal(t, "Experience\nSoftware Engineer | Acme Corp\nJan 2019 - Dec 2021", m.Get("experience"))
	assert.False(t, m.Has("projects"))
}

func TestSegmenter_Idempotent(t *testing.T) {
	s := NewSegmenter(lexicon.DefaultResumeHeaders(), nil)
	first := s.Segment(sampleResume)
	second := s.Segment(first.Text())

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		assert.Equal(t, first.Get(name), second.Get(name), name)
	}
}

func TestSegmenter_EdgeCases(t *testing.T) {
	s := NewSegmenter(lexicon.DefaultResumeHeaders(), nil)

	tests := []struct {
		name      string
		input     string
		wantNames []string
		check     func(t *testing.T, m SectionMap)
	}{
		{
			name:      "empty input",
			input:     "",
			wantNames: []string{},
		},
		{
			name:      "whitespace only",
			input:     "  \n\n \t",
			wantNames: []string{},
		},
		{
			name:      "no header content before first heading",
			input:     "Skills\nGo",
			wantNames: []string{"skills"},
		},
		{
			name:      "recurring section is appended",
			input:     "Skills\nGo\nExperience\nWrote code\nSkills\nRust",
			wantNames: []string{"skills", "experience"},
			check: func(t *testing.T, m SectionMap) {
				assert.Equal(t, "Skills\nGo\nSkills\nRust", m.Get("skills"))
			},
		},
		{
			name:      "blank lines dropped",
			input:     "Intro line\n\n\nSummary\n\nText",
			wantNames: []string{"header", "summary"},
			check: func(t *testing.T, m SectionMap) {
				assert.Equal(t, "Summary\nText", m.Get("summary"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := s.Segment(tt.input)
			assert.Equal(t, tt.wantNames, m.Names())
			if tt.check != nil {
				tt.check(t, m)
			}
		})
	}
}

func TestSegmenter_FirstPatternWins(t *testing.T) {
	s := NewSegmenter([]lexicon.SectionHeader{
		{Name: "bad", Pattern: "("},
		{Name: "first", Pattern: `(?i)^skills`},
		{Name: "second", Pattern: `(?i)^skills$`},
	}, nil)

	m := s.Segment("Skills\nGo")
	assert.Equal(t, []string{"first"}, m.Names())
}

func TestSegmenter_JobHeaders(t *testing.T) {
	s := NewSegmenter(lexicon.DefaultJobHeaders(), nil)
	m := s.Segment("Job Title:\nData Engineer\nWhat You'll Do\nBuild pipelines\nPreferred Qualifications:\nSpark\nLocation: Austin, TX")

	assert.Equal(t, []string{"header", "responsibilities", "preferred", "location"}, m.Names())
	assert.Equal(t, "Location: Austin, TX", m.Get("location"))
	assert.Equal(t, []string{"Build pipelines"}, s.BodyLines(m.Get("responsibilities")))
}

func TestSectionMap_MarshalJSON(t *testing.T) {
	s := NewSegmenter(lexicon.DefaultResumeHeaders(), nil)
	b, err := json.Marshal(s.Segment("Top\nSkills\nGo"))
	require.NoError(t, err)
	assert.Equal(t, `{"header":"Top","skills":"Skills\nGo"}`, string(b))
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "crlf and nbsp", input: "  Hello   world \r\n\r\n\u00a0Line two\t\n", want: "Hello world\nLine two"},
		{name: "old mac endings", input: "a\rb", want: "a\nb"},
		{name: "only blanks", input: "\n \n\t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestBullets(t *testing.T) {
	assert.True(t, IsBulletLine("- Built things"))
	assert.True(t, IsBulletLine("• Led team"))
	assert.False(t, IsBulletLine("Built things"))
	assert.Equal(t, "Built things", StripBullet("  * Built things"))
}

func TestSegmenter_BodyLines(t *testing.T) {
	s := NewSegmenter(lexicon.DefaultResumeHeaders(), nil)

	assert.Equal(t, []string{"Python, SQL"}, s.BodyLines("Skills: Python, SQL"))
	assert.Equal(t, []string{"Backend engineer."}, s.BodyLines("Summary\nBackend engineer."))
	assert.Equal(t, "Plain\ntext", s.Body("Plain\ntext"))
	assert.Empty(t, s.BodyLines(""))
}
