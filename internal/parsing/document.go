package parsing

import (
	"sort"

	"github.com/jonathan/resume-matcher/internal/nlp"
	"github.com/jonathan/resume-matcher/internal/types"
)

// SnippetRunes is the length of the raw-text snippet kept for auditing.
const SnippetRunes = 750

func emptyDocument() types.ParsedDocument {
	return types.ParsedDocument{
		Skills:         []string{},
		Education:      []types.EducationEntry{},
		EducationLevel: -1,
		Experience:     []types.ExperienceEntry{},
		Companies:      []string{},
	}
}

func failedDocument(err error) types.ParsedDocument {
	return types.ParsedDocument{Error: err.Error()}
}

func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= SnippetRunes {
		return text
	}
	return string(runes[:SnippetRunes])
}

// rawEntities groups entity texts by label, sorted and de-duplicated.
func rawEntities(doc *nlp.Doc) map[string][]string {
	sets := make(map[string]map[string]struct{})
	for _, e := range doc.Entities {
		label := string(e.Label)
		if sets[label] == nil {
			sets[label] = make(map[string]struct{})
		}
		sets[label][e.Text] = struct{}{}
	}
	out := make(map[string][]string, len(sets))
	for label, set := range sets {
		texts := make([]string, 0, len(set))
		for t := range set {
			texts = append(texts, t)
		}
		sort.Strings(texts)
		out[label] = texts
	}
	return out
}
