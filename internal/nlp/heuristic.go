package nlp

// Options configures a Heuristic annotator.
type Options struct {
	// GazetteerPath names an optional JSON gazetteer merged over the built-in one.
	GazetteerPath string
	// Vectors enables character-trigram similarity.
	Vectors bool
}

// Heuristic is a rule-based annotator: regex tokenization, suffix-rule
// lemmas, and entity recognition from gazetteers, capitalization and
// organization suffixes. It is immutable after New and safe for concurrent use.
type Heuristic struct {
	orgs      *phraseIndex
	places    *phraseIndex
	locations *phraseIndex
	vectors   bool
}

// New builds a Heuristic annotator. It fails only when a configured
// gazetteer file cannot be loaded.
func New(opts Options) (*Heuristic, error) {
	g := defaultGazetteer()
	if opts.GazetteerPath != "" {
		extra, err := ReadGazetteer(opts.GazetteerPath)
		if err != nil {
			return nil, err
		}
		g.Merge(extra)
	}
	return &Heuristic{
		orgs:      newPhraseIndex(g.Organizations),
		places:    newPhraseIndex(g.Places),
		locations: newPhraseIndex(g.Locations),
		vectors:   opts.Vectors,
	}, nil
}

// Annotate tokenizes text and recognizes its entities.
func (h *Heuristic) Annotate(text string) *Doc {
	tokens := Tokenize(text)
	return &Doc{
		Text:     text,
		Tokens:   tokens,
		Entities: h.recognize(text, tokens),
	}
}

// Similarity returns the cosine similarity of character-trigram vectors.
func (h *Heuristic) Similarity(a, b string) (float64, bool) {
	if !h.vectors {
		return 0, false
	}
	return trigramCosine(a, b)
}
