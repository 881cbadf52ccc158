package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/dates"
	"github.com/jonathan/resume-matcher/internal/nlp"
)

var fixedNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func newTestParser() *dates.Parser {
	p := dates.NewParser(nil)
	p.Now = func() time.Time { return fixedNow }
	return p
}

func newAnnotator(t *testing.T) *nlp.Heuristic {
	t.Helper()
	h, err := nlp.New(nlp.Options{})
	require.NoError(t, err)
	return h
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
