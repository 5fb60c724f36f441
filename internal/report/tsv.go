package report

import (
	"fmt"
	"strings"
)

type TSVGenerator struct {
	rankings []Ranking
}

func NewTSVGenerator(rankings []Ranking) *TSVGenerator {
	return &TSVGenerator{rankings: rankings}
}

func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("Mode\tRank\tFile\tScore\n")
	for _, r := range t.rankings {
		for i, e := range r.Entries {
			buf.WriteString(fmt.Sprintf("%s\t%d\t%s\t%d\n", r.Mode, i+1, e.Path, e.Score))
		}
	}

	return buf.String(), nil
}
