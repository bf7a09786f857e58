package knowledge

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// excerpt is one canned passage from a directive document.
type excerpt struct {
	document string
	text     string
}

// DirectiveCorpus is an in-process Searcher over a small set of canned
// directive excerpts, scored by term overlap. It stands in for the real
// retrieval service in the demo deployment.
type DirectiveCorpus struct {
	excerpts []excerpt
}

// NewDirectiveCorpus builds the corpus with the built-in excerpts.
func NewDirectiveCorpus() *DirectiveCorpus {
	return &DirectiveCorpus{excerpts: builtinExcerpts}
}

var builtinExcerpts = []excerpt{
	{
		document: "AER Directive 017: Measurement Requirements",
		text: "Gas metering equipment must be calibrated or proved at least " +
			"once every 365 days. Meters used for custody transfer require " +
			"monthly proving. Calibration records must be retained for a " +
			"minimum of five years and made available on request.",
	},
	{
		document: "AER Directive 017: Measurement Requirements",
		text: "Temperature and pressure compensation devices must be " +
			"calibrated according to manufacturer specifications. Where no " +
			"specification exists, the 365 day maximum interval applies. " +
			"Differential pressure meters require a secondary verification " +
			"at each calibration.",
	},
	{
		document: "AER Directive 060: Upstream Petroleum Industry Flaring",
		text: "Flare stacks must be inspected annually, with the inspection " +
			"covering pilot reliability, structural integrity, and flame " +
			"arrestor condition. Flaring volumes must be reported monthly.",
	},
	{
		document: "AER Directive 060: Upstream Petroleum Industry Flaring",
		text: "Operators must maintain records of all flaring, incinerating, " +
			"and venting events, including duration, volume, and cause. " +
			"Continuous monitoring is required at facilities exceeding the " +
			"volume thresholds of section 2.3.",
	},
}

// Search scores every excerpt by term overlap with the query and returns an
// answer assembled from the topK best matches.
func (c *DirectiveCorpus) Search(ctx context.Context, query string, topK int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = 3
	}

	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil, fmt.Errorf("empty query")
	}

	type scored struct {
		excerpt
		relevance float64
	}
	var hits []scored
	for _, ex := range c.excerpts {
		score := overlap(terms, ex.text)
		if score > 0 {
			hits = append(hits, scored{excerpt: ex, relevance: score})
		}
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("no directive passages match %q", query)
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].relevance > hits[j].relevance })
	if len(hits) > topK {
		hits = hits[:topK]
	}

	var answer strings.Builder
	result := &Result{}
	for i, h := range hits {
		if i > 0 {
			answer.WriteString("\n\n")
		}
		answer.WriteString(h.text)
		result.Sources = append(result.Sources, Source{
			Document:  h.document,
			Relevance: h.relevance,
		})
	}
	result.Answer = answer.String()
	return result, nil
}

func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".,?!:;\"'()")
		// Short words carry no signal for this corpus.
		if len(f) > 3 {
			out = append(out, f)
		}
	}
	return out
}

// overlap is the fraction of query terms present in the passage.
func overlap(terms []string, text string) float64 {
	lower := strings.ToLower(text)
	matched := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	return float64(matched) / float64(len(terms))
}
