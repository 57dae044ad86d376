package xbrl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// SegmentValue is one business segment's share of a concept.
type SegmentValue struct {
	Segment string
	Value   float64
}

// segmentCandidate is one fact tagged on the business-segment axis,
// along with the context's remaining dimensional qualifiers used by
// the elimination filters.
type segmentCandidate struct {
	fact *xmlquery.Node
	dims []*xmlquery.Node
}

// SegmentValues breaks a concept down into per-business-segment
// values. Filers often report the same segment under several contexts
// (scenario restatements, intersegment eliminations, consolidated
// views); candidates are narrowed by a fixed filter sequence, and a
// filter that would discard every remaining candidate is skipped so a
// sparser filing still resolves. Segments whose candidates cannot be
// narrowed to one contribute a SegmentDisambiguationError to the
// returned error; the cleanly resolved segments are returned
// regardless.
func (d *Document) SegmentValues(concept string) ([]SegmentValue, error) {
	chain, ok := conceptLabels[concept]
	if !ok {
		return nil, fmt.Errorf("concept %q has no label chain", concept)
	}

	byMember := make(map[string][]segmentCandidate)
	var order []string

	for _, sc := range d.segmentContexts {
		id := sc.node.SelectAttr("id")
		for _, label := range chain.Labels {
			fact := d.Node("//"+label+"[@contextRef='"+id+"']", nil)
			if fact == nil {
				continue
			}
			if _, seen := byMember[sc.member]; !seen {
				order = append(order, sc.member)
			}
			byMember[sc.member] = append(byMember[sc.member], segmentCandidate{
				fact: fact,
				dims: d.NodeList("xbrli:entity/xbrli:segment/xbrldi:explicitMember[@dimension!='us-gaap:StatementBusinessSegmentsAxis']", sc.node),
			})
		}
	}

	var values []SegmentValue
	var errs []error

	for _, member := range order {
		candidates := byMember[member]

		candidates = filterKeeping(candidates, func(c segmentCandidate) bool {
			for _, dim := range c.dims {
				if dim.SelectAttr("dimension") == "us-gaap:StatementScenarioAxis" {
					return false
				}
			}
			return true
		})

		candidates = filterKeeping(candidates, func(c segmentCandidate) bool {
			for _, dim := range c.dims {
				if dim.SelectAttr("dimension") == "us-gaap:ConsolidationItemsAxis" &&
					strings.Contains(strings.ToLower(dim.InnerText()), "elimination") {
					return false
				}
			}
			return true
		})

		candidates = filterKeeping(candidates, func(c segmentCandidate) bool {
			for _, dim := range c.dims {
				if dim.InnerText() == "us-gaap:OperatingSegmentsMember" {
					return true
				}
			}
			return false
		})

		if len(candidates) > 1 {
			errs = append(errs, &SegmentDisambiguationError{Segment: member, Candidates: len(candidates)})
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(candidates[0].fact.InnerText()), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("segment %q: non-numeric fact value: %w", member, err))
			continue
		}
		values = append(values, SegmentValue{Segment: member, Value: value})
	}

	return values, errors.Join(errs...)
}

// filterKeeping applies keep to the candidate list, but leaves the
// list untouched when the filter would discard everything, and skips
// filtering entirely for lists already narrowed to one.
func filterKeeping(candidates []segmentCandidate, keep func(segmentCandidate) bool) []segmentCandidate {
	if len(candidates) <= 1 {
		return candidates
	}
	var kept []segmentCandidate
	for _, c := range candidates {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}
