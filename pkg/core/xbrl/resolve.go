package xbrl

import (
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// FactValue looks up a single taxonomy label against the loaded
// period's context for the given period type. Returns nil whenever the
// fact cannot be produced: no context was resolved for the period
// type, no element carries the label with that context reference, or
// the element's text is not numeric. An element explicitly marked nil
// yields a zero-valued fact, not an absent one.
func (d *Document) FactValue(label string, period PeriodType) *Fact {
	var ctxRef string
	switch period {
	case Instant:
		ctxRef = d.contextForInstants
	case Duration:
		ctxRef = d.contextForDurations
	}
	if ctxRef == "" {
		return nil
	}

	node := d.Node("//"+label+"[@contextRef='"+ctxRef+"']", nil)
	if node == nil {
		return nil
	}

	value := 0.0
	if !isNilFact(node) {
		var err error
		value, err = strconv.ParseFloat(strings.TrimSpace(node.InnerText()), 64)
		if err != nil {
			return nil
		}
	}

	fact := &Fact{Value: value, doc: d}
	if unitID := node.SelectAttr("unitRef"); unitID != "" {
		if measure := d.Node("//xbrli:unit[@id='"+unitID+"']//xbrli:measure", nil); measure != nil {
			fact.UnitRef = measure.InnerText()
		}
	}
	return fact
}

// Resolve walks the concept's label fallback chain and returns a fact
// from the first label that produces one, tagged with the concept name
// so segment queries can reuse the chain. Unknown concepts and fully
// exhausted chains return nil.
func (d *Document) Resolve(concept string) *Fact {
	chain, ok := conceptLabels[concept]
	if !ok {
		return nil
	}
	for _, label := range chain.Labels {
		if fact := d.FactValue(label, chain.Period); fact != nil {
			fact.Concept = concept
			return fact
		}
	}
	return nil
}

// isNilFact reports whether the element carries an xsi:nil="true"
// marker, matched on local attribute name since filer prefixes vary.
func isNilFact(node *xmlquery.Node) bool {
	for _, attr := range node.Attr {
		if attr.Name.Local == "nil" && attr.Value == "true" {
			return true
		}
	}
	return false
}
