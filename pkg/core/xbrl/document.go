// Package xbrl extracts standardized financial facts from XBRL
// instance documents as filed on SEC EDGAR. It resolves the reporting
// contexts for a requested period, pulls facts through per-concept
// label fallback chains, imputes missing fundamental accounting
// concepts from accounting identities, and disaggregates concepts into
// per-business-segment values.
package xbrl

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

const xbrlInstanceNS = "http://www.xbrl.org/2003/instance"

var endDateRe = regexp.MustCompile(`\s*(\d{4})-(\d{2})-(\d{2})\s*`)

// Document wraps a parsed XBRL instance document and the state of the
// currently loaded reporting period. A document is single-writer:
// LoadPeriod replaces all previously resolved facts, so concurrent
// period loads against the same instance require external
// synchronization. Independent documents are safe to use in parallel.
type Document struct {
	doc *xmlquery.Node
	ns  map[string]string

	// Fields holds the dataset for the currently loaded period.
	Fields *FieldsDataset

	fundamentals *Fundamentals

	contextForInstants  string
	contextForDurations string
	balanceSheetDate    string
	periodStartYTD      string
	segmentContexts     []segmentContext
}

type segmentContext struct {
	node   *xmlquery.Node
	member string
}

// Parse builds a Document from raw instance document bytes, registers
// the document's namespace declarations plus the default instance
// aliases, and loads the document's own reporting period (year offset
// zero, annual). There is no size limit; multi-tens-of-megabyte
// filings are expected.
func Parse(data []byte) (*Document, error) {
	node, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance document: %w", err)
	}

	d := &Document{
		doc:    node,
		ns:     make(map[string]string),
		Fields: NewFieldsDataset(),
	}

	root := node.FirstChild
	for root != nil && root.Type != xmlquery.ElementNode {
		root = root.NextSibling
	}
	if root == nil {
		return nil, fmt.Errorf("instance document has no root element")
	}
	for _, attr := range root.Attr {
		if attr.Name.Space == "xmlns" && attr.Name.Local != "" {
			d.ns[attr.Name.Local] = attr.Value
		}
	}
	// Fixed aliases for the core schema elements; some filer tooling
	// declares the instance namespace under a nonstandard prefix.
	d.ns["xbrli"] = xbrlInstanceNS
	d.ns["xlmns"] = xbrlInstanceNS

	d.loadBaseInformation()

	if err := d.LoadPeriod(0, false); err != nil {
		return nil, err
	}

	return d, nil
}

// NodeList evaluates a namespace-aware path query and returns all
// matches. root selects the context node; nil means the whole
// document. Malformed or unsupported queries return an empty list,
// never an error: heterogeneous filer tooling makes them a normal
// occurrence.
func (d *Document) NodeList(query string, root *xmlquery.Node) []*xmlquery.Node {
	expr, err := xpath.CompileWithNS(query, d.ns)
	if err != nil {
		return nil
	}
	if root == nil {
		root = d.doc
	}
	return xmlquery.QuerySelectorAll(root, expr)
}

// Node returns the first match of the query, or nil.
func (d *Document) Node(query string, root *xmlquery.Node) *xmlquery.Node {
	nodes := d.NodeList(query, root)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// LoadPeriod resolves the reporting contexts for the period ending
// yearOffset years before the document's own period end date and
// derives the fundamental accounting concepts for it. quarter selects
// a quarter-to-date duration window instead of the filing's fiscal
// period focus. The previous period's dataset is fully replaced.
func (d *Document) LoadPeriod(yearOffset int, quarter bool) error {
	endNode := d.Node("//dei:DocumentPeriodEndDate", nil)
	if endNode == nil {
		return &PeriodResolutionError{Reason: "document has no period end date"}
	}

	m := endDateRe.FindStringSubmatch(endNode.InnerText())
	if m == nil {
		return &PeriodResolutionError{Reason: fmt.Sprintf("%q is not a date", endNode.InnerText())}
	}

	var year int
	fmt.Sscanf(m[1], "%d", &year)
	endDate := fmt.Sprintf("%d-%s-%s", year-yearOffset, m[2], m[3])

	// Rebuild, never merge: stale facts from another period must not
	// survive a reload.
	d.Fields = NewFieldsDataset()
	d.loadBaseInformation()

	if err := d.resolvePeriod(endDate, quarter); err != nil {
		return err
	}

	d.fundamentals = deriveFundamentals(d)
	d.fundamentals.store(d.Fields)

	return nil
}

// Fundamentals returns the concepts derived for the currently loaded
// period, or nil before the first successful LoadPeriod.
func (d *Document) Fundamentals() *Fundamentals { return d.fundamentals }

// BalanceSheetDate returns the instant date of the loaded period.
func (d *Document) BalanceSheetDate() string { return d.balanceSheetDate }

// IncomeStatementPeriodYTD returns the start date of the loaded
// duration window.
func (d *Document) IncomeStatementPeriodYTD() string { return d.periodStartYTD }

// loadBaseInformation copies the document-entity-information fields
// into the dataset. Missing elements leave the field absent.
func (d *Document) loadBaseInformation() {
	deiFields := []struct {
		key   string
		query string
	}{
		{"EntityRegistrantName", "//dei:EntityRegistrantName[@contextRef]"},
		{"FiscalYear", "//dei:CurrentFiscalYearEndDate[@contextRef]"},
		{"EntityCentralIndexKey", "//dei:EntityCentralIndexKey[@contextRef]"},
		{"EntityFilerCategory", "//dei:EntityFilerCategory[@contextRef]"},
		{"TradingSymbol", "//dei:TradingSymbol[@contextRef]"},
		{"DocumentFiscalYearFocus", "//dei:DocumentFiscalYearFocus[@contextRef]"},
		{"DocumentFiscalPeriodFocus", "//dei:DocumentFiscalPeriodFocus[@contextRef]"},
		{"DocumentType", "//dei:DocumentType[@contextRef]"},
	}

	for _, f := range deiFields {
		if node := d.Node(f.query, nil); node != nil {
			d.Fields.SetText(f.key, node.InnerText())
		}
	}
}
