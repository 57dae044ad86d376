package xbrl

import (
	"strconv"

	"github.com/rontwo/edgar-data/pkg/core/currency"
)

// Fact is a single numeric value extracted from an instance document,
// together with its unit of measure. A fact produced by arithmetic
// (Add/Sub) carries no document back-reference and cannot answer
// segment queries.
type Fact struct {
	Value   float64
	UnitRef string // empty for unitless facts

	// Concept is the canonical concept name the fact resolved under,
	// set by Document.Resolve. Empty for computed facts.
	Concept string

	doc *Document
}

// Add returns a new fact holding the sum of both values. The left
// operand's unit reference is propagated; callers must ensure the
// operands share units, mismatches indicate upstream data error.
func (f *Fact) Add(other *Fact) *Fact {
	return &Fact{Value: f.Value + other.Value, UnitRef: f.UnitRef}
}

// Sub returns a new fact holding the difference of both values,
// propagating the left operand's unit reference.
func (f *Fact) Sub(other *Fact) *Fact {
	return &Fact{Value: f.Value - other.Value, UnitRef: f.UnitRef}
}

// Float returns the fact's numeric value.
func (f *Fact) Float() float64 { return f.Value }

// Currency resolves the fact's unit reference to a currency record, or
// nil for unitless facts and unrecognized units.
func (f *Fact) Currency() *currency.Currency {
	if f.UnitRef == "" {
		return nil
	}
	return currency.Find(f.UnitRef)
}

// SegmentValues expands the fact's concept into per-business-segment
// values. Computed facts have no originating document and cannot be
// disaggregated.
func (f *Fact) SegmentValues() ([]SegmentValue, error) {
	if f.doc == nil || f.Concept == "" {
		return nil, &SegmentDisambiguationError{Segment: "", Candidates: 0}
	}
	return f.doc.SegmentValues(f.Concept)
}

func (f *Fact) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

// FieldsDataset maps concept names to resolved facts and raw text
// fields for one loaded reporting period. Lookups of absent keys
// return the zero value, never an error. The dataset is fully rebuilt
// whenever a different period is loaded.
type FieldsDataset struct {
	facts map[string]*Fact
	text  map[string]string
}

// NewFieldsDataset returns an empty dataset.
func NewFieldsDataset() *FieldsDataset {
	return &FieldsDataset{
		facts: make(map[string]*Fact),
		text:  make(map[string]string),
	}
}

// Fact returns the fact stored under key, or nil when absent.
func (d *FieldsDataset) Fact(key string) *Fact { return d.facts[key] }

// Text returns the raw string stored under key, or "" when absent.
func (d *FieldsDataset) Text(key string) string { return d.text[key] }

// SetFact stores a fact under key. Storing nil records the concept as
// looked-up-but-absent, which Fact reports as nil either way.
func (d *FieldsDataset) SetFact(key string, f *Fact) {
	if f == nil {
		delete(d.facts, key)
		return
	}
	d.facts[key] = f
}

// SetText stores a raw string field under key.
func (d *FieldsDataset) SetText(key, value string) { d.text[key] = value }

// Facts returns a copy of all stored facts, keyed by concept name.
func (d *FieldsDataset) Facts() map[string]*Fact {
	out := make(map[string]*Fact, len(d.facts))
	for k, v := range d.facts {
		out[k] = v
	}
	return out
}

// Texts returns a copy of all stored text fields.
func (d *FieldsDataset) Texts() map[string]string {
	out := make(map[string]string, len(d.text))
	for k, v := range d.text {
		out[k] = v
	}
	return out
}

// Currency resolves the unit reference of the fact stored under key,
// or nil when the key is absent or holds a non-fact value.
func (d *FieldsDataset) Currency(key string) *currency.Currency {
	f := d.facts[key]
	if f == nil {
		return nil
	}
	return f.Currency()
}
