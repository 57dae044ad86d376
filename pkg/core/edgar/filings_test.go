package edgar

import (
	"errors"
	"testing"
	"time"

	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

func parsedDoc(t *testing.T) *xbrl.Document {
	t.Helper()
	doc, err := xbrl.Parse([]byte(instanceXML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestFilingsDatasetBuckets(t *testing.T) {
	doc := parsedDoc(t)
	ds := &FilingsDataset{}

	tenK := &Filing{CIK: "0000012345", FormType: "10-K", Document: doc}
	twentyF := &Filing{CIK: "0000012345", FormType: "20-F", Document: doc}
	tenQ := &Filing{CIK: "0000012345", FormType: "10-Q"}
	eightK := &Filing{CIK: "0000012345", FormType: "8-K"}
	for _, f := range []*Filing{tenK, twentyF, tenQ, eightK} {
		if err := ds.Add(f); err != nil {
			t.Fatalf("Add(%s) failed: %v", f.FormType, err)
		}
	}

	if got := len(ds.Yearly()); got != 2 {
		t.Errorf("yearly bucket has %d filings, want 2", got)
	}
	if got := len(ds.Quarterly()); got != 1 {
		t.Errorf("quarterly bucket has %d filings, want 1", got)
	}
	if got := len(ds.CurrentReports()); got != 1 {
		t.Errorf("8-K bucket has %d filings, want 1", got)
	}
	if got := len(ds.All()); got != 4 {
		t.Errorf("All returned %d filings, want 4", got)
	}
	if ds.All()[0] != tenK {
		t.Error("All should list yearly filings first")
	}
}

func TestFilingsDatasetDropsAnnualWithoutDocument(t *testing.T) {
	ds := &FilingsDataset{}
	if err := ds.Add(&Filing{CIK: "0000012345", FormType: "10-K"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := len(ds.Yearly()); got != 0 {
		t.Errorf("yearly bucket has %d filings, want 0", got)
	}
}

func TestFilingsDatasetRejectsUnknownFormType(t *testing.T) {
	ds := &FilingsDataset{}
	err := ds.Add(&Filing{CIK: "0000012345", FormType: "S-1"})

	var unknown *UnknownFormTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFormTypeError, got %v", err)
	}
	if unknown.FormType != "S-1" || unknown.CIK != "0000012345" {
		t.Errorf("unexpected error fields: %+v", unknown)
	}
}

func TestFilingString(t *testing.T) {
	f := &Filing{
		CIK:           "0000012345",
		FormType:      "10-K",
		PeriodEndDate: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	if got := f.String(); got != "0000012345 - 10-K (2023-12-31)" {
		t.Errorf("String = %q", got)
	}
}
