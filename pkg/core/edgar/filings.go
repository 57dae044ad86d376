package edgar

import (
	"fmt"
	"time"

	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

// Filing is one EDGAR filing: the archive metadata, the primary
// document, and the parsed XBRL instance document when the form type
// carries one. Document is nil for forms without structured data and
// for filings whose instance document could not be retrieved.
type Filing struct {
	CIK             string
	AccessionNumber string
	FormType        string
	FilingDate      time.Time
	PeriodEndDate   time.Time
	PrimaryDocument string
	DocumentURL     string
	IndexURL        string
	InstanceURL     string

	HTML     string
	Document *xbrl.Document
}

func (f *Filing) String() string {
	return fmt.Sprintf("%s - %s (%s)", f.CIK, f.FormType, f.PeriodEndDate.Format("2006-01-02"))
}

// FilingsDataset groups a company's filings by reporting cadence. The
// yearly bucket holds 10-K or 20-F forms and only accepts those with
// a parsed instance document.
type FilingsDataset struct {
	yearly   []*Filing
	forms10Q []*Filing
	forms8K  []*Filing
}

// Add inserts a filing into its bucket. Annual forms without a parsed
// instance document are silently dropped, since the structured data is
// what the yearly bucket exists for. Forms outside the three tracked
// cadences return an UnknownFormTypeError.
func (ds *FilingsDataset) Add(filing *Filing) error {
	switch filing.FormType {
	case "10-K", "20-F":
		if filing.Document != nil {
			ds.yearly = append(ds.yearly, filing)
		}
	case "10-Q":
		ds.forms10Q = append(ds.forms10Q, filing)
	case "8-K":
		ds.forms8K = append(ds.forms8K, filing)
	default:
		return &UnknownFormTypeError{CIK: filing.CIK, FormType: filing.FormType}
	}
	return nil
}

// Yearly returns the annual filings (10-K or 20-F), each with a
// parsed instance document.
func (ds *FilingsDataset) Yearly() []*Filing { return ds.yearly }

// Quarterly returns the 10-Q filings.
func (ds *FilingsDataset) Quarterly() []*Filing { return ds.forms10Q }

// CurrentReports returns the 8-K filings.
func (ds *FilingsDataset) CurrentReports() []*Filing { return ds.forms8K }

// All returns every filing in the dataset, yearly first.
func (ds *FilingsDataset) All() []*Filing {
	all := make([]*Filing, 0, len(ds.yearly)+len(ds.forms10Q)+len(ds.forms8K))
	all = append(all, ds.yearly...)
	all = append(all, ds.forms10Q...)
	all = append(all, ds.forms8K...)
	return all
}
