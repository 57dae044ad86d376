// Package edgar retrieves company filings from SEC EDGAR and parses
// their XBRL instance documents into fundamental accounting concepts.
// API documentation: https://www.sec.gov/developer
package edgar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

const (
	// SEC EDGAR endpoints. Overridable on the client for tests.
	defaultSubmissionsURL = "https://data.sec.gov/submissions/CIK%s.json"
	defaultArchivesURL    = "https://www.sec.gov/Archives/edgar/data/%s/%s"
	defaultTickersURL     = "https://www.sec.gov/files/company_tickers.json"

	// Required User-Agent per SEC fair-access guidelines.
	UserAgent = "edgar-data/1.0 (contact@example.com)"

	// DefaultRequestsPerSecond is the SEC fair-access ceiling.
	DefaultRequestsPerSecond = 10
)

// defaultFormTypes are the forms retrieved when the caller does not
// restrict the set.
var defaultFormTypes = []string{"10-K", "10-Q", "8-K", "20-F", "40-F", "6-K", "S-1"}

// xbrlFormTypes are the forms expected to carry an XBRL instance
// document.
var xbrlFormTypes = map[string]bool{"10-K": true, "10-Q": true, "20-F": true, "40-F": true}

// Client handles SEC EDGAR requests. Every GET is rate limited to the
// SEC's fair-access ceiling and retried once after a one second pause
// before the error is surfaced.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter

	submissionsURL string
	archivesURL    string
	tickersURL     string

	// CleanHTML strips presentational markup from retrieved filing
	// documents when set.
	CleanHTML bool

	// Cache, when set, stores downloaded documents on disk so
	// repeated runs skip the network.
	Cache *DocumentCache

	// Agent overrides the default User-Agent header when set. The SEC
	// requires it to carry a reachable contact.
	Agent string
}

// NewClient creates an EDGAR client with the SEC production endpoints
// and the fair-access request rate.
func NewClient() *Client {
	return NewClientWithRate(DefaultRequestsPerSecond)
}

// NewClientWithRate creates an EDGAR client capped at the given
// requests per second.
func NewClientWithRate(requestsPerSecond float64) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	return &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		limiter:        rate.NewLimiter(rate.Limit(requestsPerSecond), int(requestsPerSecond)),
		submissionsURL: defaultSubmissionsURL,
		archivesURL:    defaultArchivesURL,
		tickersURL:     defaultTickersURL,
	}
}

// get fetches a URL with rate limiting and the retry-once policy.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	attempt := func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		agent := c.Agent
		if agent == "" {
			agent = UserAgent
		}
		req.Header.Set("User-Agent", agent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}

	body, err := backoff.RetryWithData(attempt,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 1))
	if err != nil {
		return nil, fmt.Errorf("edgar request failed: %w", err)
	}
	return body, nil
}

// tickerEntry is one row of the SEC ticker-to-CIK mapping file.
type tickerEntry struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

func (c *Client) tickerMapping(ctx context.Context) (map[string]tickerEntry, error) {
	body, err := c.get(ctx, c.tickersURL)
	if err != nil {
		return nil, err
	}
	var mapping map[string]tickerEntry
	if err := json.Unmarshal(body, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse ticker mapping: %w", err)
	}
	return mapping, nil
}

// LookupCIK resolves a company to its zero-padded 10-digit Central
// Index Key. Provide either a ticker or a list of candidate company
// names, not both; names are tried in order until one matches a
// registrant title (case-insensitive substring).
func (c *Client) LookupCIK(ctx context.Context, names []string, ticker string) (string, error) {
	if (len(names) == 0 && ticker == "") || (len(names) > 0 && ticker != "") {
		return "", fmt.Errorf("provide either a names list or a ticker")
	}

	mapping, err := c.tickerMapping(ctx)
	if err != nil {
		return "", err
	}

	if ticker != "" {
		upper := strings.ToUpper(ticker)
		for _, entry := range mapping {
			if entry.Ticker == upper {
				return fmt.Sprintf("%010d", entry.CIK), nil
			}
		}
		return "", &CIKNotFoundError{Ticker: ticker}
	}

	for _, name := range names {
		lower := strings.ToLower(name)
		for _, entry := range mapping {
			if strings.Contains(strings.ToLower(entry.Title), lower) {
				return fmt.Sprintf("%010d", entry.CIK), nil
			}
		}
	}
	return "", &CIKNotFoundError{Names: names}
}

// companyInfo is the submissions API response for one registrant.
type companyInfo struct {
	CIK     string `json:"cik"`
	Name    string `json:"name"`
	Filings struct {
		Recent recentFilings `json:"recent"`
	} `json:"filings"`
}

// recentFilings holds parallel arrays of filing attributes.
type recentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
}

// FilingQuery restricts which filings Filings returns. The zero value
// selects every supported form type with no date bounds.
type FilingQuery struct {
	FormTypes []string
	Start     time.Time // inclusive filing-date lower bound
	End       time.Time // inclusive filing-date upper bound
	Limit     int       // 0 = no limit

	// FetchDocuments downloads each filing's primary document and,
	// for forms that carry one, its XBRL instance document.
	FetchDocuments bool
}

// Filings retrieves a company's filings from the submissions API,
// most recent first, filtered by the query. With FetchDocuments set,
// each eligible filing also gets its primary document and a parsed
// instance document; a filing whose instance document is missing or
// unparseable keeps Document nil rather than failing the batch.
func (c *Client) Filings(ctx context.Context, cik string, query FilingQuery) ([]*Filing, error) {
	cik = padCIK(cik)

	body, err := c.get(ctx, fmt.Sprintf(c.submissionsURL, cik))
	if err != nil {
		return nil, err
	}
	var info companyInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse submissions response: %w", err)
	}

	formTypes := query.FormTypes
	if len(formTypes) == 0 {
		formTypes = defaultFormTypes
	}
	wanted := make(map[string]bool, len(formTypes))
	for _, ft := range formTypes {
		wanted[ft] = true
	}

	recent := info.Filings.Recent
	var filings []*Filing
	for i := range recent.AccessionNumber {
		if !wanted[recent.Form[i]] {
			continue
		}
		filingDate, err := time.Parse("2006-01-02", recent.FilingDate[i])
		if err != nil {
			continue
		}
		if !query.Start.IsZero() && filingDate.Before(query.Start) {
			continue
		}
		if !query.End.IsZero() && filingDate.After(query.End) {
			continue
		}
		reportDate, _ := time.Parse("2006-01-02", recent.ReportDate[i])

		accession := strings.ReplaceAll(recent.AccessionNumber[i], "-", "")
		filing := &Filing{
			CIK:             cik,
			AccessionNumber: recent.AccessionNumber[i],
			FormType:        recent.Form[i],
			FilingDate:      filingDate,
			PeriodEndDate:   reportDate,
			PrimaryDocument: recent.PrimaryDocument[i],
			DocumentURL:     fmt.Sprintf(c.archivesURL, info.CIK, accession+"/"+recent.PrimaryDocument[i]),
			IndexURL:        fmt.Sprintf(c.archivesURL, info.CIK, accession+"/index.json"),
		}

		if query.FetchDocuments {
			if err := c.fetchDocuments(ctx, filing); err != nil {
				return nil, err
			}
		}

		filings = append(filings, filing)
		if query.Limit > 0 && len(filings) >= query.Limit {
			break
		}
	}

	return filings, nil
}

// getDocument fetches one of a filing's archive files, through the
// cache when one is configured.
func (c *Client) getDocument(ctx context.Context, filing *Filing, name, url string) ([]byte, error) {
	if c.Cache != nil {
		if data := c.Cache.Get(filing.CIK, filing.AccessionNumber, name); data != nil {
			return data, nil
		}
	}
	data, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if c.Cache != nil {
		if err := c.Cache.Set(filing.CIK, filing.AccessionNumber, name, data); err != nil {
			return nil, fmt.Errorf("failed to cache %s: %w", name, err)
		}
	}
	return data, nil
}

// fetchDocuments downloads the filing's primary document and parses
// its XBRL instance document when the form type carries one.
func (c *Client) fetchDocuments(ctx context.Context, filing *Filing) error {
	html, err := c.getDocument(ctx, filing, filing.PrimaryDocument, filing.DocumentURL)
	if err != nil {
		return fmt.Errorf("filing %s: %w", filing.AccessionNumber, err)
	}
	filing.HTML = string(html)
	if c.CleanHTML {
		filing.HTML = CleanHTML(filing.HTML)
	}

	if !xbrlFormTypes[filing.FormType] {
		return nil
	}

	instanceURL, err := c.instanceDocumentURL(ctx, filing)
	if err != nil {
		// A structured-data form without an instance document is a
		// data gap, not a retrieval failure.
		var nf *FilingNotFoundError
		if errors.As(err, &nf) {
			return nil
		}
		return err
	}

	raw, err := c.getDocument(ctx, filing, instanceURL[strings.LastIndex(instanceURL, "/")+1:], instanceURL)
	if err != nil {
		return fmt.Errorf("filing %s: %w", filing.AccessionNumber, err)
	}
	doc, err := xbrl.Parse(raw)
	if err != nil {
		// Unparseable instance data degrades to a document-less filing.
		return nil
	}
	filing.InstanceURL = instanceURL
	filing.Document = doc
	return nil
}

// archiveIndex is the per-filing directory listing.
type archiveIndex struct {
	Directory struct {
		Item []struct {
			Name string `json:"name"`
		} `json:"item"`
	} `json:"directory"`
}

// instanceDocumentURL locates the XBRL instance document inside a
// filing's archive directory. Older filings ship a standalone *.xml
// instance, newer inline-XBRL ones a *_htm.xml export; linkbase and
// schema files are excluded by suffix.
func (c *Client) instanceDocumentURL(ctx context.Context, filing *Filing) (string, error) {
	body, err := c.get(ctx, filing.IndexURL)
	if err != nil {
		return "", err
	}
	var index archiveIndex
	if err := json.Unmarshal(body, &index); err != nil {
		return "", fmt.Errorf("failed to parse filing index: %w", err)
	}

	name := pickInstanceDocument(index.Directory.Item)
	if name == "" {
		return "", &FilingNotFoundError{CIK: filing.CIK, What: "XBRL instance document"}
	}

	accession := strings.ReplaceAll(filing.AccessionNumber, "-", "")
	return fmt.Sprintf(c.archivesURL, strings.TrimLeft(filing.CIK, "0"), accession+"/"+name), nil
}

// pickInstanceDocument selects the instance document from a filing's
// file listing, preferring the inline-XBRL export.
func pickInstanceDocument(items []struct {
	Name string `json:"name"`
}) string {
	var fallback string
	for _, item := range items {
		name := strings.ToLower(item.Name)
		if !strings.HasSuffix(name, ".xml") || isAuxiliaryXML(name) {
			continue
		}
		if strings.HasSuffix(name, "_htm.xml") {
			return item.Name
		}
		if fallback == "" {
			fallback = item.Name
		}
	}
	return fallback
}

// isAuxiliaryXML matches linkbase, schema-adjacent, and EDGAR viewer
// rendering files that share the archive directory with the instance
// document.
func isAuxiliaryXML(name string) bool {
	for _, suffix := range []string{"_cal.xml", "_def.xml", "_lab.xml", "_pre.xml"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	if name == "filingsummary.xml" {
		return true
	}
	// R1.xml .. Rn.xml rendering artifacts.
	base := strings.TrimSuffix(name, ".xml")
	if len(base) >= 2 && base[0] == 'r' {
		digits := true
		for _, ch := range base[1:] {
			if ch < '0' || ch > '9' {
				digits = false
				break
			}
		}
		if digits {
			return true
		}
	}
	return false
}

// FetchLatestAnnual fetches and parses the most recent annual filing
// (10-K, or 20-F for foreign private issuers) for a ticker.
func (c *Client) FetchLatestAnnual(ctx context.Context, ticker string) (*Filing, error) {
	cik, err := c.LookupCIK(ctx, nil, ticker)
	if err != nil {
		return nil, err
	}

	filings, err := c.Filings(ctx, cik, FilingQuery{
		FormTypes:      []string{"10-K", "20-F"},
		Limit:          1,
		FetchDocuments: true,
	})
	if err != nil {
		return nil, err
	}
	if len(filings) == 0 {
		return nil, &FilingNotFoundError{CIK: cik, What: "annual filing"}
	}
	return filings[0], nil
}

func padCIK(cik string) string {
	cik = strings.TrimLeft(cik, "0")
	if len(cik) >= 10 {
		return cik
	}
	return strings.Repeat("0", 10-len(cik)) + cik
}
