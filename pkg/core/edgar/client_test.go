package edgar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

const tickerMappingJSON = `{
  "0": {"cik_str": 12345, "ticker": "ACME", "title": "Acme Corp"},
  "1": {"cik_str": 67890, "ticker": "BETA", "title": "Beta Industries Inc"}
}`

const submissionsJSON = `{
  "cik": "12345",
  "name": "Acme Corp",
  "filings": {
    "recent": {
      "accessionNumber": ["0000012345-24-000001", "0000012345-24-000002", "0000012345-23-000009"],
      "filingDate": ["2024-02-15", "2024-01-10", "2023-05-01"],
      "reportDate": ["2023-12-31", "2024-01-08", "2023-03-31"],
      "form": ["10-K", "8-K", "10-Q"],
      "primaryDocument": ["acme-20231231.htm", "acme-8k.htm", "acme-20230331.htm"]
    }
  }
}`

const indexJSON = `{
  "directory": {
    "item": [
      {"name": "acme-20231231.htm"},
      {"name": "acme-20231231_cal.xml"},
      {"name": "acme-20231231_lab.xml"},
      {"name": "R1.xml"},
      {"name": "FilingSummary.xml"},
      {"name": "acme-20231231_htm.xml"}
    ]
  }
}`

// instanceXML is a minimal resolvable annual instance document.
const instanceXML = `<?xml version="1.0" encoding="utf-8"?>
<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"
            xmlns:us-gaap="http://fasb.org/us-gaap/2023"
            xmlns:dei="http://xbrl.sec.gov/dei/2023"
            xmlns:iso4217="http://www.xbrl.org/2003/iso4217">
  <xbrli:context id="FY2023">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000012345</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:startDate>2023-01-01</xbrli:startDate>
      <xbrli:endDate>2023-12-31</xbrli:endDate>
    </xbrli:period>
  </xbrli:context>
  <xbrli:context id="AsOf2023">
    <xbrli:entity>
      <xbrli:identifier scheme="http://www.sec.gov/CIK">0000012345</xbrli:identifier>
    </xbrli:entity>
    <xbrli:period>
      <xbrli:instant>2023-12-31</xbrli:instant>
    </xbrli:period>
  </xbrli:context>
  <xbrli:unit id="usd">
    <xbrli:measure>iso4217:USD</xbrli:measure>
  </xbrli:unit>
  <dei:DocumentType contextRef="FY2023">10-K</dei:DocumentType>
  <dei:DocumentPeriodEndDate contextRef="FY2023">2023-12-31</dei:DocumentPeriodEndDate>
  <dei:DocumentFiscalPeriodFocus contextRef="FY2023">FY</dei:DocumentFiscalPeriodFocus>
  <dei:EntityRegistrantName contextRef="FY2023">ACME CORP</dei:EntityRegistrantName>
  <us-gaap:Assets contextRef="AsOf2023" unitRef="usd" decimals="0">100</us-gaap:Assets>
  <us-gaap:Revenues contextRef="FY2023" unitRef="usd" decimals="0">1000</us-gaap:Revenues>
</xbrli:xbrl>`

// newTestClient points a Client at a fake EDGAR server.
func newTestClient(server *httptest.Server) *Client {
	c := NewClient()
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	c.submissionsURL = server.URL + "/submissions/CIK%s.json"
	c.tickersURL = server.URL + "/files/company_tickers.json"
	c.archivesURL = server.URL + "/Archives/edgar/data/%s/%s"
	return c
}

func newFakeEdgar(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tickerMappingJSON))
	})
	mux.HandleFunc("/submissions/CIK0000012345.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(submissionsJSON))
	})
	mux.HandleFunc("/Archives/edgar/data/12345/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "index.json"):
			w.Write([]byte(indexJSON))
		case strings.HasSuffix(r.URL.Path, "_htm.xml"):
			w.Write([]byte(instanceXML))
		default:
			w.Write([]byte("<html><body>filing text</body></html>"))
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, newTestClient(server)
}

func TestLookupCIKByTicker(t *testing.T) {
	_, client := newFakeEdgar(t)

	cik, err := client.LookupCIK(context.Background(), nil, "ACME")
	if err != nil {
		t.Fatalf("LookupCIK failed: %v", err)
	}
	if cik != "0000012345" {
		t.Errorf("cik = %q, want 0000012345", cik)
	}

	_, err = client.LookupCIK(context.Background(), nil, "NOPE")
	var notFound *CIKNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected CIKNotFoundError, got %v", err)
	}
	if notFound.Ticker != "NOPE" {
		t.Errorf("error ticker = %q, want NOPE", notFound.Ticker)
	}
}

func TestLookupCIKByNames(t *testing.T) {
	_, client := newFakeEdgar(t)

	// First name misses, second matches a registrant title.
	cik, err := client.LookupCIK(context.Background(), []string{"Gamma LLC", "beta industries"}, "")
	if err != nil {
		t.Fatalf("LookupCIK failed: %v", err)
	}
	if cik != "0000067890" {
		t.Errorf("cik = %q, want 0000067890", cik)
	}
}

func TestLookupCIKRequiresExactlyOneInput(t *testing.T) {
	_, client := newFakeEdgar(t)

	if _, err := client.LookupCIK(context.Background(), nil, ""); err == nil {
		t.Error("expected error with no inputs")
	}
	if _, err := client.LookupCIK(context.Background(), []string{"Acme"}, "ACME"); err == nil {
		t.Error("expected error with both inputs")
	}
}

func TestFilingsFiltersFormTypesAndDates(t *testing.T) {
	_, client := newFakeEdgar(t)

	filings, err := client.Filings(context.Background(), "12345", FilingQuery{})
	if err != nil {
		t.Fatalf("Filings failed: %v", err)
	}
	if len(filings) != 3 {
		t.Fatalf("got %d filings, want 3", len(filings))
	}
	if filings[0].FormType != "10-K" || filings[0].AccessionNumber != "0000012345-24-000001" {
		t.Errorf("unexpected first filing: %+v", filings[0])
	}

	annual, err := client.Filings(context.Background(), "12345", FilingQuery{FormTypes: []string{"10-K"}})
	if err != nil {
		t.Fatalf("Filings failed: %v", err)
	}
	if len(annual) != 1 || annual[0].FormType != "10-K" {
		t.Fatalf("form filter: got %d filings", len(annual))
	}

	bounded, err := client.Filings(context.Background(), "12345", FilingQuery{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Filings failed: %v", err)
	}
	if len(bounded) != 1 || bounded[0].FormType != "8-K" {
		t.Fatalf("date filter: got %d filings", len(bounded))
	}
}

func TestFilingsFetchesAndParsesInstanceDocument(t *testing.T) {
	_, client := newFakeEdgar(t)

	filings, err := client.Filings(context.Background(), "12345", FilingQuery{
		FormTypes:      []string{"10-K"},
		FetchDocuments: true,
	})
	if err != nil {
		t.Fatalf("Filings failed: %v", err)
	}
	if len(filings) != 1 {
		t.Fatalf("got %d filings, want 1", len(filings))
	}

	filing := filings[0]
	if !strings.Contains(filing.HTML, "filing text") {
		t.Errorf("primary document not fetched: %q", filing.HTML)
	}
	if filing.Document == nil {
		t.Fatal("instance document not parsed")
	}
	if got := filing.Document.Fields.Text("EntityRegistrantName"); got != "ACME CORP" {
		t.Errorf("EntityRegistrantName = %q, want ACME CORP", got)
	}
	assets := filing.Document.Fundamentals().Assets
	if assets == nil || assets.Value != 100 {
		t.Errorf("Assets = %v, want 100", assets)
	}
}

func TestFetchLatestAnnual(t *testing.T) {
	_, client := newFakeEdgar(t)

	filing, err := client.FetchLatestAnnual(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("FetchLatestAnnual failed: %v", err)
	}
	if filing.FormType != "10-K" {
		t.Errorf("FormType = %q, want 10-K", filing.FormType)
	}
	if filing.Document == nil {
		t.Error("expected parsed instance document")
	}
}

func TestGetRetriesOnceOnServerError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := newTestClient(server)
	body, err := client.get(context.Background(), server.URL+"/flaky")
	if err != nil {
		t.Fatalf("get failed after retry: %v", err)
	}
	if string(body) != "ok" {
		t.Errorf("body = %q, want ok", body)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestGetGivesUpAfterOneRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server)
	if _, err := client.get(context.Background(), server.URL+"/down"); err == nil {
		t.Fatal("expected error from persistent failure")
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
}

func TestGetSetsUserAgent(t *testing.T) {
	var agent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := newTestClient(server)
	if _, err := client.get(context.Background(), server.URL); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if agent != UserAgent {
		t.Errorf("User-Agent = %q, want %q", agent, UserAgent)
	}
}

func TestDocumentCacheSkipsNetwork(t *testing.T) {
	var archiveCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/files/company_tickers.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tickerMappingJSON))
	})
	mux.HandleFunc("/submissions/CIK0000012345.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(submissionsJSON))
	})
	mux.HandleFunc("/Archives/edgar/data/12345/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "index.json"):
			w.Write([]byte(indexJSON))
		default:
			archiveCalls.Add(1)
			if strings.HasSuffix(r.URL.Path, "_htm.xml") {
				w.Write([]byte(instanceXML))
				return
			}
			w.Write([]byte("<html><body>filing text</body></html>"))
		}
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(server)
	client.Cache = NewDocumentCacheWithDir(t.TempDir())

	query := FilingQuery{FormTypes: []string{"10-K"}, FetchDocuments: true}
	if _, err := client.Filings(context.Background(), "12345", query); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	first := archiveCalls.Load()

	filings, err := client.Filings(context.Background(), "12345", query)
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if archiveCalls.Load() != first {
		t.Errorf("archive calls grew from %d to %d on cached run", first, archiveCalls.Load())
	}
	if filings[0].Document == nil {
		t.Error("cached instance document not parsed")
	}
}

func TestPadCIK(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"12345", "0000012345"},
		{"0000012345", "0000012345"},
		{"320193", "0000320193"},
		{"12345678901", "12345678901"}, // overlong input passes through unpadded
		{"000012345678901", "12345678901"},
	}
	for _, c := range cases {
		if got := padCIK(c.in); got != c.want {
			t.Errorf("padCIK(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPickInstanceDocumentPrefersInlineExport(t *testing.T) {
	items := []struct {
		Name string `json:"name"`
	}{
		{Name: "acme-20231231_cal.xml"},
		{Name: "acme-20231231.xml"},
		{Name: "R2.xml"},
		{Name: "acme-20231231_htm.xml"},
	}
	if got := pickInstanceDocument(items); got != "acme-20231231_htm.xml" {
		t.Errorf("picked %q, want acme-20231231_htm.xml", got)
	}

	// Without the inline export the standalone instance wins.
	if got := pickInstanceDocument(items[:3]); got != "acme-20231231.xml" {
		t.Errorf("picked %q, want acme-20231231.xml", got)
	}

	// Only auxiliary files present.
	if got := pickInstanceDocument(items[:1]); got != "" {
		t.Errorf("picked %q, want empty", got)
	}
}
