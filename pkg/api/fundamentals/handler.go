// Package fundamentals provides HTTP API handlers for resolved SEC
// filing fundamentals.
package fundamentals

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/rontwo/edgar-data/pkg/core/edgar"
	"github.com/rontwo/edgar-data/pkg/core/xbrl"
)

// Handler serves fundamentals lookups backed by an EDGAR client.
type Handler struct {
	client *edgar.Client
}

// NewHandler creates a handler on the given client.
func NewHandler(client *edgar.Client) *Handler {
	return &Handler{client: client}
}

// FactResponse is one resolved concept in the response payload.
type FactResponse struct {
	Value    float64 `json:"value"`
	UnitRef  string  `json:"unit_ref,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// SegmentResponse is one business segment's share of a concept.
type SegmentResponse struct {
	Segment string  `json:"segment"`
	Value   float64 `json:"value"`
}

// FundamentalsResponse is the payload for GET /api/fundamentals.
type FundamentalsResponse struct {
	Ticker          string                    `json:"ticker"`
	CIK             string                    `json:"cik"`
	FormType        string                    `json:"form_type"`
	FilingDate      string                    `json:"filing_date"`
	BalanceSheet    string                    `json:"balance_sheet_date"`
	RegistrantName  string                    `json:"registrant_name"`
	Facts           map[string]FactResponse   `json:"facts"`
	Segments        map[string][]SegmentResponse `json:"segments,omitempty"`
	ElapsedSeconds  float64                   `json:"elapsed_seconds"`
}

// HandleFundamentals handles GET /api/fundamentals?ticker=AAPL.
// Optional parameters: quarter=true for the latest 10-Q, year_offset=N
// for a prior reporting period, segments=Concept for per-segment
// disaggregation.
func (h *Handler) HandleFundamentals(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		http.Error(w, "ticker parameter is required", http.StatusBadRequest)
		return
	}
	quarter := r.URL.Query().Get("quarter") == "true"
	yearOffset, _ := strconv.Atoi(r.URL.Query().Get("year_offset"))

	startTime := time.Now()
	ctx := r.Context()

	cik, err := h.client.LookupCIK(ctx, nil, ticker)
	if err != nil {
		var notFound *edgar.CIKNotFoundError
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("CIK lookup failed: %v", err), http.StatusBadGateway)
		return
	}

	formTypes := []string{"10-K", "20-F"}
	if quarter {
		formTypes = []string{"10-Q"}
	}
	filings, err := h.client.Filings(ctx, cik, edgar.FilingQuery{
		FormTypes:      formTypes,
		Limit:          1,
		FetchDocuments: true,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("filing retrieval failed: %v", err), http.StatusBadGateway)
		return
	}
	if len(filings) == 0 || filings[0].Document == nil {
		http.Error(w, fmt.Sprintf("no parseable %v filing for %s", formTypes, ticker), http.StatusNotFound)
		return
	}
	filing := filings[0]
	doc := filing.Document

	if yearOffset != 0 || quarter {
		if err := doc.LoadPeriod(yearOffset, quarter); err != nil {
			var unresolved *xbrl.PeriodResolutionError
			if errors.As(err, &unresolved) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, fmt.Sprintf("period resolution failed: %v", err), http.StatusInternalServerError)
			return
		}
	}

	resp := &FundamentalsResponse{
		Ticker:         ticker,
		CIK:            cik,
		FormType:       filing.FormType,
		FilingDate:     filing.FilingDate.Format("2006-01-02"),
		BalanceSheet:   doc.BalanceSheetDate(),
		RegistrantName: doc.Fields.Text("EntityRegistrantName"),
		Facts:          make(map[string]FactResponse),
	}
	for name, fact := range doc.Fields.Facts() {
		fr := FactResponse{Value: fact.Value, UnitRef: fact.UnitRef}
		if cur := fact.Currency(); cur != nil {
			fr.Currency = cur.Code
		}
		resp.Facts[name] = fr
	}

	if concept := r.URL.Query().Get("segments"); concept != "" {
		values, err := doc.SegmentValues(concept)
		if err != nil {
			log.Printf("segment disaggregation for %s: %v", concept, err)
		}
		if len(values) > 0 {
			resp.Segments = map[string][]SegmentResponse{concept: {}}
			for _, sv := range values {
				resp.Segments[concept] = append(resp.Segments[concept],
					SegmentResponse{Segment: sv.Segment, Value: sv.Value})
			}
		}
	}

	resp.ElapsedSeconds = time.Since(startTime).Seconds()
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
