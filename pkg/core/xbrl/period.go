package xbrl

import (
	"fmt"
	"time"

	"github.com/antchfx/xmlquery"
)

const dateLayout = "2006-01-02"

// instantAnchors are balance-sheet concepts whose contexts are used to
// locate the current-period instant context.
const instantAnchors = "//us-gaap:Assets | //us-gaap:AssetsCurrent | //us-gaap:LiabilitiesAndStockholdersEquity"

// periodWindow returns the expected duration day count and the
// accepted [min,max] day window for the requested period. Windows
// follow the XBRL US consistency rule DQC_0006 for each fiscal period
// focus; the quarter flag forces the quarterly window regardless of
// the filing's own focus.
func periodWindow(focus string, quarter bool) (ndays, minDays, maxDays int, err error) {
	if quarter {
		return 90, 77, 119, nil
	}
	switch focus {
	case "FY":
		return 364, 350, 379, nil
	case "Q1":
		return 90, 77, 119, nil
	case "Q2":
		return 180, 154, 204, nil
	case "Q3":
		return 270, 238, 287, nil
	default:
		return 0, 0, 0, &PeriodResolutionError{Reason: fmt.Sprintf("unknown fiscal period focus %q", focus)}
	}
}

// hasDimensions reports whether a context carries any explicit
// dimensional qualifier. Unqualified contexts are the defaults for
// whole-entity facts.
func (d *Document) hasDimensions(ctx *xmlquery.Node) bool {
	return len(d.NodeList("xbrli:entity/xbrli:segment/xbrldi:explicitMember", ctx)) > 0
}

// resolvePeriod determines the instant and duration context ids for
// the period ending endDate, plus the contexts usable for per-segment
// breakdowns. Filer-submitted documents vary widely in how thoroughly
// they tag contexts, so both resolutions tolerate noisy data: the
// instant side has two fallback paths and the duration side accepts
// any context whose day count falls within the period's tolerance
// window.
func (d *Document) resolvePeriod(endDate string, quarter bool) error {
	d.contextForInstants = ""
	d.contextForDurations = ""
	d.balanceSheetDate = ""
	d.periodStartYTD = ""
	d.segmentContexts = nil

	d.resolveInstantContext(endDate)

	if err := d.resolveDurationContext(endDate, quarter); err != nil {
		return err
	}

	d.balanceSheetDate = endDate

	if d.contextForInstants == "" {
		d.contextForInstants = d.alternativeInstantContext()
	}

	d.collectSegmentContexts()

	d.Fields.SetText("BalanceSheetDate", d.balanceSheetDate)
	d.Fields.SetText("IncomeStatementPeriodYTD", d.periodStartYTD)
	d.Fields.SetText("ContextForInstants", d.contextForInstants)
	d.Fields.SetText("ContextForDurations", d.contextForDurations)

	return nil
}

// resolveInstantContext scans the balance-sheet anchor facts for an
// unqualified context whose instant equals endDate. When none matches
// (typically a wrong DocumentPeriodEndDate), it falls back to the end
// date of the period-end fact's own context, or of a narrative
// disclosure block.
func (d *Document) resolveInstantContext(endDate string) {
	for _, fact := range d.NodeList(instantAnchors, nil) {
		ctxID := fact.SelectAttr("contextRef")
		if ctxID == "" {
			continue
		}
		ctx := d.Node("//xbrli:context[@id='"+ctxID+"']", nil)
		if ctx == nil {
			continue
		}
		instant := d.Node("xbrli:period/xbrli:instant", ctx)
		if instant == nil || instant.InnerText() != endDate {
			continue
		}
		if d.hasDimensions(ctx) {
			continue
		}
		d.contextForInstants = ctxID
		return
	}

	// The stated period end date did not match any anchor context.
	// Adopt the end date actually carried by a commonly tagged fact.
	anchor := d.Node("//dei:DocumentPeriodEndDate", nil)
	if anchor == nil {
		anchor = d.Node("//us-gaap:OrganizationConsolidationAndPresentationOfFinancialStatementsDisclosureTextBlock | //us-gaap:SignificantAccountingPoliciesTextBlock", nil)
	}
	if anchor == nil {
		return
	}
	ctxID := anchor.SelectAttr("contextRef")
	endNode := d.Node("//xbrli:context[@id='"+ctxID+"']/xbrli:period/xbrli:endDate", nil)
	if endNode == nil {
		return
	}
	altEnd := endNode.InnerText()

	for _, ctx := range d.NodeList("//xbrli:context[xbrli:period/xbrli:instant='"+altEnd+"']", nil) {
		if d.hasDimensions(ctx) {
			continue
		}
		d.contextForInstants = ctx.SelectAttr("id")
		return
	}
}

// resolveDurationContext selects the unqualified duration context
// ending at endDate whose day count is closest to the expected period
// length, rejecting it when it falls outside the tolerance window.
func (d *Document) resolveDurationContext(endDate string, quarter bool) error {
	ndays, minDays, maxDays, err := periodWindow(d.Fields.Text("DocumentFiscalPeriodFocus"), quarter)
	if err != nil {
		return err
	}

	end, perr := time.Parse(dateLayout, endDate)
	if perr != nil {
		return &PeriodResolutionError{Reason: fmt.Sprintf("invalid period end date %q", endDate)}
	}

	bestCtx := ""
	bestStart := ""
	bestDelta := -1

	for _, ctx := range d.NodeList("//xbrli:context", nil) {
		endNode := d.Node("xbrli:period/xbrli:endDate", ctx)
		if endNode == nil || endNode.InnerText() != endDate {
			continue
		}
		if d.hasDimensions(ctx) {
			continue
		}
		startNode := d.Node("xbrli:period/xbrli:startDate", ctx)
		if startNode == nil {
			continue
		}
		start, serr := time.Parse(dateLayout, startNode.InnerText())
		if serr != nil {
			continue
		}

		delta := dayCount(start, end)
		// Strict improvement only: ties keep the first-encountered
		// candidate.
		if bestDelta < 0 || abs(delta-ndays) < abs(bestDelta-ndays) {
			bestDelta = delta
			bestStart = startNode.InnerText()
			bestCtx = ctx.SelectAttr("id")
		}
	}

	if bestCtx == "" {
		return &PeriodResolutionError{Reason: "could not find a valid duration context"}
	}
	if bestDelta < minDays || bestDelta > maxDays {
		return &PeriodResolutionError{Reason: "best duration context outside tolerance window", DeltaDay: bestDelta, WantDay: ndays}
	}

	d.contextForDurations = bestCtx
	d.periodStartYTD = bestStart
	return nil
}

// alternativeInstantContext handles documents where no anchor fact has
// an unqualified instant context: any context whose instant equals the
// balance sheet date and which actually backs an Assets fact will do.
func (d *Document) alternativeInstantContext() string {
	for _, ctx := range d.NodeList("//xbrli:context[xbrli:period/xbrli:instant='"+d.balanceSheetDate+"']", nil) {
		id := ctx.SelectAttr("id")
		if d.Node("//us-gaap:Assets[@contextRef='"+id+"']", nil) != nil {
			return id
		}
	}
	return ""
}

// collectSegmentContexts retains every context spanning exactly the
// resolved duration that is qualified on the business-segment axis,
// paired with its segment member label, for later disaggregation.
func (d *Document) collectSegmentContexts() {
	for _, ctx := range d.NodeList("//xbrli:context", nil) {
		startNode := d.Node("xbrli:period/xbrli:startDate", ctx)
		endNode := d.Node("xbrli:period/xbrli:endDate", ctx)
		if startNode == nil || endNode == nil {
			continue
		}
		if startNode.InnerText() != d.periodStartYTD || endNode.InnerText() != d.balanceSheetDate {
			continue
		}
		members := d.NodeList("xbrli:entity/xbrli:segment/xbrldi:explicitMember[@dimension='us-gaap:StatementBusinessSegmentsAxis']", ctx)
		if len(members) == 0 {
			continue
		}
		d.segmentContexts = append(d.segmentContexts, segmentContext{
			node:   ctx,
			member: members[0].InnerText(),
		})
	}
}

func dayCount(start, end time.Time) int {
	return abs(int(end.Sub(start).Hours() / 24))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
