package xbrl

// Fundamentals holds every standardized accounting concept resolved
// or imputed for one reporting period. Every field is optional: a nil
// fact means the filing neither reported the concept nor disclosed
// enough to derive it. Callers must nil-check before arithmetic.
type Fundamentals struct {
	// Balance sheet
	Assets                                     *Fact
	CurrentAssets                              *Fact
	NoncurrentAssets                           *Fact
	LiabilitiesAndEquity                       *Fact
	Liabilities                                *Fact
	CurrentLiabilities                         *Fact
	NoncurrentLiabilities                      *Fact
	CommitmentsAndContingencies                *Fact
	TemporaryEquity                            *Fact
	Equity                                     *Fact
	EquityAttributableToNoncontrollingInterest *Fact
	EquityAttributableToParent                 *Fact

	// Income statement
	Revenues                                      *Fact
	CostOfRevenue                                 *Fact
	GrossProfit                                   *Fact
	OperatingExpenses                             *Fact
	CostsAndExpenses                              *Fact
	OtherOperatingIncome                          *Fact
	OperatingIncomeLoss                           *Fact
	NonoperatingIncomeLoss                        *Fact
	InterestAndDebtExpense                        *Fact
	IncomeBeforeEquityMethodInvestments           *Fact
	IncomeFromEquityMethodInvestments             *Fact
	IncomeFromContinuingOperationsBeforeTax       *Fact
	IncomeTaxExpenseBenefit                       *Fact
	IncomeFromContinuingOperationsAfterTax        *Fact
	IncomeFromDiscontinuedOperations              *Fact
	ExtraordinaryItemsGainLoss                    *Fact
	NetIncomeLoss                                 *Fact
	NetIncomeAvailableToCommonStockholdersBasic   *Fact
	PreferredStockDividendsAndOtherAdjustments    *Fact
	NetIncomeAttributableToNoncontrollingInterest *Fact
	NetIncomeAttributableToParent                 *Fact
	OtherComprehensiveIncome                      *Fact
	ComprehensiveIncome                           *Fact
	ComprehensiveIncomeAttributableToParent       *Fact
	ComprehensiveIncomeAttributableToNoncontrollingInterest *Fact
	NonoperatingIncomeLossPlusInterestAndDebtExpense        *Fact
	NonoperatingIncomePlusInterestAndDebtExpensePlusIncomeFromEquityMethodInvestments *Fact
	ResearchAndDevelopmentExpense                           *Fact

	// Cash flow statement
	NetCashFlow                        *Fact
	NetCashFlowsOperating              *Fact
	NetCashFlowsInvesting              *Fact
	NetCashFlowsFinancing              *Fact
	NetCashFlowsOperatingContinuing    *Fact
	NetCashFlowsInvestingContinuing    *Fact
	NetCashFlowsFinancingContinuing    *Fact
	NetCashFlowsOperatingDiscontinued  *Fact
	NetCashFlowsInvestingDiscontinued  *Fact
	NetCashFlowsFinancingDiscontinued  *Fact
	NetCashFlowsDiscontinued           *Fact
	NetCashFlowsContinuing             *Fact
	ExchangeGainsLosses                *Fact

	// Derived ratios, unitless. Left nil when any input is missing or
	// a denominator is zero.
	SGR *Fact
	ROA *Fact
	ROE *Fact
	ROS *Fact

	// Extensions holds concepts with no dedicated field, currently the
	// IFRS-only expense items.
	Extensions map[string]*Fact
}

type conceptField struct {
	name string
	fact **Fact
}

// fields pairs every struct field with its dataset key, in statement
// order. Both the IFRS fallback pass and the dataset sync walk this
// list.
func (f *Fundamentals) fields() []conceptField {
	return []conceptField{
		{"Assets", &f.Assets},
		{"CurrentAssets", &f.CurrentAssets},
		{"NoncurrentAssets", &f.NoncurrentAssets},
		{"LiabilitiesAndEquity", &f.LiabilitiesAndEquity},
		{"Liabilities", &f.Liabilities},
		{"CurrentLiabilities", &f.CurrentLiabilities},
		{"NoncurrentLiabilities", &f.NoncurrentLiabilities},
		{"CommitmentsAndContingencies", &f.CommitmentsAndContingencies},
		{"TemporaryEquity", &f.TemporaryEquity},
		{"Equity", &f.Equity},
		{"EquityAttributableToNoncontrollingInterest", &f.EquityAttributableToNoncontrollingInterest},
		{"EquityAttributableToParent", &f.EquityAttributableToParent},
		{"Revenues", &f.Revenues},
		{"CostOfRevenue", &f.CostOfRevenue},
		{"GrossProfit", &f.GrossProfit},
		{"OperatingExpenses", &f.OperatingExpenses},
		{"CostsAndExpenses", &f.CostsAndExpenses},
		{"OtherOperatingIncome", &f.OtherOperatingIncome},
		{"OperatingIncomeLoss", &f.OperatingIncomeLoss},
		{"NonoperatingIncomeLoss", &f.NonoperatingIncomeLoss},
		{"InterestAndDebtExpense", &f.InterestAndDebtExpense},
		{"IncomeBeforeEquityMethodInvestments", &f.IncomeBeforeEquityMethodInvestments},
		{"IncomeFromEquityMethodInvestments", &f.IncomeFromEquityMethodInvestments},
		{"IncomeFromContinuingOperationsBeforeTax", &f.IncomeFromContinuingOperationsBeforeTax},
		{"IncomeTaxExpenseBenefit", &f.IncomeTaxExpenseBenefit},
		{"IncomeFromContinuingOperationsAfterTax", &f.IncomeFromContinuingOperationsAfterTax},
		{"IncomeFromDiscontinuedOperations", &f.IncomeFromDiscontinuedOperations},
		{"ExtraordinaryItemsGainLoss", &f.ExtraordinaryItemsGainLoss},
		{"NetIncomeLoss", &f.NetIncomeLoss},
		{"NetIncomeAvailableToCommonStockholdersBasic", &f.NetIncomeAvailableToCommonStockholdersBasic},
		{"PreferredStockDividendsAndOtherAdjustments", &f.PreferredStockDividendsAndOtherAdjustments},
		{"NetIncomeAttributableToNoncontrollingInterest", &f.NetIncomeAttributableToNoncontrollingInterest},
		{"NetIncomeAttributableToParent", &f.NetIncomeAttributableToParent},
		{"OtherComprehensiveIncome", &f.OtherComprehensiveIncome},
		{"ComprehensiveIncome", &f.ComprehensiveIncome},
		{"ComprehensiveIncomeAttributableToParent", &f.ComprehensiveIncomeAttributableToParent},
		{"ComprehensiveIncomeAttributableToNoncontrollingInterest", &f.ComprehensiveIncomeAttributableToNoncontrollingInterest},
		{"NonoperatingIncomeLossPlusInterestAndDebtExpense", &f.NonoperatingIncomeLossPlusInterestAndDebtExpense},
		{"NonoperatingIncomePlusInterestAndDebtExpensePlusIncomeFromEquityMethodInvestments", &f.NonoperatingIncomePlusInterestAndDebtExpensePlusIncomeFromEquityMethodInvestments},
		{"ResearchAndDevelopmentExpense", &f.ResearchAndDevelopmentExpense},
		{"NetCashFlow", &f.NetCashFlow},
		{"NetCashFlowsOperating", &f.NetCashFlowsOperating},
		{"NetCashFlowsInvesting", &f.NetCashFlowsInvesting},
		{"NetCashFlowsFinancing", &f.NetCashFlowsFinancing},
		{"NetCashFlowsOperatingContinuing", &f.NetCashFlowsOperatingContinuing},
		{"NetCashFlowsInvestingContinuing", &f.NetCashFlowsInvestingContinuing},
		{"NetCashFlowsFinancingContinuing", &f.NetCashFlowsFinancingContinuing},
		{"NetCashFlowsOperatingDiscontinued", &f.NetCashFlowsOperatingDiscontinued},
		{"NetCashFlowsInvestingDiscontinued", &f.NetCashFlowsInvestingDiscontinued},
		{"NetCashFlowsFinancingDiscontinued", &f.NetCashFlowsFinancingDiscontinued},
		{"NetCashFlowsDiscontinued", &f.NetCashFlowsDiscontinued},
		{"NetCashFlowsContinuing", &f.NetCashFlowsContinuing},
		{"ExchangeGainsLosses", &f.ExchangeGainsLosses},
		{"SGR", &f.SGR},
		{"ROA", &f.ROA},
		{"ROE", &f.ROE},
		{"ROS", &f.ROS},
	}
}

// store syncs every resolved concept into the dataset under its
// canonical key. Nil facts are not stored, so absent concepts stay
// absent on lookup.
func (f *Fundamentals) store(ds *FieldsDataset) {
	for _, cf := range f.fields() {
		if *cf.fact != nil {
			ds.SetFact(cf.name, *cf.fact)
		}
	}
	for name, fact := range f.Extensions {
		ds.SetFact(name, fact)
	}
}

// deriveFundamentals resolves the standardized concept set for the
// document's loaded period. Direct lookups run first, then a fixed,
// order-dependent sequence of algebraic imputations fills gaps from
// accounting identities; later rules rely on earlier ones having run.
// Every step is guarded by explicit presence checks and skipped
// silently when inputs are missing: sparse filings produce sparse
// results, never errors.
func deriveFundamentals(d *Document) *Fundamentals {
	f := &Fundamentals{Extensions: make(map[string]*Fact)}

	f.deriveBalanceSheet(d)
	f.deriveIncomeStatement(d)
	f.deriveCashFlow(d)
	f.deriveRatios()
	f.ResearchAndDevelopmentExpense = d.Resolve("ResearchAndDevelopmentExpense")
	f.deriveIFRS(d)

	return f
}

func (f *Fundamentals) deriveBalanceSheet(d *Document) {
	f.Assets = d.Resolve("Assets")
	f.CurrentAssets = d.Resolve("CurrentAssets")

	f.NoncurrentAssets = d.Resolve("NoncurrentAssets")
	if f.NoncurrentAssets == nil && f.Assets != nil && f.CurrentAssets != nil {
		f.NoncurrentAssets = f.Assets.Sub(f.CurrentAssets)
	}

	f.LiabilitiesAndEquity = d.Resolve("LiabilitiesAndEquity")
	f.Liabilities = d.Resolve("Liabilities")
	f.CurrentLiabilities = d.Resolve("CurrentLiabilities")

	f.NoncurrentLiabilities = d.Resolve("NoncurrentLiabilities")
	if f.NoncurrentLiabilities == nil && f.Liabilities != nil && f.CurrentLiabilities != nil {
		f.NoncurrentLiabilities = f.Liabilities.Sub(f.CurrentLiabilities)
	}

	f.CommitmentsAndContingencies = d.Resolve("CommitmentsAndContingencies")

	// Redeemable noncontrolling interest is rare but can be reported
	// separately from the rest of temporary equity.
	f.TemporaryEquity = d.Resolve("TemporaryEquity")
	if rnci := d.Resolve("RedeemableNoncontrollingInterest"); rnci != nil && f.TemporaryEquity != nil {
		f.TemporaryEquity = f.TemporaryEquity.Add(rnci)
	}

	f.Equity = d.Resolve("Equity")
	f.EquityAttributableToNoncontrollingInterest = d.Resolve("EquityAttributableToNoncontrollingInterest")
	f.EquityAttributableToParent = d.Resolve("EquityAttributableToParent")

	// Some filings tag only a current-assets total that already equals
	// the whole balance sheet.
	if f.Assets == nil && f.LiabilitiesAndEquity != nil &&
		f.CurrentAssets != nil && f.CurrentAssets.Value == f.LiabilitiesAndEquity.Value {
		f.Assets = f.CurrentAssets
	}

	if f.Assets == nil && f.NoncurrentAssets == nil &&
		f.LiabilitiesAndEquity != nil && f.Liabilities != nil && f.Equity != nil &&
		f.LiabilitiesAndEquity.Value == f.Liabilities.Value+f.Equity.Value {
		f.Assets = f.CurrentAssets
	}

	if f.Assets != nil && f.CurrentAssets != nil {
		f.NoncurrentAssets = f.Assets.Sub(f.CurrentAssets)
	}

	if f.LiabilitiesAndEquity == nil && f.Assets != nil {
		f.LiabilitiesAndEquity = f.Assets
	}

	if f.EquityAttributableToNoncontrollingInterest != nil && f.EquityAttributableToParent != nil {
		f.Equity = f.EquityAttributableToParent.Add(f.EquityAttributableToNoncontrollingInterest)
	}
	if f.Equity == nil && f.EquityAttributableToNoncontrollingInterest == nil && f.EquityAttributableToParent != nil {
		f.Equity = f.EquityAttributableToParent
	}
	if f.Equity == nil && f.EquityAttributableToParent != nil && f.EquityAttributableToNoncontrollingInterest != nil {
		f.Equity = f.EquityAttributableToParent.Add(f.EquityAttributableToNoncontrollingInterest)
	}
	if f.Equity != nil && f.EquityAttributableToNoncontrollingInterest != nil && f.EquityAttributableToParent == nil {
		f.EquityAttributableToParent = f.Equity.Sub(f.EquityAttributableToNoncontrollingInterest)
	}
	if f.Equity != nil && f.EquityAttributableToNoncontrollingInterest == nil && f.EquityAttributableToParent == nil {
		f.EquityAttributableToParent = f.Equity
	}

	if f.Liabilities == nil && f.Equity != nil && f.LiabilitiesAndEquity != nil &&
		f.CommitmentsAndContingencies != nil && f.TemporaryEquity != nil {
		f.Liabilities = &Fact{
			Value:   f.LiabilitiesAndEquity.Value - (f.CommitmentsAndContingencies.Value + f.TemporaryEquity.Value + f.Equity.Value),
			UnitRef: f.LiabilitiesAndEquity.UnitRef,
		}
	}

	// Overwrites the direct lookup; liabilities may be under-reported.
	if f.Liabilities != nil && f.CurrentLiabilities != nil {
		f.NoncurrentLiabilities = f.Liabilities.Sub(f.CurrentLiabilities)
	}
	if f.Liabilities == nil && f.CurrentLiabilities != nil && f.NoncurrentLiabilities == nil {
		f.Liabilities = f.CurrentLiabilities
	}
}

func (f *Fundamentals) deriveIncomeStatement(d *Document) {
	f.Revenues = d.Resolve("Revenues")
	f.CostOfRevenue = d.Resolve("CostOfRevenue")
	f.GrossProfit = d.Resolve("GrossProfit")
	f.OperatingExpenses = d.Resolve("OperatingExpenses")
	f.CostsAndExpenses = d.Resolve("CostsAndExpenses")
	f.OtherOperatingIncome = d.Resolve("OtherOperatingIncome")
	f.OperatingIncomeLoss = d.Resolve("OperatingIncomeLoss")
	f.NonoperatingIncomeLoss = d.Resolve("NonoperatingIncomeLoss")
	f.InterestAndDebtExpense = d.Resolve("InterestAndDebtExpense")
	f.IncomeBeforeEquityMethodInvestments = d.Resolve("IncomeBeforeEquityMethodInvestments")
	f.IncomeFromEquityMethodInvestments = d.Resolve("IncomeFromEquityMethodInvestments")
	f.IncomeFromContinuingOperationsBeforeTax = d.Resolve("IncomeFromContinuingOperationsBeforeTax")
	f.IncomeTaxExpenseBenefit = d.Resolve("IncomeTaxExpenseBenefit")
	f.IncomeFromContinuingOperationsAfterTax = d.Resolve("IncomeFromContinuingOperationsAfterTax")
	f.IncomeFromDiscontinuedOperations = d.Resolve("IncomeFromDiscontinuedOperations")
	f.ExtraordinaryItemsGainLoss = d.Resolve("ExtraordinaryItemsGainLoss")
	f.NetIncomeLoss = d.Resolve("NetIncomeLoss")
	f.NetIncomeAvailableToCommonStockholdersBasic = d.Resolve("NetIncomeAvailableToCommonStockholdersBasic")
	f.PreferredStockDividendsAndOtherAdjustments = d.Resolve("PreferredStockDividendsAndOtherAdjustments")
	f.NetIncomeAttributableToNoncontrollingInterest = d.Resolve("NetIncomeAttributableToNoncontrollingInterest")
	f.NetIncomeAttributableToParent = d.Resolve("NetIncomeAttributableToParent")
	f.OtherComprehensiveIncome = d.Resolve("OtherComprehensiveIncome")
	f.ComprehensiveIncome = d.Resolve("ComprehensiveIncome")
	f.ComprehensiveIncomeAttributableToParent = d.Resolve("ComprehensiveIncomeAttributableToParent")
	f.ComprehensiveIncomeAttributableToNoncontrollingInterest = d.Resolve("ComprehensiveIncomeAttributableToNoncontrollingInterest")

	if f.NonoperatingIncomeLoss != nil && f.InterestAndDebtExpense != nil {
		f.NonoperatingIncomeLossPlusInterestAndDebtExpense = f.NonoperatingIncomeLoss.Add(f.InterestAndDebtExpense)
	}

	if f.NetIncomeAvailableToCommonStockholdersBasic == nil &&
		f.PreferredStockDividendsAndOtherAdjustments == nil &&
		f.NetIncomeAttributableToParent != nil {
		f.NetIncomeAvailableToCommonStockholdersBasic = f.NetIncomeAttributableToParent
	}

	if f.NetIncomeLoss != nil && f.IncomeFromDiscontinuedOperations != nil &&
		f.ExtraordinaryItemsGainLoss != nil && f.IncomeFromContinuingOperationsAfterTax == nil {
		f.IncomeFromContinuingOperationsAfterTax = &Fact{
			Value:   f.NetIncomeLoss.Value - f.IncomeFromDiscontinuedOperations.Value - f.ExtraordinaryItemsGainLoss.Value,
			UnitRef: f.NetIncomeLoss.UnitRef,
		}
	}

	if f.NetIncomeAttributableToParent == nil &&
		f.NetIncomeAttributableToNoncontrollingInterest == nil && f.NetIncomeLoss != nil {
		f.NetIncomeAttributableToParent = f.NetIncomeLoss
	}

	if f.PreferredStockDividendsAndOtherAdjustments == nil &&
		f.NetIncomeAttributableToParent != nil && f.NetIncomeAvailableToCommonStockholdersBasic != nil {
		f.PreferredStockDividendsAndOtherAdjustments = f.NetIncomeAttributableToParent.Sub(f.NetIncomeAvailableToCommonStockholdersBasic)
	}

	if f.ComprehensiveIncomeAttributableToParent == nil &&
		f.ComprehensiveIncomeAttributableToNoncontrollingInterest == nil &&
		f.ComprehensiveIncome == nil && f.OtherComprehensiveIncome == nil {
		f.ComprehensiveIncome = f.NetIncomeLoss
	}

	if f.ComprehensiveIncome != nil && f.NetIncomeLoss != nil && f.OtherComprehensiveIncome == nil {
		f.OtherComprehensiveIncome = f.ComprehensiveIncome.Sub(f.NetIncomeLoss)
	}

	if f.ComprehensiveIncomeAttributableToParent == nil &&
		f.ComprehensiveIncomeAttributableToNoncontrollingInterest == nil && f.ComprehensiveIncome != nil {
		f.ComprehensiveIncomeAttributableToParent = f.ComprehensiveIncome
	}

	if f.IncomeBeforeEquityMethodInvestments != nil && f.IncomeFromEquityMethodInvestments != nil &&
		f.IncomeFromContinuingOperationsBeforeTax == nil {
		f.IncomeFromContinuingOperationsBeforeTax = f.IncomeBeforeEquityMethodInvestments.Add(f.IncomeFromEquityMethodInvestments)
	}

	if f.IncomeFromContinuingOperationsBeforeTax == nil &&
		f.IncomeFromContinuingOperationsAfterTax != nil && f.IncomeTaxExpenseBenefit != nil {
		f.IncomeFromContinuingOperationsBeforeTax = f.IncomeFromContinuingOperationsAfterTax.Add(f.IncomeTaxExpenseBenefit)
	}

	if f.IncomeFromContinuingOperationsAfterTax == nil &&
		f.IncomeTaxExpenseBenefit != nil && f.IncomeFromContinuingOperationsBeforeTax != nil {
		f.IncomeFromContinuingOperationsAfterTax = f.IncomeFromContinuingOperationsBeforeTax.Sub(f.IncomeTaxExpenseBenefit)
	}

	if f.GrossProfit == nil && f.Revenues != nil && f.CostOfRevenue != nil {
		f.GrossProfit = f.Revenues.Sub(f.CostOfRevenue)
	}
	if f.GrossProfit != nil && f.Revenues == nil && f.CostOfRevenue != nil {
		f.Revenues = f.GrossProfit.Add(f.CostOfRevenue)
	}
	if f.GrossProfit != nil && f.Revenues != nil && f.CostOfRevenue == nil {
		f.CostOfRevenue = f.Revenues.Sub(f.GrossProfit)
	}

	// A filing with gross profit reports multi-step and would never
	// also tag the single-step costs-and-expenses total.
	if f.GrossProfit == nil && f.CostsAndExpenses == nil &&
		f.CostOfRevenue != nil && f.OperatingExpenses != nil {
		f.CostsAndExpenses = f.CostOfRevenue.Add(f.OperatingExpenses)
	}
	if f.CostsAndExpenses == nil && f.OperatingExpenses != nil && f.CostOfRevenue != nil {
		f.CostsAndExpenses = f.CostOfRevenue.Add(f.OperatingExpenses)
	}
	if f.GrossProfit == nil && f.CostsAndExpenses == nil && f.Revenues != nil &&
		f.OperatingIncomeLoss != nil && f.OtherOperatingIncome != nil {
		f.CostsAndExpenses = &Fact{
			Value:   f.Revenues.Value - f.OperatingIncomeLoss.Value - f.OtherOperatingIncome.Value,
			UnitRef: f.Revenues.UnitRef,
		}
	}

	if f.CostOfRevenue != nil && f.CostsAndExpenses != nil && f.OperatingExpenses == nil {
		f.OperatingExpenses = f.CostsAndExpenses.Sub(f.CostOfRevenue)
	}

	// Single-step cost-of-revenue back-out. The guard conditions are
	// mutually unsatisfiable (OperatingExpenses must be both absent
	// and usable), so the branch never fires; kept to preserve the
	// documented rule order pending a reviewed fix.
	if f.Revenues != nil && f.CostsAndExpenses != nil && f.GrossProfit == nil &&
		f.OperatingIncomeLoss != nil &&
		f.OperatingIncomeLoss.Value == f.Revenues.Value-f.CostsAndExpenses.Value &&
		f.OperatingExpenses == nil && f.OtherOperatingIncome == nil &&
		f.OperatingExpenses != nil {
		f.CostOfRevenue = f.CostsAndExpenses.Sub(f.OperatingExpenses)
	}

	if f.IncomeBeforeEquityMethodInvestments == nil &&
		f.IncomeFromContinuingOperationsBeforeTax != nil && f.IncomeFromEquityMethodInvestments != nil {
		f.IncomeBeforeEquityMethodInvestments = f.IncomeFromContinuingOperationsBeforeTax.Sub(f.IncomeFromEquityMethodInvestments)
	}

	if f.OperatingIncomeLoss != nil && f.NonoperatingIncomeLoss != nil &&
		f.InterestAndDebtExpense == nil && f.IncomeBeforeEquityMethodInvestments != nil {
		f.InterestAndDebtExpense = &Fact{
			Value:   f.IncomeBeforeEquityMethodInvestments.Value - (f.OperatingIncomeLoss.Value + f.NonoperatingIncomeLoss.Value),
			UnitRef: f.IncomeBeforeEquityMethodInvestments.UnitRef,
		}
	}

	if f.OtherOperatingIncome == nil && f.GrossProfit != nil &&
		f.OperatingExpenses != nil && f.OperatingIncomeLoss != nil {
		f.OtherOperatingIncome = &Fact{
			Value:   f.OperatingIncomeLoss.Value - (f.GrossProfit.Value - f.OperatingExpenses.Value),
			UnitRef: f.OperatingIncomeLoss.UnitRef,
		}
	}

	// Equity-method income reported above the operating line gets
	// moved below it. Equal values mean it is already reported below
	// the line and nothing moves.
	if f.IncomeFromEquityMethodInvestments != nil &&
		f.IncomeFromContinuingOperationsBeforeTax != nil &&
		f.IncomeBeforeEquityMethodInvestments != nil &&
		f.IncomeBeforeEquityMethodInvestments.Value != f.IncomeFromContinuingOperationsBeforeTax.Value {
		f.IncomeBeforeEquityMethodInvestments = f.IncomeFromContinuingOperationsBeforeTax.Sub(f.IncomeFromEquityMethodInvestments)
		if f.OperatingIncomeLoss != nil {
			f.OperatingIncomeLoss = f.OperatingIncomeLoss.Sub(f.IncomeFromEquityMethodInvestments)
		}
	}

	if f.OperatingIncomeLoss == nil && f.IncomeBeforeEquityMethodInvestments != nil &&
		f.NonoperatingIncomeLoss != nil && f.InterestAndDebtExpense != nil {
		f.OperatingIncomeLoss = &Fact{
			Value:   f.IncomeBeforeEquityMethodInvestments.Value + f.NonoperatingIncomeLoss.Value - f.InterestAndDebtExpense.Value,
			UnitRef: f.IncomeBeforeEquityMethodInvestments.UnitRef,
		}
	}

	if f.IncomeFromContinuingOperationsBeforeTax != nil && f.OperatingIncomeLoss != nil {
		f.NonoperatingIncomePlusInterestAndDebtExpensePlusIncomeFromEquityMethodInvestments =
			f.IncomeFromContinuingOperationsBeforeTax.Sub(f.OperatingIncomeLoss)
	}

	if f.NonoperatingIncomeLossPlusInterestAndDebtExpense == nil &&
		f.NonoperatingIncomePlusInterestAndDebtExpensePlusIncomeFromEquityMethodInvestments != nil &&
		f.IncomeFromEquityMethodInvestments != nil {
		f.NonoperatingIncomeLossPlusInterestAndDebtExpense =
			f.NonoperatingIncomePlusInterestAndDebtExpensePlusIncomeFromEquityMethodInvestments.Sub(f.IncomeFromEquityMethodInvestments)
	}
}

func (f *Fundamentals) deriveCashFlow(d *Document) {
	f.NetCashFlow = d.Resolve("NetCashFlow")
	f.NetCashFlowsOperating = d.Resolve("NetCashFlowsOperating")
	f.NetCashFlowsInvesting = d.Resolve("NetCashFlowsInvesting")
	f.NetCashFlowsFinancing = d.Resolve("NetCashFlowsFinancing")
	f.NetCashFlowsOperatingContinuing = d.Resolve("NetCashFlowsOperatingContinuing")
	f.NetCashFlowsInvestingContinuing = d.Resolve("NetCashFlowsInvestingContinuing")
	f.NetCashFlowsFinancingContinuing = d.Resolve("NetCashFlowsFinancingContinuing")
	f.NetCashFlowsOperatingDiscontinued = d.Resolve("NetCashFlowsOperatingDiscontinued")
	f.NetCashFlowsInvestingDiscontinued = d.Resolve("NetCashFlowsInvestingDiscontinued")
	f.NetCashFlowsFinancingDiscontinued = d.Resolve("NetCashFlowsFinancingDiscontinued")
	f.NetCashFlowsDiscontinued = d.Resolve("NetCashFlowsDiscontinued")
	f.ExchangeGainsLosses = d.Resolve("ExchangeGainsLosses")

	if f.NetCashFlowsDiscontinued == nil && f.NetCashFlowsOperatingDiscontinued != nil &&
		f.NetCashFlowsInvestingDiscontinued != nil && f.NetCashFlowsFinancingDiscontinued != nil {
		f.NetCashFlowsDiscontinued = f.NetCashFlowsOperatingDiscontinued.
			Add(f.NetCashFlowsInvestingDiscontinued).
			Add(f.NetCashFlowsFinancingDiscontinued)
	}

	if f.NetCashFlowsOperating != nil && f.NetCashFlowsOperatingDiscontinued != nil &&
		f.NetCashFlowsOperatingContinuing == nil {
		f.NetCashFlowsOperatingContinuing = f.NetCashFlowsOperating.Sub(f.NetCashFlowsOperatingDiscontinued)
	}
	if f.NetCashFlowsInvesting != nil && f.NetCashFlowsInvestingDiscontinued != nil &&
		f.NetCashFlowsInvestingContinuing == nil {
		f.NetCashFlowsInvestingContinuing = f.NetCashFlowsInvesting.Sub(f.NetCashFlowsInvestingDiscontinued)
	}
	if f.NetCashFlowsFinancing != nil && f.NetCashFlowsFinancingDiscontinued != nil &&
		f.NetCashFlowsFinancingContinuing == nil {
		f.NetCashFlowsFinancingContinuing = f.NetCashFlowsFinancing.Sub(f.NetCashFlowsFinancingDiscontinued)
	}

	if f.NetCashFlowsOperating == nil && f.NetCashFlowsOperatingContinuing != nil &&
		f.NetCashFlowsOperatingDiscontinued == nil {
		f.NetCashFlowsOperating = f.NetCashFlowsOperatingContinuing
	}
	if f.NetCashFlowsInvesting == nil && f.NetCashFlowsInvestingContinuing != nil &&
		f.NetCashFlowsInvestingDiscontinued == nil {
		f.NetCashFlowsInvesting = f.NetCashFlowsInvestingContinuing
	}
	if f.NetCashFlowsFinancing == nil && f.NetCashFlowsFinancingContinuing != nil &&
		f.NetCashFlowsFinancingDiscontinued == nil {
		f.NetCashFlowsFinancing = f.NetCashFlowsFinancingContinuing
	}

	if f.NetCashFlowsOperatingContinuing != nil && f.NetCashFlowsInvestingContinuing != nil &&
		f.NetCashFlowsFinancingContinuing != nil {
		f.NetCashFlowsContinuing = f.NetCashFlowsOperatingContinuing.
			Add(f.NetCashFlowsInvestingContinuing).
			Add(f.NetCashFlowsFinancingContinuing)
	}

	// Total net cash flow from whatever detail exists. The unit
	// reference follows the last present component, which is not
	// unit-safe when components mix currencies; accepted as-is.
	if f.NetCashFlow == nil &&
		(f.NetCashFlowsOperating != nil || f.NetCashFlowsInvesting != nil || f.NetCashFlowsFinancing != nil) {
		total := 0.0
		unitRef := ""
		for _, component := range []*Fact{f.NetCashFlowsOperating, f.NetCashFlowsInvesting, f.NetCashFlowsFinancing} {
			if component != nil {
				total += component.Value
				unitRef = component.UnitRef
			}
		}
		f.NetCashFlow = &Fact{Value: total, UnitRef: unitRef}
	}
}

// deriveRatios computes the key ratios when every input is present and
// every denominator nonzero; otherwise the ratio stays nil.
func (f *Fundamentals) deriveRatios() {
	if f.NetIncomeLoss != nil && f.Assets != nil && f.Assets.Value != 0 {
		f.ROA = &Fact{Value: f.NetIncomeLoss.Value / f.Assets.Value}
	}
	if f.NetIncomeLoss != nil && f.Equity != nil && f.Equity.Value != 0 {
		f.ROE = &Fact{Value: f.NetIncomeLoss.Value / f.Equity.Value}
	}
	if f.NetIncomeLoss != nil && f.Revenues != nil && f.Revenues.Value != 0 {
		f.ROS = &Fact{Value: f.NetIncomeLoss.Value / f.Revenues.Value}
	}

	// Sustainable growth rate: (ROS * leverage) / (assets turnover
	// reciprocal - ROS * leverage).
	if f.NetIncomeLoss != nil && f.Revenues != nil && f.Assets != nil && f.Equity != nil &&
		f.Revenues.Value != 0 && f.Assets.Value != 0 && f.Equity.Value != 0 {
		margin := (f.NetIncomeLoss.Value / f.Revenues.Value) * (1 + (f.Assets.Value-f.Equity.Value)/f.Equity.Value)
		denominator := f.Assets.Value/f.Revenues.Value - margin
		if denominator != 0 {
			f.SGR = &Fact{Value: margin / denominator}
		}
	}
}

// deriveIFRS re-attempts every still-missing concept with the IFRS
// taxonomy's equivalent label, then collects the IFRS-only expense
// items into the extension map. Dual GAAP/IFRS filers resolve in the
// main pass; this pass exists for purely IFRS filings (20-F and the
// like).
func (f *Fundamentals) deriveIFRS(d *Document) {
	byName := make(map[string]**Fact)
	for _, cf := range f.fields() {
		byName[cf.name] = cf.fact
	}

	for _, fb := range ifrsFallbacks {
		ref := byName[fb.Concept]
		if *ref != nil {
			continue
		}
		if fact := d.FactValue(fb.Label, fb.Period); fact != nil {
			fact.Concept = fb.Concept
			*ref = fact
		}
	}

	if f.NetCashFlow == nil && f.NetCashFlowsOperating != nil &&
		f.NetCashFlowsInvesting != nil && f.NetCashFlowsFinancing != nil {
		f.NetCashFlow = f.NetCashFlowsOperating.
			Add(f.NetCashFlowsInvesting).
			Add(f.NetCashFlowsFinancing)
	}

	for _, only := range ifrsOnlyConcepts {
		if fact := d.FactValue(only.Label, only.Period); fact != nil {
			fact.Concept = only.Concept
			f.Extensions[only.Concept] = fact
		}
	}
}
