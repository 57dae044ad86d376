package xbrl

// PeriodType selects which resolved context a fact lookup runs
// against: the balance-sheet instant or the year-to-date duration.
type PeriodType string

const (
	Instant  PeriodType = "Instant"
	Duration PeriodType = "Duration"
)

// labelChain is the ordered list of taxonomy labels tried for one
// standardized concept. The first label with a resolvable fact wins.
type labelChain struct {
	Period PeriodType
	Labels []string
}

// conceptLabels maps each standardized concept to its fallback chain.
// Chain order matters: earlier labels are the canonical tags, later
// ones are industry-specific taxonomy variants filers substitute for
// them. IFRS labels appearing at the tail of a chain let purely IFRS
// filings resolve in the main pass; an explicit IFRS fallback pass
// (ifrsFallbacks) covers the rest.
var conceptLabels = map[string]labelChain{
	// Balance sheet
	"Assets":               {Instant, []string{"us-gaap:Assets"}},
	"CurrentAssets":        {Instant, []string{"us-gaap:AssetsCurrent"}},
	"NoncurrentAssets":     {Instant, []string{"us-gaap:AssetsNoncurrent"}},
	"LiabilitiesAndEquity": {Instant, []string{"us-gaap:LiabilitiesAndStockholdersEquity", "us-gaap:LiabilitiesAndPartnersCapital"}},
	"Liabilities":          {Instant, []string{"us-gaap:Liabilities"}},
	"CurrentLiabilities":   {Instant, []string{"us-gaap:LiabilitiesCurrent"}},
	"NoncurrentLiabilities": {Instant, []string{
		"us-gaap:LiabilitiesNoncurrent",
	}},
	"CommitmentsAndContingencies": {Instant, []string{"us-gaap:CommitmentsAndContingencies"}},
	"TemporaryEquity": {Instant, []string{
		"us-gaap:TemporaryEquityRedemptionValue",
		"us-gaap:RedeemablePreferredStockCarryingAmount",
		"us-gaap:TemporaryEquityCarryingAmount",
		"us-gaap:TemporaryEquityValueExcludingAdditionalPaidInCapital",
		"us-gaap:TemporaryEquityCarryingAmountAttributableToParent",
		"us-gaap:RedeemableNoncontrollingInterestEquityFairValue",
	}},
	"RedeemableNoncontrollingInterest": {Instant, []string{
		"us-gaap:RedeemableNoncontrollingInterestEquityCarryingAmount",
		"us-gaap:RedeemableNoncontrollingInterestEquityCommonCarryingAmount",
	}},
	"Equity": {Instant, []string{
		"us-gaap:StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
		"us-gaap:StockholdersEquity",
		"us-gaap:PartnersCapitalIncludingPortionAttributableToNoncontrollingInterest",
		"us-gaap:PartnersCapital",
		"us-gaap:CommonStockholdersEquity",
		"us-gaap:MemberEquity",
		"us-gaap:AssetsNet",
	}},
	"EquityAttributableToNoncontrollingInterest": {Instant, []string{
		"us-gaap:MinorityInterest",
		"us-gaap:PartnersCapitalAttributableToNoncontrollingInterest",
	}},
	"EquityAttributableToParent": {Instant, []string{
		"us-gaap:StockholdersEquity",
		"us-gaap:LiabilitiesAndPartnersCapital",
	}},

	// Income statement
	"Revenues": {Duration, []string{
		"us-gaap:Revenues",
		"us-gaap:SalesRevenueNet",
		"us-gaap:SalesRevenueServicesNet",
		"us-gaap:RevenuesNetOfInterestExpense",
		"us-gaap:RegulatedAndUnregulatedOperatingRevenue",
		"us-gaap:HealthCareOrganizationRevenue",
		"us-gaap:InterestAndDividendIncomeOperating",
		"us-gaap:RealEstateRevenueNet",
		"us-gaap:RevenueMineralSales",
		"us-gaap:OilAndGasRevenue",
		"us-gaap:FinancialServicesRevenue",
		"ifrs-full:Revenue",
		"ifrs-full:RevenueFromSaleOfOilAndGasProducts",
	}},
	"CostOfRevenue": {Duration, []string{
		"us-gaap:CostOfRevenue",
		"us-gaap:CostOfServices",
		"us-gaap:CostOfGoodsSold",
		"us-gaap:CostOfGoodsAndServicesSold",
	}},
	"GrossProfit":          {Duration, []string{"us-gaap:GrossProfit"}},
	"OperatingExpenses":    {Duration, []string{"us-gaap:OperatingExpenses", "us-gaap:OperatingCostsAndExpenses"}},
	"CostsAndExpenses":     {Duration, []string{"us-gaap:CostsAndExpenses"}},
	"OtherOperatingIncome": {Duration, []string{"us-gaap:OtherOperatingIncome"}},
	"OperatingIncomeLoss":  {Duration, []string{"us-gaap:OperatingIncomeLoss"}},
	"NonoperatingIncomeLoss": {Duration, []string{
		"us-gaap:NonoperatingIncomeExpense",
	}},
	"InterestAndDebtExpense": {Duration, []string{"us-gaap:InterestAndDebtExpense"}},
	"IncomeBeforeEquityMethodInvestments": {Duration, []string{
		"us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesMinorityInterestAndIncomeLossFromEquityMethodInvestments",
	}},
	"IncomeFromEquityMethodInvestments": {Duration, []string{
		"us-gaap:IncomeLossFromEquityMethodInvestments",
	}},
	"IncomeFromContinuingOperationsBeforeTax": {Duration, []string{
		"us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesMinorityInterestAndIncomeLossFromEquityMethodInvestments",
		"us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest",
	}},
	"IncomeTaxExpenseBenefit": {Duration, []string{
		"us-gaap:IncomeTaxExpenseBenefit",
		"us-gaap:IncomeTaxExpenseBenefitContinuingOperations",
	}},
	"IncomeFromContinuingOperationsAfterTax": {Duration, []string{
		"us-gaap:IncomeLossBeforeExtraordinaryItemsAndCumulativeEffectOfChangeInAccountingPrinciple",
	}},
	"IncomeFromDiscontinuedOperations": {Duration, []string{
		"us-gaap:IncomeLossFromDiscontinuedOperationsNetOfTax",
		"us-gaap:DiscontinuedOperationGainLossOnDisposalOfDiscontinuedOperationNetOfTax",
		"us-gaap:IncomeLossFromDiscontinuedOperationsNetOfTaxAttributableToReportingEntity",
	}},
	"ExtraordinaryItemsGainLoss": {Duration, []string{"us-gaap:ExtraordinaryItemNetOfTax"}},
	"NetIncomeLoss": {Duration, []string{
		"us-gaap:ProfitLoss",
		"us-gaap:NetIncomeLoss",
		"us-gaap:NetIncomeLossAvailableToCommonStockholdersBasic",
		"us-gaap:IncomeLossFromContinuingOperations",
		"us-gaap:IncomeLossAttributableToParent",
		"us-gaap:IncomeLossFromContinuingOperationsIncludingPortionAttributableToNoncontrollingInterest",
	}},
	"NetIncomeAvailableToCommonStockholdersBasic": {Duration, []string{
		"us-gaap:NetIncomeLossAvailableToCommonStockholdersBasic",
	}},
	"PreferredStockDividendsAndOtherAdjustments": {Duration, []string{
		"us-gaap:PreferredStockDividendsAndOtherAdjustments",
	}},
	"NetIncomeAttributableToNoncontrollingInterest": {Duration, []string{
		"us-gaap:NetIncomeLossAttributableToNoncontrollingInterest",
	}},
	"NetIncomeAttributableToParent": {Duration, []string{
		"us-gaap:NetIncomeLoss",
		"ifrs-full:ProfitLossAttributableToOwnersOfParent",
	}},
	"OtherComprehensiveIncome": {Duration, []string{"us-gaap:OtherComprehensiveIncomeLossNetOfTax"}},
	"ComprehensiveIncome": {Duration, []string{
		"us-gaap:ComprehensiveIncomeNetOfTaxIncludingPortionAttributableToNoncontrollingInterest",
		"us-gaap:ComprehensiveIncomeNetOfTax",
	}},
	"ComprehensiveIncomeAttributableToParent": {Duration, []string{
		"us-gaap:ComprehensiveIncomeNetOfTax",
	}},
	"ComprehensiveIncomeAttributableToNoncontrollingInterest": {Duration, []string{
		"us-gaap:ComprehensiveIncomeNetOfTaxAttributableToNoncontrollingInterest",
	}},
	"ResearchAndDevelopmentExpense": {Duration, []string{"us-gaap:ResearchAndDevelopmentExpense"}},

	// Cash flow statement
	"NetCashFlow": {Duration, []string{
		"us-gaap:CashAndCashEquivalentsPeriodIncreaseDecrease",
		"us-gaap:CashPeriodIncreaseDecrease",
		"us-gaap:NetCashProvidedByUsedInContinuingOperations",
	}},
	"NetCashFlowsOperating": {Duration, []string{"us-gaap:NetCashProvidedByUsedInOperatingActivities"}},
	"NetCashFlowsInvesting": {Duration, []string{"us-gaap:NetCashProvidedByUsedInInvestingActivities"}},
	"NetCashFlowsFinancing": {Duration, []string{"us-gaap:NetCashProvidedByUsedInFinancingActivities"}},
	"NetCashFlowsOperatingContinuing": {Duration, []string{
		"us-gaap:NetCashProvidedByUsedInOperatingActivitiesContinuingOperations",
	}},
	"NetCashFlowsInvestingContinuing": {Duration, []string{
		"us-gaap:NetCashProvidedByUsedInInvestingActivitiesContinuingOperations",
	}},
	"NetCashFlowsFinancingContinuing": {Duration, []string{
		"us-gaap:NetCashProvidedByUsedInFinancingActivitiesContinuingOperations",
	}},
	"NetCashFlowsOperatingDiscontinued": {Duration, []string{
		"us-gaap:CashProvidedByUsedInOperatingActivitiesDiscontinuedOperations",
	}},
	"NetCashFlowsInvestingDiscontinued": {Duration, []string{
		"us-gaap:CashProvidedByUsedInInvestingActivitiesDiscontinuedOperations",
	}},
	"NetCashFlowsFinancingDiscontinued": {Duration, []string{
		"us-gaap:CashProvidedByUsedInFinancingActivitiesDiscontinuedOperations",
	}},
	"NetCashFlowsDiscontinued": {Duration, []string{
		"us-gaap:NetCashProvidedByUsedInDiscontinuedOperations",
	}},
	"ExchangeGainsLosses": {Duration, []string{
		"us-gaap:EffectOfExchangeRateOnCashAndCashEquivalents",
		"us-gaap:EffectOfExchangeRateOnCashAndCashEquivalentsContinuingOperations",
		"us-gaap:CashProvidedByUsedInFinancingActivitiesDiscontinuedOperations",
	}},
}

// ifrsFallback is one entry of the IFRS pass run after the GAAP
// lookups and imputations: when the named concept is still missing,
// the IFRS label is tried directly.
type ifrsFallback struct {
	Concept string
	Label   string
	Period  PeriodType
}

var ifrsFallbacks = []ifrsFallback{
	{"Revenues", "ifrs-full:Revenue", Duration},
	{"NetIncomeAttributableToParent", "ifrs-full:ProfitLossAttributableToOwnersOfParent", Duration},
	{"Assets", "ifrs-full:Assets", Instant},
	{"CurrentAssets", "ifrs-full:CurrentAssets", Instant},
	{"NoncurrentAssets", "ifrs-full:NoncurrentAssets", Instant},
	{"Liabilities", "ifrs-full:Liabilities", Instant},
	{"CurrentLiabilities", "ifrs-full:CurrentLiabilities", Instant},
	{"NoncurrentLiabilities", "ifrs-full:NoncurrentLiabilities", Instant},
	{"LiabilitiesAndEquity", "ifrs-full:EquityAndLiabilities", Instant},
	{"Equity", "ifrs-full:Equity", Instant},
	{"CostOfRevenue", "ifrs-full:CostOfSales", Duration},
	{"GrossProfit", "ifrs-full:GrossProfit", Duration},
	{"NetCashFlowsOperating", "ifrs-full:CashFlowsFromUsedInOperatingActivities", Duration},
	{"NetCashFlowsInvesting", "ifrs-full:CashFlowsFromUsedInInvestingActivities", Duration},
	{"NetCashFlowsFinancing", "ifrs-full:CashFlowsFromUsedInFinancingActivities", Duration},
	{"NetCashFlow", "ifrs-full:IncreaseDecreaseInCashAndCashEquivalents", Duration},
	{"OperatingExpenses", "ifrs-full:OperatingExpense", Duration},
	{"OperatingIncomeLoss", "ifrs-full:ProfitLossBeforeTax", Duration},
	{"InterestAndDebtExpense", "ifrs-full:InterestExpense", Duration},
	{"IncomeFromContinuingOperationsBeforeTax", "ifrs-full:ProfitLossBeforeTax", Duration},
	{"NetIncomeLoss", "ifrs-full:ProfitLoss", Duration},
	{"ResearchAndDevelopmentExpense", "ifrs-full:ResearchAndDevelopmentExpense", Duration},
}

// ifrsOnlyConcepts have no GAAP counterpart in the lookup set and are
// collected unconditionally during the IFRS pass into the extension
// map.
var ifrsOnlyConcepts = []ifrsFallback{
	{"SellingGeneralAndAdministrativeExpense", "ifrs-full:SellingGeneralAndAdministrativeExpense", Duration},
	{"RentalExpenses", "ifrs-full:RentalExpense", Duration},
	{"RepairsAndMaintenanceExpense", "ifrs-full:RepairsAndMaintenanceExpense", Duration},
	{"SalesAndMarketingExpense", "ifrs-full:SalesAndMarketingExpense", Duration},
}
