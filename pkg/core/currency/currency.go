// Package currency maps ISO 4217 currency codes to descriptive records
// and recognizes codes embedded in XBRL unit references.
package currency

import (
	"regexp"
	"strings"
)

// Currency describes a single ISO 4217 currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

// Unit references produced by filer tooling embed the code in several
// shapes: "USD", "iso4217_USD", "iso4217:EUR", "U_USD", "usdPerShare".
var isoUnitRe = regexp.MustCompile(`ISO4217_?[A-Z]{3}`)

// possibleCodes yields the candidate 3-letter codes found in a unit
// reference, in the order they should be tried.
func possibleCodes(unitRef string) []string {
	codes := make([]string, 0, 3)
	if len(unitRef) >= 3 {
		codes = append(codes, unitRef[:3], unitRef[len(unitRef)-3:])
	}
	if m := isoUnitRe.FindString(unitRef); m != "" {
		codes = append(codes, m[len(m)-3:])
	}
	return codes
}

// Find returns the currency best matching the given unit reference, or
// nil when no candidate substring is a known ISO 4217 code.
func Find(unitRef string) *Currency {
	unitRef = strings.ToUpper(unitRef)
	for _, code := range possibleCodes(unitRef) {
		if c, ok := identifiers[code]; ok {
			return &c
		}
	}
	return nil
}

// Lookup returns the currency for an exact ISO 4217 code.
func Lookup(code string) (Currency, bool) {
	c, ok := identifiers[strings.ToUpper(code)]
	return c, ok
}

var identifiers = map[string]Currency{
	"AED": {"AED", "", "UAE Dirham"},
	"AFN": {"AFN", "؋", "Afghani"},
	"ALL": {"ALL", "Lek", "Lek"},
	"AMD": {"AMD", "", "Armenian Dram"},
	"ANG": {"ANG", "ƒ", "Netherlands Antillean Guilder"},
	"AOA": {"AOA", "", "Kwanza"},
	"ARS": {"ARS", "$", "Argentine Peso"},
	"AUD": {"AUD", "$", "Australian Dollar"},
	"AWG": {"AWG", "ƒ", "Aruban Florin"},
	"AZN": {"AZN", "ман", "Azerbaijanian Manat"},
	"BAM": {"BAM", "KM", "Convertible Mark"},
	"BBD": {"BBD", "$", "Barbados Dollar"},
	"BDT": {"BDT", "", "Taka"},
	"BGN": {"BGN", "лв", "Bulgarian Lev"},
	"BHD": {"BHD", "", "Bahraini Dinar"},
	"BIF": {"BIF", "", "Burundi Franc"},
	"BMD": {"BMD", "$", "Bermudian Dollar"},
	"BND": {"BND", "$", "Brunei Dollar"},
	"BOB": {"BOB", "$b", "Boliviano"},
	"BOV": {"BOV", "", "Mvdol"},
	"BRL": {"BRL", "R$", "Brazilian Real"},
	"BSD": {"BSD", "$", "Bahamian Dollar"},
	"BTN": {"BTN", "", "Ngultrum"},
	"BWP": {"BWP", "P", "Pula"},
	"BYR": {"BYR", "p.", "Belarussian Ruble"},
	"BZD": {"BZD", "BZ$", "Belize Dollar"},
	"CAD": {"CAD", "$", "Canadian Dollar"},
	"CDF": {"CDF", "", "Congolese Franc"},
	"CHE": {"CHE", "", "WIR Euro"},
	"CHF": {"CHF", "Fr.", "Swiss Franc"},
	"CHW": {"CHW", "", "WIR Franc"},
	"CLF": {"CLF", "", "Unidades de fomento"},
	"CLP": {"CLP", "$", "Chilean Peso"},
	"CNY": {"CNY", "¥", "Yuan Renminbi"},
	"COP": {"COP", "$", "Colombian Peso"},
	"COU": {"COU", "", "Unidad de Valor Real"},
	"CRC": {"CRC", "₡", "Costa Rican Colon"},
	"CUC": {"CUC", "", "Peso Convertible"},
	"CUP": {"CUP", "₱", "Cuban Peso"},
	"CVE": {"CVE", "", "Cape Verde Escudo"},
	"CZK": {"CZK", "Kč", "Czech Koruna"},
	"DJF": {"DJF", "", "Djibouti Franc"},
	"DKK": {"DKK", "kr", "Danish Krone"},
	"DOP": {"DOP", "RD$", "Dominican Peso"},
	"DZD": {"DZD", "", "Algerian Dinar"},
	"EGP": {"EGP", "£", "Egyptian Pound"},
	"ERN": {"ERN", "", "Nakfa"},
	"ETB": {"ETB", "", "Ethiopian Birr"},
	"EUR": {"EUR", "€", "Euro"},
	"FJD": {"FJD", "$", "Fiji Dollar"},
	"FKP": {"FKP", "£", "Falkland Islands Pound"},
	"GBP": {"GBP", "£", "Pound Sterling"},
	"GEL": {"GEL", "", "Lari"},
	"GHS": {"GHS", "", "Ghana Cedi"},
	"GIP": {"GIP", "£", "Gibraltar Pound"},
	"GMD": {"GMD", "", "Dalasi"},
	"GNF": {"GNF", "", "Guinea Franc"},
	"GTQ": {"GTQ", "Q", "Quetzal"},
	"GYD": {"GYD", "$", "Guyana Dollar"},
	"HKD": {"HKD", "HK$", "Hong Kong Dollar"},
	"HNL": {"HNL", "L", "Lempira"},
	"HRK": {"HRK", "kn", "Croatian Kuna"},
	"HTG": {"HTG", "", "Gourde"},
	"HUF": {"HUF", "Ft", "Forint"},
	"IDR": {"IDR", "Rp", "Rupiah"},
	"ILS": {"ILS", "₪", "New Israeli Sheqel"},
	"INR": {"INR", "", "Indian Rupee"},
	"IQD": {"IQD", "", "Iraqi Dinar"},
	"IRR": {"IRR", "﷼", "Iranian Rial"},
	"ISK": {"ISK", "kr", "Iceland Krona"},
	"JMD": {"JMD", "J$", "Jamaican Dollar"},
	"JOD": {"JOD", "", "Jordanian Dinar"},
	"JPY": {"JPY", "¥", "Yen"},
	"KES": {"KES", "", "Kenyan Shilling"},
	"KGS": {"KGS", "лв", "Som"},
	"KHR": {"KHR", "៛", "Riel"},
	"KMF": {"KMF", "", "Comoro Franc"},
	"KPW": {"KPW", "₩", "North Korean Won"},
	"KRW": {"KRW", "₩", "Won"},
	"KWD": {"KWD", "", "Kuwaiti Dinar"},
	"KYD": {"KYD", "$", "Cayman Islands Dollar"},
	"KZT": {"KZT", "лв", "Tenge"},
	"LAK": {"LAK", "₭", "Kip"},
	"LBP": {"LBP", "£", "Lebanese Pound"},
	"LKR": {"LKR", "₨", "Sri Lanka Rupee"},
	"LRD": {"LRD", "$", "Liberian Dollar"},
	"LSL": {"LSL", "", "Loti"},
	"LTL": {"LTL", "Lt", "Lithuanian Litas"},
	"LVL": {"LVL", "Ls", "Latvian Lats"},
	"LYD": {"LYD", "", "Libyan Dinar"},
	"MAD": {"MAD", "", "Moroccan Dirham"},
	"MDL": {"MDL", "", "Moldovan Leu"},
	"MGA": {"MGA", "", "Malagasy Ariary"},
	"MKD": {"MKD", "ден", "Denar"},
	"MMK": {"MMK", "", "Kyat"},
	"MNT": {"MNT", "₮", "Tugrik"},
	"MOP": {"MOP", "", "Pataca"},
	"MRO": {"MRO", "", "Ouguiya"},
	"MUR": {"MUR", "₨", "Mauritius Rupee"},
	"MVR": {"MVR", "", "Rufiyaa"},
	"MWK": {"MWK", "", "Kwacha"},
	"MXN": {"MXN", "$", "Mexican Peso"},
	"MXV": {"MXV", "", "Mexican Unidad de Inversion (UDI)"},
	"MYR": {"MYR", "RM", "Malaysian Ringgit"},
	"MZN": {"MZN", "MT", "Mozambique Metical"},
	"NAD": {"NAD", "$", "Namibia Dollar"},
	"NGN": {"NGN", "₦", "Naira"},
	"NIO": {"NIO", "C$", "Cordoba Oro"},
	"NOK": {"NOK", "kr", "Norwegian Krone"},
	"NPR": {"NPR", "₨", "Nepalese Rupee"},
	"NZD": {"NZD", "$", "New Zealand Dollar"},
	"OMR": {"OMR", "﷼", "Rial Omani"},
	"PAB": {"PAB", "B/.", "Balboa"},
	"PEN": {"PEN", "S/.", "Nuevo Sol"},
	"PGK": {"PGK", "", "Kina"},
	"PHP": {"PHP", "₱", "Philippine Peso"},
	"PKR": {"PKR", "₨", "Pakistan Rupee"},
	"PLN": {"PLN", "zł", "Zloty"},
	"PYG": {"PYG", "Gs", "Guarani"},
	"QAR": {"QAR", "﷼", "Qatari Rial"},
	"RON": {"RON", "lei", "New Romanian Leu"},
	"RSD": {"RSD", "Дин.", "Serbian Dinar"},
	"RUB": {"RUB", "руб", "Russian Ruble"},
	"RWF": {"RWF", "", "Rwanda Franc"},
	"SAR": {"SAR", "﷼", "Saudi Riyal"},
	"SBD": {"SBD", "$", "Solomon Islands Dollar"},
	"SCR": {"SCR", "₨", "Seychelles Rupee"},
	"SDG": {"SDG", "", "Sudanese Pound"},
	"SEK": {"SEK", "kr", "Swedish Krona"},
	"SGD": {"SGD", "$", "Singapore Dollar"},
	"SHP": {"SHP", "£", "Saint Helena Pound"},
	"SLL": {"SLL", "", "Leone"},
	"SOS": {"SOS", "S", "Somali Shilling"},
	"SRD": {"SRD", "$", "Surinam Dollar"},
	"SSP": {"SSP", "", "South Sudanese Pound"},
	"STD": {"STD", "", "Dobra"},
	"SVC": {"SVC", "$", "El Salvador Colon"},
	"SYP": {"SYP", "£", "Syrian Pound"},
	"SZL": {"SZL", "", "Lilangeni"},
	"THB": {"THB", "฿", "Baht"},
	"TJS": {"TJS", "", "Somoni"},
	"TMT": {"TMT", "", "Turkmenistan New Manat"},
	"TND": {"TND", "", "Tunisian Dinar"},
	"TOP": {"TOP", "", "Pa’anga"},
	"TRY": {"TRY", "TL", "Turkish Lira"},
	"TTD": {"TTD", "TT$", "Trinidad and Tobago Dollar"},
	"TWD": {"TWD", "NT$", "New Taiwan Dollar"},
	"TZS": {"TZS", "", "Tanzanian Shilling"},
	"UAH": {"UAH", "₴", "Hryvnia"},
	"UGX": {"UGX", "", "Uganda Shilling"},
	"USD": {"USD", "$", "US Dollar"},
	"USN": {"USN", "$", "US Dollar (Next day)"},
	"USS": {"USS", "$", "US Dollar (Same day)"},
	"UYI": {"UYI", "", "Uruguay Peso en Unidades Indexadas (URUIURUI)"},
	"UYU": {"UYU", "$U", "Peso Uruguayo"},
	"UZS": {"UZS", "лв", "Uzbekistan Sum"},
	"VEF": {"VEF", "Bs", "Bolivar Fuerte"},
	"VND": {"VND", "₫", "Dong"},
	"VUV": {"VUV", "", "Vatu"},
	"WST": {"WST", "", "Tala"},
	"XAF": {"XAF", "", "CFA Franc BEAC"},
	"XAG": {"XAG", "", "Silver"},
	"XAU": {"XAU", "", "Gold"},
	"XBA": {"XBA", "", "Bond Markets Unit European Composite Unit (EURCO)"},
	"XBB": {"XBB", "", "Bond Markets Unit European Monetary Unit (E.M.U.-6)"},
	"XBC": {"XBC", "", "Bond Markets Unit European Unit of Account 9 (E.U.A.-9)"},
	"XBD": {"XBD", "", "Bond Markets Unit European Unit of Account 17 (E.U.A.-17)"},
	"XCD": {"XCD", "$", "East Caribbean Dollar"},
	"XDR": {"XDR", "", "SDR (Special Drawing Right)"},
	"XFU": {"XFU", "", "UIC-Franc"},
	"XOF": {"XOF", "", "CFA Franc BCEAO"},
	"XPD": {"XPD", "", "Palladium"},
	"XPF": {"XPF", "", "CFP Franc"},
	"XPT": {"XPT", "", "Platinum"},
	"XSU": {"XSU", "", "Sucre"},
	"XUA": {"XUA", "", "ADB Unit of Account"},
	"YER": {"YER", "﷼", "Yemeni Rial"},
	"ZAR": {"ZAR", "R", "Rand"},
	"ZMK": {"ZMK", "", "Zambian Kwacha"},
	"ZWL": {"ZWL", "", "Zimbabwe Dollar"},
}
