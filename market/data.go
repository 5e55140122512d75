package market

import "github.com/shopspring/decimal"

// Quotes below are a frozen DSE trading day. Values are kept as strings so
// the decimals stay exact.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var dseIndices = []Index{
	{Name: "DSEX", Value: d("4869.00"), Change: d("-14.56"), ChangePercent: d("-0.30")},
	{Name: "DSES", Value: d("1002.90"), Change: d("-5.77"), ChangePercent: d("-0.57")},
	{Name: "DS30", Value: d("1867.14"), Change: d("-15.41"), ChangePercent: d("-0.82")},
}

var dseStocks = []Stock{
	{Symbol: "BEXIMCO", Name: "Beximco Limited", LTP: d("134.50"), Change: d("4.20"), ChangePercent: d("3.22"), Volume: 2847562, High: d("136.00"), Low: d("129.50"), Open: d("130.30"), YCP: d("130.30"), Category: "A", Sector: "Pharmaceuticals"},
	{Symbol: "SQURPHARMA", Name: "Square Pharmaceuticals Ltd", LTP: d("199.00"), Change: d("-1.90"), ChangePercent: d("-0.95"), Volume: 156840, High: d("202.00"), Low: d("198.00"), Open: d("200.90"), YCP: d("200.90"), Category: "A", Sector: "Pharmaceuticals"},
	{Symbol: "GP", Name: "Grameenphone Ltd", LTP: d("352.60"), Change: d("7.80"), ChangePercent: d("2.26"), Volume: 89450, High: d("355.00"), Low: d("344.80"), Open: d("344.80"), YCP: d("344.80"), Category: "A", Sector: "Telecommunication"},
	{Symbol: "BATBC", Name: "British American Tobacco Bangladesh", LTP: d("456.20"), Change: d("-12.40"), ChangePercent: d("-2.65"), Volume: 45620, High: d("470.00"), Low: d("454.00"), Open: d("468.60"), YCP: d("468.60"), Category: "A", Sector: "Food & Allied"},
	{Symbol: "RENATA", Name: "Renata Limited", LTP: d("1250.00"), Change: d("25.00"), ChangePercent: d("2.04"), Volume: 12340, High: d("1260.00"), Low: d("1220.00"), Open: d("1225.00"), YCP: d("1225.00"), Category: "A", Sector: "Pharmaceuticals"},
	{Symbol: "BRACBANK", Name: "BRAC Bank Limited", LTP: d("38.50"), Change: d("0.80"), ChangePercent: d("2.12"), Volume: 1542800, High: d("39.00"), Low: d("37.50"), Open: d("37.70"), YCP: d("37.70"), Category: "A", Sector: "Bank"},
	{Symbol: "CITYBANK", Name: "City Bank Limited", LTP: d("24.70"), Change: d("0.10"), ChangePercent: d("0.41"), Volume: 6384997, High: d("25.00"), Low: d("24.50"), Open: d("24.60"), YCP: d("24.60"), Category: "A", Sector: "Bank"},
	{Symbol: "PUBALIBANK", Name: "Pubali Bank Limited", LTP: d("30.70"), Change: d("0.30"), ChangePercent: d("0.99"), Volume: 845620, High: d("31.00"), Low: d("30.20"), Open: d("30.40"), YCP: d("30.40"), Category: "A", Sector: "Bank"},
	{Symbol: "NATLIFEINS", Name: "National Life Insurance", LTP: d("96.10"), Change: d("8.70"), ChangePercent: d("9.95"), Volume: 818368, High: d("96.10"), Low: d("87.40"), Open: d("87.40"), YCP: d("87.40"), Category: "A", Sector: "Insurance"},
	{Symbol: "DELTALIFE", Name: "Delta Life Insurance", LTP: d("68.40"), Change: d("1.70"), ChangePercent: d("2.55"), Volume: 425680, High: d("69.00"), Low: d("66.00"), Open: d("66.70"), YCP: d("66.70"), Category: "A", Sector: "Insurance"},
	{Symbol: "WALTONHIL", Name: "Walton Hi-Tech Industries", LTP: d("374.40"), Change: d("1.40"), ChangePercent: d("0.38"), Volume: 78450, High: d("378.00"), Low: d("370.00"), Open: d("373.00"), YCP: d("373.00"), Category: "A", Sector: "Engineering"},
	{Symbol: "OLYMPIC", Name: "Olympic Industries Ltd", LTP: d("158.90"), Change: d("-5.30"), ChangePercent: d("-3.23"), Volume: 145680, High: d("165.00"), Low: d("157.00"), Open: d("164.20"), YCP: d("164.20"), Category: "A", Sector: "Food & Allied"},
	{Symbol: "ARAMIT", Name: "Aramit Limited", LTP: d("196.70"), Change: d("9.20"), ChangePercent: d("4.91"), Volume: 32744, High: d("198.00"), Low: d("186.00"), Open: d("187.50"), YCP: d("187.50"), Category: "A", Sector: "Engineering"},
	{Symbol: "UTTARABANK", Name: "Uttara Bank Limited", LTP: d("22.50"), Change: d("0.20"), ChangePercent: d("0.90"), Volume: 4074596, High: d("22.80"), Low: d("22.20"), Open: d("22.30"), YCP: d("22.30"), Category: "A", Sector: "Bank"},
	{Symbol: "PREMIERBANK", Name: "Premier Bank Ltd", LTP: d("4.10"), Change: d("0.10"), ChangePercent: d("2.50"), Volume: 1562450, High: d("4.20"), Low: d("4.00"), Open: d("4.00"), YCP: d("4.00"), Category: "B", Sector: "Bank"},
	{Symbol: "TALLUSPIN", Name: "Tallu Spinning Mills", LTP: d("5.90"), Change: d("0.00"), ChangePercent: d("0.00"), Volume: 430417, High: d("6.00"), Low: d("5.80"), Open: d("5.90"), YCP: d("5.90"), Category: "B", Sector: "Textile"},
	{Symbol: "BDFINANCE", Name: "Bangladesh Finance", LTP: d("12.70"), Change: d("0.00"), ChangePercent: d("0.00"), Volume: 254680, High: d("12.90"), Low: d("12.50"), Open: d("12.70"), YCP: d("12.70"), Category: "B", Sector: "NBFI"},
	{Symbol: "ORIONINFU", Name: "Orion Infusion Ltd", LTP: d("342.10"), Change: d("-1.80"), ChangePercent: d("-0.52"), Volume: 188914, High: d("348.00"), Low: d("340.00"), Open: d("343.90"), YCP: d("343.90"), Category: "A", Sector: "Pharmaceuticals"},
	{Symbol: "ROBI", Name: "Robi Axiata Ltd", LTP: d("45.80"), Change: d("0.90"), ChangePercent: d("2.00"), Volume: 956420, High: d("46.50"), Low: d("44.50"), Open: d("44.90"), YCP: d("44.90"), Category: "A", Sector: "Telecommunication"},
	{Symbol: "LHBL", Name: "LafargeHolcim Bangladesh", LTP: d("52.30"), Change: d("-2.10"), ChangePercent: d("-3.86"), Volume: 845620, High: d("55.00"), Low: d("51.80"), Open: d("54.40"), YCP: d("54.40"), Category: "A", Sector: "Cement"},
}
