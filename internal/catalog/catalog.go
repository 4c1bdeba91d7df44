// Package catalog holds the static identifier tables: slug to country codes
// and slug to commodity metadata. Loaded once, never mutated.
package catalog

import "sort"

type CountryInfo struct {
	ISO2 string
	ISO3 string
	Name string
}

type CommodityInfo struct {
	Name    string
	WBCode  string
	EIACode string
	Unit    string
}

var countries = map[string]CountryInfo{
	// Africa
	"angola":       {ISO2: "AO", ISO3: "AGO", Name: "Angola"},
	"cameroon":     {ISO2: "CM", ISO3: "CMR", Name: "Cameroon"},
	"ethiopia":     {ISO2: "ET", ISO3: "ETH", Name: "Ethiopia"},
	"ghana":        {ISO2: "GH", ISO3: "GHA", Name: "Ghana"},
	"kenya":        {ISO2: "KE", ISO3: "KEN", Name: "Kenya"},
	"mozambique":   {ISO2: "MZ", ISO3: "MOZ", Name: "Mozambique"},
	"namibia":      {ISO2: "NA", ISO3: "NAM", Name: "Namibia"},
	"nigeria":      {ISO2: "NG", ISO3: "NGA", Name: "Nigeria"},
	"south-africa": {ISO2: "ZA", ISO3: "ZAF", Name: "South Africa"},
	"tanzania":     {ISO2: "TZ", ISO3: "TZA", Name: "Tanzania"},
	// Americas
	"brazil":        {ISO2: "BR", ISO3: "BRA", Name: "Brazil"},
	"canada":        {ISO2: "CA", ISO3: "CAN", Name: "Canada"},
	"mexico":        {ISO2: "MX", ISO3: "MEX", Name: "Mexico"},
	"united-states": {ISO2: "US", ISO3: "USA", Name: "United States"},
	"colombia":      {ISO2: "CO", ISO3: "COL", Name: "Colombia"},
	// Europe
	"united-kingdom": {ISO2: "GB", ISO3: "GBR", Name: "United Kingdom"},
	"germany":        {ISO2: "DE", ISO3: "DEU", Name: "Germany"},
	"norway":         {ISO2: "NO", ISO3: "NOR", Name: "Norway"},
	// Middle East
	"saudi-arabia": {ISO2: "SA", ISO3: "SAU", Name: "Saudi Arabia"},
	"uae":          {ISO2: "AE", ISO3: "ARE", Name: "United Arab Emirates"},
	"qatar":        {ISO2: "QA", ISO3: "QAT", Name: "Qatar"},
	"iraq":         {ISO2: "IQ", ISO3: "IRQ", Name: "Iraq"},
	"kuwait":       {ISO2: "KW", ISO3: "KWT", Name: "Kuwait"},
	// Asia Pacific
	"australia": {ISO2: "AU", ISO3: "AUS", Name: "Australia"},
	"china":     {ISO2: "CN", ISO3: "CHN", Name: "China"},
	"india":     {ISO2: "IN", ISO3: "IND", Name: "India"},
	"indonesia": {ISO2: "ID", ISO3: "IDN", Name: "Indonesia"},
	"japan":     {ISO2: "JP", ISO3: "JPN", Name: "Japan"},
	"malaysia":  {ISO2: "MY", ISO3: "MYS", Name: "Malaysia"},
	// CIS
	"russia":     {ISO2: "RU", ISO3: "RUS", Name: "Russia"},
	"kazakhstan": {ISO2: "KZ", ISO3: "KAZ", Name: "Kazakhstan"},
}

var commodities = map[string]CommodityInfo{
	"crude-oil":   {Name: "Crude Oil", WBCode: "CRUDE_PETRO", EIACode: "PET", Unit: "$/bbl"},
	"natural-gas": {Name: "Natural Gas", WBCode: "NGAS_US", EIACode: "NG", Unit: "$/MMBtu"},
	"coal":        {Name: "Coal", WBCode: "COAL_AUS", EIACode: "COAL", Unit: "$/mt"},
	"lng":         {Name: "LNG", WBCode: "NGAS_JP", EIACode: "", Unit: "$/MMBtu"},
	"gold":        {Name: "Gold", WBCode: "GOLD", EIACode: "", Unit: "$/toz"},
	"copper":      {Name: "Copper", WBCode: "COPPER", EIACode: "", Unit: "$/mt"},
	"aluminum":    {Name: "Aluminum", WBCode: "ALUMINUM", EIACode: "", Unit: "$/mt"},
	"iron":        {Name: "Iron Ore", WBCode: "IRON_ORE", EIACode: "", Unit: "$/dmtu"},
	"platinum":    {Name: "Platinum", WBCode: "PLATINUM", EIACode: "", Unit: "$/toz"},
	"nickel":      {Name: "Nickel", WBCode: "NICKEL", EIACode: "", Unit: "$/mt"},
	"wheat":       {Name: "Wheat", WBCode: "WHEAT_US_HRW", EIACode: "", Unit: "$/mt"},
	"maize":       {Name: "Maize", WBCode: "MAIZE", EIACode: "", Unit: "$/mt"},
	"sugar":       {Name: "Sugar", WBCode: "SUGAR_WLD", EIACode: "", Unit: "cents/kg"},
	"cotton":      {Name: "Cotton", WBCode: "COTTON_A_INDX", EIACode: "", Unit: "cents/kg"},
}

func Country(slug string) (CountryInfo, bool) {
	info, ok := countries[slug]
	return info, ok
}

func Commodity(slug string) (CommodityInfo, bool) {
	info, ok := commodities[slug]
	return info, ok
}

type CountryEntry struct {
	Slug string
	CountryInfo
}

type CommodityEntry struct {
	Slug string
	CommodityInfo
}

// Countries returns all known countries sorted by slug.
func Countries() []CountryEntry {
	out := make([]CountryEntry, 0, len(countries))
	for slug, info := range countries {
		out = append(out, CountryEntry{Slug: slug, CountryInfo: info})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Commodities returns all known commodities sorted by slug.
func Commodities() []CommodityEntry {
	out := make([]CommodityEntry, 0, len(commodities))
	for slug, info := range commodities {
		out = append(out, CommodityEntry{Slug: slug, CommodityInfo: info})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}
