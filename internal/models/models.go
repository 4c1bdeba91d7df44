package models

// Normalized shapes produced by the source clients and served by the data
// endpoint. Field names follow the public JSON contract (camelCase), so the
// cached encoding and the response encoding are the same bytes.

type CountryProfile struct {
	Country         string              `json:"country"`
	CountryCode     string              `json:"countryCode"`
	Energy          *EnergyData         `json:"energy"`
	Trade           *TradeFlowData      `json:"trade"`
	Renewable       *RenewableData      `json:"renewable"`
	Regulatory      *RegulatoryData     `json:"regulatory"`
	Carbon          *CarbonData         `json:"carbon"`
	CommodityPrices *CommodityPriceData `json:"commodityPrices"`
}

type EnergyData struct {
	Production  []DataSeries `json:"production"`
	Consumption []DataSeries `json:"consumption"`
	Reserves    []DataSeries `json:"reserves"`
	Source      string       `json:"source"`
	LastUpdated string       `json:"lastUpdated"`
}

type DataSeries struct {
	Label  string      `json:"label"`
	Unit   string      `json:"unit"`
	Values []YearValue `json:"values"`
}

type YearValue struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type TradeFlowData struct {
	Imports     []TradeRecord  `json:"imports"`
	Exports     []TradeRecord  `json:"exports"`
	TopPartners []PartnerValue `json:"topPartners"`
	Source      string         `json:"source"`
	LastUpdated string         `json:"lastUpdated"`
}

type TradeRecord struct {
	Partner       string  `json:"partner"`
	Commodity     string  `json:"commodity"`
	CommodityCode string  `json:"commodityCode"`
	Value         float64 `json:"value"`
	Weight        float64 `json:"weight"`
	Year          int     `json:"year"`
}

type PartnerValue struct {
	Partner string  `json:"partner"`
	Value   float64 `json:"value"`
}

type RenewableData struct {
	Capacity    []DataSeries          `json:"capacity"`
	Generation  []DataSeries          `json:"generation"`
	Installed   []InstalledTechnology `json:"installed"`
	Source      string                `json:"source"`
	LastUpdated string                `json:"lastUpdated"`
}

type InstalledTechnology struct {
	Technology string  `json:"technology"`
	CapacityMW float64 `json:"capacityMW"`
}

// RegulatoryData and CarbonData are wired into the profile shape but have no
// source client yet; the profile always carries them as null. They are kept
// so the wire contract is stable once those sources land.

type RegulatoryData struct {
	Policies         []PolicyRecord    `json:"policies"`
	LegalInstruments []LegalInstrument `json:"legalInstruments"`
	Source           string            `json:"source"`
	LastUpdated      string            `json:"lastUpdated"`
}

type PolicyRecord struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Year        int    `json:"year"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
}

type LegalInstrument struct {
	Title  string `json:"title"`
	Type   string `json:"type"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

type CarbonData struct {
	PricingMechanisms []CarbonMechanism `json:"pricingMechanisms"`
	CurrentPrice      *float64          `json:"currentPrice"`
	Currency          string            `json:"currency"`
	Source            string            `json:"source"`
	LastUpdated       string            `json:"lastUpdated"`
}

type CarbonMechanism struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Jurisdiction string   `json:"jurisdiction"`
	Status       string   `json:"status"`
	PriceUSD     *float64 `json:"priceUSD"`
	Coverage     string   `json:"coverage"`
}

type CommodityPriceData struct {
	Commodity     string       `json:"commodity"`
	Unit          string       `json:"unit"`
	Prices        []PricePoint `json:"prices"`
	ChangePercent float64      `json:"changePercent"`
	Source        string       `json:"source"`
	LastUpdated   string       `json:"lastUpdated"`
}

type PricePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// List entries for the static lookup endpoints.

type CountryListItem struct {
	Slug string `json:"slug"`
	ISO2 string `json:"iso2"`
	ISO3 string `json:"iso3"`
	Name string `json:"name"`
}

type CommodityListItem struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	WBCode  string `json:"wbCode"`
	EIACode string `json:"eiaCode"`
	Unit    string `json:"unit"`
}

type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

type HealthResponse struct {
	Ok      bool            `json:"ok"`
	TsISO   string          `json:"tsISO"`
	Service string          `json:"service"`
	Version string          `json:"version"`
	Env     map[string]bool `json:"env"`
}
