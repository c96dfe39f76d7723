package entity

import "strings"

// Company is the descriptive record a window displays for its content key.
type Company struct {
	ID               string `json:"id"`
	Ticker           string `json:"ticker"`
	Name             string `json:"name"`
	LegalName        string `json:"legal_name"`
	StockExchange    string `json:"stock_exchange"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	CompanyURL       string `json:"company_url,omitempty"`
	Website          string `json:"website,omitempty"`
	BusinessAddress  string `json:"business_address"`
	BusinessPhoneNo  string `json:"business_phone_no,omitempty"`
	EntityLegalForm  string `json:"entity_legal_form,omitempty"`
	LatestFilingDate string `json:"latest_filing_date,omitempty"`
	IncCountry       string `json:"inc_country,omitempty"`
	HQCountry        string `json:"hq_country,omitempty"`
	Employees        int    `json:"employees,omitempty"`
	Sector           string `json:"sector,omitempty"`
	IndustryCategory string `json:"industry_category,omitempty"`
	IndustryGroup    string `json:"industry_group,omitempty"`
}

// NormalizeTicker upper-cases and trims a ticker so lookups are case-insensitive.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// DisplayName returns "TICKER: Name", or just the ticker when Name is empty.
func (c Company) DisplayName() string {
	if c.Name == "" {
		return c.Ticker
	}
	return c.Ticker + ": " + c.Name
}
