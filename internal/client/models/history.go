package models

// HistoryEntry records one visit to a company detail page.
type HistoryEntry struct {
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
	CompanyLogo string `json:"companyLogo"`
	// ViewedAt is a Unix timestamp in milliseconds.
	ViewedAt int64 `json:"viewedAt"`
}
