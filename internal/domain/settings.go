package domain

// AppSettings is the process-wide configuration singleton. Logo holds a
// URL or an inline data URI; mutations shallow-merge, no history kept.
type AppSettings struct {
	Logo             string `json:"logo,omitempty"`
	OrganizationName string `json:"organization_name"`
	SystemName       string `json:"system_name"`
}

// DashboardStats is derived from the ticket collection on demand, never
// stored.
type DashboardStats struct {
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}
