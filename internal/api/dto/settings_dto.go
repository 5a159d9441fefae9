package dto

// UpdateSettingsRequest carries a partial settings update. Logo is a
// URL or an inline data URI produced by the client's file conversion.
type UpdateSettingsRequest struct {
	Logo             *string `json:"logo,omitempty"`
	OrganizationName *string `json:"organization_name,omitempty"`
	SystemName       *string `json:"system_name,omitempty"`
}
