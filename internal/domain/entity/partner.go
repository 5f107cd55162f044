// internal/domain/entity/partner.go
package entity

// Partner is the canonical partner view model
type Partner struct {
	ID                 string   `json:"id"`
	BusinessName       string   `json:"businessName"`
	ContactPerson      string   `json:"contactPerson"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Types              []string `json:"types"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Commission         float64  `json:"commission"`
	Status             string   `json:"status"`             // Active|Inactive
	VerificationStatus string   `json:"verificationStatus"` // pending|verified|rejected
	CreatedAt          string   `json:"createdAt"`
}

// PartnerDraft carries the caller-supplied fields for creating a partner
type PartnerDraft struct {
	BusinessName  string   `json:"businessName"`
	ContactPerson string   `json:"contactPerson"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Types         []string `json:"types"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Commission    float64  `json:"commission"`
}
