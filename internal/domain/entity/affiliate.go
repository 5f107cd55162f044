// internal/domain/entity/affiliate.go
package entity

// Affiliate is the canonical affiliate view model. ConvRate is always
// computed, "0.00%" when there are no clicks.
type Affiliate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Referrals   int     `json:"referrals"`
	Earnings    float64 `json:"earnings"`
	Status      string  `json:"status"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	ConvRate    string  `json:"convRate"`
	Website     string  `json:"website,omitempty"`
}

// AffiliateDraft carries the caller-supplied fields for create/update.
// Empty fields are left untouched on update.
type AffiliateDraft struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Website string `json:"website"`
	Status  string `json:"status"`
}
