// internal/domain/entity/catalog.go
package entity

// Hotel is a catalog hotel served by the platform API
type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Rooms         int     `json:"rooms"`
	PricePerNight float64 `json:"pricePerNight"`
	Status        string  `json:"status"`
}

// Vehicle is a catalog flight/train/cab served by the platform API
type Vehicle struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"` // flight|train|cab
	Provider string  `json:"provider"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// Package is a catalog tour package served by the platform API
type Package struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
	Status   string  `json:"status"`
}
