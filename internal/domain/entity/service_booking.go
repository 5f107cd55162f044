// internal/domain/entity/service_booking.go
package entity

import "traveldesk-admin/pkg/rawdoc"

// ServiceType identifies a service-booking category
type ServiceType string

const (
	ServiceFlights ServiceType = "flights"
	ServiceTrains  ServiceType = "trains"
	ServiceHotels  ServiceType = "hotels"
	ServiceCabs    ServiceType = "cabs"
)

// DocType is the value the booking documents carry in their "type" field
func (t ServiceType) DocType() string {
	switch t {
	case ServiceFlights:
		return "flight"
	case ServiceTrains:
		return "train"
	case ServiceHotels:
		return "hotel"
	case ServiceCabs:
		return "cab"
	}
	return ""
}

// Valid reports whether t is a known service category
func (t ServiceType) Valid() bool {
	return t.DocType() != ""
}

// ServiceStatus is the canonical status enum, applied uniformly across all
// service-booking views. Cancelled and Failed stay distinct.
type ServiceStatus string

const (
	StatusConfirmed ServiceStatus = "Confirmed"
	StatusPending   ServiceStatus = "Pending"
	StatusCancelled ServiceStatus = "Cancelled"
	StatusFailed    ServiceStatus = "Failed"
)

// ServiceBooking is the canonical flight/train/hotel/cab booking view model
type ServiceBooking struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	Details       string        `json:"details"` // e.g. "AI-102 (DEL - BOM)"
	Date          string        `json:"date"`
	Amount        float64       `json:"amount"`
	Commission    float64       `json:"commission"`
	Status        ServiceStatus `json:"status"`
	UserID        string        `json:"userId,omitempty"`
	Raw           rawdoc.Doc    `json:"_data,omitempty"`
}
