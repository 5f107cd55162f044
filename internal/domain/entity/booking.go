// internal/domain/entity/booking.go
package entity

import "traveldesk-admin/pkg/rawdoc"

// BookingUser is the joined owner of a booking. Unresolved joins degrade to
// the documented defaults instead of failing the batch.
type BookingUser struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Mobile string `json:"mobile"`
}

// Booking is the canonical package-booking view model
type Booking struct {
	ID            string      `json:"id"`
	PackageName   string      `json:"PackageName"`
	PackageDays   int         `json:"PackageDays"`
	PackagePrice  float64     `json:"PackagePrice"`
	StartDate     string      `json:"startDate"`
	People        int         `json:"people"`
	User          BookingUser `json:"user"`
	UserID        string      `json:"userId,omitempty"`
	PaymentStatus string      `json:"paymentStatus"`
	Status        string      `json:"status"`
	CreatedAt     string      `json:"createdAt"`
	Raw           rawdoc.Doc  `json:"_data,omitempty"` // retained for drill-down display
}

// BookingPage is one page of bookings plus the total matched count
type BookingPage struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
}
