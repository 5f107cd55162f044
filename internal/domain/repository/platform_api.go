package repository

import (
	"context"

	"traveldesk-admin/internal/domain/entity"
)

// PlatformAPI is the core platform's REST surface. Booking status changes
// and the service catalogs live behind it, not in the document store.
type PlatformAPI interface {
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
	Hotels(ctx context.Context) ([]entity.Hotel, error)
	Vehicles(ctx context.Context, vehicleType string) ([]entity.Vehicle, error)
	Packages(ctx context.Context) ([]entity.Package, error)
}
