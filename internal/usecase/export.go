package usecase

import (
	"context"
	"fmt"
	"strings"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/pkg/export"
)

// Export renders one admin view as a downloadable artifact. The resource
// names mirror the table views of the dashboard.
func (s *AdminService) Export(ctx context.Context, resource string, format export.Format) (*export.Artifact, error) {
	opts, err := s.tabulate(ctx, resource)
	if err != nil {
		return nil, err
	}

	artifact, err := export.ExportData(format, opts)
	if err != nil {
		s.countError("export")
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	}
	return artifact, nil
}

func (s *AdminService) tabulate(ctx context.Context, resource string) (export.Options, error) {
	switch resource {
	case "bookings":
		rows := [][]interface{}{}
		for _, b := range s.PackageBookings(ctx) {
			rows = append(rows, []interface{}{
				b.ID, b.PackageName, b.PackageDays, b.PackagePrice, b.StartDate,
				b.People, b.User.Name, b.User.Mobile, b.PaymentStatus, b.Status,
			})
		}
		return export.Options{
			Filename: "bookings",
			Title:    "Package Bookings",
			Columns:  []string{"ID", "Package", "Days", "Price", "Start Date", "People", "Customer", "Mobile", "Payment", "Status"},
			Rows:     rows,
		}, nil

	case "flights", "trains", "hotels", "cabs":
		rows := [][]interface{}{}
		for _, b := range s.ServiceBookings(ctx, entity.ServiceType(resource)) {
			rows = append(rows, []interface{}{
				b.ID, b.CustomerName, b.CustomerEmail, b.Details, b.Date,
				b.Amount, b.Commission, string(b.Status),
			})
		}
		return export.Options{
			Filename: resource + "-bookings",
			Title:    strings.ToUpper(resource[:1]) + resource[1:] + " Bookings",
			Columns:  []string{"ID", "Customer", "Email", "Details", "Date", "Amount", "Commission", "Status"},
			Rows:     rows,
		}, nil

	case "users":
		rows := [][]interface{}{}
		for _, u := range s.Users(ctx) {
			rows = append(rows, []interface{}{u.ID, u.Name, u.Email, u.Mobile, u.Role, u.Status, u.CreatedAt})
		}
		return export.Options{
			Filename: "users",
			Title:    "Users",
			Columns:  []string{"ID", "Name", "Email", "Mobile", "Role", "Status", "Created"},
			Rows:     rows,
		}, nil

	case "partners":
		rows := [][]interface{}{}
		for _, p := range s.Partners(ctx) {
			rows = append(rows, []interface{}{
				p.ID, p.BusinessName, p.ContactPerson, p.Email, p.Phone,
				strings.Join(p.Types, "; "), p.City, p.State, p.Commission, p.Status,
			})
		}
		return export.Options{
			Filename: "partners",
			Title:    "Partners",
			Columns:  []string{"ID", "Business", "Contact", "Email", "Phone", "Types", "City", "State", "Commission", "Status"},
			Rows:     rows,
		}, nil

	case "affiliates":
		rows := [][]interface{}{}
		for _, a := range s.Affiliates(ctx) {
			rows = append(rows, []interface{}{
				a.ID, a.Name, a.Code, a.Clicks, a.Conversions, a.ConvRate, a.Earnings, a.Status,
			})
		}
		return export.Options{
			Filename: "affiliates",
			Title:    "Affiliates",
			Columns:  []string{"ID", "Name", "Code", "Clicks", "Conversions", "Conv Rate", "Earnings", "Status"},
			Rows:     rows,
		}, nil

	case "transactions":
		rows := [][]interface{}{}
		for _, t := range s.Transactions(ctx) {
			rows = append(rows, []interface{}{t.ID, string(t.Type), t.Amount, t.Status, t.Date, t.Description})
		}
		return export.Options{
			Filename: "transactions",
			Title:    "Transaction History",
			Columns:  []string{"ID", "Type", "Amount", "Status", "Date", "Description"},
			Rows:     rows,
		}, nil
	}

	return export.Options{}, fmt.Errorf("unknown export resource: %q", resource)
}
