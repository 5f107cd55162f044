package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/pkg/rawdoc"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serviceCommissionRate is the platform's cut on service bookings. Business
// constant, not configurable per record.
const serviceCommissionRate = 0.10

// buildBooking combines a raw booking document with its resolved owner into
// the canonical booking view model. Pure; user may be nil for an unresolved
// join, which degrades to the documented defaults.
func buildBooking(rec rawdoc.Record, user rawdoc.Doc) entity.Booking {
	f := bookingSchema.Normalize(rec.Data)
	u := joinedUserSchema.Normalize(user)

	createdAt := f.Text("createdAt")
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	return entity.Booking{
		ID:           rec.ID,
		PackageName:  f.Text("packageName"),
		PackageDays:  f.Int("packageDays"),
		PackagePrice: f.Float("packagePrice"),
		StartDate:    f.Text("startDate"),
		People:       f.Int("people"),
		User: entity.BookingUser{
			Name:   u.Text("name"),
			Email:  u.Text("email"),
			Mobile: u.Text("mobile"),
		},
		UserID:        f.Text("userId"),
		PaymentStatus: f.Text("paymentStatus"),
		Status:        f.Text("status"),
		CreatedAt:     createdAt,
		Raw:           rec.Data,
	}
}

// buildServiceBooking shapes a flight/train/hotel/cab booking. The details
// string depends on the service type: transport shows an identifying number
// with its route, hotel shows the property, cab shows the route.
func buildServiceBooking(t entity.ServiceType, rec rawdoc.Record, user rawdoc.Doc) entity.ServiceBooking {
	data := rec.Data
	u := joinedUserSchema.Normalize(user)

	amount := firstNumber(data, "totalAmount", "price", "PackagePrice", "total_amount")

	var details string
	switch t.DocType() {
	case "flight":
		details = routeDetails(data, "flightNumber", "Flight Booking")
	case "train":
		details = routeDetails(data, "trainNumber", "Train Booking")
	case "hotel":
		details = firstText(data, "hotelName", "packageName")
		if details == "" {
			details = "Hotel Booking"
		}
	case "cab":
		details = firstText(data, "route", "packageName")
		if details == "" {
			details = "Cab Booking"
		}
	}

	rawStatus, _ := data.First("status", "paymentStatus")

	email := u.Text("email")
	if email == "" {
		email = "N/A"
	}

	return entity.ServiceBooking{
		ID:            rec.ID,
		CustomerName:  u.Text("name"),
		CustomerEmail: email,
		Details:       strings.TrimSpace(details),
		Date:          serviceDate(data),
		Amount:        amount,
		Commission:    math.Round(amount * serviceCommissionRate),
		Status:        mapServiceStatus(rawdoc.StatusText(rawStatus, "")),
		UserID:        firstText(data, "userId"),
		Raw:           data,
	}
}

// buildUser shapes an account document into the canonical user view model
func buildUser(rec rawdoc.Record) entity.User {
	f := userSchema.Normalize(rec.Data)

	createdAt := f.Text("createdAt")
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	return entity.User{
		ID:        rec.ID,
		Name:      f.Text("name"),
		Email:     f.Text("email"),
		Mobile:    f.Text("mobile"),
		Role:      strings.ToLower(f.Text("role")),
		Status:    accountStatus(rec.Data, "active", "inactive"),
		CreatedAt: createdAt,
		Raw:       rec.Data,
	}
}

// buildAffiliate shapes an affiliate account. The conversion rate is always
// computed and is safe against zero clicks.
func buildAffiliate(rec rawdoc.Record) entity.Affiliate {
	f := affiliateSchema.Normalize(rec.Data)

	clicks := f.Int("clicks")
	conversions := f.Int("referrals")
	convRate := "0.00%"
	if clicks > 0 {
		convRate = fmt.Sprintf("%.2f%%", float64(conversions)/float64(clicks)*100)
	}

	website := f.Text("website")
	if website == "" {
		if email := f.Text("email"); strings.Contains(email, "@") {
			website = email[strings.Index(email, "@")+1:]
		} else {
			website = "N/A"
		}
	}

	return entity.Affiliate{
		ID:          rec.ID,
		Name:        f.Text("name"),
		Code:        f.Text("code"),
		Referrals:   conversions,
		Earnings:    f.Float("earnings"),
		Status:      accountStatus(rec.Data, "Active", "Inactive"),
		Clicks:      clicks,
		Conversions: conversions,
		ConvRate:    convRate,
		Website:     website,
	}
}

// buildPartner shapes a partner document
func buildPartner(rec rawdoc.Record) entity.Partner {
	f := partnerSchema.Normalize(rec.Data)

	createdAt := f.Text("createdAt")
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	return entity.Partner{
		ID:                 rec.ID,
		BusinessName:       f.Text("businessName"),
		ContactPerson:      f.Text("contactPerson"),
		Email:              f.Text("email"),
		Phone:              f.Text("phone"),
		Types:              partnerTypes(rec.Data),
		City:               f.Text("city"),
		State:              f.Text("state"),
		Commission:         f.Float("commission"),
		Status:             f.Text("status"),
		VerificationStatus: f.Text("verificationStatus"),
		CreatedAt:          createdAt,
	}
}

// mapServiceStatus folds the many stored status spellings into the
// canonical enum. Cancelled and Failed are deliberately kept distinct.
func mapServiceStatus(status string) entity.ServiceStatus {
	switch strings.ToLower(status) {
	case "confirmed", "paid", "completed", "success":
		return entity.StatusConfirmed
	case "cancelled", "rejected":
		return entity.StatusCancelled
	case "failed", "error":
		return entity.StatusFailed
	}
	return entity.StatusPending
}

// accountStatus prefers an explicit status field, then falls back to the
// legacy isDisabled flag.
func accountStatus(data rawdoc.Doc, active, inactive string) string {
	if v, ok := data.Lookup("status"); ok {
		if s, ok := rawdoc.Text(v); ok && s != "" {
			return s
		}
	}
	if v, ok := data.Lookup("isDisabled"); ok {
		if disabled, ok := v.(bool); ok && disabled {
			return inactive
		}
	}
	return active
}

// serviceDate yields a calendar date for a service booking: native dates
// render as "2006-01-02", stored strings pass through.
func serviceDate(data rawdoc.Doc) string {
	if v, ok := data.First("startDate", "date"); ok {
		tv := rawdoc.DecodeTime(v)
		if tv.Kind == rawdoc.TimeISO {
			return tv.Raw
		}
		if tv.Kind != rawdoc.TimeMissing {
			return tv.DateOnly()
		}
	}
	return ""
}

// routeDetails composes "<number> (<from> - <to>)" for transport bookings,
// falling back to the package name when no identifying number is stored.
func routeDetails(data rawdoc.Doc, numberKey, fallback string) string {
	number := firstText(data, numberKey)
	if number == "" {
		if name := firstText(data, "packageName"); name != "" {
			return name
		}
		return fallback
	}
	return fmt.Sprintf("%s (%s - %s)", number, firstText(data, "from"), firstText(data, "to"))
}

func partnerTypes(data rawdoc.Doc) []string {
	if v, ok := data.Lookup("types"); ok {
		switch list := v.(type) {
		case []string:
			return list
		case primitive.A:
			return collectTypes(list)
		case []interface{}:
			return collectTypes(list)
		}
	}
	if t := firstText(data, "type"); t != "" {
		return []string{t}
	}
	return []string{"Hotel"}
}

func collectTypes(list []interface{}) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := rawdoc.Text(item); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{"Hotel"}
	}
	return out
}

func firstText(data rawdoc.Doc, keys ...string) string {
	for _, k := range keys {
		if v, ok := data.Lookup(k); ok {
			if s, ok := rawdoc.Text(v); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func firstNumber(data rawdoc.Doc, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := data.Lookup(k); ok {
			if n, ok := rawdoc.Number(v); ok {
				return n
			}
		}
	}
	return 0
}
