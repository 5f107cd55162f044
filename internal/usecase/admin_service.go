package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/domain/repository"
	"traveldesk-admin/internal/infrastructure/identity"
	"traveldesk-admin/pkg/logger"
	"traveldesk-admin/pkg/metrics"
	"traveldesk-admin/pkg/rawdoc"

	"github.com/google/uuid"
)

// Collections in the document store
const (
	collBookings             = "bookings"
	collUsers                = "users"
	collPartners             = "partners"
	collForumPosts           = "forum_posts"
	collScratchCards         = "scratchCards"
	collReferralTransactions = "referralTransactions"
)

// AdminService merges the heterogeneous documents of the booking platform
// into the canonical view models the admin UI consumes. Read failures are
// logged and degrade to empty results; write failures propagate to the
// caller.
type AdminService struct {
	store    repository.DocumentStore
	audit    repository.AuditRepository
	platform repository.PlatformAPI
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewAdminService creates a new admin service
func NewAdminService(
	store repository.DocumentStore,
	audit repository.AuditRepository,
	platform repository.PlatformAPI,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *AdminService {
	return &AdminService{
		store:    store,
		audit:    audit,
		platform: platform,
		logger:   logger,
		metrics:  metrics,
	}
}

// Bookings returns one page of enriched bookings, newest first, plus the
// total matched count.
func (s *AdminService) Bookings(ctx context.Context, page, limit int) entity.BookingPage {
	defer s.observeQuery(collBookings, time.Now())

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	records, err := s.store.Find(ctx, collBookings, repository.Query{
		OrderBy: "createdAt",
		Desc:    true,
	})
	if err != nil {
		s.degrade("bookings", err)
		return entity.BookingPage{Bookings: []entity.Booking{}}
	}

	users := s.resolveUsers(ctx, records)

	bookings := make([]entity.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, buildBooking(rec, users[firstText(rec.Data, "userId")]))
	}
	sortByTimeDesc(bookings, func(b entity.Booking) string { return b.CreatedAt })

	total := len(bookings)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return entity.BookingPage{Bookings: bookings[start:end], Total: total}
}

// PackageBookings returns all tour-package bookings, excluding the service
// categories, newest first.
func (s *AdminService) PackageBookings(ctx context.Context) []entity.Booking {
	defer s.observeQuery(collBookings, time.Now())

	records, err := s.store.Find(ctx, collBookings, repository.Query{})
	if err != nil {
		s.degrade("package bookings", err)
		return []entity.Booking{}
	}

	var matched []rawdoc.Record
	for _, rec := range records {
		if isPackageBooking(rec.Data) {
			matched = append(matched, rec)
		}
	}

	users := s.resolveUsers(ctx, matched)

	bookings := make([]entity.Booking, 0, len(matched))
	for _, rec := range matched {
		bookings = append(bookings, buildBooking(rec, users[firstText(rec.Data, "userId")]))
	}
	sortByTimeDesc(bookings, func(b entity.Booking) string { return b.CreatedAt })

	return bookings
}

// ServiceBookings returns the bookings of one service category, newest
// travel date first.
func (s *AdminService) ServiceBookings(ctx context.Context, t entity.ServiceType) []entity.ServiceBooking {
	defer s.observeQuery(collBookings, time.Now())

	docType := t.DocType()
	if docType == "" {
		s.logger.Warn("Unknown service type requested", "type", string(t))
		return []entity.ServiceBooking{}
	}

	records, err := s.store.Find(ctx, collBookings, repository.Query{})
	if err != nil {
		s.degrade("service bookings", err)
		return []entity.ServiceBooking{}
	}

	// Some documents store the type with different casing
	var matched []rawdoc.Record
	for _, rec := range records {
		if strings.EqualFold(firstText(rec.Data, "type"), docType) {
			matched = append(matched, rec)
		}
	}

	users := s.resolveUsers(ctx, matched)

	bookings := make([]entity.ServiceBooking, 0, len(matched))
	for _, rec := range matched {
		bookings = append(bookings, buildServiceBooking(t, rec, users[firstText(rec.Data, "userId")]))
	}
	sortByTimeDesc(bookings, func(b entity.ServiceBooking) string { return b.Date })

	return bookings
}

// Users returns all regular accounts, newest first. Admin, partner and
// affiliate roles are excluded from the general user list.
func (s *AdminService) Users(ctx context.Context) []entity.User {
	defer s.observeQuery(collUsers, time.Now())

	records, err := s.store.Find(ctx, collUsers, repository.Query{
		OrderBy: "createdAt",
		Desc:    true,
	})
	if err != nil {
		s.degrade("users", err)
		return []entity.User{}
	}

	users := make([]entity.User, 0, len(records))
	for _, rec := range records {
		u := buildUser(rec)
		if u.Role == "affiliate" || u.Role == "partner" || u.Role == "admin" {
			continue
		}
		users = append(users, u)
	}
	return users
}

// User returns a single account, nil when it does not exist
func (s *AdminService) User(ctx context.Context, id string) *entity.User {
	rec, err := s.store.Get(ctx, collUsers, id)
	if err != nil {
		s.degrade("user", err)
		return nil
	}
	if rec == nil {
		return nil
	}
	u := buildUser(*rec)
	return &u
}

// UserBookings returns one account's bookings, newest first. The owner is
// taken from the booking's embedded user snapshot, no join needed.
func (s *AdminService) UserBookings(ctx context.Context, userID string) []entity.Booking {
	defer s.observeQuery(collBookings, time.Now())

	records, err := s.store.Find(ctx, collBookings, repository.Query{
		Filters: []repository.Filter{{Field: "userId", Op: repository.OpEq, Value: userID}},
		OrderBy: "createdAt",
		Desc:    true,
	})
	if err != nil {
		s.degrade("user bookings", err)
		return []entity.Booking{}
	}

	bookings := make([]entity.Booking, 0, len(records))
	for _, rec := range records {
		embedded, _ := rec.Data.Lookup("user")
		snapshot, _ := rawdoc.AsDoc(embedded)
		bookings = append(bookings, buildBooking(rec, snapshot))
	}
	return bookings
}

// Partners returns all partners, newest first
func (s *AdminService) Partners(ctx context.Context) []entity.Partner {
	defer s.observeQuery(collPartners, time.Now())

	records, err := s.store.Find(ctx, collPartners, repository.Query{
		OrderBy: "createdAt",
		Desc:    true,
	})
	if err != nil {
		s.degrade("partners", err)
		return []entity.Partner{}
	}

	partners := make([]entity.Partner, 0, len(records))
	for _, rec := range records {
		partners = append(partners, buildPartner(rec))
	}
	return partners
}

// CreatePartner creates a partner document and audits the mutation
func (s *AdminService) CreatePartner(ctx context.Context, principal *identity.Principal, draft entity.PartnerDraft) (string, error) {
	doc := rawdoc.Doc{
		"businessName":       draft.BusinessName,
		"contactPerson":      draft.ContactPerson,
		"email":              draft.Email,
		"phone":              draft.Phone,
		"types":              draft.Types,
		"city":               draft.City,
		"state":              draft.State,
		"commission":         draft.Commission,
		"status":             "Active",
		"verificationStatus": "verified",
		"createdAt":          time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, collPartners, doc)
	if err != nil {
		s.countError("create_partner")
		return "", fmt.Errorf("failed to create partner: %w", err)
	}

	s.recordAudit(ctx, principal, "create", collPartners, id, draft.BusinessName)
	s.countWrite(collPartners, "create")
	return id, nil
}

// DeletePartner removes a partner document and audits the mutation
func (s *AdminService) DeletePartner(ctx context.Context, principal *identity.Principal, id string) error {
	if err := s.store.Delete(ctx, collPartners, id); err != nil {
		s.countError("delete_partner")
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	s.recordAudit(ctx, principal, "delete", collPartners, id, "")
	s.countWrite(collPartners, "delete")
	return nil
}

// Affiliates returns every account carrying a referral code, sorted by name
func (s *AdminService) Affiliates(ctx context.Context) []entity.Affiliate {
	defer s.observeQuery(collUsers, time.Now())

	records, err := s.store.Find(ctx, collUsers, repository.Query{
		Filters: []repository.Filter{{Field: "referralCode", Op: repository.OpExists}},
	})
	if err != nil {
		s.degrade("affiliates", err)
		return []entity.Affiliate{}
	}

	affiliates := make([]entity.Affiliate, 0, len(records))
	for _, rec := range records {
		if firstText(rec.Data, "referralCode") == "" {
			continue
		}
		affiliates = append(affiliates, buildAffiliate(rec))
	}
	sort.Slice(affiliates, func(i, j int) bool {
		return affiliates[i].Name < affiliates[j].Name
	})
	return affiliates
}

// CreateAffiliate creates an affiliate account, generating a referral code
// when the caller did not supply one.
func (s *AdminService) CreateAffiliate(ctx context.Context, principal *identity.Principal, draft entity.AffiliateDraft) (string, error) {
	code := draft.Code
	if code == "" {
		code = "REF" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	}

	doc := rawdoc.Doc{
		"name":             draft.Name,
		"referralCode":     code,
		"website":          draft.Website,
		"totalClicks":      0,
		"totalReferrals":   0,
		"referralEarnings": 0,
		"status":           "Active",
		"isDisabled":       false,
		"role":             "affiliate",
		"createdAt":        time.Now().UTC(),
	}

	id, err := s.store.Insert(ctx, collUsers, doc)
	if err != nil {
		s.countError("create_affiliate")
		return "", fmt.Errorf("failed to create affiliate: %w", err)
	}

	s.recordAudit(ctx, principal, "create", collUsers, id, "affiliate "+code)
	s.countWrite(collUsers, "create")
	return id, nil
}

// UpdateAffiliate applies the supplied fields to an affiliate account.
// Status changes keep the legacy isDisabled flag in sync.
func (s *AdminService) UpdateAffiliate(ctx context.Context, principal *identity.Principal, id string, draft entity.AffiliateDraft) error {
	set := rawdoc.Doc{}
	if draft.Name != "" {
		set["name"] = draft.Name
	}
	if draft.Website != "" {
		set["website"] = draft.Website
	}
	if draft.Status != "" {
		set["status"] = draft.Status
		set["isDisabled"] = draft.Status == "Inactive"
	}
	if draft.Code != "" {
		set["referralCode"] = draft.Code
	}
	if len(set) == 0 {
		return nil
	}

	if err := s.store.Update(ctx, collUsers, id, set); err != nil {
		s.countError("update_affiliate")
		return fmt.Errorf("failed to update affiliate: %w", err)
	}

	s.recordAudit(ctx, principal, "update", collUsers, id, "affiliate")
	s.countWrite(collUsers, "update")
	return nil
}

// DeleteAffiliate removes an affiliate account
func (s *AdminService) DeleteAffiliate(ctx context.Context, principal *identity.Principal, id string) error {
	if err := s.store.Delete(ctx, collUsers, id); err != nil {
		s.countError("delete_affiliate")
		return fmt.Errorf("failed to delete affiliate: %w", err)
	}
	s.recordAudit(ctx, principal, "delete", collUsers, id, "affiliate")
	s.countWrite(collUsers, "delete")
	return nil
}

// UpdateBookingStatus changes a booking's status through the platform API
func (s *AdminService) UpdateBookingStatus(ctx context.Context, principal *identity.Principal, bookingID, status string) error {
	if err := s.platform.UpdateBookingStatus(ctx, bookingID, status); err != nil {
		s.countError("update_booking_status")
		return err
	}
	s.recordAudit(ctx, principal, "update", collBookings, bookingID, "status="+status)
	s.countWrite(collBookings, "update")
	return nil
}

// Hotels returns the hotel catalog, empty on failure
func (s *AdminService) Hotels(ctx context.Context) []entity.Hotel {
	hotels, err := s.platform.Hotels(ctx)
	if err != nil {
		s.degrade("hotels", err)
		return []entity.Hotel{}
	}
	return hotels
}

// Vehicles returns the vehicle catalog for one transport type, empty on
// failure.
func (s *AdminService) Vehicles(ctx context.Context, vehicleType string) []entity.Vehicle {
	vehicles, err := s.platform.Vehicles(ctx, vehicleType)
	if err != nil {
		s.degrade("vehicles", err)
		return []entity.Vehicle{}
	}
	return vehicles
}

// Packages returns the tour package catalog, empty on failure
func (s *AdminService) Packages(ctx context.Context) []entity.Package {
	packages, err := s.platform.Packages(ctx)
	if err != nil {
		s.degrade("packages", err)
		return []entity.Package{}
	}
	return packages
}

// AuditLog returns the most recent admin mutations
func (s *AdminService) AuditLog(ctx context.Context, limit int) []entity.AuditRecord {
	if s.audit == nil {
		return []entity.AuditRecord{}
	}
	if limit < 1 {
		limit = 50
	}
	records, err := s.audit.Recent(ctx, limit)
	if err != nil {
		s.degrade("audit log", err)
		return []entity.AuditRecord{}
	}
	return records
}

// isPackageBooking matches tour-package documents: an explicit tour/package
// type, or any package-name key when the document carries no known service
// type.
func isPackageBooking(data rawdoc.Doc) bool {
	docType := strings.ToLower(firstText(data, "type", "package.type"))
	switch docType {
	case "flight", "train", "cab", "hotel":
		return false
	case "tour", "package":
		return true
	}
	_, hasName := data.First("packageName", "PackageName", "package_name", "package.name", "package.title", "name", "title")
	return hasName
}

// recordAudit writes the mutation to the audit trail, best effort
func (s *AdminService) recordAudit(ctx context.Context, principal *identity.Principal, action, collection, docID, detail string) {
	if s.audit == nil {
		return
	}
	actor := "unknown"
	if principal != nil {
		actor = principal.Subject
		if principal.Email != "" {
			actor = principal.Email
		}
	}
	rec := &entity.AuditRecord{
		Actor:      actor,
		Action:     action,
		Collection: collection,
		DocID:      docID,
		Detail:     detail,
	}
	if err := s.audit.Record(ctx, rec); err != nil {
		s.logger.Warn("Failed to write audit record", "action", action, "collection", collection, "error", err)
	}
}

func (s *AdminService) degrade(operation string, err error) {
	s.logger.Error("Query failed, returning empty result", "operation", operation, "error", err)
	s.countError(operation)
}

func (s *AdminService) observeQuery(collection string, started time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.QueriesTotal.WithLabelValues(collection).Inc()
	s.metrics.QueryDuration.Observe(time.Since(started).Seconds())
}

func (s *AdminService) countWrite(collection, action string) {
	if s.metrics != nil {
		s.metrics.WritesTotal.WithLabelValues(collection, action).Inc()
	}
}

func (s *AdminService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// sortByTimeDesc orders view models newest first by an ISO date field
func sortByTimeDesc[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return rawdoc.DecodeTime(key(items[i])).Time.After(rawdoc.DecodeTime(key(items[j])).Time)
	})
}
