package usecase

import "traveldesk-admin/pkg/rawdoc"

// Declarative normalization tables, one per entity type. Each canonical
// field lists its historical alternate keys in priority order; the first
// populated one wins, otherwise the declared default applies.

var bookingSchema = rawdoc.Schema{
	{Name: "packageName", Kind: rawdoc.KindText, Default: "Unknown Booking",
		Keys: []string{"packageName", "PackageName", "package.name", "package.title", "name", "title", "hotelName", "hotel_name", "package_name"}},
	{Name: "packageDays", Kind: rawdoc.KindInt, Default: 1,
		Keys: []string{"packageDays", "days", "duration"}},
	{Name: "packagePrice", Kind: rawdoc.KindFloat,
		Keys: []string{"totalAmount", "amount", "price", "total_amount", "cost"}},
	{Name: "startDate", Kind: rawdoc.KindTime,
		Keys: []string{"startDate", "travelDate", "date"}},
	{Name: "people", Kind: rawdoc.KindInt, Default: 1,
		Keys: []string{"people", "guests", "travelers"}},
	{Name: "paymentStatus", Kind: rawdoc.KindStatus, Default: "pending",
		Keys: []string{"paymentStatus"}},
	{Name: "status", Kind: rawdoc.KindStatus, Default: "pending",
		Keys: []string{"status", "bookingStatus"}},
	{Name: "createdAt", Kind: rawdoc.KindTime,
		Keys: []string{"createdAt"}},
	{Name: "userId", Kind: rawdoc.KindText,
		Keys: []string{"userId"}},
}

// joinedUserSchema shapes the foreign user attached to a booking. The
// defaults are the documented degradation for unresolved joins.
var joinedUserSchema = rawdoc.Schema{
	{Name: "name", Kind: rawdoc.KindText, Default: "Guest",
		Keys: []string{"name", "fullname", "fullName", "displayName"}},
	{Name: "mobile", Kind: rawdoc.KindText, Default: "N/A",
		Keys: []string{"mobile", "phoneNumber", "phone"}},
	{Name: "email", Kind: rawdoc.KindText,
		Keys: []string{"email"}},
}

var userSchema = rawdoc.Schema{
	{Name: "name", Kind: rawdoc.KindText, Default: "N/A",
		Keys: []string{"name", "fullname", "fullName", "displayName"}},
	{Name: "email", Kind: rawdoc.KindText, Default: "N/A",
		Keys: []string{"email"}},
	{Name: "mobile", Kind: rawdoc.KindText, Default: "N/A",
		Keys: []string{"mobile", "phoneNumber", "phone"}},
	{Name: "role", Kind: rawdoc.KindText, Default: "user",
		Keys: []string{"role", "userRole"}},
	{Name: "createdAt", Kind: rawdoc.KindTime,
		Keys: []string{"createdAt"}},
}

var partnerSchema = rawdoc.Schema{
	{Name: "businessName", Kind: rawdoc.KindText,
		Keys: []string{"businessName"}},
	{Name: "contactPerson", Kind: rawdoc.KindText, Default: "N/A",
		Keys: []string{"contactPerson", "name"}},
	{Name: "email", Kind: rawdoc.KindText,
		Keys: []string{"email"}},
	{Name: "phone", Kind: rawdoc.KindText,
		Keys: []string{"phone", "mobile"}},
	{Name: "city", Kind: rawdoc.KindText,
		Keys: []string{"city"}},
	{Name: "state", Kind: rawdoc.KindText,
		Keys: []string{"state"}},
	{Name: "commission", Kind: rawdoc.KindFloat,
		Keys: []string{"commission"}},
	{Name: "status", Kind: rawdoc.KindStatus, Default: "Active",
		Keys: []string{"status"}},
	{Name: "verificationStatus", Kind: rawdoc.KindStatus, Default: "pending",
		Keys: []string{"verificationStatus"}},
	{Name: "createdAt", Kind: rawdoc.KindTime,
		Keys: []string{"createdAt"}},
}

var affiliateSchema = rawdoc.Schema{
	{Name: "name", Kind: rawdoc.KindText, Default: "N/A",
		Keys: []string{"name", "fullname", "displayName"}},
	{Name: "code", Kind: rawdoc.KindText,
		Keys: []string{"referralCode"}},
	{Name: "referrals", Kind: rawdoc.KindInt,
		Keys: []string{"totalReferrals"}},
	{Name: "earnings", Kind: rawdoc.KindFloat,
		Keys: []string{"referralEarnings"}},
	{Name: "clicks", Kind: rawdoc.KindInt,
		Keys: []string{"totalClicks"}},
	{Name: "website", Kind: rawdoc.KindText,
		Keys: []string{"website"}},
	{Name: "email", Kind: rawdoc.KindText,
		Keys: []string{"email"}},
}
