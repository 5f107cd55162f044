package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/infrastructure/identity"
	"traveldesk-admin/internal/usecase"
	"traveldesk-admin/pkg/export"
	"traveldesk-admin/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes the admin service over JSON HTTP
type Handler struct {
	admin    *usecase.AdminService
	verifier *identity.Verifier
	logger   logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(admin *usecase.AdminService, verifier *identity.Verifier, logger logger.Logger) *Handler {
	return &Handler{
		admin:    admin,
		verifier: verifier,
		logger:   logger,
	}
}

// Routes builds the router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/bookings", h.listBookings)
		r.Get("/bookings/packages", h.listPackageBookings)
		r.Patch("/bookings/{id}/status", h.updateBookingStatus)
		r.Get("/services/{type}/bookings", h.listServiceBookings)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Get("/users/{id}/bookings", h.listUserBookings)

		r.Get("/partners", h.listPartners)
		r.Post("/partners", h.createPartner)
		r.Delete("/partners/{id}", h.deletePartner)

		r.Get("/affiliates", h.listAffiliates)
		r.Post("/affiliates", h.createAffiliate)
		r.Patch("/affiliates/{id}", h.updateAffiliate)
		r.Delete("/affiliates/{id}", h.deleteAffiliate)

		r.Get("/catalog/hotels", h.listHotels)
		r.Get("/catalog/vehicles", h.listVehicles)
		r.Get("/catalog/packages", h.listPackages)

		r.Get("/dashboard/stats", h.dashboardStats)
		r.Get("/wallet/stats", h.walletStats)
		r.Get("/wallet/transactions", h.listTransactions)
		r.Get("/audit", h.auditLog)

		r.Get("/export/{resource}", h.exportResource)
	})

	return r
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page", 1)
	limit := intQuery(r, "limit", 10)
	writeJSON(w, http.StatusOK, h.admin.Bookings(r.Context(), page, limit))
}

func (h *Handler) listPackageBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.PackageBookings(r.Context()))
}

func (h *Handler) listServiceBookings(w http.ResponseWriter, r *http.Request) {
	t := entity.ServiceType(chi.URLParam(r, "type"))
	if !t.Valid() {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown service type: %q", t))
		return
	}
	writeJSON(w, http.StatusOK, h.admin.ServiceBookings(r.Context(), t))
}

func (h *Handler) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Status == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("status is required"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.admin.UpdateBookingStatus(r.Context(), principalFrom(r), id, body.Status); err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Users(r.Context()))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user := h.admin.User(r.Context(), chi.URLParam(r, "id"))
	if user == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("user not found"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) listUserBookings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.UserBookings(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) listPartners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Partners(r.Context()))
}

func (h *Handler) createPartner(w http.ResponseWriter, r *http.Request) {
	var draft entity.PartnerDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.admin.CreatePartner(r.Context(), principalFrom(r), draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) deletePartner(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeletePartner(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAffiliates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Affiliates(r.Context()))
}

func (h *Handler) createAffiliate(w http.ResponseWriter, r *http.Request) {
	var draft entity.AffiliateDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id, err := h.admin.CreateAffiliate(r.Context(), principalFrom(r), draft)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handler) updateAffiliate(w http.ResponseWriter, r *http.Request) {
	var draft entity.AffiliateDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.admin.UpdateAffiliate(r.Context(), principalFrom(r), chi.URLParam(r, "id"), draft); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) deleteAffiliate(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.DeleteAffiliate(r.Context(), principalFrom(r), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listHotels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Hotels(r.Context()))
}

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Vehicles(r.Context(), r.URL.Query().Get("type")))
}

func (h *Handler) listPackages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Packages(r.Context()))
}

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.DashboardStats(r.Context()))
}

func (h *Handler) walletStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.WalletStats(r.Context()))
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.Transactions(r.Context()))
}

func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.AuditLog(r.Context(), intQuery(r, "limit", 50)))
}

func (h *Handler) exportResource(w http.ResponseWriter, r *http.Request) {
	format := export.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = export.FormatCSV
	}

	artifact, err := h.admin.Export(r.Context(), chi.URLParam(r, "resource"), format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func intQuery(r *http.Request, key string, def int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil && v > 0 {
		return v
	}
	return def
}
