// Package httpapi exposes the application over a JSON REST surface.
// Every endpoint answers with the {"success": ..., "data"/"error": ...}
// envelope, and everything under /api/v1 requires a verified identity.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack-backend/internal/adapter/auth"
	"github.com/fintrackhq/fintrack-backend/internal/domain"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/duesoon"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/overview"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/payments"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/snapshot"
)

// Repositories bundles every persistence interface the API depends on
type Repositories struct {
	Cards            domain.CreditCardRepository
	Loans            domain.LoanRepository
	Income           domain.IncomeSourceRepository
	Expenses         domain.ExpenseRepository
	Payments         domain.PaymentRepository
	Assets           domain.AssetRepository
	Liabilities      domain.LiabilityRepository
	Snapshots        domain.SnapshotRepository
	BusinessProfiles domain.BusinessProfileRepository
	BusinessRevenue  domain.BusinessRevenueRepository
	BusinessExpenses domain.BusinessExpenseRepository
	Vendors          domain.VendorRepository
	PurchaseOrders   domain.PurchaseOrderRepository
}

// API holds the HTTP handlers and their dependencies
type API struct {
	log      *logrus.Logger
	verifier *auth.Verifier
	repos    Repositories

	dueSoon   *duesoon.DueSoonService
	payments  *payments.PaymentService
	overview  *overview.OverviewService
	snapshots *snapshot.SnapshotService

	// now is swappable for tests; defaults to time.Now
	now func() time.Time
}

// NewAPI wires the handlers to their repositories and services
func NewAPI(log *logrus.Logger, verifier *auth.Verifier, repos Repositories) *API {
	return &API{
		log:       log,
		verifier:  verifier,
		repos:     repos,
		dueSoon:   duesoon.NewDueSoonService(repos.Cards, repos.Loans, repos.Income, repos.Payments),
		payments:  payments.NewPaymentService(repos.Payments, repos.Cards, repos.Loans),
		overview:  overview.NewOverviewService(repos.Cards, repos.Loans, repos.Income, repos.Expenses),
		snapshots: snapshot.NewSnapshotService(repos.Assets, repos.Liabilities, repos.Snapshots),
		now:       time.Now,
	}
}

// Router builds the full route table. /healthz stays outside the
// authenticated subrouter so load balancers can probe without a token.
func (a *API) Router() *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware(a.log))
	root.HandleFunc("/healthz", a.health).Methods(http.MethodGet)

	api := root.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(a.verifier))

	registerCRUD(api, "/cards", a.listCards, a.getCard, a.createCard, a.patchCard, a.deleteCard)
	registerCRUD(api, "/loans", a.listLoans, a.getLoan, a.createLoan, a.patchLoan, a.deleteLoan)
	registerCRUD(api, "/income", a.listIncome, a.getIncome, a.createIncome, a.patchIncome, a.deleteIncome)
	registerCRUD(api, "/expenses", a.listExpenses, a.getExpense, a.createExpense, a.patchExpense, a.deleteExpense)
	registerCRUD(api, "/assets", a.listAssets, a.getAsset, a.createAsset, a.patchAsset, a.deleteAsset)
	registerCRUD(api, "/liabilities", a.listLiabilities, a.getLiability, a.createLiability, a.patchLiability, a.deleteLiability)
	registerCRUD(api, "/business-profiles", a.listBusinessProfiles, a.getBusinessProfile, a.createBusinessProfile, a.patchBusinessProfile, a.deleteBusinessProfile)
	registerCRUD(api, "/business-revenue", a.listBusinessRevenue, a.getBusinessRevenue, a.createBusinessRevenue, a.patchBusinessRevenue, a.deleteBusinessRevenue)
	registerCRUD(api, "/business-expenses", a.listBusinessExpenses, a.getBusinessExpense, a.createBusinessExpense, a.patchBusinessExpense, a.deleteBusinessExpense)
	registerCRUD(api, "/vendors", a.listVendors, a.getVendor, a.createVendor, a.patchVendor, a.deleteVendor)
	registerCRUD(api, "/purchase-orders", a.listPurchaseOrders, a.getPurchaseOrder, a.createPurchaseOrder, a.patchPurchaseOrder, a.deletePurchaseOrder)

	api.HandleFunc("/payments", a.listPayments).Methods(http.MethodGet)
	api.HandleFunc("/payments/mark-paid", a.markPaid).Methods(http.MethodPost)
	api.HandleFunc("/upcoming/payments", a.upcomingPayments).Methods(http.MethodGet)
	api.HandleFunc("/upcoming/income", a.upcomingIncome).Methods(http.MethodGet)
	api.HandleFunc("/overview", a.getOverview).Methods(http.MethodGet)
	api.HandleFunc("/net-worth/snapshots", a.createSnapshot).Methods(http.MethodPost)
	api.HandleFunc("/net-worth/snapshots", a.listSnapshots).Methods(http.MethodGet)

	return root
}

func registerCRUD(r *mux.Router, path string, list, get, create, patch, del http.HandlerFunc) {
	r.HandleFunc(path, list).Methods(http.MethodGet)
	r.HandleFunc(path, create).Methods(http.MethodPost)
	r.HandleFunc(path+"/{id}", get).Methods(http.MethodGet)
	r.HandleFunc(path+"/{id}", patch).Methods(http.MethodPatch, http.MethodPut)
	r.HandleFunc(path+"/{id}", del).Methods(http.MethodDelete)
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID parses the {id} route variable; a malformed ID gets a 400
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// storeError maps a repository error onto the right status code
func (a *API) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, "record not found")
		return
	}
	a.log.WithError(err).Error("storage operation failed")
	respondError(w, http.StatusInternalServerError, "internal error")
}

// parseOptionalUUID converts a validated optional uuid string field
func parseOptionalUUID(raw *string) *uuid.UUID {
	if raw == nil || *raw == "" {
		return nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil
	}
	return &id
}
