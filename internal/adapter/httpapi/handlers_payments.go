package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/usecase/duesoon"
	"github.com/fintrackhq/fintrack-backend/internal/usecase/payments"
)

func (a *API) listPayments(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	records, err := a.repos.Payments.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPaymentRecordDTOs(records))
}

func (a *API) markPaid(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req markPaidRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	rec, err := a.payments.MarkPaid(r.Context(), identity.UserID, payments.MarkPaidInput{
		AccountID:          accountID,
		AccountType:        req.AccountType,
		Amount:             req.Amount,
		PaymentMethod:      req.PaymentMethod,
		ConfirmationNumber: req.ConfirmationNumber,
		Notes:              req.Notes,
	})
	if err != nil {
		a.log.WithError(err).Warn("mark-paid rejected")
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, toPaymentRecordDTO(rec))
}

func (a *API) upcomingPayments(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	window, err := duesoon.ParseWindow(r.URL.Query().Get("filter"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := a.dueSoon.UpcomingPayments(r.Context(), identity.UserID, window)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toDueItemDTOs(items))
}

func (a *API) upcomingIncome(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	window, err := duesoon.ParseWindow(r.URL.Query().Get("filter"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := a.dueSoon.UpcomingIncome(r.Context(), identity.UserID, window)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toIncomeItemDTOs(items))
}
