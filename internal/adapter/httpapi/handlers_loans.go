package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listLoans(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	loans, err := a.repos.Loans.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLoanDTOs(loans))
}

func (a *API) getLoan(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	loan, err := a.repos.Loans.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLoanDTO(loan))
}

func (a *API) createLoan(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createLoanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	loan := &domain.Loan{
		ID:             uuid.New(),
		UserID:         identity.UserID,
		DisplayName:    req.DisplayName,
		Lender:         req.Lender,
		Balance:        req.Balance,
		OriginalAmount: req.OriginalAmount,
		MonthlyPayment: req.MonthlyPayment,
		InterestRate:   req.InterestRate,
		NextDueDate:    req.NextDueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := loan.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Loans.Create(r.Context(), loan); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toLoanDTO(loan))
}

func (a *API) patchLoan(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchLoanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	loan, err := a.repos.Loans.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.DisplayName != nil {
		loan.DisplayName = *req.DisplayName
	}
	if req.Lender != nil {
		loan.Lender = *req.Lender
	}
	if req.Balance != nil {
		loan.Balance = *req.Balance
	}
	if req.OriginalAmount != nil {
		loan.OriginalAmount = *req.OriginalAmount
	}
	if req.MonthlyPayment != nil {
		loan.MonthlyPayment = *req.MonthlyPayment
	}
	if req.InterestRate != nil {
		loan.InterestRate = *req.InterestRate
	}
	if req.NextDueDate != nil {
		loan.NextDueDate = req.NextDueDate
	}
	loan.UpdatedAt = a.now()

	if err := loan.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Loans.Update(r.Context(), loan); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLoanDTO(loan))
}

func (a *API) deleteLoan(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Loans.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
