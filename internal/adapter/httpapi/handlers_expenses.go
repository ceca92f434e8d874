package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listExpenses(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	expenses, err := a.repos.Expenses.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toExpenseDTOs(expenses))
}

func (a *API) getExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	exp, err := a.repos.Expenses.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toExpenseDTO(exp))
}

func (a *API) createExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	exp := &domain.Expense{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		Name:      req.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		Frequency: domain.Frequency(req.Frequency),
		DueDate:   req.DueDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.IsActive != nil {
		exp.IsActive = *req.IsActive
	}
	if err := exp.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Expenses.Create(r.Context(), exp); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toExpenseDTO(exp))
}

func (a *API) patchExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exp, err := a.repos.Expenses.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.Name != nil {
		exp.Name = *req.Name
	}
	if req.Category != nil {
		exp.Category = *req.Category
	}
	if req.Amount != nil {
		exp.Amount = *req.Amount
	}
	if req.Frequency != nil {
		exp.Frequency = domain.Frequency(*req.Frequency)
	}
	if req.DueDate != nil {
		exp.DueDate = req.DueDate
	}
	if req.IsActive != nil {
		exp.IsActive = *req.IsActive
	}
	exp.UpdatedAt = a.now()

	if err := exp.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Expenses.Update(r.Context(), exp); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toExpenseDTO(exp))
}

func (a *API) deleteExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Expenses.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
