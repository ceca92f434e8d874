package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listIncome(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	sources, err := a.repos.Income.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toIncomeSourceDTOs(sources))
}

func (a *API) getIncome(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	src, err := a.repos.Income.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toIncomeSourceDTO(src))
}

func (a *API) createIncome(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createIncomeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	src := &domain.IncomeSource{
		ID:          uuid.New(),
		UserID:      identity.UserID,
		Source:      req.Source,
		Amount:      req.Amount,
		Frequency:   domain.Frequency(req.Frequency),
		NextPayDate: req.NextPayDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.IsActive != nil {
		src.IsActive = *req.IsActive
	}
	if err := src.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Income.Create(r.Context(), src); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toIncomeSourceDTO(src))
}

func (a *API) patchIncome(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchIncomeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	src, err := a.repos.Income.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.Source != nil {
		src.Source = *req.Source
	}
	if req.Amount != nil {
		src.Amount = *req.Amount
	}
	if req.Frequency != nil {
		src.Frequency = domain.Frequency(*req.Frequency)
	}
	if req.NextPayDate != nil {
		src.NextPayDate = req.NextPayDate
	}
	if req.IsActive != nil {
		src.IsActive = *req.IsActive
	}
	src.UpdatedAt = a.now()

	if err := src.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Income.Update(r.Context(), src); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toIncomeSourceDTO(src))
}

func (a *API) deleteIncome(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Income.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
