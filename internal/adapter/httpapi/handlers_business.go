package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listBusinessProfiles(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	profiles, err := a.repos.BusinessProfiles.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessProfileDTOs(profiles))
}

func (a *API) getBusinessProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	profile, err := a.repos.BusinessProfiles.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessProfileDTO(profile))
}

func (a *API) createBusinessProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createBusinessProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	profile := &domain.BusinessProfile{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := profile.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.BusinessProfiles.Create(r.Context(), profile); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toBusinessProfileDTO(profile))
}

func (a *API) patchBusinessProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchBusinessProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := a.repos.BusinessProfiles.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.Name != nil {
		profile.Name = *req.Name
	}
	profile.UpdatedAt = a.now()

	if err := profile.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.BusinessProfiles.Update(r.Context(), profile); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessProfileDTO(profile))
}

func (a *API) deleteBusinessProfile(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.BusinessProfiles.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (a *API) listBusinessRevenue(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	revenues, err := a.repos.BusinessRevenue.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessRevenueDTOs(revenues))
}

func (a *API) getBusinessRevenue(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rev, err := a.repos.BusinessRevenue.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessRevenueDTO(rev))
}

func (a *API) createBusinessRevenue(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createBusinessRevenueRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	rev := &domain.BusinessRevenue{
		ID:                uuid.New(),
		UserID:            identity.UserID,
		BusinessProfileID: parseOptionalUUID(req.BusinessProfileID),
		Source:            req.Source,
		Amount:            req.Amount,
		Frequency:         domain.Frequency(req.Frequency),
		NextPayDate:       req.NextPayDate,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.IsActive != nil {
		rev.IsActive = *req.IsActive
	}
	if err := rev.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.BusinessRevenue.Create(r.Context(), rev); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toBusinessRevenueDTO(rev))
}

func (a *API) patchBusinessRevenue(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchBusinessRevenueRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rev, err := a.repos.BusinessRevenue.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.BusinessProfileID != nil {
		rev.BusinessProfileID = parseOptionalUUID(req.BusinessProfileID)
	}
	if req.Source != nil {
		rev.Source = *req.Source
	}
	if req.Amount != nil {
		rev.Amount = *req.Amount
	}
	if req.Frequency != nil {
		rev.Frequency = domain.Frequency(*req.Frequency)
	}
	if req.NextPayDate != nil {
		rev.NextPayDate = req.NextPayDate
	}
	if req.IsActive != nil {
		rev.IsActive = *req.IsActive
	}
	rev.UpdatedAt = a.now()

	if err := rev.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.BusinessRevenue.Update(r.Context(), rev); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessRevenueDTO(rev))
}

func (a *API) deleteBusinessRevenue(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.BusinessRevenue.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (a *API) listBusinessExpenses(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	expenses, err := a.repos.BusinessExpenses.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessExpenseDTOs(expenses))
}

func (a *API) getBusinessExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	exp, err := a.repos.BusinessExpenses.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessExpenseDTO(exp))
}

func (a *API) createBusinessExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createBusinessExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	exp := &domain.BusinessExpense{
		ID:                uuid.New(),
		UserID:            identity.UserID,
		BusinessProfileID: parseOptionalUUID(req.BusinessProfileID),
		Name:              req.Name,
		Category:          req.Category,
		Amount:            req.Amount,
		Frequency:         domain.Frequency(req.Frequency),
		DueDate:           req.DueDate,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.IsActive != nil {
		exp.IsActive = *req.IsActive
	}
	if err := exp.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.BusinessExpenses.Create(r.Context(), exp); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toBusinessExpenseDTO(exp))
}

func (a *API) patchBusinessExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchBusinessExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exp, err := a.repos.BusinessExpenses.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.BusinessProfileID != nil {
		exp.BusinessProfileID = parseOptionalUUID(req.BusinessProfileID)
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
	if err := a.repos.BusinessExpenses.Update(r.Context(), exp); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBusinessExpenseDTO(exp))
}

func (a *API) deleteBusinessExpense(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.BusinessExpenses.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
