package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listVendors(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	vendors, err := a.repos.Vendors.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toVendorDTOs(vendors))
}

func (a *API) getVendor(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	vendor, err := a.repos.Vendors.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toVendorDTO(vendor))
}

func (a *API) createVendor(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createVendorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	vendor := &domain.Vendor{
		ID:                uuid.New(),
		UserID:            identity.UserID,
		BusinessProfileID: parseOptionalUUID(req.BusinessProfileID),
		Name:              req.Name,
		ContactName:       req.ContactName,
		Email:             req.Email,
		Phone:             req.Phone,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := vendor.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Vendors.Create(r.Context(), vendor); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toVendorDTO(vendor))
}

func (a *API) patchVendor(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchVendorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vendor, err := a.repos.Vendors.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.BusinessProfileID != nil {
		vendor.BusinessProfileID = parseOptionalUUID(req.BusinessProfileID)
	}
	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.ContactName != nil {
		vendor.ContactName = *req.ContactName
	}
	if req.Email != nil {
		vendor.Email = *req.Email
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	vendor.UpdatedAt = a.now()

	if err := vendor.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Vendors.Update(r.Context(), vendor); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toVendorDTO(vendor))
}

func (a *API) deleteVendor(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Vendors.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
