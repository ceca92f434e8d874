package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listAssets(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	assets, err := a.repos.Assets.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toAssetDTOs(assets))
}

func (a *API) getAsset(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	asset, err := a.repos.Assets.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toAssetDTO(asset))
}

func (a *API) createAsset(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createAssetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	asset := &domain.Asset{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		Name:      req.Name,
		Category:  domain.AssetCategory(req.Category),
		Value:     req.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := asset.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Assets.Create(r.Context(), asset); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toAssetDTO(asset))
}

func (a *API) patchAsset(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchAssetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	asset, err := a.repos.Assets.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Category != nil {
		asset.Category = domain.AssetCategory(*req.Category)
	}
	if req.Value != nil {
		asset.Value = *req.Value
	}
	asset.UpdatedAt = a.now()

	if err := asset.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Assets.Update(r.Context(), asset); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toAssetDTO(asset))
}

func (a *API) deleteAsset(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Assets.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (a *API) listLiabilities(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	liabilities, err := a.repos.Liabilities.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLiabilityDTOs(liabilities))
}

func (a *API) getLiability(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	liability, err := a.repos.Liabilities.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLiabilityDTO(liability))
}

func (a *API) createLiability(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createLiabilityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	liability := &domain.Liability{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		Name:      req.Name,
		Category:  domain.LiabilityCategory(req.Category),
		Balance:   req.Balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := liability.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Liabilities.Create(r.Context(), liability); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toLiabilityDTO(liability))
}

func (a *API) patchLiability(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchLiabilityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	liability, err := a.repos.Liabilities.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.Name != nil {
		liability.Name = *req.Name
	}
	if req.Category != nil {
		liability.Category = domain.LiabilityCategory(*req.Category)
	}
	if req.Balance != nil {
		liability.Balance = *req.Balance
	}
	liability.UpdatedAt = a.now()

	if err := liability.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Liabilities.Update(r.Context(), liability); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLiabilityDTO(liability))
}

func (a *API) deleteLiability(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Liabilities.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
