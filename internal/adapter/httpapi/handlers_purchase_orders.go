package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	orders, err := a.repos.PurchaseOrders.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPurchaseOrderDTOs(orders))
}

func (a *API) getPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	order, err := a.repos.PurchaseOrders.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPurchaseOrderDTO(order))
}

func (a *API) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createPurchaseOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid vendor id")
		return
	}
	// Orders must reference a vendor the caller owns.
	if _, err := a.repos.Vendors.GetByID(r.Context(), identity.UserID, vendorID); err != nil {
		a.storeError(w, err)
		return
	}

	now := a.now()
	order := &domain.PurchaseOrder{
		ID:                uuid.New(),
		UserID:            identity.UserID,
		BusinessProfileID: parseOptionalUUID(req.BusinessProfileID),
		VendorID:          vendorID,
		OrderNumber:       req.OrderNumber,
		Status:            domain.PurchaseOrderStatusDraft,
		OrderDate:         now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if req.Status != "" {
		order.Status = domain.PurchaseOrderStatus(req.Status)
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	order.Items = buildOrderItems(order.ID, req.Items)

	if err := order.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.PurchaseOrders.Create(r.Context(), order); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toPurchaseOrderDTO(order))
}

func (a *API) patchPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchPurchaseOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := a.repos.PurchaseOrders.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.BusinessProfileID != nil {
		order.BusinessProfileID = parseOptionalUUID(req.BusinessProfileID)
	}
	if req.VendorID != nil {
		vendorID, err := uuid.Parse(*req.VendorID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid vendor id")
			return
		}
		if _, err := a.repos.Vendors.GetByID(r.Context(), identity.UserID, vendorID); err != nil {
			a.storeError(w, err)
			return
		}
		order.VendorID = vendorID
	}
	if req.OrderNumber != nil {
		order.OrderNumber = *req.OrderNumber
	}
	if req.Status != nil {
		order.Status = domain.PurchaseOrderStatus(*req.Status)
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	if req.Items != nil {
		order.Items = buildOrderItems(order.ID, req.Items)
	}
	order.UpdatedAt = a.now()

	if err := order.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.PurchaseOrders.Update(r.Context(), order); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPurchaseOrderDTO(order))
}

func (a *API) deletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.PurchaseOrders.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func buildOrderItems(orderID uuid.UUID, reqs []purchaseOrderItemRequest) []domain.PurchaseOrderItem {
	items := make([]domain.PurchaseOrderItem, 0, len(reqs))
	for _, item := range reqs {
		items = append(items, domain.PurchaseOrderItem{
			ID:              uuid.New(),
			PurchaseOrderID: orderID,
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
		})
	}
	return items
}
