package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func (a *API) listCards(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	cards, err := a.repos.Cards.ListByUser(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCreditCardDTOs(cards))
}

func (a *API) getCard(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	card, err := a.repos.Cards.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCreditCardDTO(card))
}

func (a *API) createCard(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	var req createCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := a.now()
	card := &domain.CreditCard{
		ID:             uuid.New(),
		UserID:         identity.UserID,
		DisplayName:    req.DisplayName,
		Balance:        req.Balance,
		CreditLimit:    req.CreditLimit,
		MinimumPayment: req.MinimumPayment,
		InterestRate:   req.InterestRate,
		NextDueDate:    req.NextDueDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := card.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Cards.Create(r.Context(), card); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toCreditCardDTO(card))
}

func (a *API) patchCard(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := a.repos.Cards.GetByID(r.Context(), identity.UserID, id)
	if err != nil {
		a.storeError(w, err)
		return
	}
	if req.DisplayName != nil {
		card.DisplayName = *req.DisplayName
	}
	if req.Balance != nil {
		card.Balance = *req.Balance
	}
	if req.CreditLimit != nil {
		card.CreditLimit = *req.CreditLimit
	}
	if req.MinimumPayment != nil {
		card.MinimumPayment = *req.MinimumPayment
	}
	if req.InterestRate != nil {
		card.InterestRate = *req.InterestRate
	}
	if req.NextDueDate != nil {
		card.NextDueDate = req.NextDueDate
	}
	card.UpdatedAt = a.now()

	if err := card.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.repos.Cards.Update(r.Context(), card); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCreditCardDTO(card))
}

func (a *API) deleteCard(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := a.repos.Cards.Delete(r.Context(), identity.UserID, id); err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
