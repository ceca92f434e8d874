package httpapi

import (
	"net/http"
)

func (a *API) getOverview(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	metrics, err := a.overview.GetMetrics(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toMetricsDTO(metrics))
}

func (a *API) createSnapshot(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	snap, err := a.snapshots.Create(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toSnapshotDTO(snap))
}

func (a *API) listSnapshots(w http.ResponseWriter, r *http.Request) {
	identity := identityFrom(r)
	trends, err := a.snapshots.History(r.Context(), identity.UserID)
	if err != nil {
		a.storeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTrendDTOs(trends))
}
