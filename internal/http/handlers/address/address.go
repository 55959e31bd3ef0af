// Package address contains all HTTP handlers for the Address resource.
//
// Handlers are built with the factory/closure pattern: each exported
// function receives its dependencies (the store) and returns the
// http.HandlerFunc the router registers. The factory runs once at
// startup; the returned closure runs on every request.
//
// Addresses expose create, list (with exact-match query filters), get,
// and partial update. There is intentionally no delete endpoint.
package address

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/zhelinfan/HW1-CloudComputing/internal/storage"
	"github.com/zhelinfan/HW1-CloudComputing/internal/types"
	"github.com/zhelinfan/HW1-CloudComputing/internal/utils/response"
	"github.com/zhelinfan/HW1-CloudComputing/internal/validation"
)

// New handles POST /addresses. Decodes and validates the create
// payload, assigns a fresh id and timestamps, and responds 201 with the
// full stored record.
func New(store storage.Store[types.AddressRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating an address")

		var input types.CreateAddressInput
		err := json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validation.Struct(input); err != nil {
			response.WriteInvalidPayload(w, err)
			return
		}

		record := types.NewAddressRecord(input)
		if err := store.Insert(record.ID, record); err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("address created", slog.String("id", record.ID.String()))
		response.WriteJSON(w, http.StatusCreated, record)
	}
}

// GetList handles GET /addresses. Query parameters street, city, state,
// postal_code, and country are combined as an exact-match conjunction;
// with no parameters every record is returned in insertion order.
func GetList(store storage.Store[types.AddressRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing addresses")
		response.WriteJSON(w, http.StatusOK, store.List(buildFilter(r.URL.Query())))
	}
}

// GetByID handles GET /addresses/{id}.
func GetByID(store storage.Store[types.AddressRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting an address", slog.String("id", id))

		recordID, err := uuid.Parse(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be a UUID")))
			return
		}

		record, err := store.Get(recordID)
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		response.WriteJSON(w, http.StatusOK, record)
	}
}

// Update handles PATCH /addresses/{id}. Fields present in the payload
// (including explicit nulls on state and postal_code) overwrite the
// stored values; omitted fields keep them.
func Update(store storage.Store[types.AddressRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating an address", slog.String("id", id))

		recordID, err := uuid.Parse(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be a UUID")))
			return
		}

		var input types.UpdateAddressInput
		err = json.NewDecoder(r.Body).Decode(&input)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validation.Struct(input); err != nil {
			response.WriteInvalidPayload(w, err)
			return
		}

		record, err := store.Get(recordID)
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		updated, err := store.Update(recordID, types.MergeAddress(record, input))
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("address updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// buildFilter turns the supplied query parameters into a conjunction of
// exact-match predicates. Returns nil when no filter was supplied.
func buildFilter(q url.Values) func(types.AddressRecord) bool {
	var preds []func(types.AddressRecord) bool

	if q.Has("street") {
		street := q.Get("street")
		preds = append(preds, func(a types.AddressRecord) bool { return a.Street == street })
	}
	if q.Has("city") {
		city := q.Get("city")
		preds = append(preds, func(a types.AddressRecord) bool { return a.City == city })
	}
	if q.Has("state") {
		state := q.Get("state")
		preds = append(preds, func(a types.AddressRecord) bool {
			return a.State != nil && *a.State == state
		})
	}
	if q.Has("postal_code") {
		postalCode := q.Get("postal_code")
		preds = append(preds, func(a types.AddressRecord) bool {
			return a.PostalCode != nil && *a.PostalCode == postalCode
		})
	}
	if q.Has("country") {
		country := q.Get("country")
		preds = append(preds, func(a types.AddressRecord) bool { return a.Country == country })
	}

	if len(preds) == 0 {
		return nil
	}
	return func(a types.AddressRecord) bool {
		for _, pred := range preds {
			if !pred(a) {
				return false
			}
		}
		return true
	}
}
