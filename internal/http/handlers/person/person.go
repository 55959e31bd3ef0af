// Package person contains all HTTP handlers for the Person resource.
//
// Persons embed a list of address snapshots. The snapshots live inside
// the person record only: they are not inserted into the address store
// and no referential integrity is enforced between the two.
//
// Like addresses, persons expose no delete endpoint.
package person

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

// New handles POST /persons. Embedded addresses arriving without an id
// are assigned one before the record is stored.
func New(store storage.Store[types.PersonRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a person")

		var input types.CreatePersonInput
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

		record := types.NewPersonRecord(input)
		if err := store.Insert(record.ID, record); err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("person created", slog.String("id", record.ID.String()))
		response.WriteJSON(w, http.StatusCreated, record)
	}
}

// GetList handles GET /persons. Supported filters: uni, first_name,
// last_name, email, phone, birth_date, city, country. The city and
// country filters match a person when at least one embedded address
// matches; all supplied filters must hold at once.
func GetList(store storage.Store[types.PersonRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing persons")
		response.WriteJSON(w, http.StatusOK, store.List(buildFilter(r.URL.Query())))
	}
}

// GetByID handles GET /persons/{id}.
func GetByID(store storage.Store[types.PersonRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a person", slog.String("id", id))

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

// Update handles PATCH /persons/{id}. Phone and birth_date are
// nullable: an explicit null clears them, omission keeps them. A
// supplied address list replaces the stored one wholesale.
func Update(store storage.Store[types.PersonRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a person", slog.String("id", id))

		recordID, err := uuid.Parse(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be a UUID")))
			return
		}

		var input types.UpdatePersonInput
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
		// The tri-state wrapper cannot carry struct tags, so the date
		// format is checked by hand when a value was supplied.
		if input.BirthDate.Set && !input.BirthDate.Null {
			if err := validation.Var(input.BirthDate.Value, "datetime=2006-01-02"); err != nil {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError(errors.New("field BirthDate must be a date in YYYY-MM-DD format")))
				return
			}
		}

		record, err := store.Get(recordID)
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		updated, err := store.Update(recordID, types.MergePerson(record, input))
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("person updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// buildFilter turns the supplied query parameters into a conjunction of
// exact-match predicates over person records. Returns nil when no
// filter was supplied.
func buildFilter(q url.Values) func(types.PersonRecord) bool {
	var preds []func(types.PersonRecord) bool

	if q.Has("uni") {
		uni := q.Get("uni")
		preds = append(preds, func(p types.PersonRecord) bool { return p.Uni == uni })
	}
	if q.Has("first_name") {
		firstName := q.Get("first_name")
		preds = append(preds, func(p types.PersonRecord) bool { return p.FirstName == firstName })
	}
	if q.Has("last_name") {
		lastName := q.Get("last_name")
		preds = append(preds, func(p types.PersonRecord) bool { return p.LastName == lastName })
	}
	if q.Has("email") {
		email := q.Get("email")
		preds = append(preds, func(p types.PersonRecord) bool { return p.Email == email })
	}
	if q.Has("phone") {
		phone := q.Get("phone")
		preds = append(preds, func(p types.PersonRecord) bool {
			return p.Phone != nil && *p.Phone == phone
		})
	}
	if q.Has("birth_date") {
		birthDate := q.Get("birth_date")
		preds = append(preds, func(p types.PersonRecord) bool {
			return p.BirthDate != nil && *p.BirthDate == birthDate
		})
	}
	if q.Has("city") {
		city := q.Get("city")
		preds = append(preds, func(p types.PersonRecord) bool {
			for _, a := range p.Addresses {
				if a.City == city {
					return true
				}
			}
			return false
		})
	}
	if q.Has("country") {
		country := q.Get("country")
		preds = append(preds, func(p types.PersonRecord) bool {
			for _, a := range p.Addresses {
				if a.Country == country {
					return true
				}
			}
			return false
		})
	}

	if len(preds) == 0 {
		return nil
	}
	return func(p types.PersonRecord) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}
