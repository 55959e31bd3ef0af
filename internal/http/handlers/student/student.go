// Package student contains all HTTP handlers for the Student resource.
//
// Students expose the full CRUD surface. Note the update verb: the
// route is PUT, but the handler deliberately applies the same sparse
// merge as the PATCH endpoints: omitted fields keep their stored
// values. See the Update doc comment.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/zhelinfan/HW1-CloudComputing/internal/storage"
	"github.com/zhelinfan/HW1-CloudComputing/internal/types"
	"github.com/zhelinfan/HW1-CloudComputing/internal/utils/response"
	"github.com/zhelinfan/HW1-CloudComputing/internal/validation"
)

// New handles POST /students. Embedded courses are value snapshots,
// copied into the record; they are never linked to the course store.
func New(store storage.Store[types.StudentRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var input types.CreateStudentInput
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

		record := types.NewStudentRecord(input)
		if err := store.Insert(record.ID, record); err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("student created", slog.String("id", record.ID.String()))
		response.WriteJSON(w, http.StatusCreated, record)
	}
}

// GetList handles GET /students. No filters; records come back in
// insertion order.
func GetList(store storage.Store[types.StudentRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing students")
		response.WriteJSON(w, http.StatusOK, store.List(nil))
	}
}

// GetByID handles GET /students/{id}.
func GetByID(store storage.Store[types.StudentRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

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

// Update handles PUT /students/{id}.
//
// Despite the PUT verb this is NOT a full replace: the payload is the
// sparse update shape and omitted fields keep their stored values,
// matching the API's documented behavior. Clients wanting a true
// replace must send every field.
func Update(store storage.Store[types.StudentRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		recordID, err := uuid.Parse(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be a UUID")))
			return
		}

		var input types.UpdateStudentInput
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

		updated, err := store.Update(recordID, types.MergeStudent(record, input))
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /students/{id}. Responds 204 with no body.
func Delete(store storage.Store[types.StudentRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		recordID, err := uuid.Parse(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be a UUID")))
			return
		}

		if err := store.Delete(recordID); err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
