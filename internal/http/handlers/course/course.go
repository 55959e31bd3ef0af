// Package course contains all HTTP handlers for the Course resource.
//
// Courses expose the full CRUD surface. As with students, the PUT
// endpoint applies sparse-merge semantics rather than a full replace.
package course

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

// New handles POST /courses.
func New(store storage.Store[types.CourseRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a course")

		var input types.CreateCourseInput
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

		record := types.NewCourseRecord(input)
		if err := store.Insert(record.ID, record); err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("course created", slog.String("id", record.ID.String()))
		response.WriteJSON(w, http.StatusCreated, record)
	}
}

// GetList handles GET /courses. No filters; records come back in
// insertion order.
func GetList(store storage.Store[types.CourseRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("listing courses")
		response.WriteJSON(w, http.StatusOK, store.List(nil))
	}
}

// GetByID handles GET /courses/{id}.
func GetByID(store storage.Store[types.CourseRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("getting a course", slog.String("id", id))

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

// Update handles PUT /courses/{id}. Sparse merge, not a full replace:
// omitted fields keep their stored values, so PUT {"credits": 4} bumps
// the credit count and leaves everything else untouched.
func Update(store storage.Store[types.CourseRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a course", slog.String("id", id))

		recordID, err := uuid.Parse(id)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("invalid id: must be a UUID")))
			return
		}

		var input types.UpdateCourseInput
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

		updated, err := store.Update(recordID, types.MergeCourse(record, input))
		if err != nil {
			response.WriteStoreError(w, err)
			return
		}

		slog.Info("course updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /courses/{id}. Responds 204 with no body.
// Deleting a course does not touch students enrolled in it; embedded
// course snapshots are copies.
func Delete(store storage.Store[types.CourseRecord]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a course", slog.String("id", id))

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

		slog.Info("course deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
