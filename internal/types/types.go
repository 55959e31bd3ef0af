// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, storage, and utils can all import types without depending
// on each other.
//
// Each entity comes in up to four shapes:
//
//  1. A base shape: the client-visible fields, also used where the
//     entity is embedded inside another record as a value snapshot.
//  2. A Record: the base shape plus the server-assigned id and the
//     created_at / updated_at timestamps. This is what the store holds
//     and what every read endpoint returns.
//  3. A Create*Input: the fields a client supplies when creating a
//     record. Never carries the id or timestamps.
//  4. An Update*Input: a sparse patch. Every field is optional: plain
//     pointer fields use nil for "not provided", and nullable fields
//     use Optional so that "omitted" and "explicitly null" stay
//     distinguishable.
package types

import (
	"time"

	"github.com/google/uuid"
)

// ─────────────────────────────────────────────────────────────────────────────
// Address
// ─────────────────────────────────────────────────────────────────────────────

// Address is the base address shape. Persons embed a list of these as
// value snapshots; each embedded address carries its own persistent ID
// but is not stored or queryable on its own.
type Address struct {
	ID         uuid.UUID `json:"id"`
	Street     string    `json:"street" validate:"required"`
	City       string    `json:"city" validate:"required"`
	State      *string   `json:"state"`
	PostalCode *string   `json:"postal_code"`
	Country    string    `json:"country" validate:"required"`
}

// AddressRecord is a stored address with server-assigned timestamps.
type AddressRecord struct {
	Address
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAddressInput holds the fields a client supplies when creating an
// address. The id and timestamps are server-generated.
type CreateAddressInput struct {
	Street     string  `json:"street" validate:"required"`
	City       string  `json:"city" validate:"required"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    string  `json:"country" validate:"required"`
}

// UpdateAddressInput is the sparse patch for an address. State and
// PostalCode are nullable, so they use Optional: an explicit null in the
// payload clears the stored value, while omitting the field keeps it.
type UpdateAddressInput struct {
	Street     *string          `json:"street"`
	City       *string          `json:"city"`
	State      Optional[string] `json:"state" validate:"-"`
	PostalCode Optional[string] `json:"postal_code" validate:"-"`
	Country    *string          `json:"country"`
}

// NewAddressRecord builds a stored record from a create payload,
// assigning a fresh random id and setting both timestamps to now.
func NewAddressRecord(input CreateAddressInput) AddressRecord {
	now := time.Now().UTC()
	return AddressRecord{
		Address: Address{
			ID:         uuid.New(),
			Street:     input.Street,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
			Country:    input.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Person
// ─────────────────────────────────────────────────────────────────────────────

// PersonRecord is a stored person. Addresses are embedded value
// snapshots: mutating them never touches the address store and no
// foreign-key relationship is enforced.
type PersonRecord struct {
	ID        uuid.UUID `json:"id"`
	Uni       string    `json:"uni"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	BirthDate *string   `json:"birth_date"`
	Addresses []Address `json:"addresses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePersonInput holds the fields a client supplies when creating a
// person. The uni must match the institutional pattern (2-3 lowercase
// letters + 1-4 digits) and birth_date, when given, must be YYYY-MM-DD.
type CreatePersonInput struct {
	Uni       string    `json:"uni" validate:"required,uni"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     *string   `json:"phone"`
	BirthDate *string   `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Addresses []Address `json:"addresses" validate:"omitempty,dive"`
}

// UpdatePersonInput is the sparse patch for a person. Supplying the
// addresses list replaces it wholesale; there is no element-level merge.
type UpdatePersonInput struct {
	Uni       *string          `json:"uni" validate:"omitempty,uni"`
	FirstName *string          `json:"first_name"`
	LastName  *string          `json:"last_name"`
	Email     *string          `json:"email" validate:"omitempty,email"`
	Phone     Optional[string] `json:"phone" validate:"-"`
	BirthDate Optional[string] `json:"birth_date" validate:"-"`
	Addresses *[]Address       `json:"addresses" validate:"omitempty,dive"`
}

// NewPersonRecord builds a stored record from a create payload. Embedded
// addresses without an id get a fresh one; an omitted list becomes an
// empty list so reads always show "addresses": [].
func NewPersonRecord(input CreatePersonInput) PersonRecord {
	now := time.Now().UTC()
	addresses := input.Addresses
	if addresses == nil {
		addresses = []Address{}
	}
	EnsureAddressIDs(addresses)
	return PersonRecord{
		ID:        uuid.New(),
		Uni:       input.Uni,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		BirthDate: input.BirthDate,
		Addresses: addresses,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EnsureAddressIDs assigns a fresh random id to every embedded address
// that does not already carry one.
func EnsureAddressIDs(addresses []Address) {
	for i := range addresses {
		if addresses[i].ID == uuid.Nil {
			addresses[i].ID = uuid.New()
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Course
// ─────────────────────────────────────────────────────────────────────────────

// Course is the base course shape. Students embed a list of these as
// value snapshots; the snapshots carry no id and stay untouched when the
// course store changes.
type Course struct {
	CourseCode  string  `json:"course_code" validate:"required,course_code"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Credits     int     `json:"credits"`
	Instructor  *string `json:"instructor"`
}

// CourseRecord is a stored course with the server-assigned id and
// timestamps.
type CourseRecord struct {
	ID uuid.UUID `json:"id"`
	Course
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCourseInput holds the fields a client supplies when creating a
// course. Credits is a pointer so that a present zero value still
// satisfies the required check.
type CreateCourseInput struct {
	CourseCode  string  `json:"course_code" validate:"required,course_code"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Credits     *int    `json:"credits" validate:"required"`
	Instructor  *string `json:"instructor"`
}

// UpdateCourseInput is the sparse patch for a course.
type UpdateCourseInput struct {
	CourseCode  *string          `json:"course_code" validate:"omitempty,course_code"`
	Title       *string          `json:"title"`
	Description Optional[string] `json:"description" validate:"-"`
	Credits     *int             `json:"credits"`
	Instructor  Optional[string] `json:"instructor" validate:"-"`
}

// NewCourseRecord builds a stored record from a create payload.
func NewCourseRecord(input CreateCourseInput) CourseRecord {
	now := time.Now().UTC()
	return CourseRecord{
		ID: uuid.New(),
		Course: Course{
			CourseCode:  input.CourseCode,
			Title:       input.Title,
			Description: input.Description,
			Credits:     *input.Credits,
			Instructor:  input.Instructor,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Student
// ─────────────────────────────────────────────────────────────────────────────

// StudentRecord is a stored student with embedded course snapshots.
type StudentRecord struct {
	ID            uuid.UUID `json:"id"`
	Uni           string    `json:"uni"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	StudentStatus string    `json:"student_status"`
	Courses       []Course  `json:"courses"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateStudentInput holds the fields a client supplies when creating a
// student. Embedded courses are validated individually (dive).
type CreateStudentInput struct {
	Uni           string   `json:"uni" validate:"required,uni"`
	FirstName     string   `json:"first_name" validate:"required"`
	LastName      string   `json:"last_name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	StudentStatus string   `json:"student_status" validate:"required"`
	Courses       []Course `json:"courses" validate:"omitempty,dive"`
}

// UpdateStudentInput is the sparse patch for a student. Supplying the
// courses list replaces it wholesale.
type UpdateStudentInput struct {
	Uni           *string   `json:"uni" validate:"omitempty,uni"`
	FirstName     *string   `json:"first_name"`
	LastName      *string   `json:"last_name"`
	Email         *string   `json:"email" validate:"omitempty,email"`
	StudentStatus *string   `json:"student_status"`
	Courses       *[]Course `json:"courses" validate:"omitempty,dive"`
}

// NewStudentRecord builds a stored record from a create payload. An
// omitted course list becomes an empty list.
func NewStudentRecord(input CreateStudentInput) StudentRecord {
	now := time.Now().UTC()
	courses := input.Courses
	if courses == nil {
		courses = []Course{}
	}
	return StudentRecord{
		ID:            uuid.New(),
		Uni:           input.Uni,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Email:         input.Email,
		StudentStatus: input.StudentStatus,
		Courses:       courses,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
