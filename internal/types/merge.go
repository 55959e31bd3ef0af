package types

import "time"

// The merge functions below implement partial updates: every field the
// patch supplies (including an explicit null on a nullable field, and
// including an empty string) overwrites the stored value, while omitted
// fields keep their stored values. The id and created_at always come
// from the existing record; updated_at is bumped to the merge time.
//
// List-valued fields (addresses, courses) are replaced wholesale when
// supplied. There is no element-level merge.

// applyOptional writes a tri-state patch field into a nullable
// destination field. Absent leaves dst alone, explicit null clears it,
// and a value overwrites it.
func applyOptional[T any](dst **T, patch Optional[T]) {
	if !patch.Set {
		return
	}
	if patch.Null {
		*dst = nil
		return
	}
	v := patch.Value
	*dst = &v
}

// MergeAddress applies a sparse patch onto an existing address record.
func MergeAddress(existing AddressRecord, patch UpdateAddressInput) AddressRecord {
	if patch.Street != nil {
		existing.Street = *patch.Street
	}
	if patch.City != nil {
		existing.City = *patch.City
	}
	applyOptional(&existing.State, patch.State)
	applyOptional(&existing.PostalCode, patch.PostalCode)
	if patch.Country != nil {
		existing.Country = *patch.Country
	}
	existing.UpdatedAt = time.Now().UTC()
	return existing
}

// MergePerson applies a sparse patch onto an existing person record.
// A supplied address list replaces the stored one; new embedded
// addresses without an id are assigned one.
func MergePerson(existing PersonRecord, patch UpdatePersonInput) PersonRecord {
	if patch.Uni != nil {
		existing.Uni = *patch.Uni
	}
	if patch.FirstName != nil {
		existing.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		existing.LastName = *patch.LastName
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	applyOptional(&existing.Phone, patch.Phone)
	applyOptional(&existing.BirthDate, patch.BirthDate)
	if patch.Addresses != nil {
		// Copy so the record never aliases the decoded request payload.
		addresses := append([]Address(nil), (*patch.Addresses)...)
		EnsureAddressIDs(addresses)
		existing.Addresses = addresses
	}
	existing.UpdatedAt = time.Now().UTC()
	return existing
}

// MergeCourse applies a sparse patch onto an existing course record.
func MergeCourse(existing CourseRecord, patch UpdateCourseInput) CourseRecord {
	if patch.CourseCode != nil {
		existing.CourseCode = *patch.CourseCode
	}
	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	applyOptional(&existing.Description, patch.Description)
	if patch.Credits != nil {
		existing.Credits = *patch.Credits
	}
	applyOptional(&existing.Instructor, patch.Instructor)
	existing.UpdatedAt = time.Now().UTC()
	return existing
}

// MergeStudent applies a sparse patch onto an existing student record.
// A supplied course list replaces the stored snapshots.
func MergeStudent(existing StudentRecord, patch UpdateStudentInput) StudentRecord {
	if patch.Uni != nil {
		existing.Uni = *patch.Uni
	}
	if patch.FirstName != nil {
		existing.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		existing.LastName = *patch.LastName
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.StudentStatus != nil {
		existing.StudentStatus = *patch.StudentStatus
	}
	if patch.Courses != nil {
		existing.Courses = append([]Course(nil), (*patch.Courses)...)
	}
	existing.UpdatedAt = time.Now().UTC()
	return existing
}
