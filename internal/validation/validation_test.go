package validation

import (
	"testing"

	"github.com/zhelinfan/HW1-CloudComputing/internal/types"
)

func TestUniRule(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"ab1234", true},
		{"abc1234", true},
		{"ab1", true},
		{"abc1", true},
		{"AB1234", false},   // uppercase letters
		{"a1234", false},    // only one letter
		{"abcd1234", false}, // four letters
		{"ab12345", false},  // five digits
		{"ab", false},       // no digits
		{"1234", false},     // no letters
		{"ab1234x", false},  // trailing junk, pattern is anchored
		{"xab1234", false},  // leading junk
		{"", false},
	}

	for _, tt := range tests {
		err := Var(tt.value, "uni")
		if tt.valid && err != nil {
			t.Errorf("uni %q: unexpected rejection: %v", tt.value, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("uni %q: expected rejection", tt.value)
		}
	}
}

func TestCourseCodeRule(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"COMS4153", true},
		{"COMS4156", true},
		{"coms4153", false},  // lowercase
		{"COM4153", false},   // three letters
		{"COMSS4153", false}, // five letters
		{"COMS415", false},   // three digits
		{"COMS41530", false}, // five digits
		{"COMS4153X", false}, // trailing junk, pattern is anchored
		{"", false},
	}

	for _, tt := range tests {
		err := Var(tt.value, "course_code")
		if tt.valid && err != nil {
			t.Errorf("course_code %q: unexpected rejection: %v", tt.value, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("course_code %q: expected rejection", tt.value)
		}
	}
}

func TestStructValidation(t *testing.T) {
	credits := 3
	date := "1815-12-10"
	badDate := "December 10"

	tests := []struct {
		name  string
		input any
		valid bool
	}{
		{
			name: "valid student",
			input: types.CreateStudentInput{
				Uni: "ab1234", FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@example.com", StudentStatus: "graduate",
			},
			valid: true,
		},
		{
			name: "missing required fields",
			input: types.CreateStudentInput{
				Uni: "ab1234",
			},
			valid: false,
		},
		{
			name: "uppercase uni rejected",
			input: types.CreateStudentInput{
				Uni: "AB1234", FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@example.com", StudentStatus: "graduate",
			},
			valid: false,
		},
		{
			name: "malformed email rejected",
			input: types.CreateStudentInput{
				Uni: "ab1234", FirstName: "Ada", LastName: "Lovelace",
				Email: "not-an-email", StudentStatus: "graduate",
			},
			valid: false,
		},
		{
			name: "embedded course snapshot validated",
			input: types.CreateStudentInput{
				Uni: "ab1234", FirstName: "Ada", LastName: "Lovelace",
				Email: "ada@example.com", StudentStatus: "graduate",
				Courses: []types.Course{{CourseCode: "coms4153", Title: "Cloud Computing", Credits: 3}},
			},
			valid: false,
		},
		{
			name: "valid course",
			input: types.CreateCourseInput{
				CourseCode: "COMS4153", Title: "Cloud Computing", Credits: &credits,
			},
			valid: true,
		},
		{
			name: "course without credits rejected",
			input: types.CreateCourseInput{
				CourseCode: "COMS4153", Title: "Cloud Computing",
			},
			valid: false,
		},
		{
			name: "valid person with birth date",
			input: types.CreatePersonInput{
				Uni: "xy123", FirstName: "Grace", LastName: "Hopper",
				Email: "grace@navy.mil", BirthDate: &date,
			},
			valid: true,
		},
		{
			name: "person with malformed birth date rejected",
			input: types.CreatePersonInput{
				Uni: "xy123", FirstName: "Grace", LastName: "Hopper",
				Email: "grace@navy.mil", BirthDate: &badDate,
			},
			valid: false,
		},
		{
			name: "embedded address validated",
			input: types.CreatePersonInput{
				Uni: "xy123", FirstName: "Grace", LastName: "Hopper",
				Email: "grace@navy.mil",
				Addresses: []types.Address{{Street: "1701 E St NW"}}, // missing city, country
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.valid && err != nil {
				t.Errorf("unexpected rejection: %v", err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected rejection")
			}
		})
	}
}
