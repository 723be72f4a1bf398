package models

import "time"

// MaxYearOfStudy is the final year a student can be promoted into.
const MaxYearOfStudy = 4

// Student defines a student record based on the 'students' table.
type Student struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	RollNo         string    `json:"rollNo" db:"roll_no"`
	PhoneNo        string    `json:"phoneNo" db:"phone_no"`
	YearOfStudy    int       `json:"yearOfStudy" db:"year_of_study"`
	Department     string    `json:"department" db:"department"`
	Cgpa           float64   `json:"cgpa" db:"cgpa"`
	IDCardURL      *string   `json:"idCard,omitempty" db:"id_card_url"` // non-owning reference into file storage
	LastPromotedAt time.Time `json:"lastPromotedAt" db:"last_promoted_at"`
}
