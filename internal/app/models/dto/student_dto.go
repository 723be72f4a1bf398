package dto

// AddStudentForm binds the multipart add-contact form. The idCard file part is
// read separately from the multipart payload. Cgpa is a pointer so the
// required check tests field presence, not the value: a cgpa of 0 is valid.
type AddStudentForm struct {
	Name        string   `form:"name" binding:"required"`
	RollNo      string   `form:"rollNo" binding:"required"`
	PhoneNo     string   `form:"phoneNo" binding:"required"`
	YearOfStudy int      `form:"yearOfStudy" binding:"required"`
	Department  string   `form:"department" binding:"required"`
	Cgpa        *float64 `form:"cgpa" binding:"required"`
}

// UpdateStudentRequest binds the edit-contact body. There is deliberately no
// yearOfStudy field: only the promotion sweep may change it, so a yearOfStudy
// value in the payload is ignored. Cgpa is a pointer for the same reason as in
// AddStudentForm.
type UpdateStudentRequest struct {
	Name       string   `json:"name" binding:"required"`
	RollNo     string   `json:"rollNo" binding:"required"`
	PhoneNo    string   `json:"phoneNo" binding:"required"`
	Department string   `json:"department" binding:"required"`
	Cgpa       *float64 `json:"cgpa" binding:"required"`
}
