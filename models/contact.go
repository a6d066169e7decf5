package models

// ContactRequest is the body of POST /contact. Empty fields are accepted
// as-is; the form has no validation beyond type coercion.
type ContactRequest struct {
	Name    string `json:"name" example:"Ana"`
	Subject string `json:"subject" example:"Matemáticas"`
}

// ContactReceipt is the confirmation returned after a submission.
type ContactReceipt struct {
	Message string `json:"confirmation"`
}
