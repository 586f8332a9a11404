package prescription

import "time"

type Status string

const (
	StatusReceived    Status = "received"
	StatusUnderReview Status = "under-review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// Valid reports membership in the closed status set. No transition table is
// enforced beyond the reviewer role gate.
func (s Status) Valid() bool {
	switch s {
	case StatusReceived, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Prescription carries the uploaded file inline, base64-encoded.
type Prescription struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	PatientName     string    `bson:"patientName" json:"patientName"`
	FileData        string    `bson:"fileData" json:"fileData"`
	FileName        string    `bson:"fileName" json:"fileName"`
	Status          Status    `bson:"status" json:"status"`
	PharmacistNotes *string   `bson:"pharmacistNotes,omitempty" json:"pharmacistNotes,omitempty"`
	ReviewedBy      *string   `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Summary is the listing shape; the file payload is excluded for bandwidth.
type Summary struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	PatientName     string    `bson:"patientName" json:"patientName"`
	FileName        string    `bson:"fileName" json:"fileName"`
	Status          Status    `bson:"status" json:"status"`
	PharmacistNotes *string   `bson:"pharmacistNotes,omitempty" json:"pharmacistNotes,omitempty"`
	ReviewedBy      *string   `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

type ReviewParams struct {
	Status          Status
	PharmacistNotes *string
	ReviewedBy      string
}
