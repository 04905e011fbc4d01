package models

import "time"

// ProfileMeta carries the fields shared by every profile variant. It is
// embedded inline so the Mongo documents stay flat, matching the legacy
// collections.
type ProfileMeta struct {
	OwnerAccountID string    `bson:"ownerAccountId" json:"ownerAccountId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Meta exposes the embedded metadata through the ProfileDoc interface.
func (m *ProfileMeta) Meta() *ProfileMeta { return m }

// ProfileDoc is implemented by pointers to every profile variant.
type ProfileDoc interface {
	Meta() *ProfileMeta
	Validate() error
}

// ProfilePtr constrains a type parameter to *T implementing ProfileDoc,
// which lets one store and one orchestrator serve all six variants.
type ProfilePtr[T any] interface {
	*T
	ProfileDoc
}

// LawyerProfile holds lawyer-specific detail.
type LawyerProfile struct {
	ProfileMeta     `bson:",inline"`
	Name            string   `bson:"name" json:"name"`
	Specialization  string   `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Experience      int      `bson:"experience,omitempty" json:"experience,omitempty"`
	Phone           string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address         string   `bson:"address,omitempty" json:"address,omitempty"`
	BarCouncilID    string   `bson:"barCouncilId,omitempty" json:"barCouncilId,omitempty"`
	LanguagesSpoken []string `bson:"languagesSpoken,omitempty" json:"languagesSpoken,omitempty"`
}

func (p *LawyerProfile) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if p.Experience < 0 {
		return &ValidationError{Field: "experience", Reason: "must not be negative"}
	}
	return nil
}

// LawFirmProfile holds law-firm-specific detail.
type LawFirmProfile struct {
	ProfileMeta        `bson:",inline"`
	FirmName           string   `bson:"firmName" json:"firmName"`
	RegistrationNumber string   `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	Address            string   `bson:"address,omitempty" json:"address,omitempty"`
	Phone              string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Email              string   `bson:"email,omitempty" json:"email,omitempty"`
	ServicesOffered    []string `bson:"servicesOffered,omitempty" json:"servicesOffered,omitempty"`
}

func (p *LawFirmProfile) Validate() error {
	if p.FirmName == "" {
		return &ValidationError{Field: "firmName", Reason: "required"}
	}
	return nil
}

// ParalegalProfile holds paralegal-specific detail.
type ParalegalProfile struct {
	ProfileMeta    `bson:",inline"`
	Name           string   `bson:"name" json:"name"`
	Qualifications string   `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Experience     int      `bson:"experience,omitempty" json:"experience,omitempty"`
	Phone          string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string   `bson:"address,omitempty" json:"address,omitempty"`
	Skills         []string `bson:"skills,omitempty" json:"skills,omitempty"`
}

func (p *ParalegalProfile) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if p.Experience < 0 {
		return &ValidationError{Field: "experience", Reason: "must not be negative"}
	}
	return nil
}

// MediatorProfile holds mediator-specific detail.
type MediatorProfile struct {
	ProfileMeta     `bson:",inline"`
	Name            string   `bson:"name" json:"name"`
	CertificationID string   `bson:"certificationId,omitempty" json:"certificationId,omitempty"`
	Experience      int      `bson:"experience,omitempty" json:"experience,omitempty"`
	Phone           string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address         string   `bson:"address,omitempty" json:"address,omitempty"`
	LanguagesSpoken []string `bson:"languagesSpoken,omitempty" json:"languagesSpoken,omitempty"`
}

func (p *MediatorProfile) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if p.Experience < 0 {
		return &ValidationError{Field: "experience", Reason: "must not be negative"}
	}
	return nil
}

// ClientProfile holds client-specific detail.
type ClientProfile struct {
	ProfileMeta `bson:",inline"`
	Name        string   `bson:"name" json:"name"`
	Age         int      `bson:"age,omitempty" json:"age,omitempty"`
	Gender      string   `bson:"gender,omitempty" json:"gender,omitempty"`
	Phone       string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string   `bson:"address,omitempty" json:"address,omitempty"`
	LegalNeeds  []string `bson:"legalNeeds,omitempty" json:"legalNeeds,omitempty"`
}

func (p *ClientProfile) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if p.Age < 0 {
		return &ValidationError{Field: "age", Reason: "must not be negative"}
	}
	return nil
}

// CorporateProfile holds corporate-entity detail.
type CorporateProfile struct {
	ProfileMeta        `bson:",inline"`
	CompanyName        string `bson:"companyName" json:"companyName"`
	Industry           string `bson:"industry,omitempty" json:"industry,omitempty"`
	RegistrationNumber string `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	Address            string `bson:"address,omitempty" json:"address,omitempty"`
	ContactPerson      string `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	Phone              string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email              string `bson:"email,omitempty" json:"email,omitempty"`
}

func (p *CorporateProfile) Validate() error {
	if p.CompanyName == "" {
		return &ValidationError{Field: "companyName", Reason: "required"}
	}
	return nil
}
