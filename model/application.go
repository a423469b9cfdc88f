/*
Copyright 2025 Lendflow Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package model

import "time"

// LoanType identifies the product the applicant is applying for.
type LoanType string

const (
	LoanTypeHome      LoanType = "home"
	LoanTypePersonal  LoanType = "personal"
	LoanTypeEducation LoanType = "education"
	LoanTypeVehicle   LoanType = "vehicle"
)

// VehicleSubType refines a vehicle loan. It is set iff the loan type is
// vehicle.
type VehicleSubType string

const (
	VehicleTwoWheeler  VehicleSubType = "two-wheeler"
	VehicleFourWheeler VehicleSubType = "four-wheeler"
)

// EmploymentType is the applicant's top-level employment classification.
type EmploymentType string

const (
	EmploymentIndividual    EmploymentType = "individual"
	EmploymentNonIndividual EmploymentType = "non-individual"
	EmploymentNRI           EmploymentType = "nri"
)

// EmploymentSubType refines the employment type. Which sub-types are
// legal depends on the employment type; see LegalSubTypes.
type EmploymentSubType string

const (
	SubTypeSalaried       EmploymentSubType = "salaried"
	SubTypeSelfEmployed   EmploymentSubType = "self-employed"
	SubTypeLLPPartnership EmploymentSubType = "llp-partnership"
	SubTypePrivateLimited EmploymentSubType = "private-limited"
)

// LegalSubTypes returns the sub-types the selector offers for an
// employment type, in selector order. Unknown types yield nil.
func LegalSubTypes(employmentType EmploymentType) []EmploymentSubType {
	switch employmentType {
	case EmploymentIndividual, EmploymentNRI:
		return []EmploymentSubType{SubTypeSalaried, SubTypeSelfEmployed}
	case EmploymentNonIndividual:
		return []EmploymentSubType{SubTypeLLPPartnership, SubTypePrivateLimited}
	}
	return nil
}

// IsLegalSubType reports whether the sub-type belongs to the legal subset
// for the employment type.
func IsLegalSubType(employmentType EmploymentType, subType EmploymentSubType) bool {
	for _, s := range LegalSubTypes(employmentType) {
		if s == subType {
			return true
		}
	}
	return false
}

// BankAccount holds the disbursal account the applicant verifies before
// accepting the offer.
type BankAccount struct {
	AccountNumber string    `json:"account_number"`
	BankName      string    `json:"bank_name"`
	IFSCCode      string    `json:"ifsc_code"`
	AccountType   string    `json:"account_type"`
	Verified      bool      `json:"verified"`
	VerifiedAt    time.Time `json:"verified_at,omitempty"`
}

// ApplicationProfile is the full state of one loan application: the three
// selection inputs, every captured form field, uploaded documents and the
// verification flags the wizard guards consult. Form fields live in a flat
// key/value map keyed by field identifier; typed accessors and the field
// registries in forms.go give the map its meaning.
type ApplicationProfile struct {
	ApplicationID string    `json:"application_id"`
	Reference     string    `json:"reference,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	LoanType          LoanType          `json:"loan_type"`
	VehicleSubType    VehicleSubType    `json:"vehicle_sub_type,omitempty"`
	EmploymentType    EmploymentType    `json:"employment_type"`
	EmploymentSubType EmploymentSubType `json:"employment_sub_type"`

	LoanAmount   float64 `json:"loan_amount"`
	InterestRate float64 `json:"interest_rate"`
	TenureMonths int     `json:"tenure_months"`

	Fields    map[string]string                  `json:"fields"`
	Documents map[DocumentType]*UploadedDocument `json:"documents"`

	BankAccount *BankAccount `json:"bank_account,omitempty"`

	MobileVerified      bool `json:"mobile_verified"`
	OVDVerified         bool `json:"ovd_verified"`
	BusinessOVDVerified bool `json:"business_ovd_verified"`
	Accepted            bool `json:"accepted"`
}

// NewApplicationProfile creates a fresh application with the product
// defaults applied.
func NewApplicationProfile() *ApplicationProfile {
	return &ApplicationProfile{
		ApplicationID: GenerateUUIDWithSuffix("appl"),
		CreatedAt:     time.Now(),
		LoanAmount:    DefaultLoanAmount,
		InterestRate:  DefaultInterestRate,
		TenureMonths:  DefaultTenureMonths,
		Fields:        make(map[string]string),
		Documents:     make(map[DocumentType]*UploadedDocument),
	}
}

// SetLoanType updates the loan type. The vehicle sub-type only exists for
// vehicle loans, so switching away clears it.
func (p *ApplicationProfile) SetLoanType(loanType LoanType) {
	p.LoanType = loanType
	if loanType != LoanTypeVehicle {
		p.VehicleSubType = ""
	}
}

// SetEmploymentType updates the employment type and keeps the sub-type
// invariant: a sub-type that is now illegal is replaced by the first
// legal option for the new employment type.
func (p *ApplicationProfile) SetEmploymentType(employmentType EmploymentType) {
	p.EmploymentType = employmentType
	if p.EmploymentSubType == "" {
		return
	}
	if !IsLegalSubType(employmentType, p.EmploymentSubType) {
		legal := LegalSubTypes(employmentType)
		if len(legal) > 0 {
			p.EmploymentSubType = legal[0]
		} else {
			p.EmploymentSubType = ""
		}
	}
}

// Field returns the captured value for a form field, or "" when absent.
func (p *ApplicationProfile) Field(key string) string {
	if p.Fields == nil {
		return ""
	}
	return p.Fields[key]
}

// Checked reports whether a checkbox field is ticked. Checkboxes store
// the literal value "true".
func (p *ApplicationProfile) Checked(key string) bool {
	return p.Field(key) == "true"
}
