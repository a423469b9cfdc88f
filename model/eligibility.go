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

import "sort"

// FormVariant selects which flavor of a step's form applies.
type FormVariant string

const (
	FormIndividual FormVariant = "individual"
	FormBusiness   FormVariant = "business"
)

// VisibilityResult is the engine's answer for one (loan type, employment
// type, employment sub-type) combination: which sub-types the selector
// offers, which form variants each step requires, and which documents must
// be verified.
type VisibilityResult struct {
	LegalSubTypes     []EmploymentSubType `json:"legal_sub_types"`
	BusinessApplicant bool                `json:"business_applicant"`
	BasicForm         FormVariant         `json:"basic_form"`
	PersonalForm      FormVariant         `json:"personal_form"`
	IncomeForm        FormVariant         `json:"income_form"`
	RequiredDocuments []DocumentType      `json:"required_documents"`
}

// IsBusinessApplicant is the single classification predicate: an applicant
// is processed as a business when the employment type is non-individual,
// or when an individual carries a business sub-type. The same predicate
// gates every form variant and the document set so the four decisions can
// never diverge.
func IsBusinessApplicant(employmentType EmploymentType, subType EmploymentSubType) bool {
	if employmentType == EmploymentNonIndividual {
		return true
	}
	return employmentType == EmploymentIndividual &&
		(subType == SubTypeLLPPartnership || subType == SubTypePrivateLimited)
}

// ComputeVisibility deterministically derives the visible forms and the
// required document set from the three selection inputs. It is a pure
// function: same inputs, same result.
func ComputeVisibility(loanType LoanType, employmentType EmploymentType, subType EmploymentSubType) VisibilityResult {
	business := IsBusinessApplicant(employmentType, subType)

	variant := FormIndividual
	if business {
		variant = FormBusiness
	}

	// Bank statement and ITR are always required; GST for business
	// applicants; dealer invoice for vehicle loans.
	required := []DocumentType{DocumentBankStatement, DocumentITR}
	if business {
		required = append(required, DocumentGST)
	}
	if loanType == LoanTypeVehicle {
		required = append(required, DocumentDealerInvoice)
	}

	return VisibilityResult{
		LegalSubTypes:     LegalSubTypes(employmentType),
		BusinessApplicant: business,
		BasicForm:         variant,
		PersonalForm:      variant,
		IncomeForm:        variant,
		RequiredDocuments: required,
	}
}

// MissingDocuments returns the sorted identifiers of required documents
// that are absent or not verified. The check is idempotent: the same
// inputs always yield the same list.
func MissingDocuments(required []DocumentType, uploads map[DocumentType]*UploadedDocument) []string {
	var missing []string
	for _, d := range required {
		doc, ok := uploads[d]
		if !ok || doc == nil || !doc.Verified {
			missing = append(missing, string(d))
		}
	}
	sort.Strings(missing)
	return missing
}
