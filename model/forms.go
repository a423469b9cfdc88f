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

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldKind drives the format check applied to a form field's value.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldSelect
	FieldDate
	FieldCheckbox
	FieldMobile
	FieldEmail
	FieldPAN
	FieldAadhar
	FieldPinCode
	FieldGST
	FieldOVDType
	FieldOVDNumber
	FieldAmount            // positive amount, display commas tolerated
	FieldNonNegativeNumber // numeric, >= 0
	FieldPositiveNumber    // numeric, > 0
)

// FormField declares one entry of a form variant's field registry: its
// identifier, its kind, and an optional conditional-required predicate.
// A nil Required predicate means always required.
type FormField struct {
	Key      string
	Label    string
	Kind     FieldKind
	Required func(p *ApplicationProfile) bool
}

// FieldError is a field-scoped validation failure. Collecting them instead
// of stopping at the first lets every field be checked in one pass.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requiredIfYes(key string) func(p *ApplicationProfile) bool {
	return func(p *ApplicationProfile) bool {
		return p.Field(key) == "yes"
	}
}

// BasicFields returns the basic-details registry for a form variant. Both
// variants carry the applicant's OVD selection and the four consent
// checkboxes; the business variant uses its own field identifiers.
func BasicFields(variant FormVariant) []FormField {
	if variant == FormBusiness {
		return []FormField{
			{Key: "businessFullName", Label: "full name", Kind: FieldText},
			{Key: "businessMobile", Label: "mobile number", Kind: FieldMobile},
			{Key: "businessLoanAmount", Label: "loan amount", Kind: FieldAmount},
			{Key: "businessPanNumber", Label: "PAN number", Kind: FieldPAN},
			{Key: "businessOVDType", Label: "OVD type", Kind: FieldOVDType},
			{Key: "businessOVDNumber", Label: "OVD number", Kind: FieldOVDNumber},
			{Key: "businessAgreeOVD", Label: "OVD declaration", Kind: FieldCheckbox},
			{Key: "businessAgreeTerms", Label: "terms and privacy policy", Kind: FieldCheckbox},
			{Key: "businessAgreeConsent", Label: "communication consent", Kind: FieldCheckbox},
			{Key: "businessAgreeDisclosure", Label: "information disclosure", Kind: FieldCheckbox},
			{Key: "businessAgreeDirectorDeclaration", Label: "director declaration", Kind: FieldCheckbox},
		}
	}
	return []FormField{
		{Key: "fullName", Label: "full name", Kind: FieldText},
		{Key: "mobile", Label: "mobile number", Kind: FieldMobile},
		{Key: "loanAmount", Label: "loan amount", Kind: FieldAmount},
		{Key: "panNumber", Label: "PAN number", Kind: FieldPAN},
		{Key: "ovdType", Label: "OVD type", Kind: FieldOVDType},
		{Key: "ovdNumber", Label: "OVD number", Kind: FieldOVDNumber},
		{Key: "agreeOVD", Label: "OVD declaration", Kind: FieldCheckbox},
		{Key: "agreeTerms", Label: "terms and privacy policy", Kind: FieldCheckbox},
		{Key: "agreeConsent", Label: "communication consent", Kind: FieldCheckbox},
		{Key: "agreeDisclosure", Label: "information disclosure", Kind: FieldCheckbox},
		{Key: "agreeDirectorDeclaration", Label: "director declaration", Kind: FieldCheckbox},
	}
}

// PersonalFields returns the personal-details registry. CIF numbers are
// required only when the applicant declares themselves an existing
// customer.
func PersonalFields(variant FormVariant) []FormField {
	if variant == FormBusiness {
		return []FormField{
			{Key: "companyName", Label: "company name", Kind: FieldText},
			{Key: "companyAddress1", Label: "company address line 1", Kind: FieldText},
			{Key: "companyCity", Label: "city", Kind: FieldText},
			{Key: "companyState", Label: "state", Kind: FieldSelect},
			{Key: "companyPinCode", Label: "PIN code", Kind: FieldPinCode},
			{Key: "gstNumber", Label: "GST number", Kind: FieldGST},
			{Key: "panNumberCompany", Label: "company PAN number", Kind: FieldPAN},
			{Key: "cinLlpNumber", Label: "CIN/LLP number", Kind: FieldText},
			{Key: "directorName1", Label: "director/partner name", Kind: FieldText},
			{Key: "directorDin1", Label: "director DIN/LLP number", Kind: FieldText},
			{Key: "existingCustomerCompany", Label: "existing customer", Kind: FieldSelect},
			{Key: "cifNumberCompany", Label: "CIF number", Kind: FieldText, Required: requiredIfYes("existingCustomerCompany")},
			{Key: "agreePersonalTermsCompany", Label: "personal details terms", Kind: FieldCheckbox},
		}
	}
	return []FormField{
		{Key: "address1", Label: "address line 1", Kind: FieldText},
		{Key: "city", Label: "city", Kind: FieldText},
		{Key: "state", Label: "state", Kind: FieldSelect},
		{Key: "pinCode", Label: "PIN code", Kind: FieldPinCode},
		{Key: "dob", Label: "date of birth", Kind: FieldDate},
		{Key: "fatherName", Label: "father's name", Kind: FieldText},
		{Key: "aadharNumber", Label: "Aadhar number", Kind: FieldAadhar},
		{Key: "email", Label: "email address", Kind: FieldEmail},
		{Key: "gender", Label: "gender", Kind: FieldSelect},
		{Key: "existingCustomer", Label: "existing customer", Kind: FieldSelect},
		{Key: "cifNumber", Label: "CIF number", Kind: FieldText, Required: requiredIfYes("existingCustomer")},
		{Key: "residenceType", Label: "residence type", Kind: FieldSelect},
		{Key: "yearsAtResidence", Label: "years at current residence", Kind: FieldNonNegativeNumber},
		{Key: "agreePersonalTerms", Label: "personal details terms", Kind: FieldCheckbox},
	}
}

// IncomeFields returns the income-details registry. Other annual income is
// collected but never mandatory.
func IncomeFields(variant FormVariant) []FormField {
	if variant == FormBusiness {
		return []FormField{
			{Key: "gstAnnualTurnover", Label: "GST annual turnover", Kind: FieldPositiveNumber},
			{Key: "grossAnnualIncome", Label: "gross annual income", Kind: FieldPositiveNumber},
			{Key: "currentEMI", Label: "current EMI", Kind: FieldNonNegativeNumber},
			{Key: "yearsInBusiness", Label: "years in business", Kind: FieldNonNegativeNumber},
		}
	}
	return []FormField{
		{Key: "employerName", Label: "employer name", Kind: FieldText},
		{Key: "grossMonthlyIncome", Label: "gross monthly income", Kind: FieldPositiveNumber},
		{Key: "totalMonthlyObligation", Label: "total monthly obligation", Kind: FieldNonNegativeNumber},
		{Key: "yearsAtEmployer", Label: "years at current employer", Kind: FieldNonNegativeNumber},
		{Key: "officialEmailID", Label: "official email address", Kind: FieldEmail},
	}
}

// ovdTypeKeyFor maps an OVD-number field back to its type selector within
// the same form variant.
func ovdTypeKeyFor(key string) string {
	if strings.HasPrefix(key, "business") {
		return "businessOVDType"
	}
	return "ovdType"
}

func checkFieldFormat(f FormField, value string, p *ApplicationProfile) *FieldError {
	fail := func(msg string) *FieldError {
		return &FieldError{Field: f.Key, Message: msg}
	}
	switch f.Kind {
	case FieldMobile:
		if !ValidMobile(value) {
			return fail("enter a valid 10-digit mobile number")
		}
	case FieldEmail:
		if !ValidEmail(value) {
			return fail("enter a valid email address")
		}
	case FieldPAN:
		if !ValidPAN(value) {
			return fail("enter a valid PAN number (e.g., ABCDE1234F)")
		}
	case FieldAadhar:
		if !ValidAadhar(value) {
			return fail("enter a valid 12-digit Aadhar number")
		}
	case FieldPinCode:
		if !ValidPinCode(value) {
			return fail("enter a valid 6-digit PIN code")
		}
	case FieldGST:
		if !ValidGSTNumber(value) {
			return fail("enter a valid GST number")
		}
	case FieldOVDNumber:
		ovdType := OVDType(p.Field(ovdTypeKeyFor(f.Key)))
		if !ValidOVDNumber(ovdType, value) {
			return fail("enter a valid document number")
		}
	case FieldAmount:
		amount, ok := ParseAmount(value)
		if !ok || amount <= 0 {
			return fail("enter a valid amount")
		}
	case FieldPositiveNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return fail("enter a value greater than zero")
		}
	case FieldNonNegativeNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n < 0 {
			return fail("enter a value of zero or more")
		}
	}
	return nil
}

// ValidateForm checks every registry field against the profile's stored
// values and returns all field-scoped failures. A failing field does not
// stop the remaining fields from being checked.
func ValidateForm(fields []FormField, p *ApplicationProfile) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		required := f.Required == nil || f.Required(p)
		value := strings.TrimSpace(p.Field(f.Key))

		if f.Kind == FieldCheckbox {
			if required && !p.Checked(f.Key) {
				errs = append(errs, FieldError{Field: f.Key, Message: fmt.Sprintf("please agree to the %s", f.Label)})
			}
			continue
		}
		if value == "" {
			if required {
				errs = append(errs, FieldError{Field: f.Key, Message: fmt.Sprintf("please enter %s", f.Label)})
			}
			continue
		}
		if ferr := checkFieldFormat(f, value, p); ferr != nil {
			errs = append(errs, *ferr)
		}
	}
	return errs
}
