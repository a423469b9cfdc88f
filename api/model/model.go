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
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (s *UpdateSelections) ValidateUpdateSelections() error {
	if s.LoanType == "" && s.VehicleSubType == "" && s.EmploymentType == "" && s.EmploymentSubType == "" {
		return errors.New("at least one selection is required")
	}
	return validation.ValidateStruct(s,
		validation.Field(&s.LoanType, validation.In("home", "personal", "education", "vehicle")),
		validation.Field(&s.VehicleSubType, validation.In("two-wheeler", "four-wheeler")),
		validation.Field(&s.EmploymentType, validation.In("individual", "non-individual", "nri")),
		validation.Field(&s.EmploymentSubType, validation.In("salaried", "self-employed", "llp-partnership", "private-limited")),
	)
}

func (f *UpdateFields) ValidateUpdateFields() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Fields, validation.Required, validation.Length(1, 0)),
	)
}

func (j *JumpRequest) ValidateJumpRequest() error {
	return validation.ValidateStruct(j,
		validation.Field(&j.Step, validation.NotNil, validation.Min(0), validation.Max(7)),
	)
}

func (v *VerifyDocument) ValidateVerifyDocument() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.ITRMethod, validation.In("fetch", "upload")),
		validation.Field(&v.CarType, validation.In("preOwned", "newCar")),
		validation.Field(&v.FuelType, validation.In("petrol-diesel", "ev")),
	)
}

func (v *VerifyBankAccount) ValidateVerifyBankAccount() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.AccountNumber, validation.Required),
		validation.Field(&v.ConfirmAccountNumber, validation.Required),
		validation.Field(&v.IFSCCode, validation.Required),
		validation.Field(&v.BankName, validation.Required),
	)
}

func (s *SendOTP) ValidateSendOTP() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Purpose, validation.Required, validation.In("mobile", "ovd", "business-ovd")),
	)
}

func (v *VerifyOTP) ValidateVerifyOTP() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.Code, validation.Required),
	)
}
