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
	"github.com/lendflow-finance/lendflow"
	"github.com/lendflow-finance/lendflow/model"
)

// UpdateSelections is the request body for the step-0 selector changes.
type UpdateSelections struct {
	LoanType          string `json:"loan_type"`
	VehicleSubType    string `json:"vehicle_sub_type"`
	EmploymentType    string `json:"employment_type"`
	EmploymentSubType string `json:"employment_sub_type"`
}

func (s *UpdateSelections) ToSelectionUpdate() lendflow.SelectionUpdate {
	return lendflow.SelectionUpdate{
		LoanType:          s.LoanType,
		VehicleSubType:    s.VehicleSubType,
		EmploymentType:    s.EmploymentType,
		EmploymentSubType: s.EmploymentSubType,
	}
}

// UpdateFields is the request body for free-form field edits.
type UpdateFields struct {
	Fields map[string]string `json:"fields"`
}

// JumpRequest names the direct-navigation target.
type JumpRequest struct {
	Step *int `json:"step"`
}

// Attachment is the metadata-only descriptor of a picked file.
type Attachment struct {
	Name        string `json:"name"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
}

// VerifyDocument is the request body for one document verification
// attempt. The document type comes from the route.
type VerifyDocument struct {
	Attachment *Attachment       `json:"attachment"`
	Metadata   map[string]string `json:"metadata"`
	ITRMethod  string            `json:"itr_method"`
	CarType    string            `json:"car_type"`
	FuelType   string            `json:"fuel_type"`
}

func (v *VerifyDocument) ToSubmission(documentType model.DocumentType) model.DocumentSubmission {
	submission := model.DocumentSubmission{
		DocumentType: documentType,
		Metadata:     v.Metadata,
		ITRMethod:    model.ITRMethod(v.ITRMethod),
		CarType:      model.CarType(v.CarType),
		FuelType:     model.FuelType(v.FuelType),
	}
	if v.Attachment != nil {
		submission.Attachment = &model.FileAttachment{
			Name:        v.Attachment.Name,
			SizeBytes:   v.Attachment.SizeBytes,
			ContentType: v.Attachment.ContentType,
		}
	}
	return submission
}

// VerifyBankAccount is the request body for the disbursal account check.
type VerifyBankAccount struct {
	AccountNumber        string `json:"account_number"`
	ConfirmAccountNumber string `json:"confirm_account_number"`
	IFSCCode             string `json:"ifsc_code"`
	BankName             string `json:"bank_name"`
	AccountType          string `json:"account_type"`
}

func (v *VerifyBankAccount) ToBankAccountRequest() lendflow.BankAccountRequest {
	return lendflow.BankAccountRequest{
		AccountNumber:        v.AccountNumber,
		ConfirmAccountNumber: v.ConfirmAccountNumber,
		IFSCCode:             v.IFSCCode,
		BankName:             v.BankName,
		AccountType:          v.AccountType,
	}
}

// SendOTP names the purpose an OTP is issued for.
type SendOTP struct {
	Purpose string `json:"purpose"`
}

// VerifyOTP carries the submitted code.
type VerifyOTP struct {
	Code string `json:"code"`
}
