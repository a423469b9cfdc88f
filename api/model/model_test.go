package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpdateSelections(t *testing.T) {
	empty := &UpdateSelections{}
	assert.Error(t, empty.ValidateUpdateSelections())

	bad := &UpdateSelections{LoanType: "yacht"}
	assert.Error(t, bad.ValidateUpdateSelections())

	good := &UpdateSelections{LoanType: "vehicle", VehicleSubType: "two-wheeler"}
	assert.NoError(t, good.ValidateUpdateSelections())
}

func TestValidateUpdateFields(t *testing.T) {
	empty := &UpdateFields{}
	assert.Error(t, empty.ValidateUpdateFields())

	good := &UpdateFields{Fields: map[string]string{"fullName": "Asha Rao"}}
	assert.NoError(t, good.ValidateUpdateFields())
}

func TestValidateJumpRequest(t *testing.T) {
	missing := &JumpRequest{}
	assert.Error(t, missing.ValidateJumpRequest())

	tooFar := 9
	assert.Error(t, (&JumpRequest{Step: &tooFar}).ValidateJumpRequest())

	zero := 0
	assert.NoError(t, (&JumpRequest{Step: &zero}).ValidateJumpRequest())
}

func TestValidateVerifyDocument(t *testing.T) {
	bad := &VerifyDocument{ITRMethod: "guess"}
	assert.Error(t, bad.ValidateVerifyDocument())

	good := &VerifyDocument{ITRMethod: "fetch"}
	assert.NoError(t, good.ValidateVerifyDocument())

	// Sub-choices are optional; absent values pass.
	assert.NoError(t, (&VerifyDocument{}).ValidateVerifyDocument())
}

func TestValidateVerifyBankAccount(t *testing.T) {
	incomplete := &VerifyBankAccount{AccountNumber: "004401523652"}
	assert.Error(t, incomplete.ValidateVerifyBankAccount())

	good := &VerifyBankAccount{
		AccountNumber:        "004401523652",
		ConfirmAccountNumber: "004401523652",
		IFSCCode:             "SBIN0001234",
		BankName:             "State Bank",
	}
	assert.NoError(t, good.ValidateVerifyBankAccount())
}

func TestValidateSendOTP(t *testing.T) {
	assert.Error(t, (&SendOTP{}).ValidateSendOTP())
	assert.Error(t, (&SendOTP{Purpose: "carrier-pigeon"}).ValidateSendOTP())
	assert.NoError(t, (&SendOTP{Purpose: "business-ovd"}).ValidateSendOTP())
}
