package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeEMI(t *testing.T) {
	// 10 lakhs at 8.5% over 84 months.
	emi := ComputeEMI(1_000_000, 8.5, 84)
	assert.InDelta(t, 15836, emi, 1)
}

func TestComputeEMI_Fallback(t *testing.T) {
	// Degenerate inputs take the 1.5%-of-principal path without failing.
	assert.Equal(t, int64(0), ComputeEMI(0, 0, 0))
	assert.Equal(t, int64(7500), ComputeEMI(500_000, 8.5, 0))
	assert.Equal(t, int64(7500), ComputeEMI(500_000, -1, 84))

	// Zero rate makes the formula degenerate (r = 0).
	assert.Equal(t, int64(15000), ComputeEMI(1_000_000, 0, 84))
}

func TestComputeOffer_AppliesDefaults(t *testing.T) {
	p := &ApplicationProfile{Fields: map[string]string{}}
	offer := p.ComputeOffer()

	assert.Equal(t, int64(DefaultLoanAmount), offer.LoanAmount.IntPart())
	assert.Equal(t, DefaultInterestRate, offer.InterestRate)
	assert.Equal(t, DefaultTenureMonths, offer.TenureMonths)
	assert.Equal(t, int64(15836), offer.MonthlyEMI.IntPart())
	assert.True(t, offer.ProcessingCharge.Equal(ProcessingCharge))
	assert.True(t, offer.LoginFee.Equal(LoginFeeWithGST))
}

func TestComputeOffer_UsesProfileValues(t *testing.T) {
	p := NewApplicationProfile()
	p.LoanAmount = 500_000
	p.InterestRate = 10
	p.TenureMonths = 60

	offer := p.ComputeOffer()
	assert.Equal(t, int64(ComputeEMI(500_000, 10, 60)), offer.MonthlyEMI.IntPart())
	assert.Equal(t, int64(500_000), offer.LoanAmount.IntPart())
}
