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
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Offer defaults applied when the applicant has not supplied values.
const (
	DefaultLoanAmount   = 1_000_000
	DefaultInterestRate = 8.5
	DefaultTenureMonths = 84
)

// Fixed fee line items quoted on every in-principle approval.
var (
	ProcessingCharge = decimal.NewFromInt(1180)
	LoginFeeWithGST  = decimal.NewFromInt(1180)
)

// Offer is the auto-computed in-principle loan offer shown at the offer
// step and quoted in the downloadable summary.
type Offer struct {
	LoanAmount       decimal.Decimal `json:"loan_amount"`
	InterestRate     float64         `json:"interest_rate"`
	TenureMonths     int             `json:"tenure_months"`
	MonthlyEMI       decimal.Decimal `json:"monthly_emi"`
	ProcessingCharge decimal.Decimal `json:"processing_charge"`
	LoginFee         decimal.Decimal `json:"login_fee"`
	ComputedAt       time.Time       `json:"computed_at"`
}

// ComputeEMI maps (principal, annual rate percent, tenure months) to the
// equated monthly installment, rounded to the nearest rupee:
//
//	r = rate/100/12, EMI = P*r*(1+r)^n / ((1+r)^n - 1)
//
// Degenerate inputs (non-positive principal or tenure, zero monthly rate,
// anything that makes the formula non-finite) fall back to 1.5% of the
// principal instead of failing.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) int64 {
	fallback := func() int64 {
		return decimal.NewFromFloat(principal).Mul(decimal.NewFromFloat(0.015)).Round(0).IntPart()
	}
	if principal <= 0 || annualRatePercent < 0 || tenureMonths < 1 {
		return fallback()
	}
	r := annualRatePercent / 100 / 12
	growth := math.Pow(1+r, float64(tenureMonths))
	emi := principal * r * growth / (growth - 1)
	if math.IsNaN(emi) || math.IsInf(emi, 0) {
		return fallback()
	}
	return decimal.NewFromFloat(emi).Round(0).IntPart()
}

// ComputeOffer derives the profile's current offer, substituting the
// product defaults for absent inputs.
func (p *ApplicationProfile) ComputeOffer() Offer {
	principal := p.LoanAmount
	if principal <= 0 {
		principal = DefaultLoanAmount
	}
	rate := p.InterestRate
	if rate <= 0 {
		rate = DefaultInterestRate
	}
	tenure := p.TenureMonths
	if tenure < 1 {
		tenure = DefaultTenureMonths
	}
	return Offer{
		LoanAmount:       decimal.NewFromFloat(principal),
		InterestRate:     rate,
		TenureMonths:     tenure,
		MonthlyEMI:       decimal.NewFromInt(ComputeEMI(principal, rate, tenure)),
		ProcessingCharge: ProcessingCharge,
		LoginFee:         LoginFeeWithGST,
		ComputedAt:       time.Now(),
	}
}
