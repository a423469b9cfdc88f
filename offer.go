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

package lendflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lendflow-finance/lendflow/model"
)

// GetOffer recomputes the application's in-principle offer from the
// current profile. The offer is always derived, never stored, so edits to
// the loan amount are reflected immediately.
func (l *Lendflow) GetOffer(ctx context.Context, applicationID string) (model.Offer, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return model.Offer{}, err
	}
	return session.Profile.ComputeOffer(), nil
}

// referenceNumber assigns the application its LA reference on first use.
// The two-digit sequence is a per-day counter kept in Redis so references
// issued the same day never collide.
func (l *Lendflow) referenceNumber(ctx context.Context, session *ApplicationSession) (string, error) {
	if session.Profile.Reference != "" {
		return session.Profile.Reference, nil
	}

	day := time.Now()
	counterKey := fmt.Sprintf("lendflow:reference:%s", day.Format("20060102"))
	sequence, err := l.redis.Incr(ctx, counterKey).Result()
	if err != nil {
		return "", errors.Wrap(err, "failed to allocate reference sequence")
	}
	// The counter only matters for the rest of the day.
	if err := l.redis.Expire(ctx, counterKey, 48*time.Hour).Err(); err != nil {
		logErr(err)
	}

	session.Profile.Reference = model.ReferenceNumber(day, sequence)
	if err := l.saveSession(ctx, session); err != nil {
		return "", err
	}
	return session.Profile.Reference, nil
}

// applicantName returns the captured applicant or business contact name.
func applicantName(p *model.ApplicationProfile) string {
	if name := p.Field("businessFullName"); name != "" {
		return name
	}
	return p.Field("fullName")
}

// applicantMobile returns the mobile number the applicant registered.
func applicantMobile(p *model.ApplicationProfile) string {
	if mobile := p.Field("businessMobile"); mobile != "" {
		return mobile
	}
	return p.Field("mobile")
}

// applicantEmail returns the best captured email for notifications.
func applicantEmail(p *model.ApplicationProfile) string {
	if email := p.Field("email"); email != "" {
		return email
	}
	return p.Field("officialEmailID")
}

// LoanSummary renders the downloadable plain-text summary of the
// in-principle approved application.
func (l *Lendflow) LoanSummary(ctx context.Context, applicationID string) (string, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return "", err
	}
	reference, err := l.referenceNumber(ctx, session)
	if err != nil {
		return "", err
	}

	p := session.Profile
	offer := p.ComputeOffer()

	var b strings.Builder
	b.WriteString("LOAN APPLICATION SUMMARY\n")
	b.WriteString("========================\n\n")
	fmt.Fprintf(&b, "Reference Number : %s\n", reference)
	fmt.Fprintf(&b, "Date             : %s\n\n", time.Now().Format("02 Jan 2006"))
	fmt.Fprintf(&b, "Applicant Name   : %s\n", applicantName(p))
	fmt.Fprintf(&b, "Mobile Number    : %s\n", applicantMobile(p))
	fmt.Fprintf(&b, "Email Address    : %s\n\n", applicantEmail(p))
	fmt.Fprintf(&b, "Loan Type        : %s\n", p.LoanType)
	fmt.Fprintf(&b, "Loan Amount      : Rs. %s\n", offer.LoanAmount.StringFixed(0))
	fmt.Fprintf(&b, "Interest Rate    : %.2f%% p.a.\n", offer.InterestRate)
	fmt.Fprintf(&b, "Tenure           : %d months\n", offer.TenureMonths)
	fmt.Fprintf(&b, "Monthly EMI      : Rs. %s\n\n", offer.MonthlyEMI.StringFixed(0))
	fmt.Fprintf(&b, "Processing Charge: Rs. %s\n", offer.ProcessingCharge.StringFixed(0))
	fmt.Fprintf(&b, "Login Fee (+GST) : Rs. %s\n\n", offer.LoginFee.StringFixed(0))
	b.WriteString("Status           : IN-PRINCIPAL APPROVED\n")
	return b.String(), nil
}

// AcceptLoan records the applicant's acceptance of the offer: the
// reference is assigned, the approval notifications are queued, a webhook
// event fires and the wizard moves to the thank-you step.
func (l *Lendflow) AcceptLoan(ctx context.Context, applicationID string) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if session.Profile.Accepted {
		return session, nil
	}
	if session.Step != model.StepFinalApproval {
		return nil, fmt.Errorf("the offer can only be accepted at the final approval step")
	}

	reference, err := l.referenceNumber(ctx, session)
	if err != nil {
		return nil, err
	}

	p := session.Profile
	offer := p.ComputeOffer()
	p.Accepted = true
	session.Step = model.StepThankYou
	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}

	notice := ApprovalNotice{
		ApplicationID: p.ApplicationID,
		Reference:     reference,
		Name:          applicantName(p),
		Mobile:        applicantMobile(p),
		Email:         applicantEmail(p),
		LoanAmount:    offer.LoanAmount.StringFixed(0),
		MonthlyEMI:    offer.MonthlyEMI.StringFixed(0),
	}
	if err := l.queue.EnqueueApprovalNotice(ctx, notice); err != nil {
		logErr(err)
	}
	if err := SendWebhook(NewWebhook{Event: "application.accepted", Payload: notice}); err != nil {
		logErr(err)
	}
	return session, nil
}
