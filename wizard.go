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

	"github.com/lendflow-finance/lendflow/model"
)

// GuardError reports why an advance was refused. It aggregates every
// violation of the current step's guard so the applicant can fix them all
// at once; it is never fatal and the wizard position does not move.
type GuardError struct {
	Step             model.WizardStep   `json:"step"`
	Message          string             `json:"message"`
	FieldErrors      []model.FieldError `json:"field_errors,omitempty"`
	MissingDocuments []string           `json:"missing_documents,omitempty"`
}

func (e *GuardError) Error() string {
	parts := []string{fmt.Sprintf("step %s: %s", e.Step, e.Message)}
	for _, fe := range e.FieldErrors {
		parts = append(parts, fe.Error())
	}
	if len(e.MissingDocuments) > 0 {
		parts = append(parts, fmt.Sprintf("missing documents: %s", strings.Join(e.MissingDocuments, ", ")))
	}
	return strings.Join(parts, "; ")
}

// Advance moves the wizard forward one step if the current step's guard
// passes. A guard failure returns a *GuardError and leaves the position
// unchanged.
func (l *Lendflow) Advance(ctx context.Context, applicationID string) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if session.Step >= model.LastStep {
		return nil, fmt.Errorf("application is already at the final step")
	}
	if gerr := checkStepGuard(session); gerr != nil {
		return nil, gerr
	}

	session.Step++
	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if session.Step == model.StepOffer {
		offer := session.Profile.ComputeOffer()
		if err := SendWebhook(NewWebhook{Event: "application.offer_presented", Payload: offer}); err != nil {
			logErr(err)
		}
	}
	return session, nil
}

// Retreat moves the wizard back one step. It is never guarded and floors
// at the loan selection step.
func (l *Lendflow) Retreat(ctx context.Context, applicationID string) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if session.Step > model.StepLoanSelection {
		session.Step--
		if err := l.saveSession(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// JumpTo moves the wizard directly to one of the navigable steps.
func (l *Lendflow) JumpTo(ctx context.Context, applicationID string, step model.WizardStep) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !model.CanJumpTo(step) {
		return nil, fmt.Errorf("step %s is not a direct-navigation target", step)
	}
	session.Step = step
	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// checkStepGuard evaluates the guard for the session's current step. Nil
// means the applicant may advance.
func checkStepGuard(session *ApplicationSession) *GuardError {
	p := session.Profile
	visibility := model.ComputeVisibility(p.LoanType, p.EmploymentType, p.EmploymentSubType)

	switch session.Step {
	case model.StepLoanSelection:
		var missing []string
		if p.LoanType == "" {
			missing = append(missing, "loan type")
		}
		if p.LoanType == model.LoanTypeVehicle && p.VehicleSubType == "" {
			missing = append(missing, "vehicle sub-type")
		}
		if p.EmploymentType == "" {
			missing = append(missing, "employment type")
		}
		if p.EmploymentSubType == "" {
			missing = append(missing, "employment sub-type")
		}
		if len(missing) > 0 {
			return &GuardError{
				Step:    session.Step,
				Message: fmt.Sprintf("select %s to continue", strings.Join(missing, ", ")),
			}
		}

	case model.StepBasicDetails:
		errs := model.ValidateForm(model.BasicFields(visibility.BasicForm), p)
		if len(errs) > 0 {
			return &GuardError{Step: session.Step, Message: "basic details are incomplete", FieldErrors: errs}
		}
		ovdVerified := p.OVDVerified
		if visibility.BusinessApplicant {
			ovdVerified = p.BusinessOVDVerified
		}
		if !ovdVerified {
			return &GuardError{Step: session.Step, Message: "verify the OVD document before continuing"}
		}

	case model.StepPersonalDetails:
		errs := model.ValidateForm(model.PersonalFields(visibility.PersonalForm), p)
		if len(errs) > 0 {
			return &GuardError{Step: session.Step, Message: "personal details are incomplete", FieldErrors: errs}
		}

	case model.StepIncomeDetails:
		errs := model.ValidateForm(model.IncomeFields(visibility.IncomeForm), p)
		if len(errs) > 0 {
			return &GuardError{Step: session.Step, Message: "income details are incomplete", FieldErrors: errs}
		}

	case model.StepDocumentUpload:
		missing := model.MissingDocuments(visibility.RequiredDocuments, p.Documents)
		if len(missing) > 0 {
			return &GuardError{Step: session.Step, Message: "verify all required documents", MissingDocuments: missing}
		}
	}
	// Offer, final approval and thank-you advance unconditionally.
	return nil
}
