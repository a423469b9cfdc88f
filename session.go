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

// sessionTTL bounds how long an abandoned application survives in the
// store.
const sessionTTL = 72 * time.Hour

// ErrApplicationNotFound is returned when no session exists for the
// requested application ID.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationSession is the single record persisted per application: the
// applicant's profile, the wizard position and the pending OTP countdown.
// Every mutating operation loads it, changes it and writes it back whole.
type ApplicationSession struct {
	Profile   *model.ApplicationProfile `json:"profile"`
	Step      model.WizardStep          `json:"step"`
	OTP       *model.OTPSession         `json:"otp,omitempty"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// SelectionUpdate carries the step-0 selector changes. Empty values leave
// the corresponding selection untouched.
type SelectionUpdate struct {
	LoanType          string `json:"loan_type"`
	VehicleSubType    string `json:"vehicle_sub_type"`
	EmploymentType    string `json:"employment_type"`
	EmploymentSubType string `json:"employment_sub_type"`
}

func sessionKey(applicationID string) string {
	return fmt.Sprintf("lendflow:application:%s", applicationID)
}

// CreateApplication starts a fresh application session at the loan
// selection step and persists it.
func (l *Lendflow) CreateApplication(ctx context.Context) (*ApplicationSession, error) {
	session := &ApplicationSession{
		Profile: model.NewApplicationProfile(),
		Step:    model.StepLoanSelection,
	}
	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}
	if err := SendWebhook(NewWebhook{Event: "application.created", Payload: session.Profile}); err != nil {
		logErr(err)
	}
	return session, nil
}

// GetApplication loads the session for an application ID.
func (l *Lendflow) GetApplication(ctx context.Context, applicationID string) (*ApplicationSession, error) {
	var session ApplicationSession
	if err := l.cache.Get(ctx, sessionKey(applicationID), &session); err != nil {
		return nil, errors.Wrap(err, "failed to load application session")
	}
	// The cache reports a miss as an empty record.
	if session.Profile == nil {
		return nil, ErrApplicationNotFound
	}
	return &session, nil
}

func (l *Lendflow) saveSession(ctx context.Context, session *ApplicationSession) error {
	session.UpdatedAt = time.Now()
	err := l.cache.Set(ctx, sessionKey(session.Profile.ApplicationID), session, sessionTTL)
	return errors.Wrap(err, "failed to persist application session")
}

// ApplySelections updates the step-0 selections on an application. Each
// selection is validated against the enum it belongs to; changing the
// employment type reclassifies a now-illegal sub-type to the first legal
// option, and leaving the vehicle loan type clears the vehicle sub-type.
func (l *Lendflow) ApplySelections(ctx context.Context, applicationID string, update SelectionUpdate) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	p := session.Profile

	if update.LoanType != "" {
		loanType := model.LoanType(update.LoanType)
		switch loanType {
		case model.LoanTypeHome, model.LoanTypePersonal, model.LoanTypeEducation, model.LoanTypeVehicle:
			p.SetLoanType(loanType)
		default:
			return nil, fmt.Errorf("unknown loan type %q", update.LoanType)
		}
	}

	if update.VehicleSubType != "" {
		if p.LoanType != model.LoanTypeVehicle {
			return nil, fmt.Errorf("vehicle sub-type only applies to vehicle loans")
		}
		subType := model.VehicleSubType(update.VehicleSubType)
		if subType != model.VehicleTwoWheeler && subType != model.VehicleFourWheeler {
			return nil, fmt.Errorf("unknown vehicle sub-type %q", update.VehicleSubType)
		}
		p.VehicleSubType = subType
	}

	if update.EmploymentType != "" {
		employmentType := model.EmploymentType(update.EmploymentType)
		if model.LegalSubTypes(employmentType) == nil {
			return nil, fmt.Errorf("unknown employment type %q", update.EmploymentType)
		}
		p.SetEmploymentType(employmentType)
	}

	if update.EmploymentSubType != "" {
		subType := model.EmploymentSubType(update.EmploymentSubType)
		if p.EmploymentType == "" {
			return nil, fmt.Errorf("select an employment type first")
		}
		if !model.IsLegalSubType(p.EmploymentType, subType) {
			return nil, fmt.Errorf("employment sub-type %q is not available for %s applicants", update.EmploymentSubType, p.EmploymentType)
		}
		p.EmploymentSubType = subType
	}

	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateFields stores free-form form field edits on the profile. Values
// are trimmed; an empty value removes the field. Loan amount edits are
// mirrored into the typed loan amount the offer computation reads.
func (l *Lendflow) UpdateFields(ctx context.Context, applicationID string, fields map[string]string) (*ApplicationSession, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	p := session.Profile

	for key, value := range fields {
		value = strings.TrimSpace(value)
		if value == "" {
			delete(p.Fields, key)
			continue
		}
		p.Fields[key] = value

		if key == "loanAmount" || key == "businessLoanAmount" {
			if amount, ok := model.ParseAmount(value); ok && amount > 0 {
				p.LoanAmount = amount
			}
		}
	}

	if err := l.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Visibility computes the current eligibility result for an application
// from its stored selections.
func (l *Lendflow) Visibility(ctx context.Context, applicationID string) (model.VisibilityResult, error) {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return model.VisibilityResult{}, err
	}
	p := session.Profile
	return model.ComputeVisibility(p.LoanType, p.EmploymentType, p.EmploymentSubType), nil
}

// ResetApplication discards the session entirely: profile, uploads, OTP
// state and wizard position.
func (l *Lendflow) ResetApplication(ctx context.Context, applicationID string) error {
	session, err := l.GetApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	if err := l.cache.Delete(ctx, sessionKey(applicationID)); err != nil {
		return errors.Wrap(err, "failed to delete application session")
	}
	if err := SendWebhook(NewWebhook{Event: "application.reset", Payload: map[string]string{"application_id": session.Profile.ApplicationID}}); err != nil {
		logErr(err)
	}
	return nil
}
