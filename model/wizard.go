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

// WizardStep indexes the ordered intake sequence. Exactly one step is
// current at a time; transitions happen only through the guarded wizard
// operations.
type WizardStep int

const (
	StepLoanSelection WizardStep = iota
	StepBasicDetails
	StepPersonalDetails
	StepIncomeDetails
	StepOffer
	StepDocumentUpload
	StepFinalApproval
	StepThankYou
)

// LastStep is the terminal thank-you page.
const LastStep = StepThankYou

func (s WizardStep) String() string {
	switch s {
	case StepLoanSelection:
		return "loan-selection"
	case StepBasicDetails:
		return "basic-details"
	case StepPersonalDetails:
		return "personal-details"
	case StepIncomeDetails:
		return "income-details"
	case StepOffer:
		return "offer"
	case StepDocumentUpload:
		return "document-upload"
	case StepFinalApproval:
		return "final-approval"
	case StepThankYou:
		return "thank-you"
	default:
		return "unknown"
	}
}

// Valid reports whether the step index is inside the wizard sequence.
func (s WizardStep) Valid() bool {
	return s >= StepLoanSelection && s <= StepThankYou
}

// JumpTargets are the steps reachable by direct navigation. Re-entry to
// any of these is always safe; guards still apply when advancing past a
// skipped step.
var JumpTargets = []WizardStep{StepLoanSelection, StepDocumentUpload, StepFinalApproval, StepThankYou}

// CanJumpTo reports whether a step is a direct-navigation target.
func CanJumpTo(step WizardStep) bool {
	for _, t := range JumpTargets {
		if t == step {
			return true
		}
	}
	return false
}
