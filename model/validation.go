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
	"regexp"
	"strings"
)

// Field-format predicates for the identifiers collected during intake.
// Each predicate takes the raw string and returns whether it matches the
// fixed format; malformed input yields false, never an error.
var (
	mobilePattern         = regexp.MustCompile(`^[6-9]\d{9}$`)
	panPattern            = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	aadharPattern         = regexp.MustCompile(`^\d{12}$`)
	passportPattern       = regexp.MustCompile(`^[A-Z]{1}[0-9]{7}$`)
	drivingLicensePattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[0-9]{4}[0-9]{7}$`)
	voterIDPattern        = regexp.MustCompile(`^[A-Z]{3}[0-9]{7}$`)
	gstPattern            = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	pinCodePattern        = regexp.MustCompile(`^\d{6}$`)
	emailPattern          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	ifscPattern           = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	otpPattern            = regexp.MustCompile(`^\d{6}$`)
)

// ValidMobile checks a 10-digit Indian mobile number starting 6-9.
func ValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// ValidPAN checks the 5-letter, 4-digit, 1-letter PAN format.
func ValidPAN(pan string) bool {
	return panPattern.MatchString(pan)
}

// ValidAadhar checks a 12-digit Aadhar number. Internal spaces are
// stripped before the check, matching how the number is usually typed.
func ValidAadhar(aadhar string) bool {
	return aadharPattern.MatchString(strings.ReplaceAll(aadhar, " ", ""))
}

// ValidPassport checks the 1-letter + 7-digit passport format.
func ValidPassport(passport string) bool {
	return passportPattern.MatchString(passport)
}

// ValidDrivingLicense checks the 2-letter state code + 13-digit license
// format, with spaces stripped.
func ValidDrivingLicense(dl string) bool {
	return drivingLicensePattern.MatchString(strings.ReplaceAll(dl, " ", ""))
}

// ValidVoterID checks the 3-letter + 7-digit voter ID format.
func ValidVoterID(voterID string) bool {
	return voterIDPattern.MatchString(voterID)
}

// ValidGSTNumber checks the 15-character GST registration format.
func ValidGSTNumber(gst string) bool {
	return gstPattern.MatchString(gst)
}

// ValidPinCode checks a 6-digit postal PIN code.
func ValidPinCode(pinCode string) bool {
	return pinCodePattern.MatchString(pinCode)
}

// ValidEmail is a single-pass shape check: local part, "@", domain, ".",
// tld, with no internal whitespace.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidIFSC checks the 4-letter bank code + "0" + 6-alphanumeric branch
// code format.
func ValidIFSC(ifsc string) bool {
	return ifscPattern.MatchString(ifsc)
}

// ValidOTPShape reports whether the input is exactly six digits. The
// shape check is separate from code acceptance so malformed input can be
// reported differently from a wrong code.
func ValidOTPShape(otp string) bool {
	return otpPattern.MatchString(otp)
}

// OVDType identifies an Officially Valid Document used as identity proof.
type OVDType string

const (
	OVDAadhar         OVDType = "aadhar"
	OVDPassport       OVDType = "passport"
	OVDDrivingLicense OVDType = "driving_license"
	OVDVoterID        OVDType = "voter_id"
	OVDPANCard        OVDType = "pan_card"
)

// ValidOVDNumber validates a document number against the format of the
// selected OVD type. Unknown types are rejected.
func ValidOVDNumber(ovdType OVDType, number string) bool {
	switch ovdType {
	case OVDAadhar:
		return ValidAadhar(number)
	case OVDPassport:
		return ValidPassport(number)
	case OVDDrivingLicense:
		return ValidDrivingLicense(number)
	case OVDVoterID:
		return ValidVoterID(number)
	case OVDPANCard:
		return ValidPAN(number)
	default:
		return false
	}
}
