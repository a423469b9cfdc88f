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
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateUUIDWithSuffix generates a UUID with a given module name as a prefix.
// This is useful for creating unique identifiers with context-specific prefixes.
func GenerateUUIDWithSuffix(module string) string {
	id := uuid.New()
	uuidStr := id.String()
	idWithSuffix := fmt.Sprintf("%s_%s", module, uuidStr)
	return idWithSuffix
}

// NewVerificationID builds a document verification identifier in the
// fixed `<PREFIX><6-digit-zero-padded-number>` format, e.g. BS042917.
func NewVerificationID(documentType DocumentType) string {
	return fmt.Sprintf("%s%06d", documentType.VerificationPrefix(), rand.Intn(1000000))
}

// ReferenceNumber builds an application reference in the fixed
// `LA<yyyymmdd><2-digit-sequence>` format, e.g. LA2025082901.
func ReferenceNumber(day time.Time, sequence int64) string {
	return fmt.Sprintf("LA%s%02d", day.Format("20060102"), sequence)
}

// ParseAmount parses a form amount value, tolerating the display commas
// the intake surface inserts (e.g. "10,00,000").
func ParseAmount(value string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
