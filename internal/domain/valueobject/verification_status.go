package valueobject

import (
	"encoding/json"
	"fmt"
)

// VerificationStatus is an immutable value object representing the outcome of
// an entity veracity check.
type VerificationStatus struct {
	value string
}

var (
	StatusVerified   = VerificationStatus{value: "VERIFIED"}
	StatusUnverified = VerificationStatus{value: "UNVERIFIED"}
)

// VerificationStatusFromBool maps the verification verdict to its status.
func VerificationStatusFromBool(verified bool) VerificationStatus {
	if verified {
		return StatusVerified
	}
	return StatusUnverified
}

// VerificationStatusFromString reconstructs a status from its string representation.
func VerificationStatusFromString(s string) (VerificationStatus, error) {
	switch s {
	case "VERIFIED":
		return StatusVerified, nil
	case "UNVERIFIED":
		return StatusUnverified, nil
	default:
		return VerificationStatus{}, fmt.Errorf("invalid verification status: %s", s)
	}
}

// String returns the string representation.
func (v VerificationStatus) String() string {
	return v.value
}

// IsZero returns true if the status has not been set.
func (v VerificationStatus) IsZero() bool {
	return v.value == ""
}

// Equal checks equality with another VerificationStatus.
func (v VerificationStatus) Equal(other VerificationStatus) bool {
	return v.value == other.value
}

// MarshalJSON encodes the status as its string form.
func (v VerificationStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.value)
}

// UnmarshalJSON decodes a status from its string form.
func (v *VerificationStatus) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	status, err := VerificationStatusFromString(s)
	if err != nil {
		return err
	}
	*v = status
	return nil
}
