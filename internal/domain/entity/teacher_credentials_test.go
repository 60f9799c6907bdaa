package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationStatus_IsValid(t *testing.T) {
	assert.True(t, ValidationPending.IsValid())
	assert.True(t, ValidationApproved.IsValid())
	assert.True(t, ValidationRejected.IsValid())
	assert.False(t, ValidationStatus("unknown").IsValid())
	assert.False(t, ValidationStatus("").IsValid())
}

func TestValidationStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ValidationStatus
		to      ValidationStatus
		byAdmin bool
		want    bool
	}{
		{"pending to approved", ValidationPending, ValidationApproved, false, true},
		{"pending to rejected", ValidationPending, ValidationRejected, false, true},
		{"approved back to pending (resubmission)", ValidationApproved, ValidationPending, false, true},
		{"rejected back to pending (resubmission)", ValidationRejected, ValidationPending, false, true},
		{"approved to rejected without admin", ValidationApproved, ValidationRejected, false, false},
		{"rejected to approved without admin", ValidationRejected, ValidationApproved, false, false},
		{"approved to rejected by admin", ValidationApproved, ValidationRejected, true, true},
		{"rejected to approved by admin", ValidationRejected, ValidationApproved, true, true},
		{"pending to unknown", ValidationPending, ValidationStatus("unknown"), true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to, tc.byAdmin))
		})
	}
}
