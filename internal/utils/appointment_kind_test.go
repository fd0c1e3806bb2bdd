package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consultorio/internal/utils"
)

func TestIsValidKind(t *testing.T) {
	valid := []string{"new patient", "New Patient", "NEW PATIENT", "follow-up", "Follow-Up", "FOLLOW-UP"}
	for _, kind := range valid {
		assert.True(t, utils.IsValidKind(kind), "expected %q to be valid", kind)
	}

	invalid := []string{"", "checkup", "followup", "follow up", "new-patient", "new"}
	for _, kind := range invalid {
		assert.False(t, utils.IsValidKind(kind), "expected %q to be invalid", kind)
	}
}
