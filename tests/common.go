package tests

import (
	"testing"

	"github.com/google/uuid"
)

// UniqueText returns text that no other test writes to the shared database.
func UniqueText(t *testing.T, prefix string) string {
	t.Helper()
	return prefix + " " + uuid.NewString()
}
