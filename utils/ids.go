package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an identifier made of a short human-readable prefix
// ("h", "r", "BK", ...) and a random suffix. Random suffixes replace the
// timestamp-derived ids the demo data uses, which can collide when two
// records are created within the same millisecond.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + raw[:12]
}

// NewPaymentReference returns a human-readable payment reference of the
// form "PAY" followed by nine uppercase characters.
func NewPaymentReference() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "PAY" + raw[:9]
}
