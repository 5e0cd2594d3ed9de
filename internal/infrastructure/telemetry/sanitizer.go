package telemetry

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

// PIILevel defines how much guest data may reach logs and spans.
type PIILevel string

const (
	// PIILevelNone redacts free text entirely
	PIILevelNone PIILevel = "none"
	// PIILevelHashed replaces detected PII with salted hashes
	PIILevelHashed PIILevel = "hashed"
	// PIILevelFull passes values through unchanged
	PIILevelFull PIILevel = "full"
)

const redacted = "[REDACTED]"

// Sanitizer scrubs guest PII from server messages, identifiers and query
// values before they are logged or attached to spans.
type Sanitizer struct {
	level PIILevel
	salt  string

	emailPattern *regexp.Regexp
	phonePattern *regexp.Regexp
	cardPattern  *regexp.Regexp
	ipv4Pattern  *regexp.Regexp
}

// NewSanitizer creates a sanitizer. The salt keeps hashes stable per
// deployment without being reversible across deployments.
func NewSanitizer(level PIILevel, salt string) *Sanitizer {
	return &Sanitizer{
		level:        level,
		salt:         salt,
		emailPattern: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`),
		phonePattern: regexp.MustCompile(`\+?\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),
		cardPattern:  regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`),
		ipv4Pattern:  regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	}
}

// SanitizeText scrubs free text such as an error message returned by a
// backend service.
func (s *Sanitizer) SanitizeText(input string) string {
	if input == "" {
		return ""
	}
	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return input
	default:
		// Unknown levels are treated as hashed
		return s.hashPII(input)
	}
}

// SanitizeUserID masks a user identifier.
func (s *Sanitizer) SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}
	switch s.level {
	case PIILevelNone:
		return redacted
	case PIILevelFull:
		return userID
	default:
		return s.hash(userID)
	}
}

// SanitizeFields scrubs every value of a field map, e.g. query parameters.
func (s *Sanitizer) SanitizeFields(fields map[string]string) map[string]string {
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = s.SanitizeText(v)
	}
	return out
}

func (s *Sanitizer) hashPII(input string) string {
	result := s.emailPattern.ReplaceAllStringFunc(input, func(match string) string {
		return fmt.Sprintf("[EMAIL:%s]", s.hash(match))
	})
	// Card numbers before phones: a 16 digit run also matches the phone pattern.
	result = s.cardPattern.ReplaceAllString(result, "[CC:REDACTED]")
	result = s.phonePattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[PHONE:%s]", s.hash(match))
	})
	result = s.ipv4Pattern.ReplaceAllStringFunc(result, func(match string) string {
		return fmt.Sprintf("[IP:%s]", s.hash(match))
	})
	return result
}

// hash returns the first 8 hex chars of a salted SHA-256.
func (s *Sanitizer) hash(data string) string {
	h := sha256.Sum256([]byte(data + s.salt))
	return hex.EncodeToString(h[:])[:8]
}
