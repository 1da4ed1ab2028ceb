// Package validators holds the pure input checks applied before any domain
// operation runs. Each validator returns the accepted, normalized value or an
// error describing exactly which rule failed. None of them touch the database.
package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError marks input the caller can correct and resubmit.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var (
	nonDigits   = regexp.MustCompile(`[^\d]`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Phone validates and formats a phone number to (555) 123-4567 format.
func Phone(phone string) (string, error) {
	if phone == "" {
		return "", invalid("Phone number is required")
	}

	cleaned := nonDigits.ReplaceAllString(phone, "")
	if len(cleaned) != 10 {
		return "", invalid("Phone must be 10 digits (e.g., 5551234567)")
	}

	return fmt.Sprintf("(%s) %s-%s", cleaned[:3], cleaned[3:6], cleaned[6:]), nil
}

// Field is a named raw input value for Required.
type Field struct {
	Name  string
	Value string
}

// Required checks that every field is present and non-empty, reporting all
// missing field names at once rather than just the first.
func Required(fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	if len(missing) > 0 {
		return invalid("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Numeric validates that a value is a number >= min. A nil value defaults to
// 0 when allowMissing is set and is rejected as required otherwise.
func Numeric(value *float64, fieldName string, min float64, allowMissing bool) (float64, error) {
	if value == nil {
		if allowMissing {
			return 0, nil
		}
		return 0, invalid("%s is required", fieldName)
	}
	if *value < min {
		return 0, invalid("%s must be at least %g", fieldName, min)
	}
	return *value, nil
}

// Status checks membership in the allowed status set.
func Status(status string, validStatuses []string) error {
	for _, s := range validStatuses {
		if status == s {
			return nil
		}
	}
	return invalid("Status must be one of: %s", strings.Join(validStatuses, ", "))
}

// Date validates YYYY-MM-DD format and calendar validity.
func Date(dateString string) (string, error) {
	if dateString == "" {
		return "", invalid("Date is required")
	}
	if !datePattern.MatchString(dateString) {
		return "", invalid("Date must be in format YYYY-MM-DD (e.g., 2025-01-15)")
	}
	if _, err := time.Parse("2006-01-02", dateString); err != nil {
		return "", invalid("Invalid date (e.g., month cannot be 13)")
	}
	return dateString, nil
}

// Time accepts any non-empty value containing a ':'. Clients send times like
// "10:00 AM" or "14:00" and downstream consumers expect them passed through
// unchanged, so no clock format is enforced.
func Time(timeString string) (string, error) {
	timeString = strings.TrimSpace(timeString)
	if timeString == "" {
		return "", invalid("Time is required")
	}
	if !strings.Contains(timeString, ":") {
		return "", invalid("Time must include ':' (e.g., 10:00 AM or 14:00)")
	}
	return timeString, nil
}

// enumeration checks a trimmed, lowercased value against a fixed set and
// returns the normalized form.
func enumeration(value, fieldName string, valid []string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", invalid("%s is required", fieldName)
	}
	for _, v := range valid {
		if normalized == v {
			return normalized, nil
		}
	}
	return "", invalid("%s must be one of: %s", fieldName, strings.Join(valid, ", "))
}

// Category validates an inventory category, case-insensitive and
// whitespace-tolerant, normalizing to lowercase.
func Category(value string, validCategories []string) (string, error) {
	return enumeration(value, "Category", validCategories)
}

// Unit validates a unit of measurement, normalizing to lowercase.
func Unit(value string, validUnits []string) (string, error) {
	return enumeration(value, "Unit", validUnits)
}
