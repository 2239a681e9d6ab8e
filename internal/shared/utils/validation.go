package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Length limits, in runes
const (
	MaxIDLength       = 128
	MaxCategoryLength = 64
	MaxQueryLength    = 1024
)

var (
	idPattern       = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	toolIDPattern   = regexp.MustCompile(`^[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+$`)
	categoryPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// FieldError names the request field that failed validation
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// rule describes one text field
type rule struct {
	field    string
	max      int
	required bool
	pattern  *regexp.Regexp
	shape    string
}

func (r rule) check(value string) error {
	if value == "" {
		if r.required {
			return &FieldError{r.field, "is required"}
		}
		return nil
	}
	if n := utf8.RuneCountInString(value); n > r.max {
		return &FieldError{r.field, fmt.Sprintf("must not exceed %d characters", r.max)}
	}
	if strings.ContainsRune(value, 0) {
		return &FieldError{r.field, "contains a null byte"}
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return &FieldError{r.field, "must be " + r.shape}
	}
	return nil
}

// ValidateID checks a bare identifier such as a function name
func ValidateID(id, field string, required bool) error {
	return rule{field, MaxIDLength, required, idPattern, "letters, digits, '-' or '_'"}.check(id)
}

// ValidateToolID checks a "<service>.<tool>" identifier
func ValidateToolID(id, field string, required bool) error {
	return rule{field, MaxIDLength, required, toolIDPattern, "of the form service.tool"}.check(id)
}

// ValidateCategory checks an optional category filter
func ValidateCategory(category string, required bool) error {
	return rule{"category", MaxCategoryLength, required, categoryPattern, "lowercase letters, digits or '-'"}.check(category)
}

// ValidateQuery checks a free-text discovery query
func ValidateQuery(query string) error {
	if err := (rule{field: "query", max: MaxQueryLength, required: true}).check(query); err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return &FieldError{"query", "must not be blank"}
	}
	return nil
}
