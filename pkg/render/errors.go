package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-identityform/pkg/validation"
)

// ErrorMapping splits messages into field-level entries keyed by dotted path
// and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapIssues groups validation issues: issues carrying a path become field
// errors, the rest (duplicates) form-level errors.
func MapIssues(issues []validation.Issue) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	for _, issue := range issues {
		path := strings.TrimSpace(issue.Path)
		if path == "" {
			mapping.Form = append(mapping.Form, issue.Message)
			continue
		}
		mapping.Fields[path] = append(mapping.Fields[path], issue.Message)
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	for path, messages := range mapping.Fields {
		mapping.Fields[path] = normalizeMessages(messages)
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// FieldPaths returns the sorted keys of a field error map.
func FieldPaths(fields map[string][]string) []string {
	paths := make([]string, 0, len(fields))
	for path := range fields {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func mergeFieldErrors(sets ...map[string][]string) map[string][]string {
	out := make(map[string][]string)
	for _, set := range sets {
		for path, messages := range set {
			key := strings.TrimSpace(path)
			if key == "" {
				continue
			}
			out[key] = normalizeMessages(append(out[key], messages...))
		}
	}
	return out
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
