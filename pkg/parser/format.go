package parser

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// Format identifies the serialization of a document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// SupportedFormats lists the formats accepted by Parse.
var SupportedFormats = []Format{FormatYAML, FormatJSON}

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON:
		return false
	default:
		return true
	}
}

// ParseFormat resolves a user supplied format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown document format %q, supported formats are: %v", s, SupportedFormats)
	}
}

// FormatFromPath picks the format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// FormatFromContentType picks the format from an HTTP Content-Type header,
// defaulting to YAML.
func FormatFromContentType(contentType string) Format {
	if contentType == "" {
		return FormatYAML
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatYAML
	}
	if mt == "application/json" || strings.HasSuffix(mt, "+json") {
		return FormatJSON
	}
	return FormatYAML
}
