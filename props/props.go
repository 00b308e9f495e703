package props

import (
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/brent-hartwig/rsuite-conf-utils-lib/messages"
)

// DefaultPropIsRequired defines whether a property is required by default.
// Lookups that do not state otherwise fail when the property is unset.
const DefaultPropIsRequired = true

var (
	log     *slog.Logger
	catalog = messages.Default()
)

// SetLogger replaces the logger the accessors emit warn/info diagnostics
// through. Passing nil restores slog.Default(). Intended to be called once
// during startup, before concurrent use.
func SetLogger(l *slog.Logger) { log = l }

// SetMessages replaces the message catalog used for diagnostics and error
// text. Intended to be called once during startup, before concurrent use.
func SetMessages(c messages.Catalog) {
	if c == nil {
		c = messages.Default()
	}
	catalog = c
}

func logger() *slog.Logger {
	if log != nil {
		return log
	}
	return slog.Default()
}

func msgs() messages.Catalog { return catalog }

// GetProperty returns the value of a property, applying
// DefaultPropIsRequired. The error is KindMissing when the property is unset.
func GetProperty(p Provider, name string) (string, error) {
	return LookupProperty(p, name, DefaultPropIsRequired)
}

// GetPropertyOrDefault returns the value of a property, or, when unset, the
// provided default. The default is returned verbatim, with no trimming.
func GetPropertyOrDefault(p Provider, name, defaultValue string) string {
	value, _ := LookupProperty(p, name, false)
	if value == "" {
		return defaultValue
	}
	return value
}

// LookupProperty reads a property and trims surrounding whitespace. A value
// that is unset or empty after trimming counts as absent: when required, the
// lookup fails with KindMissing; otherwise it returns "" with no error.
//
// Every other accessor in this package routes its read through here.
func LookupProperty(p Provider, name string, required bool) (string, error) {
	raw, _ := p.Property(name)
	value := strings.TrimSpace(raw)
	if value == "" && required {
		return "", &Error{Kind: KindMissing, Name: name}
	}
	return value, nil
}

// GetPropertyAsURI returns a property value parsed as a URI, applying
// DefaultPropIsRequired.
func GetPropertyAsURI(p Provider, name string) (*url.URL, error) {
	return LookupPropertyAsURI(p, name, DefaultPropIsRequired)
}

// LookupPropertyAsURI returns a property value parsed as a URI. A parse
// failure is KindInvalidValue carrying the raw value and wrapping the cause.
// When not required and the property is absent, both results are nil.
func LookupPropertyAsURI(p Provider, name string, required bool) (*url.URL, error) {
	value, err := LookupProperty(p, name, required)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	u, err := url.Parse(value)
	if err != nil {
		return nil, &Error{Kind: KindInvalidValue, Name: name, Value: value, Err: err}
	}
	return u, nil
}

// GetPropertyAsInt returns a property value as a base-10 int, or the provided
// default when the property is unset or its value does not parse. An
// unparseable value is logged at warn level; whenever the default is used an
// info line records it. Never fails.
func GetPropertyAsInt(p Provider, name string, defaultValue int) int {
	value, _ := LookupProperty(p, name, false)
	if value != "" {
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		logger().Warn(msgs().Format(messages.KeyInvalidValueUsingDefault, name, value, defaultValue),
			slog.String("property", name),
			slog.String("value", value),
			slog.String("error", err.Error()))
	}

	logger().Info(msgs().Format(messages.KeyPropertyNotSetUsingDefault, name, defaultValue),
		slog.String("property", name),
		slog.Int("default", defaultValue))
	return defaultValue
}

// GetPropertyAsBool returns a property value as a bool, or the provided
// default when the property is unset. A present value is true only when it is
// the case-insensitive literal "true"; every other string, "yes" and "1"
// included, is false rather than the default. Never fails.
func GetPropertyAsBool(p Provider, name string, defaultValue bool) bool {
	value, _ := LookupProperty(p, name, false)
	if value == "" {
		return defaultValue
	}
	return strings.EqualFold(value, "true")
}

// GetPropertyAsStringList returns a delimited property value as a list of
// strings. The delimiter is a regular expression. Empty segments are
// discarded, after trimming when trim is set; order is preserved. The result
// is never nil: an absent, non-required property and a blank value both yield
// an empty list. A required, absent property fails with KindMissing.
func GetPropertyAsStringList(p Provider, name, delimiter string, required, trim bool) ([]string, error) {
	list := []string{}
	value, err := LookupProperty(p, name, required)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return list, nil
	}

	re, err := regexp.Compile(delimiter)
	if err != nil {
		return nil, &Error{Kind: KindInvalidValue, Name: name, Value: delimiter, Err: err}
	}
	for _, segment := range re.Split(value, -1) {
		if trim {
			segment = strings.TrimSpace(segment)
		}
		if segment != "" {
			list = append(list, segment)
		}
	}
	return list, nil
}

// GetPropertiesWithPrefix returns the properties whose name begins with
// prefix, optionally removing the prefix from the returned names and
// optionally swapping values with names. Values are trimmed either way. Key
// collisions, two entries reducing to the same map key, resolve last-wins.
func GetPropertiesWithPrefix(p Provider, prefix string, removePrefix, valueBecomesKey bool) map[string]string {
	propsOut := make(map[string]string)
	for name, value := range p.PropertiesWithPrefix(prefix) {
		if removePrefix {
			name = strings.TrimPrefix(name, prefix)
		}
		value = strings.TrimSpace(value)
		if valueBecomesKey {
			propsOut[value] = name
		} else {
			propsOut[name] = value
		}
	}
	return propsOut
}

// DelimitedPropertyValueContains reports whether a comma-delimited property
// value contains checkFor. There is no default property value, segments and
// checkFor are trimmed, and the comparison is case-insensitive.
func DelimitedPropertyValueContains(p Provider, name, checkFor string) (bool, error) {
	return DelimitedPropertyValueContainsOpts(p, name, "", ",", checkFor, true, false)
}

// DelimitedPropertyValueContainsOpts reports whether a delimited property
// value contains checkFor. When the property is absent and defaultPropValue
// is non-empty, the default is used as the working value. A blank working
// value is false. The delimiter is a regular expression; an uncompilable
// pattern fails with KindInvalidValue.
func DelimitedPropertyValueContainsOpts(p Provider, name, defaultPropValue, delimiter, checkFor string, trimWhitespace, caseSensitive bool) (bool, error) {
	value, _ := LookupProperty(p, name, false)
	if value == "" && defaultPropValue != "" {
		value = defaultPropValue
	}
	if strings.TrimSpace(value) == "" {
		return false, nil
	}

	if trimWhitespace {
		checkFor = strings.TrimSpace(checkFor)
	}
	re, err := regexp.Compile(delimiter)
	if err != nil {
		return false, &Error{Kind: KindInvalidValue, Name: name, Value: delimiter, Err: err}
	}
	for _, segment := range re.Split(value, -1) {
		if trimWhitespace {
			segment = strings.TrimSpace(segment)
		}
		if caseSensitive {
			if segment == checkFor {
				return true, nil
			}
		} else if strings.EqualFold(segment, checkFor) {
			return true, nil
		}
	}
	return false, nil
}
