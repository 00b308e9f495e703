package messages

import (
	"fmt"
	"strconv"
	"strings"
)

// Message keys used by the property accessors.
const (
	KeyRequiredPropNotSet         = "conf.error.required.prop.not.set"
	KeyInvalidPropertyValue       = "conf.error.invalid.property.value"
	KeyInvalidValueUsingDefault   = "conf.warn.invalid.value.using.default"
	KeyPropertyNotSetUsingDefault = "conf.info.property.not.set.using.default"
)

// Catalog maps message keys to templates. Templates use positional
// placeholders of the form {0}, {1}, and so on.
type Catalog map[string]string

// Default returns the English catalog covering every key the accessors emit.
func Default() Catalog {
	return Catalog{
		KeyRequiredPropNotSet:         `Required configuration property "{0}" is not set.`,
		KeyInvalidPropertyValue:       `Invalid value "{0}" for configuration property "{1}".`,
		KeyInvalidValueUsingDefault:   `Ignoring invalid value "{1}" for configuration property "{0}"; using default "{2}".`,
		KeyPropertyNotSetUsingDefault: `Configuration property "{0}" is not set; using default "{1}".`,
	}
}

// Format renders the template registered under key, substituting each {N}
// placeholder with the corresponding argument. A key with no registered
// template falls back to a key-plus-arguments rendering so a diagnostic is
// never lost to an incomplete catalog.
func (c Catalog) Format(key string, args ...any) string {
	template, ok := c[key]
	if !ok {
		if len(args) == 0 {
			return key
		}
		rendered := make([]string, len(args))
		for i, arg := range args {
			rendered[i] = fmt.Sprint(arg)
		}
		return key + ": " + strings.Join(rendered, ", ")
	}

	for i, arg := range args {
		template = strings.ReplaceAll(template, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}
	return template
}

// Merge returns a new catalog with overrides layered on top of c. Neither
// input is modified, so a shared default catalog stays safe for concurrent
// reads.
func (c Catalog) Merge(overrides Catalog) Catalog {
	merged := make(Catalog, len(c)+len(overrides))
	for key, template := range c {
		merged[key] = template
	}
	for key, template := range overrides {
		merged[key] = template
	}
	return merged
}
