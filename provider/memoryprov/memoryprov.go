package memoryprov

import (
	"strings"

	"github.com/brent-hartwig/rsuite-conf-utils-lib/props"
)

// Provider is a map-backed props.Provider. It performs no I/O and returns
// deterministic results, which makes it the adapter of choice for tests and
// for callers that assemble properties programmatically.
type Provider struct {
	properties map[string]string
}

var _ props.Provider = (*Provider)(nil)

// New returns a provider seeded with a copy of properties. A nil map yields
// an empty provider.
func New(properties map[string]string) *Provider {
	copied := make(map[string]string, len(properties))
	for name, value := range properties {
		copied[name] = value
	}
	return &Provider{properties: copied}
}

// Set adds or replaces a property.
func (p *Provider) Set(name, value string) {
	p.properties[name] = value
}

// Delete removes a property. Removing an unset property is a no-op.
func (p *Provider) Delete(name string) {
	delete(p.properties, name)
}

func (p *Provider) Property(name string) (string, bool) {
	value, ok := p.properties[name]
	return value, ok
}

func (p *Provider) PropertiesWithPrefix(prefix string) map[string]string {
	out := make(map[string]string)
	for name, value := range p.properties {
		if strings.HasPrefix(name, prefix) {
			out[name] = value
		}
	}
	return out
}
