package props

// Provider is the read-only contract the accessors consume. Implementations
// may be backed by a file, the environment, or a remote store; the accessors
// never cache results and never write through it.
type Provider interface {
	// Property returns the raw, untrimmed value of the named property.
	// ok is false when the property is unset.
	Property(name string) (value string, ok bool)

	// PropertiesWithPrefix returns every entry whose key begins with the
	// literal prefix. Keys are returned in full, prefix included.
	PropertiesWithPrefix(prefix string) map[string]string
}
