// Package messages serves formatted diagnostic and error messages from a
// key-to-template catalog. Localized deployments replace or merge the default
// catalog; the accessors never hardcode message text.
package messages
