// Package viperprov provides the production props.Provider, backed by viper.
// It layers a config file, an environment-variable overlay, and caller
// defaults behind the same narrow read-only contract the in-memory adapter
// implements.
package viperprov
