// Package props reads and normalizes typed values out of a key-value
// configuration source: strings, integers, booleans, URIs, delimited lists,
// and prefixed subsets.
//
// The source is any implementation of the narrow Provider interface; this
// package owns no storage, caches nothing, and recomputes every typed view
// on each call. Lookups are required by default (DefaultPropIsRequired), so a
// missing property is a KindMissing error unless the caller opts out or
// supplies a default. Accessors that take a default never fail: a bad integer
// is logged and replaced by the default, and boolean parsing follows the
// loose convention where only the literal "true" is true.
//
// All functions are reentrant and free of side effects apart from diagnostic
// logging. Concurrent use is safe whenever the injected Provider is safe for
// concurrent reads.
package props
