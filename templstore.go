// Package templstore resolves human-authored template strings by namespace
// and key, sourced from pluggable backing stores with on-demand staleness
// checks and lazy re-parsing.
//
// Templates live in a two-level mapping: a namespace groups named template
// strings, each carrying ${placeholder} markers for later substitution:
//
//	greet:
//	  hello: "hi ${name}!"
//	  bye: "see you, ${name}"
//
// # Basic Usage
//
// Wrap a store in a Resolver and look templates up by namespace and name:
//
//	store := templstore.NewMemoryStore(`{"greet":{"hello":"hi ${name}!"}}`, templstore.LoadJSON)
//	resolver, err := templstore.NewResolver(store)
//	if err != nil {
//	    // the initial load failed
//	}
//	tmpl, ok := resolver.Resolve("greet", "hello")
//	// tmpl: "hi ${name}!" (unsubstituted - substitution is a separate step)
//
// Resolve refreshes from the backing store first, so edits to a backing file
// show up on the next call without any restart. A refresh failure degrades
// to the last successfully parsed data instead of surfacing an error.
//
// # Stores
//
// Four leaf stores ship with the package: FileStore (mtime-polled file),
// MemoryStore (buffer with a dirty flag), PostgresStore (polled table) and
// NullStore (always empty). PartialStore layers a sparse override store over
// a required default store, merging at entry granularity. Every store
// implements the TemplateStore interface, so they nest and swap freely.
//
// # Formats
//
// A store that reads text takes a LoadFunc to deserialize it. LoadJSON,
// LoadYAML and LoadTOML are provided; any func(string) (TemplateMap, error)
// works.
package templstore

// Version is the current version of the go-templstore library.
const Version = "0.2.0"
