// Package schemalens provides a browsable, de-referenced view over a single
// AsyncAPI/OpenAPI-style schema document.
//
// schemalens loads a document's components/schemas section once and exposes a
// fully expanded, cycle-safe, depth-bounded attribute tree for every named
// schema, together with relationship edges (which schemas a schema references,
// and which schemas reference it).
//
// # Overview
//
// The library consists of five primary packages:
//
//   - store: Load the source document and expose the immutable schema mapping
//   - resolver: Expand a named schema into a resolved attribute tree
//   - refindex: Compute references / referenced-by relations between schemas
//   - explorer: Read-only query surface (detail, tree listing, search, versions)
//   - lenserrors: Structured error types shared by all packages
//
// # Quick Start
//
// Load a document and resolve a schema:
//
//	import (
//		"github.com/erraggy/schemalens/explorer"
//		"github.com/erraggy/schemalens/store"
//	)
//
//	st, err := store.Load(store.WithFilePath("asyncapi.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	ex := explorer.New(st)
//	detail, err := ex.Describe("Payment")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s references %d schemas\n", detail.Title, detail.RelationshipSummary.ReferencesCount)
//
// Resolution never fails on malformed or cyclic schema graphs: cycles, unknown
// references, and missing fields are annotated in-band as description text
// rather than surfaced as errors. The only hard failures are a missing source
// document at load time and a lookup of a schema name that is not present in
// the component mapping.
//
// # Command Line
//
// The schemalens command provides get, tree, search, versions, serve, and mcp
// subcommands over the same engine. See cmd/schemalens.
package schemalens
