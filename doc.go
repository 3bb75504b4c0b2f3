package jsvalidate

// Package jsvalidate provides:
//
// - A JSON Schema (Draft 4 subset) compiler that turns a parsed schema value
//   into an immutable, cross-linked tree of schema nodes.
// - A streaming validator that walks that tree event by event, driven by a
//   SAX-style token stream, with no requirement to materialize the document.
// - allOf/anyOf/oneOf/not evaluated by broadcasting the same event stream
//   into nested sub-validators live on the context stack.
//
// Design policy:
// - Keep only public APIs in the root package; put the token/event SPI under
//   internal/engine, JSON source drivers under source/, and JSON/YAML
//   schema loading under schemaload/.
// - The compiler never fails: malformed schemas compile to permissive nodes.
// - The validator exposes a single sticky boolean; richer diagnostics are a
//   decorator (see diagnostics.go), not part of the core event methods.
//
// Typical usage:
//
//  root, _ := schemaload.Load(schemaBytes)
//  node := jsvalidate.Compile(root)
//  v := jsvalidate.NewValidator(node, nil)
//  v.StartObject()
//  v.Key("name")
//  v.String("ok")
//  v.EndObject(1)
//  v.IsValid()
