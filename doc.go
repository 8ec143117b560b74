package dexschemas

// Package dexschemas provides:
//
// - Validation of decentralized-exchange order objects (and related values)
//   against the JSON Schema documents bundled under schemas/
// - A Resolver translating schema identifiers such as "/orderSchema" to the
//   bundled documents, applied uniformly to top-level lookups and nested $refs
// - A stable error model via ResolutionError / ParseError / ValidationError
//
// Design policy:
// - Keep only public APIs in the root package; the structural validation
//   algorithm is delegated to santhosh-tekuri/jsonschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  err := dexschemas.AssertValid(order, "/orderSchema")
//  err = dexschemas.AssertValidJSON(body, "/signedOrderSchema")
//
//  v := dexschemas.NewValidator() // explicit instance, same semantics
//  err = v.Validate(order, "/orderSchema")
//
