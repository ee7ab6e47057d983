// Package api is the console's request layer: one method per backend
// operation, one HTTP request per call.
//
// Every response envelope is normalised here. Callers get a Result whose OK
// field is the single success signal, whichever convention (numeric code,
// status string or fixed description) the endpoint uses; see Contract.
// Payloads are decoded and validated before they leave the package, so the
// views never touch raw JSON.
//
// # Error Handling
//
//   - Transport failures wrap ErrUnavailable.
//   - Envelopes or payloads of the wrong shape are *SchemaError (errors.Is
//     ErrMalformedResponse).
//   - Business failures are not errors: Result.OK is false and Result.Message
//     carries the server text, if any.
//   - GetRanks and GetRoles are the exception: a non-success envelope is an
//     error wrapping ErrLookupFailed.
//
// There is no retry, no caching and no per-call timeout.
package api
