// Package middleware adapts a goJWT codec to net/http.
//
// [Guard] reads the Authorization bearer token, verifies it with
// Codec.DecodeToMap and injects the verified claims into the request context,
// where [ClaimsFromContext] retrieves them.
//
// # What this package must NOT do
//
//   - Parse or sign tokens itself (delegates to the codec).
//   - Reveal why a token was rejected to the client.
package middleware
