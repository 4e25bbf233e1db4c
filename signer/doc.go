// Package signer computes and verifies HMAC signatures over JWT signing input.
//
// The algorithm set is closed: HS256, HS384 and HS512. Signing and
// verification are pure functions with no shared state, so every function in
// this package is safe for concurrent use.
//
// # What this package must NOT do
//
//   - Know anything about token framing, headers or claims.
//   - Treat an unknown algorithm as an ordinary signature mismatch.
package signer
