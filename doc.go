// Package goJWT encodes and verifies HMAC-signed JSON Web Tokens.
//
// A token is base64url(header).base64url(payload).base64url(signature) where
// the header always carries "typ":"JWT" and "alg" set to HS256, HS384 or
// HS512. Signing lives in the [signer] package; this package owns framing,
// JSON translation through a [Serializer], and exp validation.
//
// # Two ways in
//
// The package-level functions ([Encode], [Decode], [DecodeToMap], [DecodeTo])
// use the process-wide serializer chosen with [SetSerializer]. Choose it once
// at startup.
//
// A [Codec] built with [New] pins its serializer, clock, logger and limits at
// [Builder.Build] and is safe for concurrent use. Prefer it when different
// parts of a program need different serializers.
//
// # Errors
//
// Every failure wraps one of [ErrConfiguration], [ErrMalformedToken],
// [ErrSignatureVerification] or [ErrSerialization]; [KindOf] maps an error to
// an [ErrorKind]. Expired and non-numeric exp claims are verification
// failures.
//
// # What this package must NOT do
//
//   - Read or write tokens from HTTP requests, cookies or storage.
//   - Log keys or token contents.
//   - Return a partially decoded payload alongside an error.
package goJWT
