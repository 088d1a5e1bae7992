// Package signer reproduces the mobile client's request authentication
// scheme: a timestamp-derived client token and an HMAC-MD5 transaction
// signature over a canonical request representation. Both values must be
// byte-identical to what the mobile app produces for the same inputs, so
// the canonicalization rules here are deliberately exact and the clock is
// injectable for golden-value tests.
package signer
