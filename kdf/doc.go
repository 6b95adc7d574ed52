// Package kdf implements the key-derivation layer: HKDF, PBKDF2, and
// the supplemental Argon2id convenience.
package kdf
