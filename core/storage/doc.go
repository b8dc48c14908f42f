// Package storage provides the connection layer for the artifact object store.
//
// It wraps the MinIO Go client, which speaks the S3 protocol, and owns the
// lifecycle of the handles every other package shares.
//
// # Credentials
//
// ResolveCredentials reads the access key id and the secret key from two
// named environment variables. The id is checked first, and a missing
// variable yields a MissingCredentialError naming it before any network call
// is attempted.
//
// # Registry
//
// A Registry builds one high-level Client and one low-level Core exactly once,
// guarded by a mutex, and then serves them lock-free. Process returns the
// registry shared by the whole process.
//
// # Errors
//
// Failures are reported as *Error values carrying a Kind. Use errors.Is with
// the sentinels (ErrRead, ErrTransfer, ErrResolution, ...) to classify them,
// and IsNotFound to recognise a backend "no such key" response.
//
// # Usage
//
//	reg := storage.Process(cfg.Storage)
//	h, err := reg.GetOrInit()
//	exists, err := h.Client.BucketExists(ctx, "ml-artifacts")
package storage
