// Package artifacts implements the operations pipeline stages use to reach
// the artifact bucket: locating a bucket, resolving key prefixes, reading
// objects, loading model files, ensuring folder markers and transferring
// local files.
//
// # Components
//
//   - Service: hands out Bucket handles built on the shared storage.Registry.
//   - Bucket: Resolve, Read, LoadModel, EnsureFolder, Upload and Download.
//   - Handler: exposes the read side and folder creation over HTTP.
//   - Feature: registers the handler with the loader.
//
// # Result Shapes
//
// Resolve returns a Resolution: Single when exactly one key matches the
// prefix, Many otherwise (an empty list when nothing matches). Read returns a
// Payload, one of Text, Binary or TextStream depending on the options.
//
// # HTTP Endpoints
//
//   - GET /artifacts/:bucket/resolve?prefix=
//   - GET /artifacts/:bucket/object?key=&decode=&readable=
//   - GET /artifacts/:bucket/model?name=&dir=
//   - PUT /artifacts/:bucket/folder?name=
package artifacts
