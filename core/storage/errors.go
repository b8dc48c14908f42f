package storage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// Kind classifies a storage failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMissingCredential means a credential environment variable is unset.
	KindMissingCredential
	// KindNotFound means the backend reported that the object does not exist.
	KindNotFound
	// KindRead means an object body could not be fetched or decoded.
	KindRead
	// KindTransfer means an upload, download or local file cleanup failed.
	KindTransfer
	// KindResolution means a prefix listing failed or did not yield the expected shape.
	KindResolution
	// KindFolder means a folder marker could not be created.
	KindFolder
	// KindProbe means a folder existence check failed for a reason other than not-found.
	KindProbe
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing credential"
	case KindNotFound:
		return "not found"
	case KindRead:
		return "read"
	case KindTransfer:
		return "transfer"
	case KindResolution:
		return "resolution"
	case KindFolder:
		return "folder"
	case KindProbe:
		return "probe"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrMissingCredential = errors.New("storage: missing credential")
	ErrNotFound          = errors.New("storage: object not found")
	ErrRead              = errors.New("storage: read failed")
	ErrTransfer          = errors.New("storage: transfer failed")
	ErrResolution        = errors.New("storage: resolution failed")
	ErrFolder            = errors.New("storage: folder creation failed")
	ErrProbe             = errors.New("storage: existence probe failed")

	// ErrInvalidInput is returned for empty bucket names, keys or paths.
	ErrInvalidInput = errors.New("storage: invalid input")
	// ErrModelNotFound means a model key resolved to no object.
	ErrModelNotFound = errors.New("storage: model not found")
	// ErrAmbiguousModel means a model key resolved to more than one object.
	ErrAmbiguousModel = errors.New("storage: model key matches more than one object")
)

var kindSentinels = map[Kind]error{
	KindMissingCredential: ErrMissingCredential,
	KindNotFound:          ErrNotFound,
	KindRead:              ErrRead,
	KindTransfer:          ErrTransfer,
	KindResolution:        ErrResolution,
	KindFolder:            ErrFolder,
	KindProbe:             ErrProbe,
}

// Error is a storage operation failure with the operation and object it concerns.
type Error struct {
	Kind   Kind
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Bucket != "" && e.Key != "":
		return fmt.Sprintf("storage.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	case e.Bucket != "":
		return fmt.Sprintf("storage.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	case e.Key != "":
		return fmt.Sprintf("storage.%s object %s: %v", e.Op, e.Key, e.Err)
	default:
		return fmt.Sprintf("storage.%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of this error's Kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, op, bucket, key string, err error) *Error {
	return &Error{Kind: kind, Op: op, Bucket: bucket, Key: key, Err: err}
}

// MissingCredentialError names the environment variable that was not set.
type MissingCredentialError struct {
	Var string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("environment variable %s is not set", e.Var)
}

// Is matches ErrMissingCredential.
func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	if errors.Is(err, ErrMissingCredential) {
		return KindMissingCredential
	}
	return KindUnknown
}

// IsNotFound reports whether err is a backend "object does not exist" response.
// HEAD requests carry no body, so the status code is checked as well as the code.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var resp minio.ErrorResponse
	if !errors.As(err, &resp) {
		return false
	}
	if resp.StatusCode == http.StatusNotFound {
		return true
	}
	switch string(resp.Code) {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
