package storage_test

import (
	"errors"
	"fmt"
	"testing"

	"artifact-store/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	cause := errors.New("connection reset")

	t.Run("IsMatchesKindOnly", func(t *testing.T) {
		err := storage.NewError(storage.KindRead, "read", "bucket", "key", cause)

		assert.ErrorIs(t, err, storage.ErrRead)
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, storage.ErrTransfer)
		assert.Equal(t, storage.KindRead, storage.KindOf(fmt.Errorf("wrapped: %w", err)))
	})

	t.Run("Message", func(t *testing.T) {
		tests := []struct {
			name string
			err  *storage.Error
			want string
		}{
			{"BucketAndKey", storage.NewError(storage.KindTransfer, "upload", "b", "k", cause), "storage.upload b/k: connection reset"},
			{"BucketOnly", storage.NewError(storage.KindResolution, "resolve", "b", "", cause), "storage.resolve bucket b: connection reset"},
			{"KeyOnly", storage.NewError(storage.KindRead, "read", "", "k", cause), "storage.read object k: connection reset"},
			{"Bare", storage.NewError(storage.KindRead, "read", "", "", cause), "storage.read: connection reset"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, tt.err.Error())
			})
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		assert.Equal(t, storage.KindUnknown, storage.KindOf(cause))
	})
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Nil", nil, false},
		{"StatusCode", minio.ErrorResponse{StatusCode: 404}, true},
		{"NoSuchKey", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}, true},
		{"Forbidden", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}, false},
		{"Sentinel", fmt.Errorf("probe: %w", storage.ErrNotFound), true},
		{"Plain", errors.New("dial tcp: timeout"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, storage.IsNotFound(tt.err))
		})
	}
}
