package artifacts

import (
	"context"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"artifact-store/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Payload is the content of an object: Text, Binary or TextStream.
type Payload interface {
	payload()
}

// Text is a decoded object body.
type Text string

// Binary is a raw object body.
type Binary []byte

// TextStream is a decoded object body behind a seekable reader, so it can be
// read more than once by seeking back to the start.
type TextStream struct {
	*strings.Reader
}

func (Text) payload()       {}
func (Binary) payload()     {}
func (TextStream) payload() {}

var errInvalidUTF8 = errors.New("object body is not valid UTF-8")

type readConfig struct {
	decode   bool
	readable bool
}

// ReadOption customizes Read.
type ReadOption func(*readConfig)

// WithoutDecode returns the raw bytes. Readable has no effect together with it.
func WithoutDecode() ReadOption {
	return func(c *readConfig) {
		c.decode = false
	}
}

// Readable wraps decoded text in a TextStream.
func Readable() ReadOption {
	return func(c *readConfig) {
		c.readable = true
	}
}

// Decoding translates decode and readable flags into options.
func Decoding(decode, readable bool) []ReadOption {
	var opts []ReadOption
	if !decode {
		opts = append(opts, WithoutDecode())
	}
	if readable {
		opts = append(opts, Readable())
	}
	return opts
}

// Read loads the whole body of obj into memory. By default the body is
// decoded as UTF-8 and returned as Text. The object is read from its own
// bucket, which need not be b.
func (b *Bucket) Read(ctx context.Context, obj Object, opts ...ReadOption) (Payload, error) {
	cfg := readConfig{decode: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	bucket := obj.Bucket
	if bucket == "" {
		bucket = b.name
	}
	if obj.Key == "" {
		return nil, storage.NewError(storage.KindRead, "read", bucket, "", storage.ErrInvalidInput)
	}

	rc, err := b.client.GetObject(ctx, bucket, obj.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, storage.NewError(storage.KindRead, "read", bucket, obj.Key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, storage.NewError(storage.KindRead, "read", bucket, obj.Key, err)
	}

	b.logger.Debug("Read object",
		zap.String("key", obj.Key),
		zap.Int("bytes", len(data)),
		zap.Bool("decode", cfg.decode),
		zap.Bool("readable", cfg.readable))

	if !cfg.decode {
		return Binary(data), nil
	}
	if !utf8.Valid(data) {
		return nil, storage.NewError(storage.KindRead, "read", bucket, obj.Key, errInvalidUTF8)
	}

	text := string(data)
	if cfg.readable {
		return TextStream{Reader: strings.NewReader(text)}, nil
	}
	return Text(text), nil
}
