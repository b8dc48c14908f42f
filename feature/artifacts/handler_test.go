package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"artifact-store/core/storage"
	"artifact-store/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *mocks.Core) {
	app := fiber.New()
	client := new(mocks.Client)
	core := new(mocks.Core)
	svc := NewService(mocks.Registry(client, core), zap.NewNop(), nil, Config{})
	feature := NewFeature(svc)
	require.NoError(t, feature.Load(app))
	return app, client, core
}

func TestFeature(t *testing.T) {
	feature := NewFeature(NewService(mocks.Registry(new(mocks.Client), new(mocks.Core)), zap.NewNop(), nil, Config{}))
	assert.Equal(t, "artifacts", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestHandleResolve(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		app, client, _ := setupTestApp(t)
		client.On("ListObjects", mock.Anything, "ml", prefixIs("data/train")).
			Return(mocks.Objects(minio.ObjectInfo{Key: "data/train.csv"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/resolve?prefix=data/train", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "single", body["kind"])
		assert.Equal(t, "data/train.csv", body["object"].(map[string]any)["key"])
	})

	t.Run("Empty", func(t *testing.T) {
		app, client, _ := setupTestApp(t)
		client.On("ListObjects", mock.Anything, "ml", mock.Anything).Return(mocks.Objects())

		resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/resolve?prefix=nothing", nil))
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "many", body["kind"])
		assert.Empty(t, body["objects"])
	})
}

func TestHandleReadObject(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		app, client, _ := setupTestApp(t)
		client.On("GetObject", mock.Anything, "ml", "eval/loss.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("epoch,loss")), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/object?key=eval/loss.csv", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "epoch,loss", string(data))
	})

	t.Run("Binary", func(t *testing.T) {
		app, client, _ := setupTestApp(t)
		client.On("GetObject", mock.Anything, "ml", "blob", mock.Anything).
			Return(io.NopCloser(strings.NewReader("\xff\x00")), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/object?key=blob&decode=false", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, fiber.MIMEOctetStream, resp.Header.Get("Content-Type"))

		data, _ := io.ReadAll(resp.Body)
		assert.Equal(t, []byte("\xff\x00"), data)
	})

	t.Run("MissingKey", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/object", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		app, client, _ := setupTestApp(t)
		client.On("GetObject", mock.Anything, "ml", "gone", mock.Anything).Return(nil, notFound)

		resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/object?key=gone", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestHandleLoadModel(t *testing.T) {
	app, client, _ := setupTestApp(t)
	client.On("ListObjects", mock.Anything, "ml", prefixIs("models/model.pt")).Return(mocks.Objects(
		minio.ObjectInfo{Key: "models/model.pt"},
		minio.ObjectInfo{Key: "models/model.pt.old"},
	))

	resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/ml/model?name=model.pt&dir=models", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)
}

func TestHandleEnsureFolder(t *testing.T) {
	app, client, core := setupTestApp(t)
	client.On("StatObject", mock.Anything, "ml", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, notFound)
	core.On("PutObject", mock.Anything, "ml", "runs/", mock.Anything, int64(0), "", "", mock.Anything).Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(httptest.NewRequest("PUT", "/artifacts/ml/folder?name=runs", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	core.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"InvalidInput", storage.NewError(storage.KindRead, "read", "b", "", storage.ErrInvalidInput), 400},
		{"ModelNotFound", storage.NewError(storage.KindResolution, "load-model", "b", "k", storage.ErrModelNotFound), 404},
		{"BackendNotFound", storage.NewError(storage.KindRead, "read", "b", "k", notFound), 404},
		{"Ambiguous", storage.NewError(storage.KindResolution, "load-model", "b", "k", fmt.Errorf("%w: 2 matches", storage.ErrAmbiguousModel)), 409},
		{"MissingCredential", &storage.MissingCredentialError{Var: "AWS_ACCESS_KEY_ID"}, 503},
		{"Probe", storage.NewError(storage.KindProbe, "ensure-folder", "b", "k", errors.New("denied")), 502},
		{"Other", errors.New("boom"), 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
