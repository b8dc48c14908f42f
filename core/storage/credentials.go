package storage

import (
	"os"
	"strings"
)

const (
	// DefaultAccessKeyEnv is the variable holding the access key id.
	DefaultAccessKeyEnv = "AWS_ACCESS_KEY_ID"
	// DefaultSecretKeyEnv is the variable holding the secret access key.
	DefaultSecretKeyEnv = "AWS_SECRET_ACCESS_KEY"
)

// DefaultRegion is used when the configuration leaves the region empty.
// Set it at build time with -ldflags "-X artifact-store/core/storage.DefaultRegion=eu-west-1".
var DefaultRegion = "us-east-1"

// Credentials authenticate against the object store.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// String keeps the secret out of logs and error messages.
func (c Credentials) String() string {
	id := c.AccessKeyID
	if len(id) > 4 {
		id = strings.Repeat("*", len(id)-4) + id[len(id)-4:]
	}
	return "Credentials{AccessKeyID: " + id + ", SecretAccessKey: <redacted>, Region: " + c.Region + "}"
}

// GoString keeps the secret out of %#v output.
func (c Credentials) GoString() string {
	return c.String()
}

// LookupFunc reads a variable and reports whether it is set.
type LookupFunc func(key string) (string, bool)

// ResolveCredentials reads the access key id and secret key variables.
// The id variable is checked first. A variable set to the empty string counts as set.
func ResolveCredentials(lookup LookupFunc, idVar, secretVar, region string) (Credentials, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	id, ok := lookup(idVar)
	if !ok {
		return Credentials{}, &MissingCredentialError{Var: idVar}
	}
	secret, ok := lookup(secretVar)
	if !ok {
		return Credentials{}, &MissingCredentialError{Var: secretVar}
	}

	if region == "" {
		region = DefaultRegion
	}

	return Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		Region:          region,
	}, nil
}
