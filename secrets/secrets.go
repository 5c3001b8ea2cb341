// Package secrets resolves configuration secrets. The environment wins; when
// a value is not set and SECRETS_GCP_PROJECT names a project, the secret is
// fetched from Google Secret Manager (version "latest") and cached for the
// process lifetime.
package secrets

import (
	"context"
	"log"
	"os"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

var (
	mu     sync.Mutex
	client *secretmanager.Client
	cache  = make(map[string]string)
)

// Get returns the named secret, or "" when it is configured nowhere.
func Get(ctx context.Context, name string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}

	project := os.Getenv("SECRETS_GCP_PROJECT")
	if project == "" {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()
	if v, ok := cache[name]; ok {
		return v
	}

	if client == nil {
		c, err := secretmanager.NewClient(ctx)
		if err != nil {
			log.Printf("❌ Failed to create Secret Manager client: %v", err)
			return ""
		}
		client = c
	}

	resource := "projects/" + project + "/secrets/" + name + "/versions/latest"
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: resource})
	if err != nil {
		log.Printf("❌ Failed to access secret %s: %v", resource, err)
		return ""
	}
	if resp.Payload == nil {
		return ""
	}

	v := string(resp.Payload.Data)
	cache[name] = v
	return v
}

// JWTSecret returns the HMAC key used for session tokens.
func JWTSecret() []byte {
	return []byte(Get(context.Background(), "JWT_SECRET"))
}
