package ports

import "context"

// PreferenceStorePort is durable key-value storage scoped per client.
type PreferenceStorePort interface {
	// Get returns found=false when nothing is stored under key.
	Get(ctx context.Context, clientID, key string) (value string, found bool, err error)
	Put(ctx context.Context, clientID, key, value string) error
}
