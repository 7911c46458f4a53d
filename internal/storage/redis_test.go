package storage

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis starts a miniredis server and returns a RedisStore backed
// by it.
func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := setupTestRedis(t)

	saved := record{Items: []string{"kebab"}}
	require.NoError(t, store.Save("cart", saved))

	var loaded record
	ok, err := store.Load("cart", &loaded)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, saved, loaded)
}

func TestRedisStoreMissingRecord(t *testing.T) {
	store, _ := setupTestRedis(t)

	var loaded record
	ok, err := store.Load("cart", &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreDiscardsGarbage(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, mr.Set(redisKey("cart"), "{not json"))

	var loaded record
	ok, err := store.Load("cart", &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreKeysAreNamespaced(t *testing.T) {
	store, mr := setupTestRedis(t)

	require.NoError(t, store.Save("cart", record{}))
	assert.True(t, mr.Exists("storefront:cart"))
}
