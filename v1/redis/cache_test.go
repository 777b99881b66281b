package redis

import (
	"errors"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorEncoding(t *testing.T) {
	vec := []float32{0, 1, -0.5, 3.25}

	raw := EncodeVector(vec)
	require.Len(t, raw, 16)
	// 1.0 little-endian.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, raw[4:8])

	back, err := DecodeVector(raw)
	require.NoError(t, err)
	assert.Equal(t, vec, back)

	_, err = DecodeVector([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrCorruptValue)
}

func TestVectorCacheKey(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)
	defer client.Close()

	c := NewVectorCache(client)

	assert.Equal(t,
		"lyricml:emb:minilm:2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		c.Key("minilm", "hello"))
	assert.NotEqual(t, c.Key("minilm", "hello"), c.Key("other", "hello"))
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultTTL, cfg.TTL)
	assert.Equal(t, DefaultKeyPrefix, cfg.KeyPrefix)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(goredis.Nil), ErrCacheMiss)
	assert.ErrorIs(t, translateError(goredis.ErrClosed), ErrClosed)

	other := errors.New("other")
	assert.Equal(t, other, translateError(other))
}

func TestDisabledModuleProvidesNothing(t *testing.T) {
	client, err := NewClientWithDI(RedisParams{Config: Config{Enabled: false}})
	require.NoError(t, err)
	assert.Nil(t, client)
	assert.Nil(t, NewCacheWithDI(nil))
}
