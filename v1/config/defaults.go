package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pulsesearch/lyricml/v1/api"
	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/embedding"
	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/kafka"
	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/logger"
	"github.com/pulsesearch/lyricml/v1/lyricsource"
	"github.com/pulsesearch/lyricml/v1/metrics"
	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/postgres"
	"github.com/pulsesearch/lyricml/v1/qdrant"
	"github.com/pulsesearch/lyricml/v1/rabbit"
	"github.com/pulsesearch/lyricml/v1/redis"
	"github.com/pulsesearch/lyricml/v1/spotify"
)

const serviceName = "lyricml"

// defaults lists every key. viper only consults the environment for keys it
// already knows, so a key missing here cannot be set through LYRICML_*.
var defaults = map[string]any{
	"logger.level":          logger.Info,
	"logger.service_name":   serviceName,
	"logger.enable_tracing": true,
	"logger.encoding":       "json",

	"metrics.address":                   metrics.DefaultMetricsAddress,
	"metrics.enable_default_collectors": true,
	"metrics.namespace":                 serviceName,
	"metrics.service_name":              serviceName,

	"tracer.service_name":  serviceName,
	"tracer.app_env":       "development",
	"tracer.enable_export": false,

	"onnxruntime.shared_library_path": "",
	"onnxruntime.intra_op_threads":    0,

	"models.cache_dir":        modelhub.DefaultCacheDir,
	"models.hub_url":          modelhub.DefaultHubURL,
	"models.hub_token":        "",
	"models.object_prefix":    "models",
	"models.offline":          false,
	"models.download_timeout": "10m",

	"minio.enabled":                      false,
	"minio.connection.endpoint":          "localhost:9000",
	"minio.connection.access_key_id":     "",
	"minio.connection.secret_access_key": "",
	"minio.connection.use_ssl":           false,
	"minio.connection.bucket_name":       "lyricml-models",
	"minio.connection.region":            "",
	"minio.validate_timeout":             "10s",

	"classifier.backend":               classifier.BackendONNX,
	"classifier.fine_tuned_dir":        classifier.DefaultFineTunedDir,
	"classifier.fine_tuned_max_length": classifier.DefaultFineTunedMaxLength,
	"classifier.fallback_model":        classifier.DefaultFallbackModel,
	"classifier.fallback_revision":     modelhub.DefaultRevision,
	"classifier.fallback_max_length":   classifier.DefaultFallbackMaxLength,
	"classifier.max_words":             80,
	"classifier.min_score":             classifier.DefaultMinScore,
	"classifier.remote.endpoint":       "",
	"classifier.remote.token":          "",
	"classifier.remote.timeout":        "30s",

	"embedding.backend":         embedding.BackendONNX,
	"embedding.model":           embedding.DefaultModel,
	"embedding.revision":        modelhub.DefaultRevision,
	"embedding.dir":             "",
	"embedding.max_length":      embedding.DefaultMaxLength,
	"embedding.dimension":       embedding.DefaultDimension,
	"embedding.remote.endpoint": "",
	"embedding.remote.token":    "",
	"embedding.remote.model":    "",
	"embedding.remote.timeout":  "30s",

	"cache.enabled":                  false,
	"cache.host":                     redis.DefaultHost,
	"cache.port":                     redis.DefaultPort,
	"cache.username":                 "",
	"cache.password":                 "",
	"cache.db":                       0,
	"cache.pool_size":                0,
	"cache.max_retries":              redis.DefaultMaxRetries,
	"cache.min_retry_backoff":        redis.DefaultMinRetryBackoff,
	"cache.max_retry_backoff":        redis.DefaultMaxRetryBackoff,
	"cache.dial_timeout":             redis.DefaultDialTimeout,
	"cache.read_timeout":             redis.DefaultReadTimeout,
	"cache.write_timeout":            0,
	"cache.idle_timeout":             redis.DefaultIdleTimeout,
	"cache.tls.enabled":              false,
	"cache.tls.ca_cert_path":         "",
	"cache.tls.client_cert_path":     "",
	"cache.tls.client_key_path":      "",
	"cache.tls.insecure_skip_verify": false,
	"cache.tls.server_name":          "",
	"cache.key_prefix":               redis.DefaultKeyPrefix,
	"cache.ttl":                      redis.DefaultTTL,

	"library.backend": library.BackendNone,
	"library.file":    "",

	"qdrant.enabled":             false,
	"qdrant.endpoint":            qdrant.DefaultEndpoint,
	"qdrant.port":                qdrant.DefaultPort,
	"qdrant.api_key":             "",
	"qdrant.use_tls":             false,
	"qdrant.collection":          qdrant.DefaultCollection,
	"qdrant.vector_name":         "",
	"qdrant.page_size":           qdrant.DefaultPageSize,
	"qdrant.timeout":             qdrant.DefaultTimeout,
	"qdrant.check_compatibility": false,

	"postgres.enabled":                              false,
	"postgres.connection.host":                      "localhost",
	"postgres.connection.port":                      "5432",
	"postgres.connection.user":                      "postgres",
	"postgres.connection.password":                  "",
	"postgres.connection.dbname":                    serviceName,
	"postgres.connection.sslmode":                   "disable",
	"postgres.connection_details.max_open_conns":    10,
	"postgres.connection_details.max_idle_conns":    5,
	"postgres.connection_details.conn_max_lifetime": "5m",
	"postgres.table":                                postgres.DefaultTable,
	"postgres.timeout":                              postgres.DefaultTimeout,

	"events.backend": events.BackendNone,

	"rabbit.enabled":                     false,
	"rabbit.connection.host":             "localhost",
	"rabbit.connection.port":             5672,
	"rabbit.connection.user":             "guest",
	"rabbit.connection.password":         "guest",
	"rabbit.connection.ssl_enabled":      false,
	"rabbit.connection.use_cert":         false,
	"rabbit.connection.ca_cert_path":     "",
	"rabbit.connection.client_cert_path": "",
	"rabbit.connection.client_key_path":  "",
	"rabbit.connection.server_name":      "",
	"rabbit.channel.exchange_name":       rabbit.DefaultExchangeName,
	"rabbit.channel.exchange_type":       rabbit.DefaultExchangeType,
	"rabbit.channel.routing_key":         rabbit.DefaultRoutingKey,
	"rabbit.channel.confirm_timeout":     rabbit.DefaultConfirmTimeout,
	"rabbit.channel.delay_to_reconnect":  "5s",

	"kafka.enabled":                   false,
	"kafka.brokers":                   []string{"localhost:9092"},
	"kafka.topic":                     kafka.DefaultTopic,
	"kafka.required_acks":             kafka.DefaultRequiredAcks,
	"kafka.async":                     false,
	"kafka.batch_size":                kafka.DefaultBatchSize,
	"kafka.batch_timeout":             kafka.DefaultBatchTimeout,
	"kafka.max_attempts":              kafka.DefaultMaxAttempts,
	"kafka.write_timeout":             kafka.DefaultWriteTimeout,
	"kafka.compression_codec":         "",
	"kafka.allow_auto_topic_creation": false,
	"kafka.tls.enabled":               false,
	"kafka.tls.ca_cert_path":          "",
	"kafka.tls.client_cert_path":      "",
	"kafka.tls.client_key_path":       "",
	"kafka.tls.insecure_skip_verify":  false,
	"kafka.sasl.enabled":              false,
	"kafka.sasl.mechanism":            "",
	"kafka.sasl.username":             "",
	"kafka.sasl.password":             "",

	"lyrics.lrclib_url":     lyricsource.DefaultLRCLibURL,
	"lyrics.lyrics_ovh_url": lyricsource.DefaultLyricsOvhURL,
	"lyrics.timeout":        lyricsource.DefaultTimeout,
	"lyrics.user_agent":     lyricsource.DefaultUserAgent,

	"spotify.enabled":        true,
	"spotify.client_id":      "",
	"spotify.client_secret":  "",
	"spotify.token_url":      spotify.DefaultTokenURL,
	"spotify.api_url":        spotify.DefaultAPIURL,
	"spotify.market":         spotify.DefaultMarket,
	"spotify.timeout":        spotify.DefaultTimeout,
	"spotify.refresh_margin": spotify.DefaultRefreshMargin,

	"analysis.warmup_on_start": true,

	"api.address":          api.DefaultAddress,
	"api.read_timeout":     api.DefaultReadTimeout,
	"api.write_timeout":    api.DefaultWriteTimeout,
	"api.idle_timeout":     api.DefaultIdleTimeout,
	"api.shutdown_timeout": api.DefaultShutdownTimeout,
	"api.mode":             "release",
}

// envAliases are unprefixed variables accepted next to the LYRICML_ form.
// The prefixed name wins when both are set.
var envAliases = map[string]string{
	"spotify.client_id":     "SPOTIFY_CLIENT_ID",
	"spotify.client_secret": "SPOTIFY_CLIENT_SECRET",
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

func bindEnvAliases(v *viper.Viper) error {
	for key, alias := range envAliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return err
		}
	}
	return nil
}
