// Package config loads the lyricml configuration with viper.
//
// Every key has a default. A YAML file (lyricml.yaml in the working directory
// or /etc/lyricml, or an explicit --config path) overrides the defaults, and
// environment variables override the file. Variables are the upper-cased key
// with dots replaced by underscores and the LYRICML_ prefix, so api.address
// becomes LYRICML_API_ADDRESS. A .env file in the working directory is loaded
// into the environment first and never overrides variables already set.
//
// Example lyricml.yaml:
//
//	api:
//	  address: ":8000"
//	library:
//	  backend: qdrant
//	qdrant:
//	  enabled: true
//	  endpoint: qdrant.internal
//	cache:
//	  enabled: true
//	  host: redis.internal
//	events:
//	  backend: kafka
//	kafka:
//	  enabled: true
//	  brokers: ["kafka-0:9092", "kafka-1:9092"]
package config
