// Package minio gives lyricml read access to model artifacts kept in
// S3-compatible object storage.
//
// Fine-tuned classifier exports are published to a bucket by the training
// pipeline; at startup the model hub mirrors the relevant prefix to the
// local model cache:
//
//	client, err := minio.NewClient(minio.Config{
//		Connection: minio.ConnectionConfig{
//			Endpoint:        "minio:9000",
//			AccessKeyID:     "lyricml",
//			SecretAccessKey: "secret",
//			BucketName:      "models",
//		},
//	})
//	n, err := client.DownloadPrefix(ctx, "lyricml/go_emotions_model", "./models/cache/go_emotions_model")
package minio
