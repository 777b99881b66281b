// Package postgres serves the song library from a PostgreSQL table.
//
// The table is read through gorm on the pgx driver. Each row carries an
// artist, a title, an emotions column holding a JSON list and an
// embedding column of type real[]:
//
//	CREATE TABLE songs (
//		artist    text NOT NULL,
//		title     text NOT NULL,
//		emotions  jsonb,
//		embedding real[]
//	);
//
// Emotions may be stored either as [{"label": "joy", "score": 0.8}] or as a
// plain list of labels.
//
// With fx the package contributes a library.Backend named "postgres":
//
//	app := fx.New(
//		postgres.FXModule,
//		library.FXModule,
//		fx.Provide(func() postgres.Config { return cfg }),
//	)
//
// A background monitor pings the database every ten seconds and reconnects
// after failures. Errors are normalized with TranslateError; a missing table
// surfaces as ErrUndefinedTable.
package postgres
