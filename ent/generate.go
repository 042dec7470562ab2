// Package ent contains the generated entity client. Run `go generate ./ent`
// after changing any schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock,sql/upsert,sql/execquery ./schema
