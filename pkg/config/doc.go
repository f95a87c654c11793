// Package config loads typed configuration structs from environment
// variables, reading an optional .env file first so local development and
// deployed environments share the same code path.
//
//	var cfg cognito.Config
//	config.MustLoad(&cfg)
package config
