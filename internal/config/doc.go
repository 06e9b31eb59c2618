// Package config provides configuration management for stackstats.
package config
