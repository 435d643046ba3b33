// Package config loads access layer configuration from a YAML file with
// environment variable overrides.
//
// Resolution order (highest wins):
//  1. Environment variables with the LINEAGE_ prefix
//  2. The YAML config file
//  3. Built-in defaults
//
// Example config file:
//
//	store:
//	  driver: sqlite
//	  path: /var/lib/lineage/metadata.db
//	telemetry:
//	  enabled: true
//	  service_name: my-pipeline
package config
