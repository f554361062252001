// Package config loads titrate settings from YAML.
//
// Keys missing from the file keep the values of Default. Unknown keys are an
// error. See titrate.example.yaml at the repository root for every key.
package config
