// SPDX-License-Identifier: MPL-2.0

// Package config handles golly2kt configuration using Viper with CUE as the
// file format.
//
// Configuration is optional. It is read from the file given with --config, or
// from golly2kt.cue in the working directory when that file exists; otherwise
// defaults apply. Files are validated against the embedded #Config schema
// (config_schema.cue) before being merged over the defaults.
package config
