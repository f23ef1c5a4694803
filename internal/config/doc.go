// Package config assembles the settings of the configuration engine itself.
//
// Settings are merged from several sources, highest priority first:
//  1. command-line flags (see [BindFlags]);
//  2. environment variables (SMOOAI_ENV_CONFIG_DIR, SMOOAI_CONFIG_ENV, ...);
//  3. an optional JSON settings file;
//  4. built-in defaults.
//
// The main entry point is [Load]. [Settings.RuntimeContext] turns the result
// into the runtime context that drives cascade resolution.
package config
