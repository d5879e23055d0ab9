// Package config loads the settings of a growth run.
//
// Load picks the decoder from the file extension (gopkg.in/yaml.v3 for .yaml/.yml,
// github.com/pelletier/go-toml/v2 for .toml), decodes over Default so that omitted keys
// keep their default, and runs Validate. Errors are wrapped with github.com/pkg/errors;
// the causes ErrUnknownFormat and ErrInvalid can be matched with errors.Is.
package config
