package config

// Config used to store all information from the
// stencil.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"stencil" yaml:"stencil"`
}

// CliOpts stores the stencil CLI configuration.
// Filled in when parsing the stencil.yaml configuration file.
//
// stencil.yaml file format:
// stencil:
//   templates_dir: path/to/templates
//   use_placeholders: bool
//   placeholders:
//     key: value
//   placeholder_regexp: '#{(\w+?)}'
//   encoding: utf-8
//   git_prefix: 'Git:'
//   git_repositories:
//     - https://example.com/org/scaffold.git
type CliOpts struct {
	// TemplatesDir is the root directory storing local templates,
	// one subdirectory per template.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// UsePlaceholders enables the placeholder substitution pass
	// for file contents and file names during instantiation.
	UsePlaceholders bool `mapstructure:"use_placeholders" yaml:"use_placeholders"`
	// Placeholders is the seed dictionary merged into the resolver
	// dictionary at the start of every instantiation run.
	Placeholders map[string]string `mapstructure:"placeholders" yaml:"placeholders"`
	// PlaceholderRegexp defines the placeholder syntax. It must contain
	// at least one capture group; group 1 is taken as the placeholder key.
	PlaceholderRegexp string `mapstructure:"placeholder_regexp" yaml:"placeholder_regexp"`
	// Encoding is the IANA name of the text encoding used to decode
	// template file contents before substitution.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
	// GitPrefix labels remote-sourced template entries in listings.
	GitPrefix string `mapstructure:"git_prefix" yaml:"git_prefix"`
	// GitRepositories is an ordered list of remote template source URLs,
	// cloned or pulled on demand into a local cache before instantiation.
	GitRepositories []string `mapstructure:"git_repositories" yaml:"git_repositories"`
}
