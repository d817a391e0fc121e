package cmdcontext

// CmdCtx is the main structure of the program context.
// Contains within itself other structures of CLI modules.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// stencil and some other parameters.
	Cli CliCtx
}

// CliCtx - CLI context. Contains flags passed when starting
// stencil and some other parameters.
type CliCtx struct {
	// ConfigPath is a path to stencil configuration file (stencil.yaml).
	ConfigPath string
	// ConfigDir is the configuration file directory.
	// And current working directory, if there is no config.
	ConfigDir string
	// Verbose logging flag. Enables debug log output.
	Verbose bool
}
