package config

import "lcc/common"

// Profile is the build configuration the compiler runs with.  It is read from
// an `lcc.toml` file or built from defaults when no such file exists.
type Profile struct {
	// OutputDir is the directory the listings are written to.  Relative paths
	// are resolved against the directory of the source file.
	OutputDir string

	// OptimizedSuffix is appended to the base name of the optimized listing.
	OptimizedSuffix string

	// Optimize indicates whether the optimized listing is produced at all
	Optimize bool

	// EmitLLVM indicates whether an LLVM IR module is written as well
	EmitLLVM bool

	// LogLevel is the name of the log level to compile with
	LogLevel string

	// Newline is the byte sequence `writeln` appends.  nil selects CR LF.
	Newline []int

	// Includes replaces the include lines of the listing header.  nil selects
	// the MASM32 defaults.
	Includes []string
}

// DefaultProfile returns the profile used in the absence of a config file.
func DefaultProfile() *Profile {
	return &Profile{
		OutputDir:       common.DefaultOutputDir,
		OptimizedSuffix: common.DefaultOptimizedSuffix,
		Optimize:        true,
		LogLevel:        "verbose",
	}
}
