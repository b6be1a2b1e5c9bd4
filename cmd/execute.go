package cmd

import (
	"os"
	"path/filepath"

	"lcc/build"
	"lcc/common"
	"lcc/config"
	"lcc/logging"

	"github.com/ComedicChimera/olive"
)

// Execute is the main entry point for the `lcc` CLI utility.  It returns the
// process exit code.
func Execute() int {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("lcc", "lcc compiles LC programs into MASM assembly", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("source-path", "the path to the source file to compile", true)
	buildCmd.AddStringArg("outdir", "o", "the directory to write the listings to", false)
	buildCmd.AddStringArg("config", "c", "the path to the config file", false)
	buildCmd.AddFlag("emit-llvm", "L", "also write the program as an LLVM module")
	buildCmd.AddFlag("no-optimize", "n", "do not write the optimized listing")

	checkCmd := cli.AddSubcommand("check", "check a source file for errors", true)
	checkCmd.AddPrimaryArg("source-path", "the path to the source file to check", true)
	checkCmd.AddStringArg("config", "c", "the path to the config file", false)

	initCmd := cli.AddSubcommand("init", "write a default config file", true)
	initCmd.AddPrimaryArg("dir", "the directory to write the config file to", false)

	cli.AddSubcommand("version", "print the lcc version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		logging.PrintErrorMessage("CLI Usage Error", err)
		return 2
	}

	loglevel := result.Arguments["loglevel"].(string)

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(newBuildOptions(subResult, loglevel, true))
	case "check":
		return execBuildCommand(newBuildOptions(subResult, loglevel, false))
	case "init":
		dir, ok := subResult.PrimaryArg()
		if !ok {
			dir = "."
		}

		return execInitCommand(dir)
	case "version":
		logging.PrintInfoMessage("LCC Version", common.LCCVersion)
	}

	return 0
}

// buildOptions are the command line settings of `build` and `check`.
type buildOptions struct {
	srcPath    string
	configPath string
	outDir     string
	loglevel   string

	emitLLVM, noOptimize bool

	// full is false for `check`: only the analysis phases run.
	full bool
}

func newBuildOptions(result *olive.ArgParseResult, loglevel string, full bool) *buildOptions {
	opts := &buildOptions{loglevel: loglevel, full: full}
	opts.srcPath, _ = result.PrimaryArg()

	if v, ok := result.Arguments["config"]; ok {
		opts.configPath = v.(string)
	}

	if full {
		if v, ok := result.Arguments["outdir"]; ok {
			opts.outDir = v.(string)
		}

		opts.emitLLVM = result.HasFlag("emit-llvm")
		opts.noOptimize = result.HasFlag("no-optimize")
	}

	return opts
}

// execBuildCommand executes the build and check subcommands and handles all
// errors.  It returns the exit code.
func execBuildCommand(opts *buildOptions) int {
	srcPath, err := filepath.Abs(opts.srcPath)
	if err != nil {
		logging.PrintErrorMessage("Path Error", err)
		return 1
	}

	prof, err := config.Find(srcPath, opts.configPath)
	if err != nil {
		logging.PrintErrorMessage("Config Error", err)
		return 1
	}

	applyOptions(prof, opts)
	logging.Initialize(prof.LogLevel)

	c := build.NewCompiler(srcPath, prof)

	var ok bool
	if opts.full {
		ok = c.Compile()
	} else {
		ok = c.Analyze()
	}

	if !ok {
		return 1
	}

	return 0
}

// applyOptions lets the command line override the profile.  The log level of
// the profile is kept unless one other than the default is given.
func applyOptions(prof *config.Profile, opts *buildOptions) {
	if opts.outDir != "" {
		prof.OutputDir = opts.outDir
	}

	if opts.emitLLVM {
		prof.EmitLLVM = true
	}

	if opts.noOptimize {
		prof.Optimize = false
	}

	if opts.loglevel != "" && opts.loglevel != "verbose" {
		prof.LogLevel = opts.loglevel
	}
}

// execInitCommand writes a default config file to dir.
func execInitCommand(dir string) int {
	if err := config.InitConfig(dir); err != nil {
		logging.PrintErrorMessage("Config Init Error", err)
		return 1
	}

	logging.PrintInfoMessage("Wrote", filepath.Join(dir, common.ConfigFileName))
	return 0
}
