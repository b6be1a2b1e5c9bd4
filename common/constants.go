package common

const (
	SrcFileExtension       = ".lc"
	AsmFileExtension       = ".asm"
	LLVMFileExtension      = ".ll"
	ConfigFileName         = "lcc.toml"
	LCCVersion             = "0.3.0"
	DefaultOptimizedSuffix = "_optimized"
	DefaultOutputDir       = "out"
)

// MaxLexemeLength is the longest identifier or string literal (quotes
// included) the language accepts.
const MaxLexemeLength = 255
