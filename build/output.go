package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lcc/common"
	"lcc/logging"
)

// OutputPaths returns the paths the listing, the optimized listing and the
// LLVM module of the source file are written to.
func (c *Compiler) OutputPaths() (asmPath, optPath, llPath string) {
	outDir := c.profile.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(filepath.Dir(c.srcPath), outDir)
	}

	name := common.BaseName(c.srcPath)
	asmPath = filepath.Join(outDir, name+common.AsmFileExtension)
	optPath = filepath.Join(outDir, name+c.profile.OptimizedSuffix+common.AsmFileExtension)
	llPath = filepath.Join(outDir, name+common.LLVMFileExtension)
	return
}

// outputFile is a rendered output waiting to be written.
type outputFile struct {
	path, text string
}

// renderOutputs renders every output the result holds.
func (c *Compiler) renderOutputs(res *Result) []outputFile {
	asmPath, optPath, llPath := c.OutputPaths()

	files := []outputFile{{asmPath, res.Output.String()}}
	if res.Optimized != nil {
		files = append(files, outputFile{optPath, strings.Join(res.Optimized, "\n") + "\n"})
	}

	if res.LLVM != nil {
		files = append(files, outputFile{llPath, res.LLVM.String()})
	}

	return files
}

// writeOutputs writes every output of the result.  Either all of them are
// written or none is: a failed write removes the files already written.
func (c *Compiler) writeOutputs(res *Result) {
	files := c.renderOutputs(res)

	if err := os.MkdirAll(filepath.Dir(files[0].path), os.ModePerm); err != nil {
		logging.LogConfigError("Output", fmt.Sprintf("unable to create output directory: %s", err.Error()))
		return
	}

	for i, f := range files {
		if err := os.WriteFile(f.path, []byte(f.text), 0644); err != nil {
			for _, written := range files[:i] {
				os.Remove(written.path)
			}

			logging.LogConfigError("Output", fmt.Sprintf("unable to write %s: %s", f.path, err.Error()))
			return
		}
	}

	for _, f := range files {
		logging.LogInfo("Wrote", f.path)
	}

	if res.Optimized != nil {
		logging.LogInfo("Peephole", fmt.Sprintf("%d rewrites", res.Stats.Total()))
	}
}
