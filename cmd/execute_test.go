package cmd

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lcc/common"
	"lcc/config"
)

var _ = Describe("Commands", func() {
	var dir, src string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "lcc-cmd")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		src = filepath.Join(dir, "prog.lc")
		Expect(os.WriteFile(src, []byte("int x = 5;\nbegin\n    writeln, x;\nend\n"), 0644)).To(Succeed())
	})

	It("should let the command line override the profile", func() {
		prof := config.DefaultProfile()
		applyOptions(prof, &buildOptions{outDir: "asm", emitLLVM: true, noOptimize: true, loglevel: "error"})

		Expect(prof.OutputDir).To(Equal("asm"))
		Expect(prof.EmitLLVM).To(BeTrue())
		Expect(prof.Optimize).To(BeFalse())
		Expect(prof.LogLevel).To(Equal("error"))
	})

	It("should keep the profile log level under the default flag value", func() {
		prof := config.DefaultProfile()
		prof.LogLevel = "warn"

		applyOptions(prof, &buildOptions{loglevel: "verbose"})
		Expect(prof.LogLevel).To(Equal("warn"))
	})

	It("should build using the config file next to the source", func() {
		Expect(os.WriteFile(filepath.Join(dir, common.ConfigFileName), []byte("[build]\noutput-dir = \"listings\"\nlog-level = \"silent\"\n"), 0644)).To(Succeed())

		Expect(execBuildCommand(&buildOptions{srcPath: src, loglevel: "verbose", full: true})).To(Equal(0))
		Expect(filepath.Join(dir, "listings", "prog.asm")).To(BeAnExistingFile())
		Expect(filepath.Join(dir, "listings", "prog_optimized.asm")).To(BeAnExistingFile())
	})

	It("should check without writing", func() {
		Expect(execBuildCommand(&buildOptions{srcPath: src, loglevel: "silent"})).To(Equal(0))
		Expect(filepath.Join(dir, "out")).NotTo(BeADirectory())
	})

	It("should fail on a bad program", func() {
		Expect(os.WriteFile(src, []byte("begin\n    x = 1;\nend\n"), 0644)).To(Succeed())
		Expect(execBuildCommand(&buildOptions{srcPath: src, loglevel: "silent", full: true})).To(Equal(1))
	})

	It("should fail on a bad config file", func() {
		Expect(execBuildCommand(&buildOptions{srcPath: src, configPath: filepath.Join(dir, "none.toml"), loglevel: "silent"})).To(Equal(1))
	})

	It("should write a default config file once", func() {
		Expect(execInitCommand(dir)).To(Equal(0))
		Expect(filepath.Join(dir, common.ConfigFileName)).To(BeAnExistingFile())
		Expect(execInitCommand(dir)).To(Equal(1))
	})
})
