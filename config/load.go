package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"lcc/common"
	"lcc/logging"

	"github.com/pelletier/go-toml"
)

// tomlConfigFile represents the config file as it is encoded in TOML.  Scalar
// fields are pointers so that omitted keys keep their defaults.
type tomlConfigFile struct {
	Build  *tomlBuild  `toml:"build"`
	Target *tomlTarget `toml:"target"`
}

type tomlBuild struct {
	OutputDir       *string `toml:"output-dir"`
	OptimizedSuffix *string `toml:"optimized-suffix"`
	Optimize        *bool   `toml:"optimize"`
	EmitLLVM        *bool   `toml:"emit-llvm"`
	LogLevel        *string `toml:"log-level"`
}

type tomlTarget struct {
	Newline  []int    `toml:"newline,omitempty"`
	Includes []string `toml:"includes,omitempty"`
}

// Find loads the profile for the source file at srcPath.  If path is empty,
// the config file is looked up next to the source file and defaults are used
// when there is none.  An explicitly named config file must exist.
func Find(srcPath, path string) (*Profile, error) {
	if path != "" {
		return Load(path)
	}

	path = filepath.Join(filepath.Dir(srcPath), common.ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultProfile(), nil
	}

	return Load(path)
}

// Load reads and validates the config file at path.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Decode(buff)
}

// Decode converts the contents of a config file into a validated profile.
func Decode(buff []byte) (*Profile, error) {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, err
	}

	prof := DefaultProfile()
	if b := tcf.Build; b != nil {
		if b.OutputDir != nil {
			prof.OutputDir = *b.OutputDir
		}

		if b.OptimizedSuffix != nil {
			prof.OptimizedSuffix = *b.OptimizedSuffix
		}

		if b.Optimize != nil {
			prof.Optimize = *b.Optimize
		}

		if b.EmitLLVM != nil {
			prof.EmitLLVM = *b.EmitLLVM
		}

		if b.LogLevel != nil {
			prof.LogLevel = *b.LogLevel
		}
	}

	if t := tcf.Target; t != nil {
		prof.Newline = t.Newline
		prof.Includes = t.Includes
	}

	if err := validateProfile(prof); err != nil {
		return nil, err
	}

	return prof, nil
}

// validateProfile checks the values a config file can get wrong
func validateProfile(prof *Profile) error {
	if _, ok := logging.LogLevelFromName(prof.LogLevel); !ok {
		return fmt.Errorf("unknown log level `%s`", prof.LogLevel)
	}

	if prof.OptimizedSuffix == "" {
		return errors.New("optimized-suffix must not be empty")
	}

	if prof.OutputDir == "" {
		return errors.New("output-dir must not be empty")
	}

	for _, b := range prof.Newline {
		if b < 0 || b > 255 {
			return fmt.Errorf("newline byte %d is out of range [0, 255]", b)
		}
	}

	return nil
}

// InitConfig writes a config file holding the default profile to dir.
func InitConfig(dir string) error {
	path := filepath.Join(dir, common.ConfigFileName)

	_, err := os.Stat(path)
	if err == nil {
		return errors.New("config file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("config file error: %s", err.Error())
	}

	prof := DefaultProfile()
	tcf := &tomlConfigFile{
		Build: &tomlBuild{
			OutputDir:       &prof.OutputDir,
			OptimizedSuffix: &prof.OptimizedSuffix,
			Optimize:        &prof.Optimize,
			EmitLLVM:        &prof.EmitLLVM,
			LogLevel:        &prof.LogLevel,
		},
		Target: &tomlTarget{Newline: []int{13, 10}},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tcf); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
