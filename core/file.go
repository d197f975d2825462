package core

import (
	"os"
	"path/filepath"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"
)

var log = logger.GetOrCreate("core")

// LoadFile method to open file from given path - does not close the file
func LoadFile(relativePath string) (*os.File, error) {
	path, err := filepath.Abs(relativePath)
	if err != nil {
		log.Error("cannot create absolute path for the provided file", "error", err.Error())
		return nil, err
	}

	return os.Open(path)
}

// LoadTomlFile method to open and decode toml file
func LoadTomlFile(dest interface{}, relativePath string) error {
	f, err := LoadFile(relativePath)
	if err != nil {
		return err
	}

	defer func() {
		errClose := f.Close()
		if errClose != nil {
			log.Error("cannot close file", "error", errClose.Error())
		}
	}()

	return toml.NewDecoder(f).Decode(dest)
}

// FileExists returns true if the file at the provided path exists
func FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
