package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

func CreateDirectoryIfNotExists(dirPath string, perm os.FileMode) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		// If the directory doesn't exist, create it
		return os.MkdirAll(dirPath, perm)
	}

	return nil
}

func FileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// WriteFileAtomic writes data to a temporary file next to filePath and renames it into place,
// so a failed write never leaves a truncated file behind
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)

	if err := CreateDirectoryIfNotExists(dir, 0770); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(filePath)+".tmp*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, filePath)
}

func LoadJson[TReturn any](path string) (*TReturn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v. error: %w", path, err)
	}

	defer f.Close()

	var value TReturn
	decoder := json.NewDecoder(f)
	err = decoder.Decode(&value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %v. error: %w", path, err)
	}

	return &value, nil
}

// Loads config from defined path or from the directory of the executable
// Prefix defined as: (prefix)_config.json
// When configPath is empty and no file exists next to the executable, zero value config is returned
func LoadConfig[TReturn any](configPath string, configPrefix string) (*TReturn, error) {
	if configPath != "" {
		return LoadJson[TReturn](configPath)
	}

	ex, err := os.Executable()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(configPrefix) != "" {
		configPath = path.Join(filepath.Dir(ex), strings.Join([]string{configPrefix, "config.json"}, "_"))
	} else {
		configPath = path.Join(filepath.Dir(ex), "config.json")
	}

	exists, err := FileExists(configPath)
	if err != nil {
		return nil, err
	} else if !exists {
		return new(TReturn), nil
	}

	return LoadJson[TReturn](configPath)
}
