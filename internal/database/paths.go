package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	AppDirName       = ".mall-tour-planner"
	MallFileName     = "mall_coordinates.json"
	SQLiteDBFileName = "mall.db"
)

// GetAppDir returns ~/.mall-tour-planner, creating it if needed
func GetAppDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	appDir := filepath.Join(homeDir, AppDirName)
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create app directory: %w", err)
	}

	return appDir, nil
}

// GetMallFilePath returns ~/.mall-tour-planner/mall_coordinates.json
func GetMallFilePath() (string, error) {
	appDir, err := GetAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, MallFileName), nil
}

// GetDefaultDBPath returns ~/.mall-tour-planner/mall.db
func GetDefaultDBPath() (string, error) {
	appDir, err := GetAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, SQLiteDBFileName), nil
}

// Open picks a store implementation from the path: a .json path gets the
// flat-file store (interoperable with legacy mall_coordinates.json files),
// anything else gets SQLite.
func Open(path string) (DataStore, error) {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path, nil)
	}
	return New(path)
}
