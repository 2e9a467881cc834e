// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultKeyType       = "integer"

	defaultLogDirectory = "log"
	defaultLogFile      = "avl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"session":         "info",
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings shared by the tree tools
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	KeyType       string               `gluamapper:"key_type" json:"key_type"`
	Keys          []interface{}        `gluamapper:"keys" json:"keys"`
	JSON          bool                 `gluamapper:"json" json:"json"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - configuration used when no file is given
func Default(dataDirectory string) *Configuration {
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return &Configuration{
		DataDirectory: dataDirectory,
		KeyType:       defaultKeyType,
		Keys:          nil,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default(defaultDataDirectory)

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory
	}
	if err := options.Finalise(); nil != err {
		return nil, err
	}
	return options, nil
}

// Finalise - normalise names and force the log directory to an
// absolute path below the data directory, creating it if necessary
func (options *Configuration) Finalise() error {

	options.KeyType = strings.ToLower(strings.TrimSpace(options.KeyType))
	if "" == options.KeyType {
		options.KeyType = defaultKeyType
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	}
	dataDirectory, err := filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return err
	}
	options.DataDirectory = dataDirectory

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a simple name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	return os.MkdirAll(options.Logging.Directory, 0700)
}

// KeyStrings - the initial keys as text, Lua numbers are formatted
// without a trailing fraction
func (options *Configuration) KeyStrings() []string {
	keys := make([]string, 0, len(options.Keys))
	for _, k := range options.Keys {
		switch v := k.(type) {
		case string:
			keys = append(keys, v)
		case float64:
			keys = append(keys, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			keys = append(keys, fmt.Sprint(v))
		}
	}
	return keys
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
