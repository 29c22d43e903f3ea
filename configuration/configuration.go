// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/pieterlexis/sysrepo/fault"
)

// LoggerType - settings for the rotating file logger
type LoggerType struct {
	Directory string            `gluamapper:"directory"`
	File      string            `gluamapper:"file"`
	Size      int               `gluamapper:"size"`
	Count     int               `gluamapper:"count"`
	Console   bool              `gluamapper:"console"`
	Levels    map[string]string `gluamapper:"levels"`
}

// Configuration - the tool configuration
type Configuration struct {
	DataDirectory string     `gluamapper:"data_directory"`
	KeyFile       string     `gluamapper:"key_file"`
	Logging       LoggerType `gluamapper:"logging"`
}

// default values applied before the file is read
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "btree-cli.log"
	defaultLogSize      = 1048576
	defaultLogCount     = 10
)

// GetConfiguration - read and parse a configuration file
func GetConfiguration(fileName string) (*Configuration, error) {

	if info, err := os.Stat(fileName); nil != err || info.IsDir() {
		return nil, fault.ErrNotFoundConfigFile
	}

	options := &Configuration{
		DataDirectory: ".",
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	return options, nil
}

// LoggerConfiguration - convert to the logger package's settings
func (config *Configuration) LoggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: config.Logging.Directory,
		File:      config.Logging.File,
		Size:      config.Logging.Size,
		Count:     config.Logging.Count,
		Console:   config.Logging.Console,
		Levels:    config.Logging.Levels,
	}
}
