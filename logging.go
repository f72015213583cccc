// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
)

const (
	logFileName  = "keytree.log"
	logFileSize  = 1048576
	logFileCount = 10
)

// eventLog records index events to the rotating log file. The zero value
// (and a nil pointer) discards everything, which is what runs without a
// logging directory get.
type eventLog struct {
	log *logger.L
}

// setupLogging starts file logging when a directory is configured and
// returns the event log plus a function that flushes and closes it
func setupLogging(config LoggingConfig) (*eventLog, func(), error) {
	if config.Directory == "" {
		return &eventLog{}, func() {}, nil
	}

	if err := os.MkdirAll(config.Directory, 0700); err != nil {
		return &eventLog{}, func() {}, fmt.Errorf("failed to create log directory: %v", err)
	}

	logging := logger.Configuration{
		Directory: config.Directory,
		File:      logFileName,
		Size:      logFileSize,
		Count:     logFileCount,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: config.Level,
		},
	}
	if err := logger.Initialise(logging); err != nil {
		return &eventLog{}, func() {}, fmt.Errorf("failed to start logging: %v", err)
	}

	return &eventLog{log: logger.New("index")}, logger.Finalise, nil
}

func (e *eventLog) Infof(format string, arguments ...interface{}) {
	if e == nil || e.log == nil {
		return
	}
	e.log.Infof(format, arguments...)
}

func (e *eventLog) Debugf(format string, arguments ...interface{}) {
	if e == nil || e.log == nil {
		return
	}
	e.log.Debugf(format, arguments...)
}

func (e *eventLog) Warnf(format string, arguments ...interface{}) {
	if e == nil || e.log == nil {
		return
	}
	e.log.Warnf(format, arguments...)
}
