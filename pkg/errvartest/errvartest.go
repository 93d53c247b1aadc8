/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package errvartest is used to support testing code that produces and logs errors.
package errvartest

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/oysterpack/errare/pkg/errlog"
	"github.com/rs/zerolog"
)

// TestLogger writes to a strings.Builder, which can then be inspected while testing.
type TestLogger struct {
	*zerolog.Logger
	Buf *strings.Builder
}

// NewTestLogger constructs a new TestLogger instance.
//
// zerolog is configured from the env, i.e., the same way the application
// configures it, so that log events captured here have the production shape.
func NewTestLogger() *TestLogger {
	if err := errlog.Configure(); err != nil {
		log.Fatalf("errlog.Configure() failed: %v", err)
	}
	buf := new(strings.Builder)
	logger := errlog.NewLogger(buf)
	return &TestLogger{&logger, buf}
}

// Events unmarshals every log event that has been written so far, in order.
func (l *TestLogger) Events() ([]LogEvent, error) {
	var events []LogEvent
	for _, line := range strings.Split(l.Buf.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// LastEvent unmarshals the most recently written log event.
func (l *TestLogger) LastEvent() (*LogEvent, error) {
	events, err := l.Events()
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no log events have been written")
	}
	return &events[len(events)-1], nil
}

// RawLastEvent unmarshals the most recently written log event into a map, which
// is what tests that assert on the exact set of logged fields work with.
func (l *TestLogger) RawLastEvent() (map[string]any, error) {
	lines := strings.Split(strings.TrimSpace(l.Buf.String()), "\n")
	last := lines[len(lines)-1]
	if strings.TrimSpace(last) == "" {
		return nil, fmt.Errorf("no log events have been written")
	}
	event := make(map[string]any)
	if err := json.Unmarshal([]byte(last), &event); err != nil {
		return nil, err
	}
	return event, nil
}

// LogEvent is used to unmarshal zerolog JSON log events
type LogEvent struct {
	Level        string       `json:"l"`
	Timestamp    int64        `json:"t"`
	Message      string       `json:"m"`
	EventULID    string       `json:"z"`
	Component    string       `json:"c"`
	ErrorMessage string       `json:"e"`
	Error        *Error       `json:"f"`
	Stack        []Stackframe `json:"s"`
}

// Time converts the log event UNIX time into a time.Time
func (e *LogEvent) Time() time.Time {
	return time.Unix(e.Timestamp, 0)
}

// Error represents the error details that were logged.
type Error struct {
	ID         string         `json:"i"`
	Name       string         `json:"n"`
	InstanceID string         `json:"x"`
	Data       map[string]any `json:"d"`
}

// Stackframe represents a stack frame that is logged.
type Stackframe struct {
	Func   string `json:"func"`
	Line   string `json:"line"`
	Source string `json:"source"`
}
