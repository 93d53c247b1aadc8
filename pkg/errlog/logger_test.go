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

package errlog_test

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid"
	"github.com/oysterpack/errare/pkg/errlog"
)

// logEvent is used to unmarshal the zerolog JSON log events written by the tests
type logEvent struct {
	Level     string `json:"l"`
	Timestamp int64  `json:"t"`
	Message   string `json:"m"`
	EventULID string `json:"z"`
	Component string `json:"c"`
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	// Given a logger writing to a strings.Builder
	buf := new(strings.Builder)
	logger := errlog.NewLogger(buf)
	// When a log event is written
	logger.Info().Msg("the sky is falling")
	t.Log(buf.String())
	// Then the event carries the standard fields
	var event logEvent
	if err := json.Unmarshal([]byte(buf.String()), &event); err != nil {
		t.Fatalf("failed to unmarshal the log event: %v", err)
	}
	if event.Level != "info" {
		t.Errorf("level did not match: %v", event.Level)
	}
	if event.Message != "the sky is falling" {
		t.Errorf("message did not match: %v", event.Message)
	}
	// And the timestamp is in UNIX time
	eventTime := time.Unix(event.Timestamp, 0)
	if time.Since(eventTime) > time.Minute {
		t.Errorf("event timestamp is off: %v", eventTime)
	}
	// And the event ULID is valid
	if _, err := ulid.Parse(event.EventULID); err != nil {
		t.Errorf("event ULID failed to parse: %v : %v", event.EventULID, err)
	}
}

func TestWithEventULID(t *testing.T) {
	t.Parallel()

	// Given a logger writing to a strings.Builder
	buf := new(strings.Builder)
	logger := errlog.NewLogger(buf)
	// When multiple log events are written
	logger.Info().Msg("")
	logger.Info().Msg("")
	logger.Info().Msg("")
	// Then each event is stamped with a unique event ULID
	ulids := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var event logEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			t.Fatalf("failed to unmarshal the log event: %v", err)
		}
		if _, err := ulid.Parse(event.EventULID); err != nil {
			t.Fatalf("event ULID failed to parse: %v : %v", event.EventULID, err)
		}
		if ulids[event.EventULID] {
			t.Errorf("event ULID is not unique: %v", event.EventULID)
		}
		ulids[event.EventULID] = true
	}
	if len(ulids) != 3 {
		t.Errorf("expected 3 log events: %v", len(ulids))
	}
}

func TestForComponent(t *testing.T) {
	t.Parallel()

	// Given a component logger
	buf := new(strings.Builder)
	logger := errlog.NewLogger(buf)
	compLogger := errlog.ForComponent(&logger, "registry")
	// When a log event is written
	compLogger.Info().Msg("")
	t.Log(buf.String())
	// Then the event is tagged with the component name
	var event logEvent
	if err := json.Unmarshal([]byte(buf.String()), &event); err != nil {
		t.Fatalf("failed to unmarshal the log event: %v", err)
	}
	if event.Component != "registry" {
		t.Errorf("component did not match: %v", event.Component)
	}
}

func TestUseAsStandardLoggerOutput(t *testing.T) {
	// reset the std logger when the test is done
	flags := log.Flags()
	defer func() {
		log.SetFlags(flags)
		log.SetOutput(os.Stderr)
	}()

	// Given a logger writing to a strings.Builder
	buf := new(strings.Builder)
	logger := errlog.NewLogger(buf)
	// When the logger is used as the go std log output
	errlog.UseAsStandardLoggerOutput(&logger)
	// Then std log writes zerolog events
	log.Print("the sky is falling")
	t.Log(buf.String())
	var event logEvent
	if err := json.Unmarshal([]byte(buf.String()), &event); err != nil {
		t.Fatalf("failed to unmarshal the log event: %v", err)
	}
	if !strings.Contains(event.Message, "the sky is falling") {
		t.Errorf("message did not match: %v", event.Message)
	}
}
