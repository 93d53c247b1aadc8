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

package errlog

import (
	"io"
	"log"

	"github.com/oysterpack/errare/pkg/ulids"
	"github.com/rs/zerolog"
)

var newEventULID = ulids.MonotonicULIDGenerator()

// WithEventULID augments each log event with an event ULID.
//
// NOTE: The ULID uses a monotonic generator - thus, its timestamp portion is simply used to construct the ULID
// and does not represent when the ULID was created.
func WithEventULID(logger zerolog.Logger) zerolog.Logger {
	return logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str(string(EventULID), newEventULID().String())
	}))
}

// NewLogger constructs a new zerolog.Logger that is configured to add the following fields:
//   - timestamp in UNIX time format
//   - event ULID
//
// Example log message:
//
//	{"z":"01DFBGCFD9WD29SGRJPK8KZKQS","t":1562680638,"m":"tag conflict"}
//
// where z -> event ULID
//       t -> event timestamp
func NewLogger(w io.Writer) zerolog.Logger {
	return WithEventULID(zerolog.New(w)).
		With().
		Timestamp().
		Logger()
}

// ForComponent returns a new logger with the component field 'c' set to the specified value.
func ForComponent(logger *zerolog.Logger, name string) *zerolog.Logger {
	l := logger.With().Str(string(Component), name).Logger()
	return &l
}

// UseAsStandardLoggerOutput uses the specified logger as the go std log output.
func UseAsStandardLoggerOutput(logger *zerolog.Logger) {
	log.SetFlags(0)
	log.SetOutput(logger)
}
