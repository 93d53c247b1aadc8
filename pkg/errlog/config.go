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
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// EnvPrefix is used as the environment variable name prefix to load configs from the env.
// - for more information, see "github.com/kelseyhightower/envconfig"
const EnvPrefix = "ERRARE"

// Config is used to load log config settings from env vars
type Config struct {
	// GlobalLevel specifies the global log level.
	// - default = info
	GlobalLevel     Level `default:"info" envconfig:"log_global_level"`
	DisableSampling bool  `split_words:"true" envconfig:"log_disable_sampling"`
}

// Apply will apply the zerolog config settings
func (c *Config) Apply() {
	zerolog.SetGlobalLevel(zerolog.Level(c.GlobalLevel))
	zerolog.DisableSampling(c.DisableSampling)
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{GlobalLevel=%s, DisableSampling=%v}", c.GlobalLevel, c.DisableSampling)
}

// Configure loads `Config` from the system env and applies it.
// - env vars are prefixed with `EnvPrefix`, e.g., ERRARE_LOG_GLOBAL_LEVEL
//
// The standard zerolog global settings (field names, time format, stack marshaller)
// are applied when the package is imported - see the package docs.
func Configure() error {
	var config Config
	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return err
	}
	config.Apply()
	return nil
}

// Level is a type alias for zerolog.Level in order to be able to implement the `envconfig.Decoder` interface on it
type Level zerolog.Level

// Decode implements `envconfig.Decoder` interface
func (l *Level) Decode(value string) error {
	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return err
	}
	*l = Level(level)
	return nil
}

func (l Level) String() string {
	return zerolog.Level(l).String()
}
