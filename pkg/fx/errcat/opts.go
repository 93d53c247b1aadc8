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

package errcat

import "github.com/oysterpack/errare/pkg/errvar"

// Opts are used to configure the fx module.
type Opts struct {
	// Kinds are registered when the application starts.
	Kinds []errvar.Variant

	// FailFastOnStartup means the app will fail fast if registering the error
	// kinds fails, i.e., on a tag conflict.
	//
	// default = true
	FailFastOnStartup bool

	// LogCatalog means the registered error catalog is logged on application start up.
	//
	// default = true
	LogCatalog bool
}

// DefaultOpts constructs a new Opts using recommended default values.
func DefaultOpts() Opts {
	return Opts{
		FailFastOnStartup: true,
		LogCatalog:        true,
	}
}

// SetKinds sets the error kinds to register on application start up
func (o Opts) SetKinds(kinds ...errvar.Variant) Opts {
	o.Kinds = kinds
	return o
}

// SetFailFastOnStartup sets the fail fast on startup setting
func (o Opts) SetFailFastOnStartup(failFast bool) Opts {
	o.FailFastOnStartup = failFast
	return o
}

// SetLogCatalog sets the log catalog setting
func (o Opts) SetLogCatalog(logCatalog bool) Opts {
	o.LogCatalog = logCatalog
	return o
}
