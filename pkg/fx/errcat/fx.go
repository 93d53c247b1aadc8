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

// Package errcat provides the application error catalog as an fx module.
//
// The module provides the application's *errvar.Registry and registers the
// configured error kinds when the application starts. Registering the catalog
// up front surfaces tag conflicts at start up instead of at error handling time.
package errcat

import (
	"context"
	"os"

	"github.com/oysterpack/errare/pkg/errlog"
	"github.com/oysterpack/errare/pkg/errvar"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ModuleWithDefaults provides the fx Module for the error catalog module
func ModuleWithDefaults() fx.Option {
	return Module(DefaultOpts())
}

// Module provides the fx Module for the error catalog module
func Module(opts Opts) fx.Option {
	return fx.Options(
		fx.Provide(errvar.NewRegistry),
		fx.Invoke(registerKinds(opts)),
	)
}

// registerParams declares the module's dependencies. The logger is optional:
// when the application does not provide one, events are logged to stderr.
type registerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  *errvar.Registry
	Logger    *zerolog.Logger `optional:"true"`
}

func registerKinds(opts Opts) func(registerParams) {
	return func(params registerParams) {
		logger := params.Logger
		if logger == nil {
			l := errlog.NewLogger(os.Stderr)
			logger = &l
		}
		logger = errlog.ForComponent(logger, "errcat")

		params.Lifecycle.Append(fx.Hook{
			OnStart: func(context.Context) error {
				if err := params.Registry.Register(opts.Kinds...); err != nil {
					if opts.FailFastOnStartup {
						return err
					}
					logger.Error().Err(err).Msg("failed to register error kinds")
				}
				if opts.LogCatalog {
					variants := params.Registry.Variants()
					tags := make([]string, len(variants))
					for i, variant := range variants {
						tags[i] = variant.Tag()
					}
					logger.Info().Strs(string(errlog.Tags), tags).Msg("error catalog")
				}
				return nil
			},
		})
	}
}
