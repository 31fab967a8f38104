// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"io"
	"log/slog"

	"github.com/momeni/carsweb/pkg/core/log"
)

// Log contains the structured logging settings.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

func (l *Log) normalize() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

// Setup installs the default slog logger, writing to w, based on
// the `l` settings and returns it.
func (l Log) Setup(w io.Writer) (*slog.Logger, error) {
	return log.Setup(w, l.Format, l.Level)
}
