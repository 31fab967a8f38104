// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vers contains the semantic version type which is written in
// the configuration files. The configuration format is identified by
// its version before other settings are trusted, so a binary may
// reject those files which were written for an incompatible release.
package vers

import (
	"fmt"
	"strconv"
	"strings"
)

// SemVer represents a released semantic version, consisting of three
// components. First component indicates the major version. Incrementing
// it represents backward-incompatible changes. Second component is the
// minor version which represents backward compatible feature additions.
// The last component is the patch version which has no visible effect
// on the configuration format.
type SemVer [3]uint

// Parse parses s as one to three dot-separated non-negative numbers.
// Missing components are taken as zero, so "1" is the same as "1.0.0".
func Parse(s string) (SemVer, error) {
	var sv SemVer
	p := strings.Split(s, ".")
	if len(p) > 3 {
		return sv, fmt.Errorf("the %q has wrong number of components", s)
	}
	for i, c := range p {
		n, err := strconv.ParseUint(c, 10, 32)
		if err != nil {
			return sv, fmt.Errorf("the %q component is not numeric", c)
		}
		sv[i] = uint(n)
	}
	return sv, nil
}

// UnmarshalText deserializes text using the Parse function.
// In case of errors, sv will be left unchanged.
func (sv *SemVer) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*sv = v
	return nil
}

// MarshalText implements encoding.TextMarshaler interface and
// serializes `sv` semantic version as its string representation.
func (sv SemVer) MarshalText() ([]byte, error) {
	return []byte(sv.String()), nil
}

// String returns the sv semantic version as a dot-separated string
// consisting of three numbers like major.minor.patch.
func (sv SemVer) String() string {
	return fmt.Sprintf("%d.%d.%d", sv[0], sv[1], sv[2])
}

// Check returns an error if a file with the sv version cannot be
// loaded by an implementation which supports the major.minor version.
// That is, sv must have the same major version and its minor version
// must not be newer than minor.
func (sv SemVer) Check(major, minor uint) error {
	if sv[0] != major {
		return fmt.Errorf("incompatible major version: %d", sv[0])
	}
	if sv[1] > minor {
		return fmt.Errorf("unsupported minor version: %d", sv[1])
	}
	return nil
}
