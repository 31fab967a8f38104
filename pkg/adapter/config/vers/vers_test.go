// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package vers_test

import (
	"fmt"
	"testing"

	"github.com/momeni/carsweb/pkg/adapter/config/vers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want vers.SemVer
		ok   bool
	}{
		{"1.2.3", vers.SemVer{1, 2, 3}, true},
		{"1", vers.SemVer{1, 0, 0}, true},
		{"1.4", vers.SemVer{1, 4, 0}, true},
		{"1.2.3.4", vers.SemVer{}, false},
		{"1.x", vers.SemVer{}, false},
		{"-1", vers.SemVer{}, false},
		{"", vers.SemVer{}, false},
	} {
		sv, err := vers.Parse(tc.in)
		if !tc.ok {
			assert.Error(t, err, "parsing %q", tc.in)
			continue
		}
		require.NoError(t, err, "parsing %q", tc.in)
		assert.Equal(t, tc.want, sv)
	}
}

func TestCheck(t *testing.T) {
	assert.NoError(t, vers.SemVer{1, 0, 7}.Check(1, 0))
	assert.NoError(t, vers.SemVer{1, 0, 0}.Check(1, 2))
	assert.Error(t, vers.SemVer{1, 3, 0}.Check(1, 2))
	assert.Error(t, vers.SemVer{2, 0, 0}.Check(1, 2))
}

func ExampleSemVer() {
	var doc struct {
		Version vers.SemVer `yaml:"version"`
	}
	if err := yaml.Unmarshal([]byte("version: 1.2"), &doc); err != nil {
		panic(err)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		panic(err)
	}
	fmt.Print(string(out))
	// Output: version: 1.2.0
}
