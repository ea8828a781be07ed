//----------------------------------------------------------------------
// This file is part of Primpoly.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Primpoly is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Primpoly is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//----------------------------------------------------------------------

package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// drain gives the background goroutine time to flush msgChan into buf.
func drain() {
	time.Sleep(20 * time.Millisecond)
}

func TestPrintlnRespectsLevelThreshold(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(INFO)
	defer SetLevel(INFO)

	Println(TRACE, "should not appear")
	drain()
	require.Equal(t, "", buf.String())

	Println(INFO, "search started")
	drain()
	require.True(t, strings.Contains(buf.String(), "search started"))
}

func TestPrintlnTagsEachLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(TRACE)
	defer SetLevel(INFO)

	cases := []struct {
		level int
		tag   string
	}{
		{CRITICAL, "[critical] "},
		{ERROR, "[error] "},
		{WARN, "[warn] "},
		{INFO, "[info] "},
		{TRACE, "[trace] "},
	}
	for _, c := range cases {
		buf.Reset()
		Println(c.level, "msg")
		drain()
		require.True(t, strings.HasPrefix(buf.String(), c.tag), "level %d", c.level)
	}
}

func TestPrintfFormatsArguments(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(TRACE)
	defer SetLevel(INFO)

	Printf(INFO, "tested %d of %d candidates", 3, 10)
	drain()
	require.True(t, strings.Contains(buf.String(), "tested 3 of 10 candidates"))
}

func TestSetOutputRedirectsAwayFromPrevious(t *testing.T) {
	var first, second bytes.Buffer
	SetOutput(&first)
	SetLevel(INFO)
	defer SetLevel(INFO)

	Println(INFO, "to first")
	drain()

	SetOutput(&second)
	Println(INFO, "to second")
	drain()

	require.True(t, strings.Contains(first.String(), "to first"))
	require.False(t, strings.Contains(second.String(), "to first"))
	require.True(t, strings.Contains(second.String(), "to second"))
}
