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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bfix/primpoly/bigint"
	"github.com/bfix/primpoly/cliparser"
	"github.com/bfix/primpoly/driver"
	"github.com/bfix/primpoly/errors"
	"github.com/bfix/primpoly/factorizer"
	"github.com/bfix/primpoly/oracle"
	"github.com/bfix/primpoly/polyparser"
)

const legalNotice = `Primpoly -- find and test primitive polynomials over GF(p).
Copyright (C) 2011-present, Bernd Fix. Licensed under the AGPL-3.0-or-later.
This program comes with ABSOLUTELY NO WARRANTY.`

// tableDir is where Cunningham factor tables (cXXminus.txt) are
// expected to reside, alongside the executable (the working directory
// if the executable's path cannot be determined).
var tableDir = func() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}()

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	defer func() {
		// Catch-all against unexpected failure modes: the typed error
		// paths below are the normal exit, this guards only against a
		// genuine programming defect surfacing as a panic.
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "InternalError: %v, please email the author.\n", r)
			os.Exit(4)
		}
	}()

	fmt.Println(legalNotice)

	args, err := cliparser.Parse(argv)
	if err != nil {
		return reportError(err)
	}
	if args.Help {
		fmt.Println(cliparser.HelpText)
		return 1
	}

	if args.Test {
		return runTest(args)
	}
	return runSearch(args)
}

func runTest(args *cliparser.Args) int {
	f, err := polyparser.Parse(args.PolyString)
	if err != nil {
		return reportError(err)
	}
	prime, err := factorizer.IsAlmostSurelyPrime(bigint.FromWord(f.Modulus()))
	if err != nil {
		return reportError(err)
	}
	if !prime {
		return reportError(errors.New(errors.UserInput, "p=%d is not prime", f.Modulus()))
	}
	o, err := oracle.New(f.Modulus(), f.Degree(), tableDir)
	if err != nil {
		return reportError(err)
	}
	ok, err := o.IsPrimitive(f)
	if err != nil {
		return reportError(err)
	}
	if args.SlowConfirm {
		confirmed, err := driver.MaximalOrder(f)
		if err != nil {
			return reportError(err)
		}
		if confirmed != ok {
			return reportError(errors.New(errors.ConfirmationMismatch, "oracle says primitive=%v but maximal_order disagrees", ok))
		}
	}
	if ok {
		fmt.Printf("%s is primitive!\n", f)
	} else {
		fmt.Printf("%s is NOT primitive.\n", f)
	}
	if args.PrintCounts {
		printCounts(o.Counts())
	}
	return 0
}

func runSearch(args *cliparser.Args) int {
	rep, err := driver.Run(args.P, args.N, tableDir, driver.Options{
		ListAll:     args.ListAll,
		PrintCounts: args.PrintCounts,
		SlowConfirm: args.SlowConfirm,
	})
	if err != nil {
		return reportError(err)
	}
	for _, f := range rep.Found {
		fmt.Println(f)
	}
	if args.PrintCounts {
		fmt.Printf("number of primitive polynomials: %s\n", rep.N)
		printCounts(rep.Counts)
	}
	return 0
}

func printCounts(c *factorizer.OperationCount) {
	fmt.Println("operation counts:")
	fmt.Printf("  polynomials tested:   %d\n", c.PolysTested)
	fmt.Printf("  gcds:                 %d\n", c.GCDs)
	fmt.Printf("  primality tests:      %d\n", c.PrimalityTests)
	fmt.Printf("  squarings:            %d\n", c.Squarings)
	fmt.Printf("  trial divisions:      %d\n", c.TrialDivisions)
	for i, n := range c.PassedFilter {
		fmt.Printf("  passed filter %d:      %d\n", i+1, n)
	}
}

// reportError prints a single human-readable line to stderr and
// returns the exit code mandated for the error's kind; an untyped
// error is treated as an internal failure.
func reportError(err error) int {
	if e, ok := err.(*errors.Error); ok {
		fmt.Fprintf(os.Stderr, "%s, please email the author.\n", e.Error())
		return e.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "Error: %v, please email the author.\n", err)
	return 4
}
