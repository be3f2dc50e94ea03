// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/aibor/mdgen/internal/mdgen"
)

const (
	name = "mdgen"

	linesMax       = 1 << 30
	titleLengthMax = 1 << 20
	workersMin     = 1
	workersMax     = 256
	chunkSizeMin   = 1
	chunkSizeMax   = 1 << 24

	usageMessage = `Usage of 'mdgen':
    mdgen [flags...]

Generates a markdown document made of random headings. The first heading is
always a level 1 heading, the second always a level 2 heading. All further
headings have random levels.

Generate the default benchmark fixture ./output.md:
	mdgen

Generate a reproducible document with short titles:
	mdgen -lines=10000 -titleLength=16 -seed=42 -output=/tmp/bench.md
`
)

type flags struct {
	config  mdgen.Config
	flagSet *flag.FlagSet

	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		config: mdgen.DefaultConfig(),
	}

	flags.initFlagset(output)

	return flags
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlags(output)

	err := flags.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func (f *flags) ParseArgs(args []string) error {
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, nothing else matters.
	if f.version {
		return nil
	}

	if f.flagSet.NArg() > 0 {
		return f.fail(fmt.Sprintf("%v", f.flagSet.Args()), ErrPositionalArgs)
	}

	// The default output path is relative as well.
	f.config.OutputPath, err = AbsoluteFilePath(f.config.OutputPath)
	if err != nil {
		return f.fail("output path", err)
	}

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		&LimitedIntValue{
			Value: &f.config.LineCount,
			Upper: linesMax,
		},
		"lines",
		"number of headings to generate",
	)

	flagSet.Var(
		&LimitedIntValue{
			Value: &f.config.TitleLength,
			Upper: titleLengthMax,
		},
		"titleLength",
		"number of random letters per heading title",
	)

	flagSet.Var(
		(*FilePath)(&f.config.OutputPath),
		"output",
		"path of the generated document. Existing files are overwritten",
	)

	flagSet.Var(
		&SeedValue{Value: &f.config.Seed},
		"seed",
		"random seed for a reproducible document (default random)",
	)

	flagSet.Var(
		&LimitedIntValue{
			Value: &f.config.Workers,
			Lower: workersMin,
			Upper: workersMax,
		},
		"workers",
		"number of concurrent chunk renderers. With more than 1, the "+
			"document depends on the seed and the chunk size",
	)

	flagSet.Var(
		&LimitedIntValue{
			Value: &f.config.ChunkSize,
			Lower: chunkSizeMin,
			Upper: chunkSizeMax,
		},
		"chunkSize",
		"number of headings per chunk if more than 1 worker is used",
	)

	flagSet.BoolVar(
		&f.config.Sync,
		"sync",
		f.config.Sync,
		"flush the document to storage before exiting",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
