// This file is part of Riskyv.
//
// Riskyv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Riskyv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Riskyv.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/riskyv/gpu/gles31"
	"github.com/jetsetilly/riskyv/harness"
	"github.com/jetsetilly/riskyv/logger"
	"github.com/jetsetilly/riskyv/memory"
	"github.com/jetsetilly/riskyv/modalflag"
	"github.com/jetsetilly/riskyv/paths"
	"github.com/jetsetilly/riskyv/performance"
	"github.com/jetsetilly/riskyv/platform"
	"github.com/jetsetilly/riskyv/prefs"
	"github.com/jetsetilly/riskyv/resources"
	"github.com/jetsetilly/riskyv/statsview"
	"github.com/jetsetilly/riskyv/version"
)

// exit values
const (
	exitOK    = 0
	exitUsage = 10
	exitFatal = 20
)

// the number of log entries printed after a fatal error
const logTail = 10

// usageError is returned by a mode when the command line is wrong
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

func init() {
	// SDL and OpenGL must be driven from the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch is the top level error boundary. it returns the process exit value.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PATCH")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitUsage
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Fprintf(stdout, "%s %s (%s)\n", version.ApplicationName, v, r)
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdout, stderr)
	case "PATCH":
		err = patch(md, stdout, stderr)
	}

	if err != nil {
		col := logger.NewColorizer(stderr)
		fmt.Fprintf(col, "* error in %s mode: %v\n", md, err)

		var ue usageError
		if errors.As(err, &ue) {
			return exitUsage
		}

		logger.Tail(stderr, logTail)
		return exitFatal
	}

	return exitOK
}

// flags common to every mode
type common struct {
	log   *bool
	prefs *string
}

func addCommon(md *modalflag.Modes) common {
	return common{
		log:   md.AddBool("log", false, "echo log to stderr"),
		prefs: md.AddString("prefs", "", "preferences for this session (key::value; key::value)"),
	}
}

// apply the common flags and load the preferences. the returned function
// must be called when the mode has finished
func (c common) apply(stderr io.Writer) (*harness.Preferences, func(), error) {
	if *c.log {
		logger.SetEcho(logger.NewColorizer(stderr), true)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(*c.prefs)
	done := func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		done()
		return nil, nil, err
	}

	pref, err := harness.NewPreferences(pth)
	if err != nil {
		done()
		return nil, nil, err
	}

	return pref, done, nil
}

func run(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is the memory snapshot. If it is not given the\nsnapshot named by the assets.snapshot preference is used.")

	cm := addCommon(md)
	stats := md.AddBool("statsview", false, "launch the runtime statistics viewer")
	save := md.AddBool("saveprefs", false, "save preferences after a clean exit")
	profile := md.AddString("profile", "none", "generate profiles: cpu, mem, all")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return usageError{err}
	}

	if len(md.RemainingArgs()) > 1 {
		return usageError{fmt.Errorf("too many arguments for %s mode", md)}
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return usageError{err}
	}

	pref, done, err := cm.apply(stderr)
	if err != nil {
		return err
	}
	defer done()

	if md.GetArg(0) != "" {
		if err := pref.Snapshot.Set(md.GetArg(0)); err != nil {
			return err
		}
	}

	if *stats {
		stop := statsview.Launch(stdout)
		defer stop()
	}

	return performance.RunProfiler(prof, "riskyv", func() error {
		plt, err := platform.NewPlatform(platform.Config{
			Title:  version.Title(),
			Width:  int32(pref.WindowWidth.Get().(int)),
			Height: int32(pref.WindowHeight.Get().(int)),
			VSync:  pref.VSync.Get().(bool),
		})
		if err != nil {
			return err
		}
		defer plt.Destroy()

		dev, err := gles31.NewDevice()
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "gles31", "%s", dev.Version())

		h, err := harness.New(dev, pref)
		if err != nil {
			return err
		}
		defer h.Destroy()

		// ctrl-c is treated like closing the window
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		if err := h.Run(plt, interrupt); err != nil {
			return err
		}

		if *save {
			return pref.Save()
		}
		return nil
	})
}

func patch(md *modalflag.Modes, stdout io.Writer, stderr io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Patches the program counter and device tree pointer of a memory snapshot\nand writes the result to the output file.")

	cm := addCommon(md)
	output := md.AddString("o", "", "output file (required)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return usageError{err}
	}

	if len(md.RemainingArgs()) != 1 {
		return usageError{fmt.Errorf("a single memory snapshot is required for %s mode", md)}
	}
	if *output == "" {
		return usageError{fmt.Errorf("an output file is required for %s mode", md)}
	}

	pref, done, err := cm.apply(stderr)
	if err != nil {
		return err
	}
	defer done()

	data, err := resources.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	snap, err := memory.NewSnapshot(data, pref.MemorySpec())
	if err != nil {
		return err
	}

	if err := os.WriteFile(*output, snap.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s: %s\n", *output, snap.Spec())

	return nil
}
