// Package main is the entrypoint for the metricconv command line tool.
// metricconv converts a single time reading between the supported bases
// and prints one line per base.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/reuschj/metric-time/pkg/metrictime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	timeFlag := flag.String("time", "", "time to convert, formatted h:mm:ss[.ns]; empty converts the current system time")
	kindFlag := flag.String("kind", "base24", "base the input time is in: base24, base12am, base12pm, or base10")
	rotationsFlag := flag.Bool("rotations", false, "also print clock hand angles for the input reading")
	flag.Parse()

	reading, err := readingFromFlags(*timeFlag, *kindFlag)
	if err != nil {
		return err
	}

	targets := []metrictime.Kind{
		metrictime.Base24(),
		metrictime.Base12(metrictime.AM),
		metrictime.Base10(),
	}
	for _, k := range targets {
		converted := reading.To(k)
		fmt.Printf("%-12s %s\n", converted.Kind().String()+":", converted.Components())
	}

	if *rotationsFlag {
		r := reading.Rotations()
		fmt.Printf("%-12s hours %.2f minutes %.2f seconds %.2f\n",
			"rotations:", r.Hours, r.Minutes, r.Seconds)
	}
	return nil
}

// readingFromFlags builds the input reading. The kind flag names the base
// the given time is read in; with no time, the reading is the current
// system time.
func readingFromFlags(timeArg, kindArg string) (metrictime.Time, error) {
	if timeArg == "" {
		return metrictime.Now(), nil
	}
	kind, err := metrictime.ParseKind(kindArg)
	if err != nil {
		return metrictime.Time{}, fmt.Errorf("parse kind %q: %w", kindArg, err)
	}
	c, err := metrictime.ParseComponents(timeArg)
	if err != nil {
		return metrictime.Time{}, fmt.Errorf("parse time %q: %w", timeArg, err)
	}
	return metrictime.NewTime(c, kind)
}
