package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arcturuslab/skycore/satellite"
)

var passFlags struct {
	tleFile   string
	minAltDeg float64
	days      float64
}

var passCmd = &cobra.Command{
	Use:   "pass",
	Short: "Rise, culmination, and set times for an Earth satellite pass",
	Long: `pass reads a two-line element set from --tle-file (name line
optional, then the two standard TLE lines) and finds every rise,
culmination, and set event at the observer's location over the
requested span, propagated via SGP4/SDP4.`,
	RunE: runPass,
}

func init() {
	flags := passCmd.Flags()
	flags.StringVar(&passFlags.tleFile, "tle-file", "", "path to a TLE file (name line optional, then two element lines)")
	flags.Float64Var(&passFlags.minAltDeg, "min-alt", 0.0, "minimum altitude to report, degrees")
	flags.Float64Var(&passFlags.days, "days", 1.0, "span to search, in days")
	_ = passCmd.MarkFlagRequired("tle-file")
}

func runPass(cmd *cobra.Command, args []string) error {
	sat, err := readTLE(passFlags.tleFile)
	if err != nil {
		return err
	}

	dyn, err := buildDynamics()
	if err != nil {
		return err
	}

	start := dyn.Coords.JDTT()
	stop := start + passFlags.days
	lat := viper.GetFloat64("lat")
	lon := viper.GetFloat64("lon")

	events, err := satellite.FindEvents(sat, lat, lon, start, stop, passFlags.minAltDeg)
	if err != nil {
		return errors.Wrap(err, "skycat: finding satellite passes")
	}
	if len(events) == 0 {
		fmt.Printf("no passes for %s above %.1f deg in the next %.2f days\n", sat.Name, passFlags.minAltDeg, passFlags.days)
		return nil
	}
	for _, ev := range events {
		fmt.Printf("%-16s %-12s JD %.6f  alt %6.2f deg\n", sat.Name, passKindName(ev.Kind), ev.T, ev.AltDeg)
	}
	return nil
}

func passKindName(kind int) string {
	switch kind {
	case satellite.Rise:
		return "rise"
	case satellite.Culmination:
		return "culmination"
	case satellite.Set:
		return "set"
	default:
		return "?"
	}
}

// readTLE parses a TLE file: an optional name line followed by the two
// standard element lines (each starting with "1 " or "2 ").
func readTLE(path string) (satellite.Sat, error) {
	f, err := os.Open(path)
	if err != nil {
		return satellite.Sat{}, errors.Wrap(err, "skycat: opening TLE file")
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return satellite.Sat{}, errors.Wrap(err, "skycat: reading TLE file")
	}

	var name, line1, line2 string
	switch {
	case len(lines) >= 3:
		name, line1, line2 = strings.TrimSpace(lines[0]), lines[1], lines[2]
	case len(lines) == 2:
		name, line1, line2 = path, lines[0], lines[1]
	default:
		return satellite.Sat{}, errors.Errorf("skycat: TLE file %q needs at least two element lines", path)
	}

	return satellite.NewSat(name, line1, line2), nil
}
