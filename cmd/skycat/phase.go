package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcturuslab/skycore/coordinates"
	"github.com/arcturuslab/skycore/eventfinder"
)

var phaseFlags struct {
	days float64
}

var phaseNames = map[float64]string{
	eventfinder.NewMoon:      "new moon",
	eventfinder.FirstQuarter: "first quarter",
	eventfinder.FullMoon:     "full moon",
	eventfinder.LastQuarter:  "last quarter",
}

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Current Moon illumination and upcoming lunar phases",
	Long: `phase reports the Moon's current phase angle and illuminated
fraction, then lists every new moon, first quarter, full moon, and last
quarter over the requested span starting at the configured instant.`,
	RunE: runPhase,
}

func init() {
	phaseCmd.Flags().Float64Var(&phaseFlags.days, "days", 90.0, "span to search, in days")
}

func runPhase(cmd *cobra.Command, args []string) error {
	dyn, err := buildDynamics()
	if err != nil {
		return err
	}

	moon, err := resolveSolarSystemObject("moon")
	if err != nil {
		return err
	}
	sun, err := resolveSolarSystemObject("sun")
	if err != nil {
		return err
	}

	if err := moon.ComputeEphemeris(dyn); err != nil {
		return err
	}
	if err := sun.ComputeEphemeris(dyn); err != nil {
		return err
	}

	sunToMoon := moon.Direction.Scale(moon.Distance).Sub(sun.Direction.Scale(sun.Distance))
	phaseAngleDeg := coordinates.PhaseAngle(moon.Direction, sunToMoon)
	illuminated := coordinates.FractionIlluminated(phaseAngleDeg)
	fmt.Printf("phase angle:  %.2f deg\n", phaseAngleDeg)
	fmt.Printf("illuminated:  %.1f%%\n", illuminated*100.0)

	start := dyn.Coords.JDTT()
	stop := start + phaseFlags.days
	events := eventfinder.MoonPhases(dyn, moon, sun, start, stop)

	if len(events) == 0 {
		fmt.Printf("no phase events in the next %.1f days\n", phaseFlags.days)
		return nil
	}
	fmt.Println("upcoming phases:")
	for _, ev := range events {
		fmt.Printf("  JD %.6f  %s\n", ev.JD, phaseNames[ev.Value])
	}
	return nil
}
