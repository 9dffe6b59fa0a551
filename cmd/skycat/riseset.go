package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcturuslab/skycore/catalog"
	"github.com/arcturuslab/skycore/eventfinder"
)

var risesetFlags struct {
	object string
	days   float64
}

var risesetCmd = &cobra.Command{
	Use:   "riseset",
	Short: "Rise and set times for an object over the following days",
	Long: `riseset finds every rise and set crossing of an object's horizon
over the requested span, starting at the configured instant. The Sun
uses its own disk-radius threshold (SunriseSunset); every other object
uses the standard refraction-only horizon (Risings/Settings).`,
	RunE: runRiseset,
}

func init() {
	flags := risesetCmd.Flags()
	flags.StringVar(&risesetFlags.object, "object", "sun", "object name (sun, moon, mercury..pluto)")
	flags.Float64Var(&risesetFlags.days, "days", 1.0, "span to search, in days")
}

func runRiseset(cmd *cobra.Command, args []string) error {
	dyn, err := buildDynamics()
	if err != nil {
		return err
	}

	obj, err := resolveSolarSystemObject(risesetFlags.object)
	if err != nil {
		return err
	}

	start := dyn.Coords.JDTT()
	stop := start + risesetFlags.days

	var events []eventfinder.Event
	if risesetFlags.object == "sun" {
		events = eventfinder.SunriseSunset(dyn, obj, start, stop)
	} else {
		rises := eventfinder.Risings(dyn, obj, start, stop)
		sets := eventfinder.Settings(dyn, obj, start, stop)
		events = mergeRiseSet(rises, sets)
	}

	if len(events) == 0 {
		fmt.Printf("no rise/set events for %s in the next %.2f days\n", risesetFlags.object, risesetFlags.days)
		return nil
	}
	for _, ev := range events {
		fmt.Printf("%s  JD %.6f  %s\n", risesetFlags.object, ev.JD, altitudeDirection(dyn, obj, ev))
	}
	return nil
}

// mergeRiseSet interleaves rise/set events by time the same way
// SunriseSunset merges its own two FindEqualityEvents calls.
func mergeRiseSet(rises, sets []eventfinder.Event) []eventfinder.Event {
	out := make([]eventfinder.Event, 0, len(rises)+len(sets))
	i, j := 0, 0
	for i < len(rises) && j < len(sets) {
		if rises[i].JD <= sets[j].JD {
			out = append(out, rises[i])
			i++
		} else {
			out = append(out, sets[j])
			j++
		}
	}
	out = append(out, rises[i:]...)
	out = append(out, sets[j:]...)
	return out
}

// altitudeDirection reports whether ev is a rise or a set by re-sampling
// the object's altitude slope a minute either side of the event time.
func altitudeDirection(dyn *catalog.Dynamics, obj *catalog.Object, ev eventfinder.Event) string {
	const epsilon = 1.0 / 1440.0
	before := sampleAltitude(dyn, obj, ev.JD-epsilon)
	after := sampleAltitude(dyn, obj, ev.JD+epsilon)
	if after > before {
		return "rise"
	}
	return "set"
}

func sampleAltitude(dyn *catalog.Dynamics, obj *catalog.Object, jd float64) float64 {
	dyn.Coords.SetTime(jd)
	_ = dyn.SetObserverState()
	_ = obj.ComputeEphemeris(dyn)
	alt, _, _ := dyn.Coords.AltAz(obj.Direction)
	return alt.Degrees()
}
