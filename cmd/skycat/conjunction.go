package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcturuslab/skycore/eventfinder"
	"github.com/arcturuslab/skycore/units"
)

var conjunctionFlags struct {
	object1   string
	object2   string
	days      float64
	maxEvents int
}

var conjunctionCmd = &cobra.Command{
	Use:   "conjunction",
	Short: "Times two objects reach minimum angular separation",
	Long: `conjunction finds every time, over the requested span starting at
the configured instant, that --object1 and --object2 reach a local
minimum of angular separation as seen from the observer.`,
	RunE: runConjunction,
}

func init() {
	flags := conjunctionCmd.Flags()
	flags.StringVar(&conjunctionFlags.object1, "object1", "", "first object name")
	flags.StringVar(&conjunctionFlags.object2, "object2", "sun", "second object name")
	flags.Float64Var(&conjunctionFlags.days, "days", 365.0, "span to search, in days")
	flags.IntVar(&conjunctionFlags.maxEvents, "max-events", 32, "maximum number of events to return")
}

func runConjunction(cmd *cobra.Command, args []string) error {
	if conjunctionFlags.object1 == "" {
		return fmt.Errorf("skycat: --object1 is required")
	}

	dyn, err := buildDynamics()
	if err != nil {
		return err
	}

	obj1, err := resolveSolarSystemObject(conjunctionFlags.object1)
	if err != nil {
		return err
	}
	obj2, err := resolveSolarSystemObject(conjunctionFlags.object2)
	if err != nil {
		return err
	}

	start := dyn.Coords.JDTT()
	stop := start + conjunctionFlags.days
	events := eventfinder.FindConjunctions(dyn, obj1, obj2, start, stop, conjunctionFlags.maxEvents)

	if len(events) == 0 {
		fmt.Printf("no conjunctions between %s and %s in the next %.1f days\n",
			conjunctionFlags.object1, conjunctionFlags.object2, conjunctionFlags.days)
		return nil
	}
	for _, ev := range events {
		fmt.Printf("JD %.6f  separation %.4f deg\n", ev.JD, units.NewAngle(ev.Value).Degrees())
	}
	return nil
}
