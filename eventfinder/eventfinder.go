// Package eventfinder implements the generic bracketed root-finders that
// drive every composed almanac search in the core (spec §4.8): local
// extrema above or below a threshold, and threshold crossings in a chosen
// direction. Both operate on an arbitrary scalar function of a Dynamics
// instant and up to two catalog objects, recomputing each object's
// ephemeris at every sample the way the original event finder does, and
// save/restore the caller's coords time and object ephemerides on
// return.
//
// The recursive sliding-window refinement here is ported directly from
// the original SSEvent::findEvents/findEqualityEvents algorithm rather
// than the teacher's golden-section/bisection routines in package search:
// the spec pins down this exact bracket-then-recurse behavior (recurse
// into a 2-step-wide window at step/10 until the step drops below one
// second), which golden section search does not reproduce bit-for-bit.
package eventfinder

import (
	"math"

	"github.com/arcturuslab/skycore/catalog"
)

// oneSecondDays is one second expressed as a day fraction: refinement
// stops once the step is finer than this.
const oneSecondDays = 1.0 / 86400.0

// Func evaluates an event condition for one or two objects given the
// current state of dyn. Passing nil for obj2 is valid for single-object
// conditions (altitude, ecliptic longitude, and so on).
type Func func(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object) float64

// Event is one located extremum or crossing: the TDB Julian date and the
// function's value there.
type Event struct {
	JD    float64
	Value float64
}

// sample advances dyn to t, recomputes the observer state and obj1/obj2's
// ephemerides (either may be nil), and evaluates f.
func sample(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, t float64, f Func) float64 {
	dyn.Coords.SetTime(t)
	_ = dyn.SetObserverState()
	if obj1 != nil {
		_ = obj1.ComputeEphemeris(dyn)
	}
	if obj2 != nil {
		_ = obj2.ComputeEphemeris(dyn)
	}
	return f(dyn, obj1, obj2)
}

// FindEvents locates local extrema of f over [start, stop] (spec §4.8
// "findEvents"): minima when min is true, maxima when min is false,
// restricted to values at or beyond limit (pass +Inf/-Inf to disable the
// threshold). step is the initial coarse sampling interval in days; the
// search refines into a window 1/10th as coarse whenever three
// consecutive samples bracket a qualifying extremum, until the step is
// finer than one second. At most maxEvents events are returned.
func FindEvents(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop, step float64, min bool, limit float64, f Func, maxEvents int) []Event {
	saveTime := dyn.Coords.JDTT()
	defer sample(dyn, obj1, obj2, saveTime, f)

	var events []Event
	findEventsRec(dyn, obj1, obj2, start, stop, step, min, limit, f, &events, maxEvents)
	if len(events) >= maxEvents {
		dyn.Log.Warn().Int("max_events", maxEvents).Float64("start", start).Float64("stop", stop).
			Msg("eventfinder: FindEvents hit its event cap, search window may hold more events")
	}
	return events
}

func findEventsRec(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop, step float64, min bool, limit float64, f Func, events *[]Event, maxEvents int) {
	oldVal, curVal, newVal := math.Inf(1), math.Inf(1), math.Inf(1)

	for t := start; t <= stop && len(*events) < maxEvents; t += step {
		if !math.IsInf(curVal, 0) {
			oldVal = curVal
		}
		if !math.IsInf(newVal, 0) {
			curVal = newVal
		}
		newVal = sample(dyn, obj1, obj2, t, f)

		if math.IsInf(oldVal, 0) || math.IsInf(curVal, 0) || math.IsInf(newVal, 0) {
			continue
		}

		var bracketed bool
		if min {
			bracketed = newVal > curVal && curVal < oldVal && curVal <= limit
		} else {
			bracketed = newVal < curVal && curVal > oldVal && curVal >= limit
		}
		if !bracketed {
			continue
		}

		if step < oneSecondDays {
			*events = append(*events, Event{JD: t - step, Value: curVal})
			return
		}
		findEventsRec(dyn, obj1, obj2, t-step*2.0, t, step/10.0, min, limit, f, events, maxEvents)
		if len(*events) >= maxEvents {
			return
		}
	}
}

// FindEqualityEvents locates times when f crosses target (spec §4.8
// "findEqualityEvents"): from below when below is true, from above when
// below is false. Refinement follows the same recursive step/10 scheme
// as FindEvents.
func FindEqualityEvents(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop, step float64, below bool, target float64, f Func, maxEvents int) []Event {
	saveTime := dyn.Coords.JDTT()
	defer sample(dyn, obj1, obj2, saveTime, f)

	var events []Event
	findEqualityEventsRec(dyn, obj1, obj2, start, stop, step, below, target, f, &events, maxEvents)
	if len(events) >= maxEvents {
		dyn.Log.Warn().Int("max_events", maxEvents).Float64("start", start).Float64("stop", stop).
			Msg("eventfinder: FindEqualityEvents hit its event cap, search window may hold more events")
	}
	return events
}

func findEqualityEventsRec(dyn *catalog.Dynamics, obj1, obj2 *catalog.Object, start, stop, step float64, below bool, target float64, f Func, events *[]Event, maxEvents int) {
	oldVal, curVal := math.Inf(1), math.Inf(1)

	for t := start; t <= stop && len(*events) < maxEvents; t += step {
		if !math.IsInf(curVal, 0) {
			oldVal = curVal
		}
		curVal = sample(dyn, obj1, obj2, t, f)

		if math.IsInf(oldVal, 0) || math.IsInf(curVal, 0) {
			continue
		}

		var crossed bool
		if below {
			crossed = curVal >= target && oldVal < target
		} else {
			crossed = curVal <= target && oldVal > target
		}
		if !crossed {
			continue
		}

		if step < oneSecondDays {
			*events = append(*events, Event{JD: t, Value: curVal})
			return
		}
		findEqualityEventsRec(dyn, obj1, obj2, t-step, t, step/10.0, below, target, f, events, maxEvents)
		if len(*events) >= maxEvents {
			return
		}
	}
}
