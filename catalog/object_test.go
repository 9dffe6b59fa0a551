package catalog

import (
	"math"
	"testing"

	"github.com/arcturuslab/skycore/identifier"
)

func TestTypeCodeRoundTrip(t *testing.T) {
	for _, row := range typeCodes {
		if got := row.t.Code(); got != row.code {
			t.Errorf("Type(%d).Code() = %q, want %q", row.t, got, row.code)
		}
		if got := CodeToType(row.code); got != row.t {
			t.Errorf("CodeToType(%q) = %d, want %d", row.code, got, row.t)
		}
	}
}

func TestCodeToTypeUnknown(t *testing.T) {
	if got := CodeToType("ZZ"); got != TypeNonexistent {
		t.Errorf("CodeToType(unknown) = %d, want TypeNonexistent", got)
	}
	if got := TypeNonexistent.Code(); got != "" {
		t.Errorf("TypeNonexistent.Code() = %q, want empty", got)
	}
}

func TestNewObjectDefaults(t *testing.T) {
	o := NewObject(TypeStar)
	if !math.IsInf(o.Distance, 1) {
		t.Errorf("Distance = %v, want +Inf", o.Distance)
	}
	if !math.IsInf(o.Magnitude, 1) {
		t.Errorf("Magnitude = %v, want +Inf", o.Magnitude)
	}
}

func TestObjectNamesAndIdentifiers(t *testing.T) {
	o := NewObject(TypeStar)
	o.Names = []string{"Sirius", "Alpha CMa"}

	if got := o.GetName(0); got != "Sirius" {
		t.Errorf("GetName(0) = %q, want Sirius", got)
	}
	if got := o.GetName(5); got != "" {
		t.Errorf("GetName(out of range) = %q, want empty", got)
	}

	hr := identifier.New(identifier.CatHR, 2491)
	if !o.AddIdentifier(hr) {
		t.Fatal("AddIdentifier returned false for a new identifier")
	}
	if o.AddIdentifier(hr) {
		t.Error("AddIdentifier returned true for a duplicate")
	}
	if o.AddIdentifier(identifier.Identifier(0)) {
		t.Error("AddIdentifier returned true for the zero identifier")
	}

	if got := o.GetIdentifier(identifier.CatHR); got != hr {
		t.Errorf("GetIdentifier(CatHR) = %v, want %v", got, hr)
	}
	if got := o.GetIdentifier(identifier.CatHD); !got.IsZero() {
		t.Errorf("GetIdentifier(CatHD) = %v, want zero", got)
	}
}

func TestComputeEphemerisNoDataReturnsError(t *testing.T) {
	o := NewObject(TypeStar)
	if err := o.ComputeEphemeris(&Dynamics{}); err == nil {
		t.Error("expected error for a star Object with no StarData")
	}

	deepSky := NewObject(TypeGalaxy)
	if err := deepSky.ComputeEphemeris(&Dynamics{}); err != nil {
		t.Errorf("deep-sky ComputeEphemeris should be a no-op, got %v", err)
	}
}
