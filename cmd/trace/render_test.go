package main

import (
	"strings"
	"testing"

	"github.com/automoto/ledgehop/locomotion"
	"github.com/automoto/ledgehop/scenario"
)

func TestRenderResult(t *testing.T) {
	res := &scenario.Result{
		Transitions: []scenario.Transition{
			{Frame: 2, Tick: 1, From: locomotion.Falling, To: locomotion.Grounded},
			{Frame: 11, Tick: 9, From: locomotion.Grounded, To: locomotion.Jumping},
		},
		Frames:  40,
		Ticks:   33,
		Final:   locomotion.Falling,
		FeetX:   100,
		FeetY:   120,
		FellOut: true,
	}

	out := renderResult("hop", "training", res)
	for _, want := range []string{"hop", "training", "40 frames", "falling", "grounded", "jumping", "f11", "fell out of the map"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderResultWithoutTransitions(t *testing.T) {
	out := renderResult("idle", "room", &scenario.Result{Final: locomotion.Grounded})
	if !strings.Contains(out, "no transitions") {
		t.Errorf("output = %s", out)
	}
	if strings.Contains(out, "fell out") {
		t.Errorf("unexpected fall warning: %s", out)
	}
}
