package gate_test

import (
	"testing"

	"github.com/omnihub/omnihub-api/internal/domain/gate"
)

func TestCostTable(t *testing.T) {
	expected := map[gate.Tool]int{
		gate.ToolPhoneLookup:  1,
		gate.ToolEyeconLookup: 1,
		gate.ToolTempEmail:    1,
		gate.ToolYoutube:      3,
		gate.ToolImageEnhance: 2,
		gate.ToolTamashaOTP:   2,
		gate.ToolLiveTV:       1,
	}

	for tool, want := range expected {
		got, ok := gate.Cost(tool)
		if !ok {
			t.Fatalf("tool %s missing from cost table", tool)
		}
		if got != want {
			t.Fatalf("tool %s costs %d, want %d", tool, got, want)
		}
	}

	if len(gate.Costs()) != len(expected) {
		t.Fatalf("cost table has %d entries, want %d", len(gate.Costs()), len(expected))
	}

	if _, ok := gate.Cost("bitcoin_miner"); ok {
		t.Fatal("unknown tool must not have a cost")
	}
}

func TestCostsReturnsCopy(t *testing.T) {
	first := gate.Costs()
	first["phone_lookup"] = 999

	second := gate.Costs()
	if second["phone_lookup"] == 999 {
		t.Fatal("Costs must return a copy, not the shared map")
	}
}
