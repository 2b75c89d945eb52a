package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfig = ""
		flagChannels = nil
		flagFormat = "table"
	})
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// ─── Argument Parsing ───────────────────────────────────────────────────────

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    []uint8
		wantErr bool
	}{
		{"single", "7", []uint8{7}, false},
		{"list", "1,2,41", []uint8{1, 2, 41}, false},
		{"spaces and dupes", " 3, 3 ,5", []uint8{3, 5}, false},
		{"out of range", "300", nil, true},
		{"garbage", "1,x", nil, true},
		{"empty", ",,", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDs(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIDs(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseIDs(%q) = %v, want %v", tt.arg, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseIDs(%q)[%d] = %d, want %d", tt.arg, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanTargetsDefaultSweep(t *testing.T) {
	ids, err := scanTargets(nil)
	if err != nil {
		t.Fatalf("scanTargets(nil) error = %v", err)
	}
	if len(ids) != 250 {
		t.Fatalf("default sweep covers %d ids, want 250", len(ids))
	}
	if ids[0] != 1 || ids[len(ids)-1] != 250 {
		t.Errorf("default sweep spans [%d, %d], want [1, 250]", ids[0], ids[len(ids)-1])
	}
}

func TestParseParamRef(t *testing.T) {
	if idx, ok := parseParamRef("0x2007"); !ok || idx != 0x2007 {
		t.Errorf("parseParamRef(0x2007) = (%#04x, %v)", idx, ok)
	}
	if idx, ok := parseParamRef("8199"); !ok || idx != 0x2007 {
		t.Errorf("parseParamRef(8199) = (%#04x, %v)", idx, ok)
	}
	if _, ok := parseParamRef("limit_torque"); ok {
		t.Error("parseParamRef(limit_torque) reported numeric")
	}
}

// ─── Commands Against The Simulated Fleet ───────────────────────────────────

func TestScanFindsSimFleet(t *testing.T) {
	out, err := execute(t, "scan", "1,2,3,4,9")
	if err != nil {
		t.Fatalf("scan error = %v\noutput:\n%s", err, out)
	}
	for _, want := range []string{"can0", "can1", "RS00", "RS04"} {
		if !strings.Contains(out, want) {
			t.Errorf("scan output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "Missing: [9]") {
		t.Errorf("scan output missing the missing set:\n%s", out)
	}
}

func TestScanNoDevicesFails(t *testing.T) {
	if _, err := execute(t, "scan", "99,100"); err == nil {
		t.Error("scan with only absent ids succeeded, want exit error")
	}
}

func TestReadDecodesTypedParameter(t *testing.T) {
	out, err := execute(t, "read", "1", "limit_torque")
	if err != nil {
		t.Fatalf("read error = %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "14.000000") {
		t.Errorf("read output missing decoded torque limit:\n%s", out)
	}
	if !strings.Contains(out, "0x2007") {
		t.Errorf("read output missing parameter index:\n%s", out)
	}
}

func TestReadByNumericIndex(t *testing.T) {
	out, err := execute(t, "read", "3", "0x3007")
	if err != nil {
		t.Fatalf("read error = %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "24000") {
		t.Errorf("read output missing bus voltage:\n%s", out)
	}
}

func TestStateReflectsCommandedPosition(t *testing.T) {
	// Separate invocations rebuild the simulator, so state alone
	// must show the resting pose.
	out, err := execute(t, "state", "2")
	if err != nil {
		t.Fatalf("state error = %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "can0") {
		t.Errorf("state output missing channel:\n%s", out)
	}
}

func TestEnableUnknownDeviceFails(t *testing.T) {
	if _, err := execute(t, "enable", "120"); err == nil {
		t.Error("enable on absent device succeeded, want exit error")
	}
}

func TestBadFormatRejected(t *testing.T) {
	if _, err := execute(t, "scan", "1", "--format", "yaml"); err == nil {
		t.Error("unknown --format accepted, want error")
	}
}
