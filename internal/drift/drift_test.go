package drift

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		declared    string
		exists      bool
		recorded    string
		hasRecorded bool
		want        Status
	}{
		{"missing env", "h1", false, "", false, Absent},
		{"missing env ignores record", "h1", false, "h1", true, Absent},
		{"matching record", "h1", true, "h1", true, Synced},
		{"differing record", "h1", true, "h2", true, Drifted},
		{"no record", "h1", true, "", false, Drifted},
		{"empty record present", "h1", true, "", true, Drifted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.declared, tt.exists, tt.recorded, tt.hasRecorded)
			if got != tt.want {
				t.Errorf("Classify(%q, %v, %q, %v) = %v, want %v",
					tt.declared, tt.exists, tt.recorded, tt.hasRecorded, got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{Absent: "absent", Synced: "synced", Drifted: "drifted", Status(99): "unknown"} {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
