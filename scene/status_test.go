package scene

import "testing"

func TestConnectionStatusPredicates(t *testing.T) {
	cases := []struct {
		status       ConnectionStatus
		source, dest bool
	}{
		{StatusDisconnected, false, false},
		{StatusSource, true, false},
		{StatusDestinations, false, true},
		{StatusBoth, true, true},
	}
	for _, c := range cases {
		if c.status.HasSource() != c.source {
			t.Errorf("expected HasSource of %v to be %v", c.status, c.source)
		}
		if c.status.HasDestinations() != c.dest {
			t.Errorf("expected HasDestinations of %v to be %v", c.status, c.dest)
		}
		if c.status.Connected() != (c.source || c.dest) {
			t.Errorf("expected Connected of %v to be %v", c.status, c.source || c.dest)
		}
	}
}

func TestConnectionStatusString(t *testing.T) {
	if StatusDisconnected.String() != "disconnected" {
		t.Errorf("unexpected name for StatusDisconnected: %s", StatusDisconnected)
	}
	if StatusBoth.String() != "source+destinations" {
		t.Errorf("unexpected name for StatusBoth: %s", StatusBoth)
	}
}
