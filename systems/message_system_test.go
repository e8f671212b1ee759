package systems

import "testing"

func TestMessageLogKeepsNewest(t *testing.T) {
	log := NewMessageLog()
	log.MaxMessages = 3
	for _, m := range []string{"a", "b", "c", "d"} {
		log.Add(m)
	}
	log.AddAlert("trap")

	recent := log.RecentMessages(10)
	if len(recent) != 3 {
		t.Fatalf("kept %d messages, want 3", len(recent))
	}
	if recent[0].Text != "trap" || recent[0].Type != MessageTypeAlert {
		t.Errorf("newest = %+v", recent[0])
	}
	if recent[2].Text != "c" {
		t.Errorf("oldest kept = %q, want c", recent[2].Text)
	}
	if !log.Contains("trap", MessageTypeAlert) || log.Contains("trap", MessageTypeError) {
		t.Errorf("Contains does not match on type")
	}
}
