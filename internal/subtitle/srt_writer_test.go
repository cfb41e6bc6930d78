package subtitle

import "testing"

const scenarioSRT = `1
00:00:01,000 --> 00:00:02,000
Hello

2
00:00:02,500 --> 00:00:03,000
World
`

func TestFormat(t *testing.T) {
	entries := []Entry{
		{Label: "1", StartTime: ms(1000), EndTime: ms(2000), Text: "Hello"},
		{Label: "2", StartTime: ms(2500), EndTime: ms(3000), Text: "World"},
	}

	if got := Format(entries); got != scenarioSRT {
		t.Errorf("Format() =\n%q\nwant\n%q", got, scenarioSRT)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestFormatWideHours(t *testing.T) {
	entries := []Entry{
		{Label: "1", StartTime: ms(360000000), EndTime: ms(360001000), Text: "Late"},
	}

	want := "1\n100:00:00,000 --> 100:00:01,000\nLate\n"
	if got := Format(entries); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	result := Parse(scenarioSRT)
	if got := Format(result.Entries); got != scenarioSRT {
		t.Errorf("round trip =\n%q\nwant\n%q", got, scenarioSRT)
	}
}

func TestScenarioAfter(t *testing.T) {
	result := Parse(scenarioSRT)
	changes := CloseGaps(result.Entries, ModeAfter)

	want := `1
00:00:01,000 --> 00:00:02,500
Hello

2
00:00:02,500 --> 00:00:03,000
World
`
	if changes != 1 {
		t.Errorf("expected 1 change, got %d", changes)
	}
	if got := Format(result.Entries); got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestScenarioBefore(t *testing.T) {
	result := Parse(scenarioSRT)
	changes := CloseGaps(result.Entries, ModeBefore)

	want := `1
00:00:01,000 --> 00:00:02,000
Hello

2
00:00:02,000 --> 00:00:03,000
World
`
	if changes != 1 {
		t.Errorf("expected 1 change, got %d", changes)
	}
	if got := Format(result.Entries); got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

