package version

import (
	"strings"
	"testing"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name   string
		commit string
		date   string
		want   string
	}{
		{name: "dev build", commit: "unknown", date: "unknown", want: "colorsful version dev ("},
		{name: "short commit", commit: "abc", date: "2026-01-01T00:00:00Z", want: "commit: abc,"},
		{name: "long commit", commit: "0123456789abcdef", date: "2026-01-01T00:00:00Z", want: "commit: 01234567,"},
		{name: "commit without date", commit: "0123456789abcdef", date: "unknown", want: "colorsful version dev ("},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Info{Version: "dev", Commit: tt.commit, Date: tt.date, GoVersion: "go1.25", Platform: "linux/amd64"}
			if got := info.String(); !strings.Contains(got, tt.want) {
				t.Errorf("String() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	oldCommit, oldDate := Commit, Date
	defer func() { Commit, Date = oldCommit, oldDate }()

	Commit, Date = "unknown", "unknown"
	if got := String(); !strings.HasPrefix(got, "colorsful version "+Version) {
		t.Errorf("String() = %q", got)
	}
}

func TestUserAgent(t *testing.T) {
	got := UserAgent()
	if !strings.HasPrefix(got, Name+"/"+Version+" (") || !strings.HasSuffix(got, ")") {
		t.Errorf("UserAgent() = %q", got)
	}
}
