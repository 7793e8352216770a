package buildinfo

import "testing"

func withMetadata(t *testing.T, version, commit, date string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := Version, CommitHash, BuildDate
	t.Cleanup(func() { Version, CommitHash, BuildDate = oldVersion, oldCommit, oldDate })
	Version, CommitHash, BuildDate = version, commit, date
}

func TestCurrentUsesOverrides(t *testing.T) {
	withMetadata(t, "v1.2.3", "abc1234", "2026-02-12T10:11:12Z")

	info := Current()
	if info.Version != "v1.2.3" {
		t.Fatalf("version = %q, want %q", info.Version, "v1.2.3")
	}
	if info.CommitHash != "abc1234" {
		t.Fatalf("commit hash = %q, want %q", info.CommitHash, "abc1234")
	}
	if info.BuildDate != "2026-02-12 10:11:12 UTC" {
		t.Fatalf("build date = %q, want %q", info.BuildDate, "2026-02-12 10:11:12 UTC")
	}
	if got, want := info.String(), "warrior v1.2.3 (commit abc1234, built 2026-02-12 10:11:12 UTC)"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCurrentPopulatesUnknowns(t *testing.T) {
	withMetadata(t, "", "", "")

	info := Current()
	if info.Version == "" || info.CommitHash == "" || info.BuildDate == "" {
		t.Fatalf("empty field in %+v", info)
	}
}
