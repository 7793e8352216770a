package failedcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/agusx1211/warrior/internal/config"
	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/snapshot"
)

func TestRecordUnknownCommandPersistsMetadata(t *testing.T) {
	t.Setenv("WARRIOR_HOME", t.TempDir())
	t.Setenv("WARRIOR_DATA_DIR", "/tmp/warrior-data")

	argv := []string{"warrior", "togle", "daily", "hello world"}
	rec, path, err := Default().Record(errors.New(`unknown command "togle" for "warrior"`), argv)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Record() returned nil record")
	}
	if rec.Kind != KindUnknownCommand {
		t.Fatalf("kind = %q, want %q", rec.Kind, KindUnknownCommand)
	}
	if rec.Executable != "warrior" {
		t.Fatalf("executable = %q, want %q", rec.Executable, "warrior")
	}
	if len(rec.Args) != 3 || rec.Args[0] != "togle" {
		t.Fatalf("args = %v, want argv without executable", rec.Args)
	}
	if rec.Env["WARRIOR_DATA_DIR"] != "/tmp/warrior-data" {
		t.Fatalf("env WARRIOR_DATA_DIR = %q", rec.Env["WARRIOR_DATA_DIR"])
	}
	if !strings.Contains(rec.Command, `"hello world"`) {
		t.Fatalf("command = %q, want quoted arg with space", rec.Command)
	}
	wantDir := filepath.Join(config.Dir(), DirName)
	if !strings.HasPrefix(path, wantDir+string(os.PathSeparator)) {
		t.Fatalf("path = %q, want prefix %q", path, wantDir)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	var persisted Record
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if persisted.ID != rec.ID {
		t.Fatalf("persisted ID = %q, want %q", persisted.ID, rec.ID)
	}
	if persisted.Kind != KindUnknownCommand {
		t.Fatalf("persisted kind = %q, want %q", persisted.Kind, KindUnknownCommand)
	}
}

func TestClassify(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int("limit", 0, "")
	parseErr := fs.Parse([]string{"--limit", "abc"})
	if parseErr == nil {
		t.Fatal("expected parse error for invalid int flag")
	}

	tests := []struct {
		name string
		err  error
		want Kind
		ok   bool
	}{
		{
			name: "unknown command",
			err:  errors.New(`unknown command "togle" for "warrior"`),
			want: KindUnknownCommand,
			ok:   true,
		},
		{
			name: "flag parse invalid value",
			err:  parseErr,
			want: KindInvalidArguments,
			ok:   true,
		},
		{
			name: "cobra arg count",
			err:  errors.New("accepts 2 arg(s), received 1"),
			want: KindInvalidArguments,
			ok:   true,
		},
		{
			name: "unknown collection",
			err:  fmt.Errorf("%w %q", snapshot.ErrUnknownCollection, "bogus"),
			want: KindInvalidArguments,
			ok:   true,
		},
		{
			name: "unknown food action",
			err:  fmt.Errorf("%w: %s", food.ErrUnknownAction, "brunch"),
			want: KindInvalidArguments,
			ok:   true,
		},
		{
			name: "positional validation",
			err:  errors.New(`invalid day "yesterday"`),
			want: KindInvalidArguments,
			ok:   true,
		},
		{
			name: "help is not a failure",
			err:  pflag.ErrHelp,
			want: "",
			ok:   false,
		},
		{
			name: "runtime failure is not classified",
			err:  errors.New("saving snapshot: disk full"),
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.err)
			if ok != tt.ok {
				t.Fatalf("Classify() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Fatalf("Classify() kind = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordSkipsUnclassifiedErrors(t *testing.T) {
	t.Setenv("WARRIOR_HOME", t.TempDir())

	rec, path, err := Default().Record(errors.New("saving snapshot: disk full"), []string{"warrior", "toggle"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if rec != nil {
		t.Fatalf("Record() record = %#v, want nil", rec)
	}
	if path != "" {
		t.Fatalf("Record() path = %q, want empty", path)
	}

	dir := filepath.Join(config.Dir(), DirName)
	_, statErr := os.Stat(dir)
	if !os.IsNotExist(statErr) {
		t.Fatalf("failed-commands dir should not exist, stat err = %v", statErr)
	}
}

func TestNewRecorderWithoutDirFails(t *testing.T) {
	_, _, err := New("  ").Record(errors.New(`unknown command "x" for "warrior"`), []string{"warrior", "x"})
	if err == nil {
		t.Fatal("Record() with empty dir should fail")
	}
}

func TestShellJoinQuotes(t *testing.T) {
	got := shellJoin([]string{"warrior", "people", "add", "Ana María", ""})
	want := `warrior people add "Ana María" ""`
	if got != want {
		t.Fatalf("shellJoin() = %q, want %q", got, want)
	}
}

func TestRecordNamesFilesByTime(t *testing.T) {
	r := New(t.TempDir())
	r.now = func() time.Time { return time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC) }

	rec, path, err := r.Record(errors.New("accepts 2 arg(s), received 1"), []string{"warrior", "toggle"})
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if rec.Kind != KindInvalidArguments {
		t.Fatalf("kind = %q, want %q", rec.Kind, KindInvalidArguments)
	}
	if !strings.HasPrefix(rec.ID, "20261017T083000.000000000Z-") {
		t.Fatalf("id = %q, want time prefix", rec.ID)
	}
	if !strings.HasPrefix(filepath.Base(path), "20261017T083000.000000000Z-") {
		t.Fatalf("path = %q, want time-prefixed name", path)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind, stat err = %v", err)
	}
}
