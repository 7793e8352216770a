// Package failedcmd keeps a record of command lines warrior could not
// understand, so mistyped commands and arguments can be reviewed later.
package failedcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/agusx1211/warrior/internal/config"
	"github.com/agusx1211/warrior/internal/exercise"
	"github.com/agusx1211/warrior/internal/export"
	"github.com/agusx1211/warrior/internal/food"
	"github.com/agusx1211/warrior/internal/hexid"
	"github.com/agusx1211/warrior/internal/pleno"
	"github.com/agusx1211/warrior/internal/session"
	"github.com/agusx1211/warrior/internal/snapshot"
	"github.com/agusx1211/warrior/internal/store"
)

// DirName is the folder under the warrior home that holds the records.
const DirName = "failed-commands"

const schemaVersion = 1

// Kind is the reason category of a failed invocation.
type Kind string

const (
	KindUnknownCommand   Kind = "unknown_command"
	KindInvalidArguments Kind = "invalid_arguments"
)

// Record is one failed invocation as written to disk.
type Record struct {
	Version    int               `json:"version"`
	ID         string            `json:"id"`
	RecordedAt time.Time         `json:"recorded_at"`
	Kind       Kind              `json:"kind"`
	Error      string            `json:"error"`
	Executable string            `json:"executable"`
	Args       []string          `json:"args,omitempty"`
	Command    string            `json:"command"`
	WorkingDir string            `json:"working_dir,omitempty"`
	Env        map[string]string `json:"env,omitempty"`
}

// Recorder writes records into one directory.
type Recorder struct {
	dir string
	now func() time.Time
}

// Default returns a recorder rooted at ~/.warrior/failed-commands.
func Default() *Recorder {
	return New(filepath.Join(config.Dir(), DirName))
}

// New returns a recorder rooted at dir.
func New(dir string) *Recorder {
	return &Recorder{dir: strings.TrimSpace(dir), now: time.Now}
}

// Dir returns the output directory.
func (r *Recorder) Dir() string { return r.dir }

// Record writes err as a record when it is a usage mistake. Any other
// error is ignored and (nil, "", nil) is returned.
func (r *Recorder) Record(err error, argv []string) (*Record, string, error) {
	kind, ok := Classify(err)
	if !ok {
		return nil, "", nil
	}
	if r.dir == "" {
		return nil, "", errors.New("failed command dir is empty")
	}
	rec := r.newRecord(kind, err, argv)
	path, werr := r.save(rec)
	if werr != nil {
		return nil, "", werr
	}
	return rec, path, nil
}

// usageSentinels are the errors warrior returns for a name the user typed
// that does not exist.
var usageSentinels = []error{
	snapshot.ErrUnknownCollection,
	snapshot.ErrUnknownCounter,
	pleno.ErrUnknownItem,
	export.ErrUnknownFormat,
	food.ErrUnknownAction,
	food.ErrUnknownBonus,
	exercise.ErrUnknownTally,
	session.ErrUnknownShelf,
	session.ErrUnknownPerson,
	store.ErrUnsupportedBackend,
	config.ErrUnknownKey,
}

// cobraUsage are fragments of the flag and argument errors cobra and pflag
// format without a typed error.
var cobraUsage = []string{
	"unknown flag:",
	"unknown shorthand flag:",
	"flag needs an argument:",
	"invalid argument ",
	"bad flag syntax:",
	"if any flags in the group [",
	"arg(s), received",
}

// ownUsage are prefixes of warrior's own argument checks.
var ownUsage = []string{"invalid ", "no item ", "unknown task "}

// Classify reports whether err is a usage mistake and of which kind.
func Classify(err error) (Kind, bool) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return "", false
	}
	for _, target := range usageSentinels {
		if errors.Is(err, target) {
			return KindInvalidArguments, true
		}
	}
	if isFlagError(err) {
		return KindInvalidArguments, true
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case msg == "":
		return "", false
	case strings.HasPrefix(msg, "unknown command ") && strings.Contains(msg, `for "warrior`):
		return KindUnknownCommand, true
	case containsAny(msg, cobraUsage) || hasAnyPrefix(msg, ownUsage):
		return KindInvalidArguments, true
	}
	return "", false
}

func isFlagError(err error) bool {
	var (
		notExist   *pflag.NotExistError
		needsValue *pflag.ValueRequiredError
		badValue   *pflag.InvalidValueError
		badSyntax  *pflag.InvalidSyntaxError
	)
	return errors.As(err, &notExist) || errors.As(err, &needsValue) ||
		errors.As(err, &badValue) || errors.As(err, &badSyntax)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func (r *Recorder) newRecord(kind Kind, err error, argv []string) *Record {
	if len(argv) == 0 {
		argv = os.Args
	}
	argv = append([]string(nil), argv...)
	at := r.now().UTC()

	rec := &Record{
		Version:    schemaVersion,
		ID:         stamp(at) + "-" + hexid.New(),
		RecordedAt: at,
		Kind:       kind,
		Error:      strings.TrimSpace(err.Error()),
		Executable: argv[0],
		Command:    shellJoin(argv),
		Env:        warriorEnv(),
	}
	if len(argv) > 1 {
		rec.Args = argv[1:]
	}
	if cwd, cerr := os.Getwd(); cerr == nil {
		rec.WorkingDir = cwd
	}
	return rec
}

// save writes rec through a temp file so a reader never sees half a record.
func (r *Recorder) save(rec *Record) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", r.dir, err)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding failed command: %w", err)
	}
	path := filepath.Join(r.dir, fmt.Sprintf("%s-%d-%s.json", stamp(rec.RecordedAt), os.Getpid(), hexid.New()))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("writing failed command: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("writing failed command: %w", err)
	}
	return path, nil
}

func stamp(t time.Time) string {
	return t.UTC().Format("20060102T150405.000000000Z")
}

func warriorEnv() map[string]string {
	var env map[string]string
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, "WARRIOR_") {
			continue
		}
		if env == nil {
			env = map[string]string{}
		}
		env[k] = v
	}
	return env
}

// shellJoin renders argv so it can be pasted back into a shell.
func shellJoin(argv []string) string {
	out := make([]string, len(argv))
	for i, a := range argv {
		switch {
		case a == "":
			out[i] = `""`
		case strings.ContainsAny(a, " \t\n\"'\\$"):
			out[i] = strconv.Quote(a)
		default:
			out[i] = a
		}
	}
	return strings.Join(out, " ")
}
