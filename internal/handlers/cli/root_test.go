package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/q/internal/adapters/oscommand"
	"github.com/AntonioJCosta/q/internal/core/domain/alias"
	"github.com/AntonioJCosta/q/internal/core/ports"
	"github.com/AntonioJCosta/q/internal/core/services/aliasdispatch"
	"github.com/AntonioJCosta/q/internal/core/services/aliashelp"
	"github.com/AntonioJCosta/q/internal/core/services/configinit"
	"github.com/AntonioJCosta/q/internal/core/testutil"
	"github.com/AntonioJCosta/q/internal/repositories/aliasconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = Options{ConfigPath: "/usr/local/etc/q/q.toml", Shell: "sh"}

// execute runs the root command with args against the given services and
// returns stdout, stderr and the options the services were built with.
func execute(t *testing.T, services *Services, args ...string) (string, string, Options, error) {
	t.Helper()
	var gotOpts Options
	build := func(opts Options, _ *slog.Logger) (*Services, error) {
		gotOpts = opts
		return services, nil
	}

	cmd := NewRootCommand("test", testDefaults, build)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(NormalizeArgs(cmd, args))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), gotOpts, err
}

// recordingDispatch returns a dispatch mock that records invocations and echoes them.
func recordingDispatch(calls *[]string) *testutil.MockAliasDispatchService {
	return &testutil.MockAliasDispatchService{
		DispatchFunc: func(invocation string, out io.Writer) error {
			*calls = append(*calls, invocation)
			_, err := io.WriteString(out, "ran "+invocation+"\n")
			return err
		},
	}
}

func TestRootCommand_Routing(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantStdout     string
		wantContains   []string
		wantDispatches []string
	}{
		{
			name:       "no arguments renders alias help",
			args:       nil,
			wantStdout: "show files \"this is help info\"\n",
		},
		{
			name:           "words are joined with single spaces",
			args:           []string{"show", "files"},
			wantStdout:     "ran show files\n",
			wantDispatches: []string{"show files"},
		},
		{
			name:           "a single quoted argument is passed as is",
			args:           []string{"show  files"},
			wantStdout:     "ran show  files\n",
			wantDispatches: []string{"show  files"},
		},
		{
			name:           "dash words after --",
			args:           []string{"--", "grep", "-r"},
			wantStdout:     "ran grep -r\n",
			wantDispatches: []string{"grep -r"},
		},
		{
			name:           "completion is not reserved",
			args:           []string{"completion"},
			wantStdout:     "ran completion\n",
			wantDispatches: []string{"completion"},
		},
		{
			name:           "list followed by words names an alias",
			args:           []string{"list", "files"},
			wantStdout:     "ran list files\n",
			wantDispatches: []string{"list files"},
		},
		{
			name:           "init followed by words names an alias",
			args:           []string{"init", "db"},
			wantStdout:     "ran init db\n",
			wantDispatches: []string{"init db"},
		},
		{
			name:           "flag-like first word",
			args:           []string{"-la"},
			wantStdout:     "ran -la\n",
			wantDispatches: []string{"-la"},
		},
		{
			name:           "flag-like word inside alias words",
			args:           []string{"show", "-l", "--all"},
			wantStdout:     "ran show -l --all\n",
			wantDispatches: []string{"show -l --all"},
		},
		{
			name:           "subcommand with flag-like word",
			args:           []string{"list", "-a"},
			wantStdout:     "ran list -a\n",
			wantDispatches: []string{"list -a"},
		},
		{
			name:         "help prints usage without dispatching",
			args:         []string{"help"},
			wantContains: []string{"Usage:", "init", "list"},
		},
		{
			name:         "version flag",
			args:         []string{"--version"},
			wantContains: []string{"test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			services := &Services{
				Dispatch: recordingDispatch(&calls),
				Help: &testutil.MockAliasHelpService{
					HelpTextFunc: func() (string, error) { return `show files "this is help info"`, nil },
				},
				Init: &testutil.MockConfigInitService{},
			}

			stdout, _, _, err := execute(t, services, tt.args...)
			require.NoError(t, err)
			if tt.wantStdout != "" {
				assert.Equal(t, tt.wantStdout, stdout)
			}
			for _, s := range tt.wantContains {
				assert.Contains(t, stdout, s)
			}
			assert.Equal(t, tt.wantDispatches, calls)
		})
	}
}

func TestRootCommand_Flags(t *testing.T) {
	var calls []string
	services := &Services{Dispatch: recordingDispatch(&calls)}

	_, _, opts, err := execute(t, services, "--config", "/etc/aliases.yaml", "--shell", "bash", "show", "files")
	require.NoError(t, err)
	assert.Equal(t, Options{ConfigPath: "/etc/aliases.yaml", Shell: "bash"}, opts)
	assert.Equal(t, []string{"show files"}, calls)

	_, _, opts, err = execute(t, services, "show")
	require.NoError(t, err)
	assert.Equal(t, testDefaults, opts)
}

func TestRootCommand_Errors(t *testing.T) {
	buildErr := errors.New("bad path")

	t.Run("dispatch error is returned", func(t *testing.T) {
		services := &Services{Dispatch: &testutil.MockAliasDispatchService{
			DispatchFunc: func(string, io.Writer) error { return alias.ErrCommandNotFound },
		}}
		_, _, _, err := execute(t, services, "nope")
		require.ErrorIs(t, err, alias.ErrCommandNotFound)
	})

	t.Run("help error is returned", func(t *testing.T) {
		services := &Services{Help: &testutil.MockAliasHelpService{
			HelpTextFunc: func() (string, error) { return "", alias.ErrMissingField },
		}}
		stdout, _, _, err := execute(t, services)
		require.ErrorIs(t, err, alias.ErrMissingField)
		assert.Empty(t, stdout)
	})

	t.Run("empty configuration prints a hint on stderr", func(t *testing.T) {
		services := &Services{Help: &testutil.MockAliasHelpService{
			HelpTextFunc: func() (string, error) { return "", nil },
		}}
		stdout, stderr, _, err := execute(t, services)
		require.NoError(t, err)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "No aliases defined")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, _, err := execute(t, &Services{}, "--log-level", "loud", "x")
		require.ErrorContains(t, err, "invalid log-level")
	})

	t.Run("builder failure", func(t *testing.T) {
		cmd := NewRootCommand("test", testDefaults, func(Options, *slog.Logger) (*Services, error) { return nil, buildErr })
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"x"})
		require.ErrorIs(t, cmd.Execute(), buildErr)
	})
}

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name         string
		result       ports.InitResult
		err          error
		wantContains string
	}{
		{
			name:         "created",
			result:       ports.InitResult{Path: "/tmp/q/q.toml", Created: true},
			wantContains: "Created /tmp/q/q.toml",
		},
		{
			name:         "already present",
			result:       ports.InitResult{Path: "/tmp/q/q.toml"},
			wantContains: "/tmp/q/q.toml already exists",
		},
		{
			name: "failure",
			err:  alias.ErrFilesystem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := &Services{Init: &testutil.MockConfigInitService{
				InitFunc: func() (ports.InitResult, error) { return tt.result, tt.err },
			}}
			stdout, _, _, err := execute(t, services, "init")
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout, tt.wantContains)
		})
	}
}

func TestListCommand(t *testing.T) {
	help := "lists files"
	services := &Services{Help: &testutil.MockAliasHelpService{
		ListAliasesFunc: func() ([]alias.Alias, error) {
			return []alias.Alias{
				alias.New("show files", "ls -lh", "this is help info"),
				{Name: "undocumented", Help: &help},
			}, nil
		},
	}}

	stdout, _, _, err := execute(t, services, "list")
	require.NoError(t, err)
	for _, s := range []string{"ALIAS NAME", "show files", "ls -lh", "this is help info", "undocumented", "lists files"} {
		assert.Contains(t, stdout, s)
	}
	assert.Less(t, strings.Index(stdout, "show files"), strings.Index(stdout, "undocumented"), "file order must be kept")

	var calls []string
	services.Dispatch = recordingDispatch(&calls)
	stdout, _, _, err = execute(t, services, "--config", "/tmp/q.toml", "list", "files")
	require.NoError(t, err)
	assert.Equal(t, "ran list files\n", stdout)
	assert.Equal(t, []string{"list files"}, calls)
}

// TestEndToEnd wires the real adapters against a temporary configuration file.
func TestEndToEnd(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "etc", "q", "q.toml")
	build := func(opts Options, logger *slog.Logger) (*Services, error) {
		repo, err := aliasconfig.NewFileRepository(opts.ConfigPath, logger)
		if err != nil {
			return nil, err
		}
		return &Services{
			Dispatch: aliasdispatch.NewService(repo, oscommand.NewOSCommandExecutor(), opts.Shell),
			Help:     aliashelp.NewService(repo),
			Init:     configinit.NewService(repo),
		}, nil
	}
	run := func(args ...string) (string, error) {
		cmd := NewRootCommand("test", testDefaults, build)
		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(io.Discard)
		cmd.SetArgs(NormalizeArgs(cmd, append([]string{"--config", configPath}, args...)))
		err := cmd.Execute()
		return stdout.String(), err
	}

	_, err := run("show", "files")
	require.ErrorIs(t, err, alias.ErrConfigNotFound)

	out, err := run("init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	before, err := os.ReadFile(configPath)
	require.NoError(t, err)

	out, err = run("init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
	after, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	out, err = run()
	require.NoError(t, err)
	assert.Equal(t, "show files \"this is help info\"\n", out)

	out, err = run("show", "files")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "total"), "ls -lh output expected, got %q", out)

	_, err = run("show")
	require.ErrorIs(t, err, alias.ErrCommandNotFound)

	require.NoError(t, os.WriteFile(configPath, []byte(`title = "mine"
group = [
{ name = "fail", command = "echo out; echo err >&2; false", help = "fails" },
{ name = "init db", command = "echo db ready", help = "", tag = "misc" },
{ name = "list files", command = "echo listing", help = "" },
{ name = "-la", command = "echo long", help = "" },
]`), 0644))
	out, err = run("fail")
	require.NoError(t, err)
	assert.Equal(t, "err\n", out)

	for words, want := range map[string]string{
		"init db":    "db ready\n",
		"list files": "listing\n",
		"-la":        "long\n",
	} {
		out, err = run(strings.Fields(words)...)
		require.NoError(t, err, words)
		assert.Equal(t, want, out, words)
	}
}
