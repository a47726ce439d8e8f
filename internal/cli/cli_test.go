package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/chicago-today/internal/config"
	"github.com/tartampluch/chicago-today/internal/engine"
)

type harness struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	env    map[string]string
}

func (h *harness) deps(r *engine.Resolver) Deps {
	return Deps{
		Resolver: r,
		Stdout:   &h.stdout,
		Stderr:   &h.stderr,
		LookupEnv: func(k string) (string, bool) {
			v, ok := h.env[k]
			return v, ok
		},
	}
}

func fixedResolver(instant time.Time) *engine.Resolver {
	r := engine.NewResolver()
	r.Clock = engine.FixedClock(instant)
	return r
}

func missingZones() engine.ZoneLoader {
	return engine.ZoneLoaderFunc(func(name string) (*time.Location, error) {
		return nil, errors.New("unknown time zone " + name)
	})
}

func TestRun_PrintsChicagoDate(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{"Independence Day", time.Date(2024, 7, 4, 5, 30, 0, 0, time.UTC), "2024-07-04\n"},
		{"Before spring forward", time.Date(2024, 3, 10, 7, 59, 0, 0, time.UTC), "2024-03-10\n"},
		{"After spring forward", time.Date(2024, 3, 10, 8, 1, 0, 0, time.UTC), "2024-03-10\n"},
		{"UTC already tomorrow", time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), "2024-12-31\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &harness{}
			code := Run(h.deps(fixedResolver(tt.instant)), nil)

			assert.Equal(t, config.ExitCodeSuccess, code)
			assert.Equal(t, tt.want, h.stdout.String(), "stdout must hold exactly one line")
			assert.Empty(t, h.stderr.String())
		})
	}
}

func TestRun_RealClock(t *testing.T) {
	h := &harness{}
	code := Run(h.deps(engine.NewResolver()), []string{})

	require.Equal(t, config.ExitCodeSuccess, code, h.stderr.String())
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}\n$`, h.stdout.String())
}

func TestRun_ZoneFailure(t *testing.T) {
	r := fixedResolver(time.Date(2024, 7, 4, 5, 30, 0, 0, time.UTC))
	r.Zones = missingZones()

	h := &harness{}
	code := Run(h.deps(r), nil)

	assert.Equal(t, config.ExitCodeError, code)
	assert.Empty(t, h.stdout.String(), "no date may be printed when the zone is unknown")

	diag := h.stderr.String()
	assert.True(t, strings.HasPrefix(diag, config.AppName+": "), diag)
	assert.Contains(t, diag, "cannot resolve time zone America/Chicago")
	assert.Contains(t, diag, "unknown time zone America/Chicago")
	assert.Equal(t, 1, strings.Count(diag, "\n"), "diagnostic is a single line")
}

func TestRun_ZoneFailure_Localized(t *testing.T) {
	r := fixedResolver(time.Date(2024, 7, 4, 5, 30, 0, 0, time.UTC))
	r.Zones = missingZones()

	h := &harness{env: map[string]string{"LANG": "fr_FR.UTF-8"}}
	code := Run(h.deps(r), nil)

	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, h.stderr.String(), "impossible de résoudre le fuseau horaire America/Chicago")
}

func TestRun_RejectsArguments(t *testing.T) {
	h := &harness{}
	code := Run(h.deps(fixedResolver(time.Now())), []string{"tomorrow"})

	assert.Equal(t, config.ExitCodeError, code)
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), `unknown command "tomorrow"`)
}

func TestRun_UnknownFlag(t *testing.T) {
	h := &harness{}
	code := Run(h.deps(fixedResolver(time.Now())), []string{"--zone=UTC"})

	assert.Equal(t, config.ExitCodeError, code)
	assert.Empty(t, h.stdout.String())
	assert.Contains(t, h.stderr.String(), "unknown flag")
}

func TestRun_Version(t *testing.T) {
	h := &harness{}
	code := Run(h.deps(fixedResolver(time.Now())), []string{"--version"})

	assert.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, config.VersionString(), h.stdout.String())
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	h := &harness{}
	code := Run(h.deps(fixedResolver(time.Date(2024, 7, 4, 5, 30, 0, 0, time.UTC))), []string{"--debug"})

	require.Equal(t, config.ExitCodeSuccess, code)
	assert.Equal(t, "2024-07-04\n", h.stdout.String(), "logs must never reach stdout")

	logs := h.stderr.String()
	assert.Contains(t, logs, config.MsgAppStarting)
	assert.Contains(t, logs, config.MsgDateComputed)
	assert.Contains(t, logs, `"`+config.LogKeyAbbrev+`":"CDT"`)
}

func TestRun_NilDepsUseDefaults(t *testing.T) {
	code := Run(Deps{}, nil)
	assert.Equal(t, config.ExitCodeSuccess, code)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRun_WriteFailure(t *testing.T) {
	h := &harness{}
	deps := h.deps(fixedResolver(time.Date(2024, 7, 4, 5, 30, 0, 0, time.UTC)))
	deps.Stdout = failingWriter{}

	code := Run(deps, nil)

	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, h.stderr.String(), config.ErrWriteOutput)
}

func TestSetupLogging_DiscardsWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	setupLogging(&buf, false).Error("should not appear")
	assert.Zero(t, buf.Len())

	setupLogging(&buf, true).Debug("visible")
	assert.Contains(t, buf.String(), `"msg":"visible"`)
}
