package imgtools

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	t.Setenv(EnvModelPath, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvLogLevel, "")

	cfg := LoadConfig()
	assert.Equal(t, "", cfg.ModelPath)
	assert.Equal(t, BackendPigo, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_FromEnvironment(t *testing.T) {
	t.Setenv(EnvModelPath, "/models/lbpcascade_frontalface.xml")
	t.Setenv(EnvBackend, "OpenCV")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := LoadConfig()
	assert.Equal(t, "/models/lbpcascade_frontalface.xml", cfg.ModelPath)
	assert.Equal(t, BackendOpenCV, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	assert.Error(t, Config{Backend: "dlib"}.Validate())
	assert.Error(t, Config{LogLevel: "verbose"}.Validate())
	assert.NoError(t, Config{}.Validate())
}

func TestConfig_InitRunsOnce(t *testing.T) {
	require.NoError(t, Init(Config{Backend: BackendPigo, LogLevel: "debug"}))
	assert.Equal(t, BackendPigo, processBackend())

	// Later calls keep the first result, even with an invalid configuration.
	assert.NoError(t, Init(Config{Backend: "dlib"}))
}

func TestConfig_SetLogger(t *testing.T) {
	prev := logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := NewDetectorWithClassifier(&fakeClassifier{}).Detect(FromImage(newTestImage(4, 4)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "face detection done")
	assert.Contains(t, buf.String(), "faces=0")
}
