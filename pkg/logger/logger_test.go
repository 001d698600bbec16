package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
)

func TestInit_Level(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	Init(config.Logging{Level: "debug"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Init(config.Logging{Level: "not-a-level"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestInit_RotatedFile(t *testing.T) {
	prev := logrus.StandardLogger().Out
	t.Cleanup(func() { logrus.SetOutput(prev) })

	file := filepath.Join(t.TempDir(), "app.log")
	Init(config.Logging{Level: "info", File: file, MaxSizeMB: 1})

	logrus.Info("written to file")
	assert.FileExists(t, file)
}

func TestLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := logrus.StandardLogger().Out
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logrus.SetOutput(prev)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	ctx := WithRequestID(context.Background(), "req-42")
	Logger(ctx).WithField("course_id", "7").Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line[requestIDField])
	assert.Equal(t, "7", line["course_id"])
}

func TestWithRequestID_Generates(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")
	assert.NotEmpty(t, RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}
