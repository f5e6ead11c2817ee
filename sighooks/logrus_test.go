package sighooks

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sig "github.com/signified-go/signified"
)

func TestRegister_logsLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.TraceLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	bundle := Register(log)
	defer bundle.Close()

	s := sig.NewSignal(1)
	s.SetName("count")
	s.Read()
	require.NoError(t, s.Write(2))

	out := buf.String()
	assert.Contains(t, out, "node created")
	assert.Contains(t, out, "node named")
	assert.Contains(t, out, "node read")
	assert.Contains(t, out, "node updated")
}

func TestClose_unregistersHooks(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.TraceLevel)

	bundle := Register(log)
	bundle.Close()

	buf.Reset()
	sig.NewSignal(1)
	assert.Empty(t, buf.String())
}
