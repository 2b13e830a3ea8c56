package telemetry

import (
	"context"
	"io"
	"log"
	"net/http"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{Logger: log.New(io.Discard, "", 0)}

	ctx, err := init.Initialize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ctx)

	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(io.Discard, "", 0)}

	ctx, err := init.Initialize(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	require.NoError(t, err)
	assert.NotNil(t, client.Transport)
}
