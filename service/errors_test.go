package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscoveryError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewDiscoveryError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewConfigurationAbsentError(t *testing.T) {
	e := NewConfigurationAbsentError("gateway discovery is not configured", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrConfigurationAbsent, e.Code)
	assert.Equal(t, "gateway discovery is not configured", e.Message)
}

func TestNewNoHealthyInstanceError(t *testing.T) {
	e := NewNoHealthyInstanceError("no healthy bridge instance", nil)
	require.NotNil(t, e)
	assert.Equal(t, ErrNoHealthyInstance, e.Code)
	assert.Equal(t, "no healthy bridge instance", e.Message)
}

func TestNewInternalServerError_KeepsDiscoveryInner(t *testing.T) {
	inner := NewEntityNotFoundError("gone", nil)
	e := NewInternalServerError("wrapped", fmt.Errorf("context: %w", inner))
	require.NotNil(t, e)
	// An inner discovery error wins over the outer wrapping.
	assert.Equal(t, ErrEntityNotFound, e.Code)
}

func TestToDiscoveryError_WithDiscoveryError(t *testing.T) {
	e := NewBadParameterError("bad", nil)
	got := ToDiscoveryError(e)
	require.NotNil(t, got)
	assert.Same(t, e, got)
}

func TestToDiscoveryError_WithOrdinaryError(t *testing.T) {
	e := errors.New("plain")
	got := ToDiscoveryError(e)
	assert.Nil(t, got)
}

func TestToDiscoveryErrorCode(t *testing.T) {
	assert.Equal(t, ErrNoHealthyInstance, ToDiscoveryErrorCode(NewNoHealthyInstanceError("none", nil)))
	assert.Equal(t, "", ToDiscoveryErrorCode(errors.New("plain")))
}

func TestIsPredicates(t *testing.T) {
	assert.True(t, IsEntityNotFoundError(NewEntityNotFoundError("gone", nil)))
	assert.True(t, IsConfigurationAbsentError(NewConfigurationAbsentError("off", nil)))
	assert.True(t, IsNoHealthyInstanceError(NewNoHealthyInstanceError("none", nil)))
	assert.True(t, IsBadParameterError(NewBadParameterError("bad", nil)))
	assert.True(t, IsInternalServerError(NewInternalServerError("boom", nil)))
	assert.False(t, IsNoHealthyInstanceError(NewConfigurationAbsentError("off", nil)))
}

func TestDiscoveryError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("socket closed")
	e := NewDiscoveryError(ErrInternalServerError, "presence feed broke", inner)
	assert.Equal(t, "internal_server_error presence feed broke: socket closed", e.Error())
	assert.Same(t, inner, e.Unwrap())

	bare := NewDiscoveryError(ErrEntityNotFound, "gone", nil)
	assert.Equal(t, "entity_not_found gone", bare.Error())
}
