package versions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	e := &Error{
		Kind: KindInstallation,
		Op:   "download_version",
		Path: "/games/versions/jak1/v1.2.0",
		Err:  errors.New("unable to download version: connection reset"),
	}
	assert.Equal(t,
		"download_version /games/versions/jak1/v1.2.0: unable to download version: connection reset",
		e.Error())

	noPath := &Error{Kind: KindIO, Op: "remove_version", Err: errors.New("permission denied")}
	assert.Equal(t, "remove_version: permission denied", noPath.Error())
}

func TestIsKindWalksChain(t *testing.T) {
	inner := &Error{Kind: KindConfiguration, Op: "resolve", Err: errors.New("no installation directory set")}
	outer := &Error{Kind: KindInstallation, Op: "download_version", Err: inner}

	assert.True(t, IsKind(outer, KindInstallation))
	assert.True(t, IsKind(outer, KindConfiguration))
	assert.False(t, IsKind(outer, KindIO))
	assert.False(t, IsKind(nil, KindInstallation))
	assert.False(t, IsKind(errors.New("plain"), KindInstallation))
}

func TestIsKindThroughWrapping(t *testing.T) {
	e := &Error{Kind: KindInstallation, Op: "remove_version", Err: errors.New("boom")}
	wrapped := fmt.Errorf("command failed: %w", e)
	assert.True(t, IsKind(wrapped, KindInstallation))
}

func TestErrNoInstallDirIsConfiguration(t *testing.T) {
	assert.True(t, IsKind(ErrNoInstallDir, KindConfiguration))
	assert.Contains(t, ErrNoInstallDir.Error(), "no installation directory set")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "installation", KindInstallation.String())
	assert.Equal(t, "io", KindIO.String())
}
