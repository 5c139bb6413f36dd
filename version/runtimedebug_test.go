package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfo(t *testing.T) {
	bi, err := BuildInfo()
	assert.NoError(t, err)
	assert.NotNil(t, bi)
	assert.NotEmpty(t, Version())
}

func TestInfoFrom(t *testing.T) {
	info := infoFrom(&debug.BuildInfo{
		GoVersion: "go1.22.5",
		Main:      debug.Module{Path: "github.com/anoideaopen/evernote-rest", Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0c1f2e3"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	assert.Equal(t, Info{
		Version:   "v1.2.0",
		GoVersion: "go1.22.5",
		Revision:  "0c1f2e3",
		Time:      "2024-05-01T10:00:00Z",
		Modified:  true,
	}, info)

	assert.Equal(t, develVersion, infoFrom(&debug.BuildInfo{}).Version)
}
