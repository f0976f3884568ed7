package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Get_Defaults(t *testing.T) {
	info := Get()

	assert.Equal(t, "dev", info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func Test_Info_Full_TruncatesCommit(t *testing.T) {
	info := Info{
		Version:   "1.2.3",
		Commit:    "0123456789abcdef0123456789abcdef01234567",
		BuildDate: "2026-08-30",
		GoVersion: "go1.25.5",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "1.2.3 (0123456789ab) built 2026-08-30 go1.25.5 linux/amd64", info.Full())
	assert.Equal(t, "1.2.3", info.String())
}
