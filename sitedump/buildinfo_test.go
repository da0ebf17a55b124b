package sitedump

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectBuildInfoTravis(t *testing.T) {
	info := DetectBuildInfo(envFrom(map[string]string{
		"TRAVIS_BUILD_NUMBER":  "1234",
		"TRAVIS_BUILD_WEB_URL": "https://travis-ci.com/org/repo/builds/1234",
		"TRAVIS_COMMIT":        "deadbeef",
	}))

	assert.True(t, info.Present())
	assert.Equal(t, "Travis CI", info.System)
	assert.Equal(t, "deadbeef", info.Commit)
	assert.Equal(t, "1234", info.BuildID)
}

func TestDetectBuildInfoJenkins(t *testing.T) {
	info := DetectBuildInfo(envFrom(map[string]string{
		"BUILD_ID":     "88",
		"BUILD_URL":    "https://jenkins.example.com/job/docs/88/",
		"BUILD_NUMBER": "88",
		"GIT_COMMIT":   "cafef00d",
	}))

	assert.True(t, info.Present())
	assert.Equal(t, "Jenkins", info.System)
	assert.Equal(t, "cafef00d", info.Commit)
	assert.Equal(t, "https://jenkins.example.com/job/docs/88/", info.BuildURL)
}

func TestDetectBuildInfoTravisWinsOverJenkins(t *testing.T) {
	info := DetectBuildInfo(envFrom(map[string]string{
		"TRAVIS_BUILD_NUMBER":  "1",
		"TRAVIS_BUILD_WEB_URL": "https://travis-ci.com/x",
		"BUILD_ID":             "2",
		"BUILD_URL":            "https://jenkins/x",
	}))

	assert.Equal(t, "Travis CI", info.System)
}

func TestDetectBuildInfoAbsent(t *testing.T) {
	info := DetectBuildInfo(envFrom(map[string]string{}))

	assert.False(t, info.Present())
	assert.Zero(t, info)
}
