package sitedump

// BuildInfo carries CI build metadata used to annotate generated Markdown so
// readers can trace a screenshot back to the build that took it.  A zero
// BuildInfo means "not running in CI" and produces no annotation at all.
type BuildInfo struct {
	System   string // "Travis CI" or "Jenkins"
	Commit   string
	BuildID  string
	BuildURL string
}

// Present reports whether we detected any CI system.
func (b BuildInfo) Present() bool {
	return b.System != ""
}

// DetectBuildInfo sniffs the CI system from the environment.  It takes a
// getenv function instead of reading os.Environ so the environment stays an
// explicit input (and tests stay trivial).
func DetectBuildInfo(getenv func(string) string) BuildInfo {
	if getenv("TRAVIS_BUILD_NUMBER") != "" && getenv("TRAVIS_BUILD_WEB_URL") != "" {
		return BuildInfo{
			System:   "Travis CI",
			Commit:   getenv("TRAVIS_COMMIT"),
			BuildID:  getenv("TRAVIS_BUILD_NUMBER"),
			BuildURL: getenv("TRAVIS_BUILD_WEB_URL"),
		}
	}

	if getenv("BUILD_ID") != "" && getenv("BUILD_URL") != "" {
		// jenkins or compatible
		return BuildInfo{
			System:   "Jenkins",
			Commit:   getenv("GIT_COMMIT"),
			BuildID:  getenv("BUILD_NUMBER"),
			BuildURL: getenv("BUILD_URL"),
		}
	}

	return BuildInfo{}
}
