// Package buildinfo classifies the running build so the service surface can
// gate administrative operations. Resolution itself never depends on build
// type; only the mutation policy does.
package buildinfo

import (
	"fmt"
	"strings"
)

// Classifier answers build capability queries.
type Classifier interface {
	// IsDebuggableBuild reports whether the build accepts debug tooling.
	IsDebuggableBuild() bool
	// IsFinalBuild reports whether the build is a release build.
	IsFinalBuild() bool
}

// BuildType is a named build flavor.
type BuildType string

const (
	// BuildUserdebug is a debuggable pre-release build. The default.
	BuildUserdebug BuildType = "userdebug"
	// BuildUser is a final release build.
	BuildUser BuildType = "user"
	// BuildEng is an engineering build, debuggable like userdebug.
	BuildEng BuildType = "eng"
)

// Parse resolves a build type string. Empty input means userdebug.
func Parse(value string) (BuildType, error) {
	switch BuildType(strings.ToLower(strings.TrimSpace(value))) {
	case "", BuildUserdebug:
		return BuildUserdebug, nil
	case BuildUser:
		return BuildUser, nil
	case BuildEng:
		return BuildEng, nil
	default:
		return "", fmt.Errorf("unknown build type %q", value)
	}
}

// IsDebuggableBuild implements Classifier.
func (b BuildType) IsDebuggableBuild() bool {
	return b == BuildUserdebug || b == BuildEng
}

// IsFinalBuild implements Classifier.
func (b BuildType) IsFinalBuild() bool {
	return b == BuildUser
}

var _ Classifier = BuildType("")
