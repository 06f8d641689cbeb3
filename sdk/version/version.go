// Copyright 2022, Pulumi Corporation.  All rights reserved.

package version

import (
	"github.com/blang/semver"
)

// Version is the version of the server. It is set at link time with
// -ldflags "-X github.com/swaggerls/swagger-lsp/sdk/version.Version=...".
var Version = "0.1.0-dev"

// Semver parses Version. A leading "v" is accepted.
func Semver() (semver.Version, error) {
	return semver.ParseTolerant(Version)
}
