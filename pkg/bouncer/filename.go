package bouncer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Platform is the OS tag understood by the bouncer.
type Platform string

const (
	PlatformWindows Platform = "win"
	PlatformMac     Platform = "osx"
	PlatformLinux   Platform = "linux"
)

// Platforms lists every supported platform in check order.
var Platforms = []Platform{PlatformWindows, PlatformMac, PlatformLinux}

// IsDevChannel reports whether alias names a developer build channel.
func IsDevChannel(alias string) bool {
	return strings.Contains(alias, "aurora") || strings.Contains(alias, "nightly")
}

// ExpectedFilename returns the artifact filename the bouncer should redirect to
// for the given platform, alias and version. Stable filenames keep the
// URL-encoded spaces used on the CDN.
func ExpectedFilename(os Platform, alias, version string) (string, error) {
	dev := IsDevChannel(alias)

	switch os {
	case PlatformWindows:
		if dev {
			return fmt.Sprintf("firefox-%s.en-US.win32.installer.exe", version), nil
		}

		return fmt.Sprintf("Firefox%%20Setup%%20%s.exe", version), nil
	case PlatformMac:
		if dev {
			return fmt.Sprintf("firefox-%s.en-US.mac.dmg", version), nil
		}

		return fmt.Sprintf("Firefox%%20%s.dmg", version), nil
	case PlatformLinux:
		if dev {
			return fmt.Sprintf("firefox-%s.en-US.linux-i686.tar.bz2", version), nil
		}

		return fmt.Sprintf("firefox-%s.tar.bz2", version), nil
	}

	return "", errors.Wrapf(ErrUnsupportedPlatform, "failed to predict filename for os = %s, alias = %s, product_version = %s",
		os, alias, version)
}

// PlatformDir returns the CDN directory name holding builds for a platform.
func PlatformDir(os Platform) (string, error) {
	switch os {
	case PlatformWindows:
		return "win32", nil
	case PlatformMac:
		return "mac", nil
	case PlatformLinux:
		return "linux-i686", nil
	}

	return "", errors.Wrapf(ErrUnsupportedPlatform, "no directory for os %s", os)
}

// ParsePlatform validates an OS tag.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(s)
	for _, known := range Platforms {
		if p == known {
			return p, nil
		}
	}

	return "", errors.Wrapf(ErrUnsupportedPlatform, "%q", s)
}
