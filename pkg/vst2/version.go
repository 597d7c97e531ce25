package vst2

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// FormatVersion converts a VST integer version into a semantic version.
// VST encodes versions as major*1000 + minor*100 + patch, so 2400 is 2.4.0
// and 1100 is 1.1.0.
func FormatVersion(v int32) (*version.Version, error) {
	if v < 0 {
		return nil, fmt.Errorf("negative version %d", v)
	}
	major := v / 1000
	minor := (v % 1000) / 100
	patch := v % 100
	return version.NewVersion(fmt.Sprintf("%d.%d.%d", major, minor, patch))
}

// ParseVersion is the inverse of FormatVersion.
func ParseVersion(s string) (int32, error) {
	ver, err := version.NewVersion(s)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", s, err)
	}
	seg := ver.Segments()
	for len(seg) < 3 {
		seg = append(seg, 0)
	}
	if seg[1] > 9 || seg[2] > 99 {
		return 0, fmt.Errorf("version %q does not fit the VST encoding", s)
	}
	return int32(seg[0]*1000 + seg[1]*100 + seg[2]), nil
}

// AtLeast reports whether the VST version v is at least min, e.g. whether a
// host answering 2400 supports a plugin built for 2.3.
func AtLeast(v int32, min string) bool {
	have, err := FormatVersion(v)
	if err != nil {
		return false
	}
	want, err := version.NewVersion(min)
	if err != nil {
		return false
	}
	return have.GreaterThanOrEqual(want)
}
