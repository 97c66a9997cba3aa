// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags. Empty values
// read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: valueOrNA(version),
		date:    valueOrNA(date),
		commit:  valueOrNA(commit),
	}
}

// BuildVersion is served by /version when APP_VERSION is unset.
func (a AppBuildInfo) BuildVersion() string { return a.version }
func (a AppBuildInfo) BuildDate() string { return a.date }
func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders the banner printed at server start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.version, a.date, a.commit)
}

func valueOrNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
