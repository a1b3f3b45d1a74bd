// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. os.UserHomeDir ignores a
// HOME set via t.Setenv on some platforms, so tests point the lookup at a
// t.TempDir instead of faking the environment.
var configDirOverride string

// SetConfigDirOverride pins the config directory to an explicit path until
// Reset is called. Test-only.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset restores the platform config directory lookup. Pair with
// SetConfigDirOverride in test cleanup.
func Reset() {
	configDirOverride = ""
}
