// SPDX-License-Identifier: MPL-2.0

package ytdlp

// usageTracker records which single-use options have already been configured
// on a Command. Multi-use options never touch it; an absent entry means the
// option has never been used.
type usageTracker map[OptionID]bool

// checkAndMark fails with an AlreadyUsedError if id is already marked.
// On success it marks id and returns nil. Callers must consult the tracker
// before appending any token so that a rejected call leaves the token
// sequence unchanged.
func (t usageTracker) checkAndMark(id OptionID) error {
	if t[id] {
		return &AlreadyUsedError{Option: id}
	}
	t[id] = true
	return nil
}

// inUse reports whether id is already marked, without marking it. Range-pair
// helpers use it to pre-check both halves before appending either.
func (t usageTracker) inUse(id OptionID) bool {
	return t[id]
}
