package tui

// CompleteFunc lists the full completions of a partial path.
type CompleteFunc func(partial string) []string

// PathCompleter provides tab-completion and cycling for virtual paths.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewPathCompleter(session.Complete)
//
//	// On Tab press:
//	completed := completer.Next(word)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	complete   CompleteFunc
	matches    []string
	cycleIndex int
	lastInput  string
}

// NewPathCompleter creates a completer backed by complete.
func NewPathCompleter(complete CompleteFunc) *PathCompleter {
	return &PathCompleter{complete: complete}
}

// Next returns the next completion for input.
// The first call extends input to the only match, or to the longest common
// prefix of all matches. Further calls with the completed text cycle.
func (c *PathCompleter) Next(input string) string {
	if c.matches == nil || !c.cycling(input) {
		c.matches = c.complete(input)
		c.cycleIndex = 0
		c.lastInput = input

		switch len(c.matches) {
		case 0:
			return input
		case 1:
			only := c.matches[0]
			c.Reset()
			return only
		}
		if common := longestCommonPrefix(c.matches); len(common) > len(input) {
			// the next Tab starts cycling at the first match
			c.cycleIndex = -1
			c.lastInput = common
			return common
		}
		return c.matches[0]
	}

	c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
	return c.matches[c.cycleIndex]
}

// cycling reports whether input is text this completer produced last.
func (c *PathCompleter) cycling(input string) bool {
	if input == c.lastInput {
		return true
	}
	return c.cycleIndex >= 0 && input == c.matches[c.cycleIndex]
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.lastInput = ""
}

// longestCommonPrefix finds the byte-wise longest common prefix of strs.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	first := strs[0]
	for i := 0; i < len(first); i++ {
		for _, s := range strs[1:] {
			if i >= len(s) || s[i] != first[i] {
				return first[:i]
			}
		}
	}
	return first
}
