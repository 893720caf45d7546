// Package picker defines the protocol between the item list and the selector
// front-end, plus the rofi implementation of it.
package picker

// Action is the integer action code returned alongside the selected index.
// The mapping is a fixed contract every selector front-end must honor.
type Action int

const (
	ActionSelect Action = 0
	ActionDelete Action = 1
	// Codes 2-9 request a join of that many items.
	ActionJoinMin   Action = 2
	ActionJoinMax   Action = 9
	ActionClear     Action = 10
	ActionCopyTitle Action = 11
)

// JoinCount returns the number of items to join for join-request codes:
// code N joins N items, so every join code clears the two-item minimum.
func (a Action) JoinCount() (int, bool) {
	if a < ActionJoinMin || a > ActionJoinMax {
		return 0, false
	}
	return int(a), true
}

// Response is one picker round-trip result. OK is false when the user
// cancelled; Index and Action are meaningless in that case.
type Response struct {
	Index  int
	Action Action
	OK     bool
}

// Selector is the opaque picker collaborator: labeled lines in, an index plus
// an action code out. Implementations block until the user answers.
type Selector interface {
	Pick(lines []string, prompt string, selected int) (Response, error)
	Confirm(prompt string) (bool, error)
}
