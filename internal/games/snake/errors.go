package snake

import "errors"

// Invariant violations. Both indicate a logic defect and halt the loop.
var (
	ErrEmptyBody  = errors.New("snake: player body is empty")
	ErrNoFreeCell = errors.New("snake: no free cell left for fruit")
)
