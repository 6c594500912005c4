package peg

// Position is a non-negative index into an Input. 0 is the start
// position; Input.Length() is the terminal valid position.
type Position int

// NoPosition denotes the absence of a recorded position, used as the
// initial value of a furthest-error tracker before any failure has
// been observed.
const NoPosition Position = -1
