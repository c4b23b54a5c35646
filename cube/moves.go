package cube

import "fmt"

// Move is one of the 18 face turns.
type Move uint8

// Moves are ordered face-major (U R F D L B), then quarter turn, half turn
// and counter-clockwise quarter turn.
const (
	U Move = iota
	U2
	UPrime
	R
	R2
	RPrime
	F
	F2
	FPrime
	D
	D2
	DPrime
	L
	L2
	LPrime
	B
	B2
	BPrime

	NumMoves = 18
)

var moveNames = [NumMoves]string{
	"U", "U2", "U'", "R", "R2", "R'", "F", "F2", "F'",
	"D", "D2", "D'", "L", "L2", "L'", "B", "B2", "B'",
}

func (m Move) String() string {
	if m >= NumMoves {
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
	return moveNames[m]
}

// Face returns 0..5 for U R F D L B.
func (m Move) Face() int { return int(m) / 3 }

// Power is 1, 2 or 3 quarter turns clockwise.
func (m Move) Power() int { return int(m)%3 + 1 }

// Inverse returns the turn that undoes m.
func (m Move) Inverse() Move {
	return m - m%3 + 2 - m%3
}

// Moves holds the cube for each face turn applied to the solved state.
var Moves = [NumMoves]Cube{
	U:      New(0x0706050402010003, 0x0b0a0908, 0x0706050402010003),
	U2:     New(0x0706050401000302, 0x0b0a0908, 0x0706050401000302),
	UPrime: New(0x0706050400030201, 0x0b0a0908, 0x0706050400030201),
	R:      New(0x2306051710020124, 0x000a0904, 0x0706050b03020108),
	R2:     New(0x0006050304020107, 0x080a090b, 0x0706050003020104),
	RPrime: New(0x2406051017020123, 0x040a0900, 0x070605080302010b),
	F:      New(0x0706142003022511, 0x0b0a1511, 0x0706180403021900),
	F2:     New(0x0706000103020405, 0x0b0a0809, 0x0706010403020500),
	FPrime: New(0x0706112503022014, 0x0b0a1115, 0x0706190403021800),
	D:      New(0x0407060503020100, 0x0b0a0908, 0x0407060503020100),
	D2:     New(0x0504070603020100, 0x0b0a0908, 0x0504070603020100),
	DPrime: New(0x0605040703020100, 0x0b0a0908, 0x0605040703020100),
	L:      New(0x0715210403261200, 0x0b060208, 0x07090504030a0100),
	L2:     New(0x0701020403050600, 0x0b090a08, 0x0702050403060100),
	LPrime: New(0x0712260403211500, 0x0b020608, 0x070a050403090100),
	B:      New(0x1622050427130100, 0x17130908, 0x1a0605041b020100),
	B2:     New(0x0203050406070100, 0x0a0b0908, 0x0306050407020100),
	BPrime: New(0x1327050422160100, 0x13170908, 0x1b0605041a020100),
}
