package model

// Direction is one of the 16 step vectors shared by all movement and attack
// logic: 4 orthogonal, 4 diagonal, 8 knight L-shapes. Y grows downward
// (row 0 is rank 8), so "up" is toward Black's back rank.
type Direction int

const (
	up Direction = iota
	down
	right
	left
	upLeft
	downLeft
	upRight
	downRight
	rightRightUp
	rightUpUp
	rightRightDown
	rightDownDown
	leftUpUp
	leftLeftUp
	leftLeftDown
	leftDownDown
)

var allDirections = [16]Direction{
	up, down, right, left,
	upLeft, downLeft, upRight, downRight,
	rightRightUp, rightUpUp, rightRightDown, rightDownDown,
	leftUpUp, leftLeftUp, leftLeftDown, leftDownDown,
}

var directionOffsets = [16][2]int{
	up:             {0, -1},
	down:           {0, 1},
	right:          {1, 0},
	left:           {-1, 0},
	upLeft:         {-1, -1},
	downLeft:       {-1, 1},
	upRight:        {1, -1},
	downRight:      {1, 1},
	rightRightUp:   {2, -1},
	rightUpUp:      {1, -2},
	rightRightDown: {2, 1},
	rightDownDown:  {1, 2},
	leftUpUp:       {-1, -2},
	leftLeftUp:     {-2, -1},
	leftLeftDown:   {-2, 1},
	leftDownDown:   {-1, 2},
}

func (d Direction) offset() (dx, dy int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

func containsDir(dirs []Direction, d Direction) bool {
	for _, m := range dirs {
		if m == d {
			return true
		}
	}
	return false
}
