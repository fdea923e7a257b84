package domain

// DirectionOf derives a snake's facing direction from its head and
// second element. The label names where the head looks, which is away
// from the body: a head whose body extends rightward faces left.
func DirectionOf(s Snake) Direction {
	if len(s) < 2 {
		return DirNone
	}
	head, next := s[0], s[1]
	switch {
	case next.X > head.X:
		return DirLeft
	case next.X < head.X:
		return DirRight
	case next.Y > head.Y:
		return DirUp
	default:
		return DirDown
	}
}

// LookingAt returns the cell one step outward from head in direction d.
// The second return is false for DirNone, which has no such cell.
func LookingAt(head Position, d Direction) (Position, bool) {
	switch d {
	case DirUp:
		return Position{X: head.X, Y: head.Y - 1}, true
	case DirDown:
		return Position{X: head.X, Y: head.Y + 1}, true
	case DirLeft:
		return Position{X: head.X - 1, Y: head.Y}, true
	case DirRight:
		return Position{X: head.X + 1, Y: head.Y}, true
	default:
		return Position{}, false
	}
}

// FaceToFace reports whether two snake heads confront each other along
// a shared row or column. Single-cell snakes (DirNone) never face
// anything. On a shared row the pair is facing when one head is
// left-facing, the other right-facing, and the right-facing head sits
// strictly right of the left-facing one; the shared-column rule is the
// vertical mirror. Every other configuration is allowed.
func FaceToFace(headA Position, dirA Direction, headB Position, dirB Direction) bool {
	if dirA == DirNone || dirB == DirNone {
		return false
	}
	if headA.Y == headB.Y {
		if dirA == DirLeft && dirB == DirRight {
			return headB.X > headA.X
		}
		if dirA == DirRight && dirB == DirLeft {
			return headA.X > headB.X
		}
	}
	if headA.X == headB.X {
		if dirA == DirUp && dirB == DirDown {
			return headB.Y > headA.Y
		}
		if dirA == DirDown && dirB == DirUp {
			return headA.Y > headB.Y
		}
	}
	return false
}
