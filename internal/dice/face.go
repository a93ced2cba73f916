package dice

// Face is the type shown on one combat die
type Face int

const (
	FaceAttack Face = iota + 1
	FaceDefense
	FaceMagic
	FaceHealth
)

// faceCount is the number of distinct faces; each is equally likely
const faceCount = 4

// Faces lists every face in roll order
var Faces = []Face{FaceAttack, FaceDefense, FaceMagic, FaceHealth}

// RollFace draws one face uniformly
func RollFace(r Roller) Face {
	return Face(r.Roll(faceCount))
}

// Valid reports whether f is one of the four faces
func (f Face) Valid() bool {
	return f >= FaceAttack && f <= FaceHealth
}

// Emoji returns the display glyph for the face
func (f Face) Emoji() string {
	switch f {
	case FaceAttack:
		return "⚔️"
	case FaceDefense:
		return "🛡️"
	case FaceMagic:
		return "✨"
	case FaceHealth:
		return "💝"
	default:
		return ""
	}
}

func (f Face) String() string {
	switch f {
	case FaceAttack:
		return "attack"
	case FaceDefense:
		return "defense"
	case FaceMagic:
		return "magic"
	case FaceHealth:
		return "health"
	default:
		return "unknown"
	}
}
