package protocol

type AvatarKind int

const NumAvatarKinds = 15

var avatarNames = [NumAvatarKinds]string{
	"Human", "Teddy", "Kaycat", "Zach Rabbit", "Kiraffe",
	"Owlive", "Milliepede", "Sweet Puppy Paw", "Tygler", "Chimpancici",
	"Papapus", "Kaitlynx", "Reagator", "Ocelivia", "Hen-ry",
}

func (a AvatarKind) Valid() bool {
	return a >= 0 && a < NumAvatarKinds
}

func (a AvatarKind) Name() string {
	if !a.Valid() {
		return avatarNames[0]
	}
	return avatarNames[a]
}

func (a AvatarKind) Next() AvatarKind {
	return (a + 1) % NumAvatarKinds
}
