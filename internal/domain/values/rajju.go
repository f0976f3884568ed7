package values

import "fmt"

// RajjuGroup is one of the five classical rope groupings of nakshatras,
// each associated with a part of the body.
type RajjuGroup string

const (
	RajjuPada   RajjuGroup = "Pada"
	RajjuKati   RajjuGroup = "Kati"
	RajjuNabhi  RajjuGroup = "Nabhi"
	RajjuKantha RajjuGroup = "Kantha"
	RajjuSiro   RajjuGroup = "Siro"
)

// AllRajjuGroups lists the five groups from feet to head.
var AllRajjuGroups = []RajjuGroup{RajjuPada, RajjuKati, RajjuNabhi, RajjuKantha, RajjuSiro}

var rajjuBodyParts = map[RajjuGroup]string{
	RajjuPada:   "Feet",
	RajjuKati:   "Thigh",
	RajjuNabhi:  "Navel",
	RajjuKantha: "Neck",
	RajjuSiro:   "Head",
}

// BodyPart returns the body part associated with the group.
func (g RajjuGroup) BodyPart() string {
	return rajjuBodyParts[g]
}

// Validate returns an error if the group is not one of the five rajjus.
func (g RajjuGroup) Validate() error {
	if _, ok := rajjuBodyParts[g]; !ok {
		return fmt.Errorf("invalid rajju group: %s", g)
	}
	return nil
}

// String returns the group name.
func (g RajjuGroup) String() string {
	return string(g)
}
