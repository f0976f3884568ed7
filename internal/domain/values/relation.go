package values

import "fmt"

// Relation is the natural disposition of one planet toward another.
type Relation string

const (
	RelationFriend  Relation = "friend"
	RelationNeutral Relation = "neutral"
	RelationEnemy   Relation = "enemy"
)

// Validate returns an error if the relation is not friend, neutral, or enemy.
func (r Relation) Validate() error {
	switch r {
	case RelationFriend, RelationNeutral, RelationEnemy:
		return nil
	default:
		return fmt.Errorf("invalid relation: %s", r)
	}
}

// String returns the relation name.
func (r Relation) String() string {
	return string(r)
}
