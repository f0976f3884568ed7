package tables

import "github.com/porutham-dev/porutham/internal/domain/values"

// friendshipTable records the natural planetary relationships for the seven
// sign-ruling planets. The matrix is directional: Venus counts the Moon as
// an enemy while the Moon counts nobody as one. Rahu and Ketu never rule a
// sign and therefore have no row.
var friendshipTable = map[values.Planet]map[values.Planet]values.Relation{
	values.Sun: {
		values.Moon: values.RelationFriend, values.Mars: values.RelationFriend,
		values.Jupiter: values.RelationFriend, values.Mercury: values.RelationNeutral,
		values.Venus: values.RelationEnemy, values.Saturn: values.RelationEnemy,
	},
	values.Moon: {
		values.Sun: values.RelationFriend, values.Mercury: values.RelationFriend,
		values.Mars: values.RelationNeutral, values.Jupiter: values.RelationNeutral,
		values.Venus: values.RelationNeutral, values.Saturn: values.RelationNeutral,
	},
	values.Mars: {
		values.Sun: values.RelationFriend, values.Moon: values.RelationFriend,
		values.Jupiter: values.RelationFriend, values.Venus: values.RelationNeutral,
		values.Saturn: values.RelationNeutral, values.Mercury: values.RelationEnemy,
	},
	values.Mercury: {
		values.Sun: values.RelationFriend, values.Venus: values.RelationFriend,
		values.Mars: values.RelationNeutral, values.Jupiter: values.RelationNeutral,
		values.Saturn: values.RelationNeutral, values.Moon: values.RelationEnemy,
	},
	values.Jupiter: {
		values.Sun: values.RelationFriend, values.Moon: values.RelationFriend,
		values.Mars: values.RelationFriend, values.Saturn: values.RelationNeutral,
		values.Mercury: values.RelationEnemy, values.Venus: values.RelationEnemy,
	},
	values.Venus: {
		values.Mercury: values.RelationFriend, values.Saturn: values.RelationFriend,
		values.Mars: values.RelationNeutral, values.Jupiter: values.RelationNeutral,
		values.Sun: values.RelationEnemy, values.Moon: values.RelationEnemy,
	},
	values.Saturn: {
		values.Mercury: values.RelationFriend, values.Venus: values.RelationFriend,
		values.Jupiter: values.RelationNeutral, values.Sun: values.RelationEnemy,
		values.Moon: values.RelationEnemy, values.Mars: values.RelationEnemy,
	},
}

// Friendship returns how planet a regards planet b. Asking about a planet's
// own lord returns friend, so two signs sharing a ruler grade as mutual
// friends.
func Friendship(a, b values.Planet) (values.Relation, error) {
	if a == b {
		return values.RelationFriend, nil
	}
	row, ok := friendshipTable[a]
	if !ok {
		return "", &CoverageError{Table: "friendship", Key: a.String()}
	}
	rel, ok := row[b]
	if !ok {
		return "", &CoverageError{Table: "friendship", Key: a.String() + "/" + b.String()}
	}
	return rel, nil
}
