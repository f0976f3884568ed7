package values

import "fmt"

// Yoni is the animal-nature symbol assigned to each nakshatra.
type Yoni string

const (
	YoniAshwa   Yoni = "Ashwa"
	YoniGaja    Yoni = "Gaja"
	YoniMesha   Yoni = "Mesha"
	YoniSarpa   Yoni = "Sarpa"
	YoniShwan   Yoni = "Shwan"
	YoniMarjara Yoni = "Marjara"
	YoniMushaka Yoni = "Mushaka"
	YoniGo      Yoni = "Go"
	YoniMahisha Yoni = "Mahisha"
	YoniVyaghra Yoni = "Vyaghra"
	YoniMriga   Yoni = "Mriga"
	YoniVanara  Yoni = "Vanara"
	YoniSimha   Yoni = "Simha"
	YoniNakula  Yoni = "Nakula"
)

// AllYonis lists the fourteen yoni animals.
var AllYonis = []Yoni{
	YoniAshwa, YoniGaja, YoniMesha, YoniSarpa, YoniShwan, YoniMarjara,
	YoniMushaka, YoniGo, YoniMahisha, YoniVyaghra, YoniMriga, YoniVanara,
	YoniSimha, YoniNakula,
}

var yoniAnimals = map[Yoni]string{
	YoniAshwa:   "Horse",
	YoniGaja:    "Elephant",
	YoniMesha:   "Sheep",
	YoniSarpa:   "Serpent",
	YoniShwan:   "Dog",
	YoniMarjara: "Cat",
	YoniMushaka: "Rat",
	YoniGo:      "Cow",
	YoniMahisha: "Buffalo",
	YoniVyaghra: "Tiger",
	YoniMriga:   "Deer",
	YoniVanara:  "Monkey",
	YoniSimha:   "Lion",
	YoniNakula:  "Mongoose",
}

// Animal returns the English animal name for the yoni.
func (y Yoni) Animal() string {
	return yoniAnimals[y]
}

// Validate returns an error if the yoni is not one of the fourteen animals.
func (y Yoni) Validate() error {
	if _, ok := yoniAnimals[y]; !ok {
		return fmt.Errorf("invalid yoni: %s", y)
	}
	return nil
}

// String returns the Sanskrit yoni name.
func (y Yoni) String() string {
	return string(y)
}
