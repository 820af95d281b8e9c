package chemgraph

//A map with the allowed valences for each element, in ascending order.
//The typing step picks the smallest valence that accommodates the
//bonded-order sum of the atom.
//Note that just common "bio-elements" are present.
var symbolValences = map[string][]int{
	"H":  {1},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"F":  {1},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
	"S":  {2, 4, 6},
	"P":  {3, 5},
	"Se": {2, 4, 6},
	"As": {3, 5},
	"Si": {4},
	"B":  {3},
}

//A map with the number of valence electrons per element, used to count
//lone pairs when inferring the steric number.
var symbolValenceElectrons = map[string]int{
	"H":  1,
	"C":  4,
	"N":  5,
	"O":  6,
	"F":  7,
	"Cl": 7,
	"Br": 7,
	"I":  7,
	"S":  6,
	"P":  5,
	"Se": 6,
	"As": 5,
	"Si": 4,
	"B":  3,
}
