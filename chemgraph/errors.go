package chemgraph

import "fmt"

//Error is the generic error type for malformed chemgraph input. It
//implements the root package's Error interface.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("chemgraph: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//StructureTypingError reports that the bond graph could not be translated
//into a chemically valid molecular graph. It carries the index of the
//offending atom.
type StructureTypingError struct {
	AtomIndex int
	Symbol    string
	message   string
	deco      []string
}

func (err *StructureTypingError) Error() string {
	return fmt.Sprintf("chemgraph: can't type atom %d (%s): %s", err.AtomIndex, err.Symbol, err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *StructureTypingError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
