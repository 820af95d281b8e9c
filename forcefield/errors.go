package forcefield

import (
	"fmt"
	"strconv"
	"strings"
)

//Error is the generic error type for the forcefield package. It
//implements the root package's Error interface.
type Error struct {
	message string
	deco    []string
}

func (err *Error) Error() string {
	return fmt.Sprintf("forcefield: %s", err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//InvalidConformationError reports a starting conformation with non-finite
//coordinates. No minimization is attempted.
type InvalidConformationError struct {
	AtomIndex int
	message   string
	deco      []string
}

func (err *InvalidConformationError) Error() string {
	return fmt.Sprintf("forcefield: invalid conformation at atom %d: %s", err.AtomIndex, err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *InvalidConformationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//UnparameterizedTermError reports a bonded term for which the parameter
//table has no entry. It carries the indices of the atoms involved in the
//term. Partial minimization is never attempted.
type UnparameterizedTermError struct {
	Atoms   []int
	message string
	deco    []string
}

func (err *UnparameterizedTermError) Error() string {
	ats := make([]string, len(err.Atoms))
	for i, a := range err.Atoms {
		ats[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("forcefield: unparameterized term over atoms %s: %s", strings.Join(ats, "-"), err.message)
}

//Decorate adds the dec string to the decoration slice of strings of the
//error, and returns the resulting slice.
func (err *UnparameterizedTermError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
