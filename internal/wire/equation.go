package wire

import (
	"encoding/json"
	"fmt"

	"bazaar/internal/equation"
)

// MarshalEquation renders an Equation as its wire form: [[lhs...],[rhs...]].
func MarshalEquation(eq equation.Equation) ([]byte, error) {
	lhs, err := MarshalCollection(eq.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := MarshalCollection(eq.RHS)
	if err != nil {
		return nil, err
	}
	return json.Marshal([]json.RawMessage{lhs, rhs})
}

// UnmarshalEquation parses the wire form of an Equation.
func UnmarshalEquation(data []byte) (equation.Equation, error) {
	var sides []json.RawMessage
	if err := json.Unmarshal(data, &sides); err != nil {
		return equation.Equation{}, fmt.Errorf("wire: invalid equation: %w", err)
	}
	if len(sides) != 2 {
		return equation.Equation{}, fmt.Errorf("wire: equation must have exactly 2 sides, got %d", len(sides))
	}
	lhs, err := UnmarshalCollection(sides[0])
	if err != nil {
		return equation.Equation{}, err
	}
	rhs, err := UnmarshalCollection(sides[1])
	if err != nil {
		return equation.Equation{}, err
	}
	return equation.New(lhs, rhs)
}

// MarshalEquations renders a slice of equations as its wire form:
// [equation, ...].
func MarshalEquations(eqs []equation.Equation) ([]byte, error) {
	raw := make([]json.RawMessage, len(eqs))
	for i, eq := range eqs {
		m, err := MarshalEquation(eq)
		if err != nil {
			return nil, err
		}
		raw[i] = m
	}
	return json.Marshal(raw)
}

// UnmarshalEquations parses the wire form of a slice of equations.
func UnmarshalEquations(data []byte) ([]equation.Equation, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wire: invalid equations list: %w", err)
	}
	out := make([]equation.Equation, len(raw))
	for i, r := range raw {
		eq, err := UnmarshalEquation(r)
		if err != nil {
			return nil, err
		}
		out[i] = eq
	}
	return out, nil
}
