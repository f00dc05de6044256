package size

import (
	"strconv"
	"strings"
)

var unitTokens = map[string]Unit{
	"b":  Bytes,
	"kb": Kilobytes,
	"mb": Megabytes,
	"gb": Gigabytes,
}

// Parse parses input of the form "<value> <unit>" where value is a base-10
// unsigned integer and unit is one of b, kb, mb, gb in any letter case.
func Parse(input string) (Quantity, error) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		return Quantity{}, &ParseError{Input: input, Token: "", Kind: ErrMalformedInput}
	}

	valueToken, unitToken := parts[0], parts[1]

	value, err := parseValue(valueToken)
	if nil != err {
		return Quantity{}, &ParseError{Input: input, Token: valueToken, Kind: ErrInvalidNumber}
	}

	u, ok := unitTokens[strings.ToLower(unitToken)]
	if !ok {
		return Quantity{}, &ParseError{Input: input, Token: unitToken, Kind: ErrInvalidUnit}
	}

	return Quantity{Unit: u, Value: value}, nil
}

func parseValue(s string) (uint64, error) {
	// With base 10, ParseUint rejects signs and "_" separators.
	return strconv.ParseUint(s, 10, 64)
}
