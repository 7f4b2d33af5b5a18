package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/cst"
)

// literal maps the literal production onto its Literal variant. The
// token-backed alternatives are probed in order; the numeric form has
// its own sub rule and value parse. String literals keep their raw
// quoted text.
func (b *builder) literal(lit *cst.Literal) (ast.Expr, error) {
	b.trace("Literal")
	loc, err := b.location(lit)
	if err != nil {
		return nil, err
	}
	switch {
	case lit.NullLiteral() != nil:
		return &ast.NullLiteral{Location: loc}, nil
	case lit.BooleanLiteral() != nil:
		return &ast.BooleanLiteral{Location: loc, Value: lit.BooleanLiteral().Text == "true"}, nil
	case lit.StringLiteral() != nil:
		return &ast.StringLiteral{Location: loc, Value: lit.StringLiteral().Text}, nil
	case lit.RegularExpressionLiteral() != nil:
		return nil, b.unsupported("RegularExpressionLiteral")
	case lit.NumericLiteral() != nil:
		return b.numericLiteral(lit.NumericLiteral())
	case lit.BigintLiteral() != nil:
		return nil, b.unsupported("BigIntLiteral")
	case lit.TemplateStringLiteral() != nil:
		return nil, b.unsupported("TemplateStringLiteral")
	}
	return nil, &MissingResultError{Rule: "Literal"}
}

// numericLiteral parses the matched numeric spelling into a float64
// value, the only numeric domain the node model carries.
func (b *builder) numericLiteral(num *cst.NumericLiteral) (*ast.NumericLiteral, error) {
	b.trace("NumericLiteral")
	loc, err := b.location(num)
	if err != nil {
		return nil, err
	}
	value, err := numericValue(num)
	if err != nil {
		return nil, err
	}
	return &ast.NumericLiteral{Location: loc, Value: value}, nil
}

// numericValue converts the literal's raw text by its spelling. Decimal
// forms go through ParseFloat, the prefixed integer forms convert their
// digits exactly and fall back to digit accumulation when the magnitude
// overflows 64 bits.
func numericValue(num *cst.NumericLiteral) (float64, error) {
	text := num.Text()
	switch {
	case num.DecimalLiteral() != nil:
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
				// Overflow saturates to an infinity.
				return value, nil
			}
			return 0, fmt.Errorf("numeric literal %q: %w", text, err)
		}
		return value, nil
	case num.HexIntegerLiteral() != nil:
		return integerValue(text[2:], 16)
	case num.OctalIntegerLiteral() != nil:
		return integerValue(text[1:], 8)
	case num.OctalIntegerLiteral2() != nil:
		return integerValue(text[2:], 8)
	case num.BinaryIntegerLiteral() != nil:
		return integerValue(text[2:], 2)
	}
	return 0, &MissingResultError{Rule: "NumericLiteral"}
}

// integerValue parses prefix-stripped integer digits. ParseUint covers
// every value that fits 64 bits; larger magnitudes accumulate digit by
// digit in the float64 domain.
func integerValue(digits string, base int) (float64, error) {
	if u, err := strconv.ParseUint(digits, base, 64); err == nil {
		return float64(u), nil
	}
	var value float64
	for _, chr := range digits {
		digit := digitValue(chr)
		if digit >= base {
			return 0, fmt.Errorf("invalid digit %q in numeric literal", chr)
		}
		value = value*float64(base) + float64(digit)
	}
	return value, nil
}

func digitValue(chr rune) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr-'a') + 10
	case 'A' <= chr && chr <= 'F':
		return int(chr-'A') + 10
	}
	return 16 // Larger than any digit in use.
}
