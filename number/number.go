// Package number provides Number, a tagged boolean, integer or real value
// built on the object core.
//
// Numbers of different kinds compare equal when they denote the same value:
// true equals 1 and 1.0, false equals 0 and 0.0, and an integer equals a
// real holding exactly that integer. Hashes follow the same rule.
package number

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/wippyai/hollowcore/errors"
	"github.com/wippyai/hollowcore/object"
)

// Kind tags the value a Number holds.
type Kind uint8

const (
	Boolean Kind = iota
	Integer
	Real
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case Real:
		return "real"
	default:
		return "unknown"
	}
}

// Type is the descriptor of Number.
var Type = object.MustRegisterType("Number", object.RootType, object.Ops{
	Equal:   numberEqual,
	Hash:    numberHash,
	Print:   numberPrint,
	Destroy: object.NoDestroy,
})

// Number is an immutable tagged value.
type Number struct {
	header object.Header
	rval   float64
	ival   int64
	kind   Kind
}

func newNumber(kind Kind) *Number {
	n := &Number{kind: kind}
	object.Init(&n.header, Type)
	return n
}

// New returns the boolean false.
func New() *Number {
	return NewBoolean(false)
}

func NewBoolean(v bool) *Number {
	n := newNumber(Boolean)
	if v {
		n.ival = 1
	}
	return n
}

func NewInteger(v int64) *Number {
	n := newNumber(Integer)
	n.ival = v
	return n
}

func NewReal(v float64) *Number {
	n := newNumber(Real)
	n.rval = v
	return n
}

// Parse reads "true", "false", an integer or a real, in that order.
func Parse(s string) (*Number, error) {
	switch s {
	case "true":
		return NewBoolean(true), nil
	case "false":
		return NewBoolean(false), nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInteger(i), nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConversion, errors.KindInvalidInput, err,
			fmt.Sprintf("parse number %q", s))
	}
	return NewReal(r), nil
}

// Header implements object.Object.
func (n *Number) Header() *object.Header {
	return &n.header
}

func (n *Number) String() string {
	return object.String(n)
}

func (n *Number) Kind() Kind { return n.kind }

func (n *Number) IsBoolean() bool { return n.kind == Boolean }
func (n *Number) IsInteger() bool { return n.kind == Integer }
func (n *Number) IsReal() bool    { return n.kind == Real }

// AsBoolean reports whether the value is non-zero.
func (n *Number) AsBoolean() bool {
	if n.kind == Real {
		return n.rval != 0
	}
	return n.ival != 0
}

// AsInteger returns the value, flooring reals.
func (n *Number) AsInteger() int64 {
	if n.kind == Real {
		return int64(math.Floor(n.rval))
	}
	return n.ival
}

// AsReal returns the value as a float64.
func (n *Number) AsReal() float64 {
	if n.kind == Real {
		return n.rval
	}
	return float64(n.ival)
}

// integral returns the value as an integer when it is exactly one.
func (n *Number) integral() (int64, bool) {
	if n.kind != Real {
		return n.ival, true
	}
	if n.rval != math.Trunc(n.rval) || n.rval < math.MinInt64 || n.rval >= math.MaxInt64 {
		return 0, false
	}
	return int64(n.rval), true
}

func numberEqual(self, other object.Object) bool {
	a := self.(*Number)
	b, ok := other.(*Number)
	if !ok {
		return false
	}
	if a.kind == Real && b.kind == Real {
		return a.rval == b.rval
	}
	ai, aok := a.integral()
	bi, bok := b.integral()
	return aok && bok && ai == bi
}

func numberHash(self object.Object) uint64 {
	n := self.(*Number)
	if i, ok := n.integral(); ok {
		return uint64(i)
	}
	return math.Float64bits(n.rval)
}

func numberPrint(self object.Object, w io.Writer) error {
	n := self.(*Number)
	var s string
	switch n.kind {
	case Boolean:
		s = strconv.FormatBool(n.ival != 0)
	case Integer:
		s = strconv.FormatInt(n.ival, 10)
	default:
		s = strconv.FormatFloat(n.rval, 'f', -1, 64)
	}
	_, err := io.WriteString(w, s)
	return err
}
