// internal/cli/flags.go
package cli

import (
	"strconv"

	"github.com/creativeyann17/go-pixz/pkg/config"
)

// operationValue is a boolean flag that selects an operation when set.
// pflag calls Set in command-line order, so the last operation flag wins.
type operationValue struct {
	target *config.Operation
	op     config.Operation
}

func (v *operationValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.target = v.op
	}
	return nil
}

func (v *operationValue) String() string { return strconv.FormatBool(*v.target == v.op) }

func (v *operationValue) Type() string { return "bool" }

// levelValue backs the digit flags -0 ... -9
type levelValue struct {
	target *int
	level  int
}

func (v *levelValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*v.target = v.level
	}
	return nil
}

func (v *levelValue) String() string { return "false" }

func (v *levelValue) Type() string { return "bool" }

// countValue is a base-10 integer with a lower bound. The whole argument
// must be numeric.
type countValue struct {
	target *int
	min    int
	fail   error
	report *error
}

func (v *countValue) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil || int(n) < v.min {
		*v.report = config.Usage(v.fail)
		return *v.report
	}
	*v.target = int(n)
	return nil
}

func (v *countValue) String() string { return strconv.Itoa(*v.target) }

func (v *countValue) Type() string { return "int" }

// fractionValue is a strictly positive float
type fractionValue struct {
	target *float64
	report *error
}

func (v *fractionValue) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(f > 0) {
		*v.report = config.Usage(config.ErrInvalidBlockFraction)
		return *v.report
	}
	*v.target = f
	return nil
}

func (v *fractionValue) String() string { return strconv.FormatFloat(*v.target, 'g', -1, 64) }

func (v *fractionValue) Type() string { return "float" }
