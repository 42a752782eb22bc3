package vrptw

import (
	"fmt"
	"strconv"
	"strings"
)

// ArrayIntFlags collects repeated integer command line flags.
type ArrayIntFlags []int

func (f *ArrayIntFlags) String() string {
	parts := make([]string, len(*f))
	for i, v := range *f {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (f *ArrayIntFlags) Set(value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("not an integer: %s", value)
	}
	*f = append(*f, v)
	return nil
}
