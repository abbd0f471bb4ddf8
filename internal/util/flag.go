package util

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

func Flag[T flag.Value](fs *flag.FlagSet, name string, value T, usage string) T {
	fs.Var(value, name, usage)
	return value
}

type intsFlag []int

func (s intsFlag) String() string {
	strs := make([]string, 0, len(s))
	for _, v := range s {
		strs = append(strs, strconv.Itoa(v))
	}
	return strings.Join(strs, ",")
}

func (s *intsFlag) Set(v string) error {
	var ints intsFlag
	for _, str := range strings.Split(v, ",") {
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}

		i, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("parse %q: %w", str, err)
		}
		ints = append(ints, i)
	}
	*s = ints
	return nil
}

// IntsFlag defines a flag that holds a comma-separated list of ints.
func IntsFlag(fs *flag.FlagSet, name string, value []int, usage string) *[]int {
	return (*[]int)(Flag(fs, name, (*intsFlag)(&value), usage))
}
