package probe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/qjpcpu/benchprobe/list"
)

// EnvNative environment of probes without implementation variants
const EnvNative = "native"

// RunFunc execute a probe once in env with size n
type RunFunc func(env string, n int) error

// Probe describe a benchmark workload
type Probe struct {
	Key          string
	Name         string
	ParamLabel   string
	Sizes        []int
	Environments []string
	Run          RunFunc
}

var sink int

func runNative(fn func(int)) RunFunc {
	return func(env string, n int) error {
		if env != EnvNative {
			return fmt.Errorf("probe: unknown environment %q", env)
		}
		fn(n)
		return nil
	}
}

func listEnvironments() []string {
	var envs []string
	for _, k := range list.Kinds() {
		envs = append(envs, string(k))
	}
	return envs
}

// Defaults probes with sizes used by the reference harness
func Defaults() []Probe {
	return []Probe{
		{
			Key:          "sumsquares",
			Name:         "Sum of squares",
			ParamLabel:   "n",
			Sizes:        []int{1000, 10000, 50000},
			Environments: []string{EnvNative},
			Run:          runNative(func(n int) { sink = SumSquares(n) }),
		},
		{
			Key:          "recursion",
			Name:         "Recursion",
			ParamLabel:   "depth",
			Sizes:        []int{100, 1000, 5000},
			Environments: []string{EnvNative},
			Run:          runNative(Recurse),
		},
		{
			Key:          "linkedlist",
			Name:         "Linked list traversal",
			ParamLabel:   "length",
			Sizes:        []int{1000, 10000, 20000},
			Environments: listEnvironments(),
			Run: func(env string, n int) error {
				q, err := list.New(list.Kind(env))
				if err != nil {
					return err
				}
				return LinkedListInsertTraverse(q, n)
			},
		},
		{
			Key:          "array",
			Name:         "Array traversal",
			ParamLabel:   "length",
			Sizes:        []int{1000, 10000, 20000},
			Environments: []string{EnvNative},
			Run:          runNative(func(n int) { sink = TraverseArray(n) }),
		},
	}
}

// Lookup probe by key or name, case insensitive
func Lookup(name string) (Probe, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range Defaults() {
		if p.Key == name || strings.ToLower(p.Name) == name {
			return p, true
		}
	}
	return Probe{}, false
}

// Select probes by comma separated names, blank means all
func Select(names string) ([]Probe, error) {
	if strings.TrimSpace(names) == "" {
		return Defaults(), nil
	}
	var out []Probe
	seen := make(map[string]bool)
	for _, name := range strings.Split(names, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		p, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("probe: unknown probe %q", strings.TrimSpace(name))
		}
		if seen[p.Key] {
			continue
		}
		seen[p.Key] = true
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("probe: no probe selected")
	}
	return out, nil
}

// ParseSizes parse "1000,10000" into sizes, every size should be positive
func ParseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(strings.Replace(f, "_", "", -1))
		if err != nil {
			return nil, fmt.Errorf("probe: bad size %q", f)
		}
		if n <= 0 {
			return nil, fmt.Errorf("probe: size should be positive, got %d", n)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// Keys of default probes
func Keys() []string {
	var keys []string
	for _, p := range Defaults() {
		keys = append(keys, p.Key)
	}
	return keys
}
