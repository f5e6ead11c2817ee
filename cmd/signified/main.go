// Command signified is a small demo CLI that exercises the reactive engine
// end to end, running the scenarios from §8 of the specification and
// printing what each one observed. It follows grovetools-core's
// cobra/pflag convention for command and flag definition.
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sig "github.com/signified-go/signified"
	"github.com/signified-go/signified/sighooks"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var scenario string

	cmd := &cobra.Command{
		Use:   "signified",
		Short: "Run the reactive-engine end-to-end scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log := logrus.New()
				log.SetLevel(logrus.TraceLevel)
				sighooks.Register(log)
				sig.SetDebugLogLevel(true)
			}
			return runScenarios(cmd.OutOrStdout(), scenario)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log graph lifecycle events via logrus")
	cmd.Flags().StringVar(&scenario, "scenario", "", "run only this scenario (S1..S6); empty runs all")

	return cmd
}

type scenarioFunc func() (string, error)

func runScenarios(out io.Writer, only string) error {
	scenarios := map[string]scenarioFunc{
		"S1": scenarioS1,
		"S2": scenarioS2,
		"S3": scenarioS3,
		"S4": scenarioS4,
		"S5": scenarioS5,
		"S6": scenarioS6,
	}

	order := []string{"S1", "S2", "S3", "S4", "S5", "S6"}
	if only != "" {
		order = []string{only}
	}

	var failed error
	for _, name := range order {
		fn, ok := scenarios[name]
		if !ok {
			fmt.Fprintf(out, "%s: unknown scenario\n", name)
			failed = errors.New("unknown scenario requested")
			continue
		}
		result, err := fn()
		if err != nil {
			fmt.Fprintf(out, "%s: %s\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", name, result)
	}
	return failed
}

func scenarioS1() (string, error) {
	calls := 0
	x := sig.NewSignal(2)
	d := sig.NewComputed(func() int {
		calls++
		return 2 * x.Read()
	})

	first := d.Read()
	if err := x.Write(5); err != nil {
		return "", err
	}
	second := d.Read()

	return fmt.Sprintf("read=%d then %d, thunk calls=%d", first, second, calls), nil
}

func scenarioS2() (string, error) {
	yCalls, zCalls := 0, 0
	x := sig.NewSignal(3)
	y := sig.NewComputed(func() int {
		yCalls++
		v := x.Read()
		return v * v
	})
	z := sig.NewComputed(func() int {
		zCalls++
		return y.Read() + 1
	})

	first := z.Read()
	if err := x.Write(3); err != nil {
		return "", err
	}
	second := z.Read()

	return fmt.Sprintf("read=%d then %d, y calls=%d, z calls=%d", first, second, yCalls, zCalls), nil
}

func scenarioS3() (string, error) {
	x := sig.NewSignal(math.NaN())
	before := x.Version()
	if err := x.Write(math.NaN()); err != nil {
		return "", err
	}
	after := x.Version()
	return fmt.Sprintf("version %d -> %d (no notification expected)", before, after), nil
}

func scenarioS4() (string, error) {
	u := sig.NewSignal[any](nil)
	g := sig.NewComputed(func() string {
		v := u.Read()
		if v == nil {
			return "nope"
		}
		return "hi " + v.(string)
	})

	first := g.Read()
	if err := u.Write("bob"); err != nil {
		return "", err
	}
	second := g.Read()
	return fmt.Sprintf("%q then %q", first, second), nil
}

func scenarioS5() (string, error) {
	nums := sig.NewSignal([]int{1, 2, 3})
	s := sig.NewComputed(func() int {
		total := 0
		for _, n := range nums.Read() {
			total += n
		}
		return total
	})

	first := s.Read()
	if err := nums.ItemSet(0, 9); err != nil {
		return "", err
	}
	second := s.Read()
	return fmt.Sprintf("%d then %d", first, second), nil
}

func scenarioS6() (string, error) {
	var a, b *sig.Computed[int]
	a = sig.NewComputed(func() int { return b.Read() })
	b = sig.NewComputed(func() int { return a.Read() })

	_, err := a.TryRead()
	if err == nil {
		return "", errors.New("expected CyclicEvaluationError, got nil")
	}
	var cycleErr *sig.CyclicEvaluationError
	if !errors.As(err, &cycleErr) {
		return "", fmt.Errorf("expected CyclicEvaluationError, got %T: %v", err, err)
	}
	return fmt.Sprintf("got expected error: %s", cycleErr), nil
}
