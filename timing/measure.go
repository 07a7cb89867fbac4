// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package timing

// Measure times fn and records the result into list exactly once, on every
// exit path: normal return, error return, or panic (the panic itself still
// propagates). It returns fn's error unchanged.
func Measure(list List[Timer], name string, fn func() error) error {
	timer := Start(name)
	defer func() {
		timer.Finish()
		list.Add(timer)
	}()

	return fn()
}

// MeasureFunc is [Measure] for work units that cannot fail.
func MeasureFunc(list List[Timer], name string, fn func()) {
	_ = Measure(list, name, func() error {
		fn()
		return nil
	})
}
