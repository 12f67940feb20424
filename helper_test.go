package constellation

import (
	"testing"
)

const (
	kmε = 1e-6 // 1 mm
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("The code did not panic")
		}
	}()
	f()
}

func vectorsEqual(a, b Vector3) bool {
	return a.EqualWithinAbs(b, kmε)
}
