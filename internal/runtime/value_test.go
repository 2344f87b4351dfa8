package runtime

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", NilValue, false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero int", Int(0), true},
		{"empty string", Str(""), true},
		{"empty list", EmptyList, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTruthy(tc.v); got != tc.want {
				t.Errorf("IsTruthy(%#v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestAsNumber(t *testing.T) {
	if f, isInt, ok := AsNumber(Int(3)); !ok || !isInt || f != 3 {
		t.Errorf("AsNumber(Int(3)) = %v, %v, %v", f, isInt, ok)
	}
	if f, isInt, ok := AsNumber(Float(2.5)); !ok || isInt || f != 2.5 {
		t.Errorf("AsNumber(Float(2.5)) = %v, %v, %v", f, isInt, ok)
	}
	if _, _, ok := AsNumber(Str("x")); ok {
		t.Error("expected AsNumber to reject a non-numeric value")
	}
}
