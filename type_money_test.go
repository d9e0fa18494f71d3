package realty

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	if got := PHP(1.1).Add(PHP(2.2)); !got.Equal(PHP(3.3)) {
		t.Errorf("1.1 + 2.2 = %v, want 3.3", got.Plain())
	}
	if got := NO(5).Add(PHP(1)); got.Currency() != DefaultCurrency {
		t.Errorf("currency of a sum with a weak operand = %q, want %q", got.Currency(), DefaultCurrency)
	}
	if got := PHP(-5).clamp(); !got.IsZero() || got.Currency() != DefaultCurrency {
		t.Errorf("clamp(-5) = %v, want zero PHP", got)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("adding PHP to USD should panic")
		}
	}()
	PHP(1).Add(M(1, "USD"))
}

func TestMoneyRatio(t *testing.T) {
	tests := []struct {
		m, n Money
		want Percent
	}{
		{PHP(1), PHP(4), 25},
		{PHP(1), PHP(0), 0},
		{PHP(1), PHP(-4), 0},
		{PHP(-1), PHP(4), -25},
	}
	for _, tt := range tests {
		if got := tt.m.Ratio(tt.n); !got.Equal(tt.want) {
			t.Errorf("%v.Ratio(%v) = %v, want %v", tt.m.Plain(), tt.n.Plain(), got, tt.want)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	if got := PHP(1500).Plain(); got != "1500.00" {
		t.Errorf("Plain() = %q, want %q", got, "1500.00")
	}
	if got := (Money{}).Plain(); got != "0.00" {
		t.Errorf("Plain() of zero = %q, want %q", got, "0.00")
	}
	if got := PHP(1_234_567.891).String(); !strings.Contains(got, "1,234,567.89") {
		t.Errorf("String() = %q, want it to contain 1,234,567.89", got)
	}
	if got := PHP(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want %q", got, "-")
	}
	if got := PHP(3).SignedString(); !strings.HasPrefix(got, "+") {
		t.Errorf("SignedString() = %q, want a leading +", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	tests := []struct {
		input string
		want  Money
	}{
		{`{"currency":"PHP","amount":"1500.5"}`, PHP(1500.5)},
		{`{"currency":"USD","amount":12}`, M(12, "USD")},
		{`2500`, NO(2500)},
		{`"2500.25"`, NO(2500.25)},
		{`null`, Money{}},
	}
	for _, tt := range tests {
		var got Money
		if err := json.Unmarshal([]byte(tt.input), &got); err != nil {
			t.Errorf("json.Unmarshal(%s) error = %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) || got.Currency() != tt.want.Currency() {
			t.Errorf("json.Unmarshal(%s) = %v %v, want %v %v", tt.input, got.Currency(), got.Plain(), tt.want.Currency(), tt.want.Plain())
		}
	}

	data, err := json.Marshal(PHP(1500.5))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil || !back.Equal(PHP(1500.5)) || back.Currency() != DefaultCurrency {
		t.Errorf("json round trip of %s = %v, %v", data, back, err)
	}
}

func TestPercentSignedString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{9.0909, "+9.09%"},
		{-1.04, "-1.04%"},
		{0, "-"},
		{-0.001, "-"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.want {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.want)
		}
	}
}
