package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestPairString(t *testing.T) {
	p := Pair{RealmID: 4440, AuctionHouseID: 6}
	if got := p.String(); got != "4440/6" {
		t.Errorf("String() = %q, want %q", got, "4440/6")
	}
}

func TestItemAggregate_ObserveBuyout(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		var a ItemAggregate
		if v, ok := a.MinBuyout(); ok || v != 0 {
			t.Errorf("MinBuyout() = (%d, %v), want (0, false)", v, ok)
		}
	})

	t.Run("first observation sets value", func(t *testing.T) {
		var a ItemAggregate
		a.ObserveBuyout(500)
		if v, ok := a.MinBuyout(); !ok || v != 500 {
			t.Errorf("MinBuyout() = (%d, %v), want (500, true)", v, ok)
		}
	})

	t.Run("keeps strictly smaller", func(t *testing.T) {
		var a ItemAggregate
		for _, unit := range []int64{500, 700, 300, 300, 400} {
			a.ObserveBuyout(unit)
		}
		if v, _ := a.MinBuyout(); v != 300 {
			t.Errorf("MinBuyout() = %d, want 300", v)
		}
	})

	t.Run("zero unit is a real observation", func(t *testing.T) {
		var a ItemAggregate
		a.ObserveBuyout(0)
		if v, ok := a.MinBuyout(); !ok || v != 0 {
			t.Errorf("MinBuyout() = (%d, %v), want (0, true)", v, ok)
		}
	})
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("get auctions realm 1 ah 2: %w: %w", ErrParse, errors.New("unexpected EOF"))
	if !errors.Is(err, ErrParse) {
		t.Error("expected errors.Is(err, ErrParse)")
	}
	if errors.Is(err, ErrTransport) {
		t.Error("did not expect errors.Is(err, ErrTransport)")
	}
}
