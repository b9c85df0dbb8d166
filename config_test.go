// seehuhn.de/go/gauge - analog gauge rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package gauge

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}

	margin := -1.0
	bad := Config{
		MaxValue:      0,
		TotalTicks:    -2,
		TickLength:    24,
		TickThickness: 5,
		CornerRadius:  math.Inf(1),
		LabelMargin:   &margin,
		LabelFontSize: 20,
	}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	msg := err.Error()
	for _, field := range []string{"MaxValue", "TotalTicks", "LabelMargin"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention %s", msg, field)
		}
	}
	if strings.Contains(msg, "TickLength") {
		t.Errorf("error %q mentions a valid field", msg)
	}
}

func TestColorDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.color() == nil || cfg.filledColor() != cfg.color() || cfg.pointerColor() != cfg.color() {
		t.Error("unexpected default colors")
	}
}

func TestLabelInset(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.labelInset() != 10 {
		t.Errorf("expected inset 10, got %g", cfg.labelInset())
	}
	m := 0.0
	cfg.LabelMargin = &m
	if cfg.labelInset() != 0 {
		t.Errorf("expected inset 0, got %g", cfg.labelInset())
	}
}
