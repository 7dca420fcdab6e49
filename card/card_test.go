package card

import (
	"testing"
)

func TestCardOrdering(t *testing.T) {
	t.Parallel()
	order := []Card{NoCard, Guard, Priest, Baron, Handmaid, Prince, King, Countess, Princess}
	for i, c := range order {
		if int(c) != i {
			t.Errorf("Expected %s to have strength %d, got %d", c, i, c)
		}
	}
	if !(King > Guard) {
		t.Error("King should outrank Guard")
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()
	if Princess.String() != "Princess" {
		t.Errorf("Expected 'Princess', got %s", Princess.String())
	}
	if NoCard.String() != "NoCard" {
		t.Errorf("Expected 'NoCard', got %s", NoCard.String())
	}
	if Card(42).String() != "Card(42)" {
		t.Errorf("Expected 'Card(42)', got %s", Card(42).String())
	}
}

func TestTargetTags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card      Card
		onlyOther bool
		onlySelf  bool
	}{
		{NoCard, false, true},
		{Guard, true, false},
		{Priest, true, false},
		{Baron, true, false},
		{Handmaid, false, true},
		{Prince, false, false},
		{King, true, false},
		{Countess, false, true},
		{Princess, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.card.String(), func(t *testing.T) {
			if got := OnlyOther(tt.card); got != tt.onlyOther {
				t.Errorf("OnlyOther(%s) = %v, want %v", tt.card, got, tt.onlyOther)
			}
			if got := OnlySelf(tt.card); got != tt.onlySelf {
				t.Errorf("OnlySelf(%s) = %v, want %v", tt.card, got, tt.onlySelf)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{"guard", Guard, false},
		{"Princess", Princess, false},
		{" 5 ", Prince, false},
		{"0", NoCard, false},
		{"9", NoCard, true},
		{"-1", NoCard, true},
		{"jester", NoCard, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
