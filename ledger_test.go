package tracker

import (
	"errors"
	"slices"
	"testing"

	"github.com/DKushman/calorie-tracker/date"
)

func TestLedger_Add_prependsNewestFirst(t *testing.T) {
	l := NewLedger()
	day := date.MustParse("2025-06-01")

	first, err := l.Add(day, Draft{Name: "Oatmeal", Calories: A(300)})
	if err != nil {
		t.Fatalf("Add(Oatmeal) failed: %v", err)
	}
	second, err := l.Add(day, Draft{Name: "Salad", Calories: A(450)})
	if err != nil {
		t.Fatalf("Add(Salad) failed: %v", err)
	}

	got := slices.Collect(l.Meals())
	if len(got) != 2 {
		t.Fatalf("Len() = %d, want 2", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("ledger order = [%d, %d], want newest first [%d, %d]", got[0].ID, got[1].ID, second.ID, first.ID)
	}
}

func TestLedger_Add_validates(t *testing.T) {
	testCases := []struct {
		name  string
		draft Draft
	}{
		{name: "empty name", draft: Draft{Calories: A(100)}},
		{name: "negative calories", draft: Draft{Name: "Oops", Calories: A(-1)}},
		{name: "negative protein", draft: Draft{Name: "Oops", Calories: A(100), Protein: A(-0.5)}},
		{name: "negative fat", draft: Draft{Name: "Oops", Calories: A(100), Fat: A(-2)}},
	}

	l := NewLedger()
	day := date.MustParse("2025-06-01")
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.Add(day, tc.draft)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Add() error = %v, want ErrValidation", err)
			}
			if l.Len() != 0 {
				t.Errorf("ledger mutated on invalid draft, Len() = %d", l.Len())
			}
		})
	}
}

func TestLedger_Add_idsStrictlyIncrease(t *testing.T) {
	l := NewLedger()
	day := date.Today()

	var prev int64
	for range 5 {
		m, err := l.Add(day, Draft{Name: "Snack", Calories: A(100)})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if m.ID <= prev {
			t.Fatalf("id %d not strictly greater than previous %d", m.ID, prev)
		}
		prev = m.ID
	}
}

func TestLedger_QuickAdd(t *testing.T) {
	l := NewLedger()
	day := date.MustParse("2025-06-01")

	m, ok := l.QuickAdd(day, A(250))
	if !ok {
		t.Fatal("QuickAdd(250) refused")
	}
	if m.Name != QuickAddName {
		t.Errorf("QuickAdd name = %q, want %q", m.Name, QuickAddName)
	}
	if !m.Protein.IsZero() || !m.Carbs.IsZero() || !m.Fat.IsZero() {
		t.Errorf("QuickAdd macros = %s/%s/%s, want all zero", m.Protein, m.Carbs, m.Fat)
	}

	for _, bad := range []Amount{A(0), A(-100)} {
		if _, ok := l.QuickAdd(day, bad); ok {
			t.Errorf("QuickAdd(%s) accepted, want refusal", bad)
		}
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d after refused quick adds, want 1", l.Len())
	}
}

func TestLedger_Delete_isIdempotent(t *testing.T) {
	l := NewLedger()
	m, err := l.Add(date.Today(), Draft{Name: "Toast", Calories: A(180)})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if !l.Delete(m.ID) {
		t.Error("Delete(existing) = false, want true")
	}
	if l.Delete(m.ID) {
		t.Error("Delete(already deleted) = true, want false")
	}
	if l.Delete(42) {
		t.Error("Delete(unknown) = true, want false")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after delete, want 0", l.Len())
	}
}

func TestLedger_TotalCaloriesOn(t *testing.T) {
	l := NewLedger()
	monday := date.MustParse("2025-06-02")
	tuesday := date.MustParse("2025-06-03")

	l.Add(monday, Draft{Name: "Breakfast", Calories: A(300)})
	l.Add(monday, Draft{Name: "Lunch", Calories: A(650.5)})
	l.Add(tuesday, Draft{Name: "Breakfast", Calories: A(400)})

	if got := l.TotalCaloriesOn(monday); !got.Equal(A(950.5)) {
		t.Errorf("TotalCaloriesOn(monday) = %s, want 950.5", got)
	}
	if got := l.TotalCaloriesOn(tuesday); !got.Equal(A(400)) {
		t.Errorf("TotalCaloriesOn(tuesday) = %s, want 400", got)
	}
	if got := l.TotalCaloriesOn(date.MustParse("2025-06-04")); !got.IsZero() {
		t.Errorf("TotalCaloriesOn(empty day) = %s, want 0", got)
	}
}

func TestRestoredLedger_reseedsIDs(t *testing.T) {
	meals := []MealRecord{
		{ID: 2000, Name: "Lunch", Calories: A(600), Date: date.MustParse("2025-06-01")},
		{ID: 1000, Name: "Breakfast", Calories: A(300), Date: date.MustParse("2025-06-01")},
	}
	l := restoredLedger(meals)

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	m, err := l.Add(date.Today(), Draft{Name: "Dinner", Calories: A(500)})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if m.ID <= 2000 {
		t.Errorf("new id %d not above restored watermark 2000", m.ID)
	}
}
