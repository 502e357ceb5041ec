package anim

import "testing"

func clipNames(sels []Selection) []string {
	names := make([]string, len(sels))
	for i, s := range sels {
		names[i] = s.Clip.Name
	}
	return names
}

func TestSelectMatchesCaseInsensitive(t *testing.T) {
	clips := []Clip{
		{Name: "Armature|Walk_Cycle", Start: 1, End: 24},
		{Name: "Armature|IDLE", Start: 1, End: 8},
		{Name: "Armature|Melee_Swing", Start: 1, End: 12},
		{Name: "Armature|Death_Fall", Start: 1, End: 16},
	}

	selected, skipped := Select(DefaultRoles(), clips)
	if len(skipped) != 0 {
		t.Fatalf("unexpected skipped roles: %v", skipped)
	}
	if len(selected) != 4 {
		t.Fatalf("expected 4 selections, got %d", len(selected))
	}

	want := []string{"Armature|Walk_Cycle", "Armature|IDLE", "Armature|Melee_Swing", "Armature|Death_Fall"}
	for i, name := range clipNames(selected) {
		if name != want[i] {
			t.Errorf("selection %d: got %q, want %q", i, name, want[i])
		}
	}
	// Role configuration order is preserved.
	if selected[0].Role.Name != "walk" || selected[3].Role.Name != "death" {
		t.Error("selections not in role order")
	}
}

func TestSelectFirstMatchWinsLexically(t *testing.T) {
	// Two clips match "walk"; the lexically smaller name wins no matter the
	// manifest order.
	clips := []Clip{
		{Name: "walk_b", Start: 0, End: 10},
		{Name: "walk_a", Start: 0, End: 20},
	}
	roles := []Role{{Name: "walk", Search: []string{"walk"}, FrameCount: 2}}

	selected, _ := Select(roles, clips)
	if len(selected) != 1 || selected[0].Clip.Name != "walk_a" {
		t.Fatalf("expected walk_a, got %v", clipNames(selected))
	}
}

func TestSelectLaterSearchTermMatches(t *testing.T) {
	clips := []Clip{{Name: "Slash_Heavy", Start: 0, End: 9}}
	selected, skipped := Select(DefaultRoles(), clips)
	if len(skipped) != 3 {
		t.Errorf("expected 3 skipped roles, got %d", len(skipped))
	}
	if len(selected) != 1 || selected[0].Role.Name != "attack" {
		t.Fatalf("expected attack via slash term, got %+v", selected)
	}
}

func TestSelectSkipsUnmatchedRoles(t *testing.T) {
	clips := []Clip{{Name: "Armature|Idle", Start: 1, End: 8}}
	selected, skipped := Select(DefaultRoles(), clips)

	if len(selected) != 1 || selected[0].Role.Name != "idle" {
		t.Fatalf("expected only idle selected, got %+v", selected)
	}
	wantSkipped := []string{"walk", "attack", "death"}
	if len(skipped) != len(wantSkipped) {
		t.Fatalf("expected %d skipped, got %d", len(wantSkipped), len(skipped))
	}
	for i, role := range skipped {
		if role.Name != wantSkipped[i] {
			t.Errorf("skipped %d: got %q, want %q", i, role.Name, wantSkipped[i])
		}
	}
}

func TestValidateRoles(t *testing.T) {
	if err := ValidateRoles(DefaultRoles()); err != nil {
		t.Errorf("default roles invalid: %v", err)
	}
	bad := []Role{{Name: "walk", Search: []string{"walk"}, FrameCount: 0}}
	if err := ValidateRoles(bad); err == nil {
		t.Error("expected error for zero frame count")
	}
	if err := ValidateRoles([]Role{{Name: "x", FrameCount: 1}}); err == nil {
		t.Error("expected error for empty search list")
	}
}
