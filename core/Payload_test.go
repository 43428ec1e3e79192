package core

import "testing"

func TestGenerateBattlePayload(t *testing.T) {
	s := newTestSimulation(t, fixedRandom(0.75))
	s.StartMatch()
	snap := s.Tick(NewDirectives(LeftUp))

	want := "BS1,Playing,395.00,301.25,-5.00,1.25,242.00,0,250.00,0~"
	if got := generateBattlePayload(snap); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGenerateEventPayloads(t *testing.T) {
	if got := generatePointScoredPayload(Right, Score{Left: 3, Right: 4}); got != "PS1,3,4~" {
		t.Fatalf("unexpected point payload %q", got)
	}
	if got := generateBattleOver("m1", Left, Score{Left: 11, Right: 9}); got != "BOm1,0,11,9~" {
		t.Fatalf("unexpected battle over payload %q", got)
	}
	if got := generateMatchStartPayload("m2", Right); got != "MSm2,1~" {
		t.Fatalf("unexpected match start payload %q", got)
	}
}
