package questionnaire

import "testing"

func TestLikert_Valid(t *testing.T) {
	for v := Likert(1); v <= 5; v++ {
		if !v.Valid() {
			t.Fatalf("expected %d to be valid", v)
		}
	}
	for _, v := range []Likert{0, 6, -1} {
		if v.Valid() {
			t.Fatalf("expected %d to be invalid", v)
		}
	}
}

func TestLikert_Labels(t *testing.T) {
	cases := map[Likert]string{
		Disagree:         "Disagree",
		SomewhatDisagree: "Somewhat Disagree",
		Neutral:          "Neither Agree nor Disagree",
		SomewhatAgree:    "Somewhat Agree",
		Agree:            "Agree",
		Likert(0):        "",
	}
	for v, want := range cases {
		if got := v.Label(); got != want {
			t.Fatalf("label(%d) = %q, want %q", v, got, want)
		}
	}
}
