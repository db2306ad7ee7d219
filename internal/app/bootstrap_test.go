package app

import "testing"

func TestListenAddr(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "8080", want: ":8080"},
		{in: ":8080", want: ":8080"},
		{in: " 9000 ", want: ":9000"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, c := range cases {
		got, err := ListenAddr(c.in)
		if c.wantErr {
			if err == nil {
				t.Fatalf("ListenAddr(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ListenAddr(%q): unexpected err: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ListenAddr(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
