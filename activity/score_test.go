package activity

import "testing"

func TestImplicitScore(t *testing.T) {
	tests := []struct {
		name        string
		impressions int
		redirects   int
		want        int
	}{
		{name: "impressions only floor to one", impressions: 3, redirects: 0, want: 1},
		{name: "many impressions still floor to one", impressions: 11, redirects: 0, want: 1},
		{name: "redirect dominates when impressions exceed", impressions: 5, redirects: 1, want: 3},
		{name: "plateau at triple redirects", impressions: 3, redirects: 2, want: 6},
		{name: "more redirects than impressions", impressions: 1, redirects: 3, want: 7},
		{name: "two impressions three redirects", impressions: 2, redirects: 3, want: 8},
		{name: "equal counts", impressions: 3, redirects: 3, want: 9},
		{name: "plateau unaffected by extra impressions", impressions: 5, redirects: 3, want: 9},
		{name: "impressions clipped at ten", impressions: 100, redirects: 1, want: 3},
		{name: "redirects clipped at ten", impressions: 1, redirects: 11, want: 21},
		{name: "redirects clipped impressions small", impressions: 3, redirects: 111, want: 23},
		{name: "both large", impressions: 6, redirects: 1000, want: 26},
		{name: "no activity", impressions: 0, redirects: 0, want: 0},
		{name: "single redirect no impression floors to two", impressions: 0, redirects: 1, want: 2},
		{name: "negative counts treated as zero", impressions: -3, redirects: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImplicitScore(tt.impressions, tt.redirects)
			if got != tt.want {
				t.Errorf("ImplicitScore(%d, %d) = %d, want %d",
					tt.impressions, tt.redirects, got, tt.want)
			}
		})
	}
}

func TestImplicitScorePlateau(t *testing.T) {
	// 曝光 >= 跳转时，分数只由跳转数决定
	for redirects := 1; redirects <= 10; redirects++ {
		base := ImplicitScore(redirects, redirects)
		for impressions := redirects; impressions <= 20; impressions++ {
			got := ImplicitScore(impressions, redirects)
			if got != base {
				t.Fatalf("ImplicitScore(%d, %d) = %d, want plateau %d",
					impressions, redirects, got, base)
			}
		}
		if base != 3*redirects {
			t.Fatalf("plateau for %d redirects = %d, want %d", redirects, base, 3*redirects)
		}
	}
}

func TestImplicitScoreMonotonicInRedirects(t *testing.T) {
	for impressions := 0; impressions <= 12; impressions++ {
		prev := ImplicitScore(impressions, 0)
		for redirects := 1; redirects <= 12; redirects++ {
			got := ImplicitScore(impressions, redirects)
			if got < prev {
				t.Fatalf("score decreased: ImplicitScore(%d, %d) = %d < %d",
					impressions, redirects, got, prev)
			}
			prev = got
		}
	}
}

func TestImplicitScoreClippingIdempotent(t *testing.T) {
	// 超过 10 次之后再增加行为不改变分数
	for redirects := 0; redirects <= 3; redirects++ {
		base := ImplicitScore(10, redirects)
		for impressions := 11; impressions <= 1000; impressions *= 3 {
			if got := ImplicitScore(impressions, redirects); got != base {
				t.Fatalf("ImplicitScore(%d, %d) = %d, want %d", impressions, redirects, got, base)
			}
		}
	}
	base := ImplicitScore(3, 10)
	for redirects := 11; redirects <= 1000; redirects *= 3 {
		if got := ImplicitScore(3, redirects); got != base {
			t.Fatalf("ImplicitScore(3, %d) = %d, want %d", redirects, got, base)
		}
	}
}
