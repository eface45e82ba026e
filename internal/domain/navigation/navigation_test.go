package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

func view(disabled ...int) collection.Collection {
	items := entity.Items("a", "b", "c", "d", "e")
	for _, i := range disabled {
		items[i].Disabled = true
	}
	return collection.NewView(items)
}

func cfg(mutate func(*entity.ListConfig)) entity.ListConfig {
	c := entity.DefaultListConfig()
	if mutate != nil {
		mutate(&c)
	}
	return c
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		coll   collection.Collection
		cfg    entity.ListConfig
		start  int
		intent Intent
		want   int
	}{
		{
			name:   "next steps by one",
			coll:   view(),
			cfg:    cfg(nil),
			start:  0,
			intent: Next,
			want:   1,
		},
		{
			name:   "next skips disabled",
			coll:   view(1, 2),
			cfg:    cfg(nil),
			start:  0,
			intent: Next,
			want:   3,
		},
		{
			name:   "next lands on disabled when not skipping",
			coll:   view(1),
			cfg:    cfg(func(c *entity.ListConfig) { c.SkipDisabled = false }),
			start:  0,
			intent: Next,
			want:   1,
		},
		{
			name:   "next clamps without wrap",
			coll:   view(),
			cfg:    cfg(func(c *entity.ListConfig) { c.Wrap = false }),
			start:  4,
			intent: Next,
			want:   4,
		},
		{
			name:   "next wraps",
			coll:   view(),
			cfg:    cfg(nil),
			start:  4,
			intent: Next,
			want:   0,
		},
		{
			name:   "wrap still skips disabled",
			coll:   view(0),
			cfg:    cfg(nil),
			start:  4,
			intent: Next,
			want:   1,
		},
		{
			name:   "prev wraps to end without skipping",
			coll:   view(4),
			cfg:    cfg(func(c *entity.ListConfig) { c.SkipDisabled = false }),
			start:  0,
			intent: Prev,
			want:   4,
		},
		{
			name:   "no enabled item ahead without wrap is a no-op",
			coll:   view(3, 4),
			cfg:    cfg(func(c *entity.ListConfig) { c.Wrap = false }),
			start:  2,
			intent: Next,
			want:   2,
		},
		{
			name:   "home skips disabled boundary",
			coll:   view(0, 1),
			cfg:    cfg(func(c *entity.ListConfig) { c.SkipDisabled = false }),
			start:  4,
			intent: Home,
			want:   2,
		},
		{
			name:   "end skips disabled boundary",
			coll:   view(4),
			cfg:    cfg(func(c *entity.ListConfig) { c.SkipDisabled = false }),
			start:  0,
			intent: End,
			want:   3,
		},
		{
			name:   "pointer may target disabled",
			coll:   view(2),
			cfg:    cfg(nil),
			start:  0,
			intent: To(2),
			want:   2,
		},
		{
			name:   "pointer out of range is ignored",
			coll:   view(),
			cfg:    cfg(nil),
			start:  1,
			intent: To(9),
			want:   1,
		},
		{
			name:   "disabled widget ignores everything",
			coll:   view(),
			cfg:    cfg(func(c *entity.ListConfig) { c.Disabled = true }),
			start:  1,
			intent: Next,
			want:   1,
		},
		{
			name:   "readonly widget still navigates",
			coll:   view(),
			cfg:    cfg(func(c *entity.ListConfig) { c.Readonly = true }),
			start:  1,
			intent: Next,
			want:   2,
		},
		{
			name:   "empty collection is inert",
			coll:   collection.Empty,
			cfg:    cfg(nil),
			start:  -1,
			intent: End,
			want:   -1,
		},
		{
			name:   "fully disabled collection is inert",
			coll:   view(0, 1, 2, 3, 4),
			cfg:    cfg(nil),
			start:  -1,
			intent: Next,
			want:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.start, tt.coll, tt.intent, tt.cfg))
		})
	}
}

func TestHomeEndIgnoreWrap(t *testing.T) {
	coll := view(0, 4)
	for _, wrap := range []bool{true, false} {
		c := cfg(func(c *entity.ListConfig) { c.Wrap = wrap })
		for start := 0; start < coll.Len(); start++ {
			assert.Equal(t, 1, Compute(start, coll, Home, c), "home from %d wrap=%v", start, wrap)
			assert.Equal(t, 3, Compute(start, coll, End, c), "end from %d wrap=%v", start, wrap)
		}
	}
}

func TestWrapRoundTrip(t *testing.T) {
	coll := view(1, 3)
	c := cfg(nil)
	n := collection.EnabledCount(coll)

	for _, start := range []int{0, 2, 4} {
		i := start
		for range n {
			i = Compute(i, coll, Next, c)
		}
		assert.Equal(t, start, i, "round trip from %d", start)
	}
}

func TestIntentForKey(t *testing.T) {
	vertical := cfg(nil)
	horizontal := cfg(func(c *entity.ListConfig) { c.Orientation = entity.OrientationHorizontal })
	rtl := cfg(func(c *entity.ListConfig) {
		c.Orientation = entity.OrientationHorizontal
		c.TextDirection = entity.DirectionRTL
	})
	verticalRTL := cfg(func(c *entity.ListConfig) { c.TextDirection = entity.DirectionRTL })

	tests := []struct {
		name   string
		key    string
		cfg    entity.ListConfig
		want   Intent
		wantOK bool
	}{
		{name: "down in vertical", key: entity.KeyArrowDown, cfg: vertical, want: Next, wantOK: true},
		{name: "up in vertical", key: entity.KeyArrowUp, cfg: vertical, want: Prev, wantOK: true},
		{name: "right ignored in vertical", key: entity.KeyArrowRight, cfg: vertical, wantOK: false},
		{name: "down ignored in horizontal", key: entity.KeyArrowDown, cfg: horizontal, wantOK: false},
		{name: "right in ltr", key: entity.KeyArrowRight, cfg: horizontal, want: Next, wantOK: true},
		{name: "left in ltr", key: entity.KeyArrowLeft, cfg: horizontal, want: Prev, wantOK: true},
		{name: "left in rtl", key: entity.KeyArrowLeft, cfg: rtl, want: Next, wantOK: true},
		{name: "right in rtl", key: entity.KeyArrowRight, cfg: rtl, want: Prev, wantOK: true},
		{name: "rtl does not affect vertical", key: entity.KeyArrowDown, cfg: verticalRTL, want: Next, wantOK: true},
		{name: "home", key: entity.KeyHome, cfg: horizontal, want: Home, wantOK: true},
		{name: "end", key: entity.KeyEnd, cfg: vertical, want: End, wantOK: true},
		{name: "letters are not navigation", key: "a", cfg: vertical, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntentForKey(tt.key, tt.cfg)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
