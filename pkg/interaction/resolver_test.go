package interaction

import "testing"

func travelClips() []Clip {
	return []Clip{
		{Question: "Giới thiệu về bản thân", VideoRef: "A"},
		{Question: "kỷ niệm đáng nhớ nhất trong chuyến đi là gì", VideoRef: "B"},
	}
}

func TestResolve(t *testing.T) {
	clips := travelClips()

	tests := []struct {
		name    string
		clips   []Clip
		active  *Clip
		query   string
		want    string // VideoRef of expected match, "" for miss
	}{
		{
			name:  "empty catalog always misses",
			clips: nil,
			query: "kỷ niệm",
		},
		{
			name:  "empty query misses",
			clips: clips,
			query: "",
		},
		{
			name:  "whitespace query misses",
			clips: clips,
			query: "   \t  ",
		},
		{
			name:   "token substring match jumps to other clip",
			clips:  clips,
			active: &clips[0],
			query:  "kỷ niệm",
			want:   "B",
		},
		{
			name:   "no token in any question misses",
			clips:  clips,
			active: &clips[0],
			query:  "ấn tượng",
		},
		{
			name:   "only candidate is active clip yields miss, not next candidate",
			clips:  clips,
			active: &clips[1],
			query:  "kỷ niệm",
		},
		{
			name:  "nil active matches first candidate",
			clips: clips,
			query: "kỷ niệm",
			want:  "B",
		},
		{
			name: "partial substring token matches, not whole words",
			clips: []Clip{
				{Question: "kỷ niệm đáng nhớ nhất trong chuyến đi", VideoRef: "X"},
			},
			query: "uyến",
			want:  "X",
		},
		{
			// Matching is byte-exact: "di" is not a substring of "đi".
			name: "ascii token does not match its diacritic form",
			clips: []Clip{
				{Question: "kỷ niệm đáng nhớ nhất trong chuyến đi", VideoRef: "X"},
			},
			query: "di",
		},
		{
			name: "first clip in stored order wins over better later match",
			clips: []Clip{
				{Question: "chuyến đi đầu tiên", VideoRef: "first"},
				{Question: "chuyến đi đáng nhớ nhất của bạn là chuyến đi nào", VideoRef: "second"},
			},
			query: "chuyến đi",
			want:  "first",
		},
		{
			name: "first candidate being active stops the scan entirely",
			clips: []Clip{
				{Question: "món ăn ngon", VideoRef: "A"},
				{Question: "món ăn dở", VideoRef: "B"},
			},
			active: &Clip{Question: "món ăn ngon", VideoRef: "A"},
			query:  "món",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(tt.clips, tt.active, tt.query)
			if tt.want == "" {
				if res.Matched {
					t.Fatalf("Resolve() = match on %q, want miss", res.Clip.VideoRef)
				}
				return
			}
			if !res.Matched {
				t.Fatalf("Resolve() = miss, want match on %q", tt.want)
			}
			if res.Clip.VideoRef != tt.want {
				t.Errorf("Resolve() matched %q, want %q", res.Clip.VideoRef, tt.want)
			}
		})
	}
}

func TestResolveComparesByVideoRef(t *testing.T) {
	// Duplicate refs are legal upstream; the active-clip filter compares refs,
	// not clip identity.
	clips := []Clip{
		{Question: "câu hỏi một", VideoRef: "same"},
		{Question: "câu hỏi hai", VideoRef: "same"},
	}
	active := clips[1]

	res := Resolve(clips, &active, "câu")
	if res.Matched {
		t.Errorf("Resolve() matched %q, want miss for duplicate ref", res.Clip.VideoRef)
	}
}

func TestGroupByCategory(t *testing.T) {
	clips := []Clip{
		{Question: "q1", Category: "Tổng quan", VideoRef: "1"},
		{Question: "q2", VideoRef: "2"},
		{Question: "q3", Category: "Tổng quan", VideoRef: "3"},
	}

	order, groups := GroupByCategory(clips)
	if len(order) != 2 || order[0] != "Tổng quan" || order[1] != CategoryOther {
		t.Fatalf("category order = %v", order)
	}
	if len(groups["Tổng quan"]) != 2 {
		t.Errorf("Tổng quan group = %d clips, want 2", len(groups["Tổng quan"]))
	}
	if groups[CategoryOther][0].VideoRef != "2" {
		t.Errorf("uncategorized clip landed in %v", groups[CategoryOther])
	}
}
