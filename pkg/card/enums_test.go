package card

import "testing"

func TestEnumParsing(t *testing.T) {
	t.Run("known tokens", func(t *testing.T) {
		if got, ok := ParseImageSize("large"); !ok || got != ImageSizeLarge {
			t.Fatalf("ParseImageSize(large) = %v, %v", got, ok)
		}
		if got, ok := ParseSpacing("extraLarge"); !ok || got != SpacingExtraLarge {
			t.Fatalf("ParseSpacing(extraLarge) = %v, %v", got, ok)
		}
		if got, ok := ParseTextWeight("bolder"); !ok || got != TextWeightBolder {
			t.Fatalf("ParseTextWeight(bolder) = %v, %v", got, ok)
		}
		if got, ok := ParseChoiceSetStyle("expanded"); !ok || got != ChoiceSetStyleExpanded {
			t.Fatalf("ParseChoiceSetStyle(expanded) = %v, %v", got, ok)
		}
	})

	t.Run("unknown tokens fall back to defaults", func(t *testing.T) {
		cases := []struct {
			name string
			got  string
			want string
			ok   bool
		}{
			{"image size", parseToken(ParseImageSize, "bogus"), "auto", false},
			{"spacing", parseToken(ParseSpacing, "huge"), "default", false},
			{"text color", parseToken(ParseTextColor, "magenta"), "default", false},
			{"container style", parseToken(ParseContainerStyle, "loud"), "default", false},
			{"action style", parseToken(ParseActionStyle, "scary"), "default", false},
			{"text input style", parseToken(ParseTextInputStyle, "phone"), "text", false},
			{"horizontal alignment", parseToken(ParseHorizontalAlignment, "justify"), "left", false},
			{"vertical alignment", parseToken(ParseVerticalAlignment, "middle"), "top", false},
		}
		for _, tc := range cases {
			if tc.got != tc.want {
				t.Errorf("%s: want default %q, got %q", tc.name, tc.want, tc.got)
			}
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		if _, ok := ParseImageSize("Large"); ok {
			t.Fatal("tokens are case sensitive; Large must not parse")
		}
	})
}

// parseToken flattens an enum parser's result to the token text for table
// comparison.
func parseToken[E ~string](parse func(string) (E, bool), token string) string {
	got, _ := parse(token)
	return string(got)
}
