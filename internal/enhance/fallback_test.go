package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFallbackRules(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"contraction", "i can't deploy. it's fine", "I cannot deploy. It is fine"},
		{"misspelling", "recieved the award, seperated concerns", "Received the award, separated concerns"},
		{"weak verbs", "worked on the billing system and helped the team", "Developed the billing system and contributed to the team"},
		{"responsibility", "was responsible for releases", "Led releases"},
		{"capitalization", "first sentence. second sentence! third?  fourth", "First sentence. Second sentence! Third?  Fourth"},
		{"token punctuation", "contact me at a@b.com for details", "Contact me at a@b.com for details"},
		{"trims whitespace", "  built the api  ", "Built the api"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyFallback(tc.in))
		})
	}
}

func TestApplyFallbackDeterministic(t *testing.T) {
	in := "i can't recieve feedback. worked on stuff and dealt with incidents"
	first := ApplyFallback(in)
	assert.Equal(t, first, ApplyFallback(in))
}

func TestApplyFallbackSafeToReapply(t *testing.T) {
	ins := []string{
		"i can't deploy. it's fine",
		"I'm leading the team and was responsible for releases",
		"recieved the definately occured enviroment managment report",
	}
	for _, in := range ins {
		once := ApplyFallback(in)
		assert.Equal(t, once, ApplyFallback(once), "second application must be a no-op for %q", in)
	}
}

func TestApplyFallbackEmpty(t *testing.T) {
	assert.Equal(t, "", ApplyFallback(""))
	assert.Equal(t, "", ApplyFallback("   "))
}
