package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		Info: SourceInfo{Name: "tiny", Description: "tiny source", Triggers: []string{"tiny", "t"}},
		Words: map[Category][]string{
			Nouns:                    {"apple", "banana", "  owl "},
			PluralNouns:              {"apples", "bananas", "owls"},
			Verbs:                    {"runs", "sleeps"},
			PluralVerbs:              {"run", "sleep"},
			PassiveVerbs:             {"eaten"},
			Adverbs:                  {"quickly", "slowly"},
			Adjectives:               {"red", "old"},
			Articles:                 {"a", "an"},
			PluralArticles:           {"some", "the"},
			Prepositions:             {"with", "under"},
			Clauses:                  {"when the   sun sets", ""},
			CoordinatingConjunctions: {"and", "but"},
			SubordinateConjunctions:  {"because", "while"},
		},
		Names: Names{First: []string{"Ada"}, Last: []string{"Lovelace"}},
		Numbers: Numbers{
			Digits: []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
			Teens:  []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"},
			Tens:   []string{"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},
			Places: []string{"one", "ten", "hundred", "thousand"},
		},
		Terminators:         []Terminator{{Leading: "", Trailing: "."}, {Leading: " ", Trailing: " "}},
		ExtendedTerminators: []Terminator{{Leading: "", Trailing: "…"}},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(params *Params)
		wantErr error
	}{
		{
			name:   "valid",
			modify: func(params *Params) {},
		},
		{
			name: "phrases are optional",
			modify: func(params *Params) {
				params.Words[Phrases] = nil
			},
		},
		{
			name: "empty nouns",
			modify: func(params *Params) {
				params.Words[Nouns] = []string{" ", ""}
			},
			wantErr: ErrEmptyCategory,
		},
		{
			name: "short digits",
			modify: func(params *Params) {
				params.Numbers.Digits = params.Numbers.Digits[:9]
			},
			wantErr: ErrInvalidNumbers,
		},
		{
			name: "missing places",
			modify: func(params *Params) {
				params.Numbers.Places = params.Numbers.Places[:2]
			},
			wantErr: ErrInvalidNumbers,
		},
		{
			name: "no terminators",
			modify: func(params *Params) {
				params.Terminators = []Terminator{{Leading: "¿", Trailing: ""}}
			},
			wantErr: ErrNoTerminators,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			tt.modify(&params)

			got, err := New(params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestDictionary_Cleaning(t *testing.T) {
	d, err := New(testParams())
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "banana", "owl"}, d.Words(Nouns))
	assert.Equal(t, []string{"when the sun sets"}, d.Words(Clauses))
	// whitespace-only trailing terminators are dropped
	assert.Equal(t, []Terminator{{Leading: "", Trailing: "."}}, d.Terminators())
	assert.Equal(t, []Terminator{{Leading: "", Trailing: "…"}}, d.ExtendedTerminators())
	assert.Equal(t, "tiny", d.Name())
}

func TestDictionary_Copies(t *testing.T) {
	params := testParams()
	d, err := New(params)
	require.NoError(t, err)

	params.Numbers.Digits[0] = "nil"
	info := d.Info()
	info.Triggers[0] = "changed"

	assert.Equal(t, "zero", d.Numbers().Digits[0])
	assert.Equal(t, []string{"tiny", "t"}, d.Info().Triggers)
}

func TestDictionary_Index(t *testing.T) {
	d, err := New(testParams())
	require.NoError(t, err)

	assert.Contains(t, d.AllWords(), "apple")
	assert.Contains(t, d.AllWords(), "when the sun sets")

	counts := map[string]int{}
	for _, word := range d.AllWords() {
		counts[word]++
	}
	for word, count := range counts {
		assert.Equal(t, 1, count, word)
	}

	assert.ElementsMatch(t, []string{"apple", "sleep", "eaten", "under", "while"}, d.WordsOfLength(5))
	assert.Empty(t, d.WordsOfLength(40))

	assert.True(t, d.IsPluralNoun("apples"))
	assert.True(t, d.IsPluralNoun("Owls"))
	assert.False(t, d.IsPluralNoun("apple"))
}

func TestNames_Empty(t *testing.T) {
	tests := []struct {
		name  string
		names Names
		want  bool
	}{
		{name: "nothing", names: Names{}, want: true},
		{name: "first only", names: Names{First: []string{"Ada"}}, want: true},
		{name: "first and last", names: Names{First: []string{"Ada"}, Last: []string{"Lovelace"}}, want: false},
		{name: "full only", names: Names{Full: []string{"Grace Hopper"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.names.Empty())
		})
	}
}

func TestSourceInfo_Matches(t *testing.T) {
	info := SourceInfo{Name: "English", Triggers: []string{"en", "eng"}}

	tests := []struct {
		input string
		want  bool
	}{
		{input: "english", want: true},
		{input: " EN ", want: true},
		{input: "eng", want: true},
		{input: "latin", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, info.Matches(tt.input))
		})
	}
}
