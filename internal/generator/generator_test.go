package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/randomwords/internal/dictionary"
	mock_generator "github.com/at-ishikawa/randomwords/internal/mocks/generator"
)

var englishNumbers = dictionary.Numbers{
	Digits: strings.Fields("zero one two three four five six seven eight nine"),
	Teens:  strings.Fields("ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen"),
	Tens:   strings.Fields("twenty thirty forty fifty sixty seventy eighty ninety"),
	Places: strings.Fields("one ten hundred thousand million billion trillion"),
}

func fixtureParams() dictionary.Params {
	return dictionary.Params{
		Info: dictionary.SourceInfo{Name: "fixture", Triggers: []string{"fixture"}},
		Words: map[dictionary.Category][]string{
			dictionary.Nouns:                    {"apple", "banana"},
			dictionary.PluralNouns:              {"apples", "bananas"},
			dictionary.Verbs:                    {"runs", "sleeps"},
			dictionary.PluralVerbs:              {"run", "sleep"},
			dictionary.PassiveVerbs:             {"eaten"},
			dictionary.Adverbs:                  {"quickly", "slowly"},
			dictionary.Adjectives:               {"old", "red"},
			dictionary.Articles:                 {"the", "a"},
			dictionary.PluralArticles:           {"some", "the"},
			dictionary.Prepositions:             {"with", "under", "over"},
			dictionary.Clauses:                  {"when it rains", "as night falls"},
			dictionary.CoordinatingConjunctions: {"and", "but"},
			dictionary.SubordinateConjunctions:  {"because", "while"},
			dictionary.Phrases:                  {"in the end"},
		},
		Names: dictionary.Names{
			First: []string{"Ada"},
			Last:  []string{"Lovelace"},
			Full:  []string{"Grace Hopper"},
		},
		Numbers:             englishNumbers,
		Terminators:         []dictionary.Terminator{{Trailing: "."}, {Trailing: "?"}},
		ExtendedTerminators: []dictionary.Terminator{{Trailing: "…"}, {Leading: "¿", Trailing: "?"}},
	}
}

func newFixtureDictionary(t *testing.T, modify ...func(params *dictionary.Params)) *dictionary.Dictionary {
	t.Helper()
	params := fixtureParams()
	for _, m := range modify {
		m(&params)
	}
	d, err := dictionary.New(params)
	require.NoError(t, err)
	return d
}

func newEnglishGenerator(t *testing.T, seed uint64, opts ...Option) *Generator {
	t.Helper()
	d, err := dictionary.LoadBuiltin(dictionary.DefaultSource)
	require.NoError(t, err)
	g, err := New(d, DefaultConfig(), append([]Option{WithRandomSource(NewRandomSource(seed))}, opts...)...)
	require.NoError(t, err)
	return g
}

// zeroSource always picks the first entry and passes every roll.
func zeroSource(t *testing.T) *mock_generator.MockRandomSource {
	ctrl := gomock.NewController(t)
	rng := mock_generator.NewMockRandomSource(ctrl)
	rng.EXPECT().IntN(gomock.Any()).DoAndReturn(func(n int) int { return 0 }).AnyTimes()
	return rng
}

// lastSource always picks the last entry and fails every roll.
func lastSource(t *testing.T) *mock_generator.MockRandomSource {
	ctrl := gomock.NewController(t)
	rng := mock_generator.NewMockRandomSource(ctrl)
	rng.EXPECT().IntN(gomock.Any()).DoAndReturn(func(n int) int { return n - 1 }).AnyTimes()
	return rng
}

func TestNew(t *testing.T) {
	d := newFixtureDictionary(t)

	tests := []struct {
		name    string
		config  Config
		opts    []Option
		wantErr bool
	}{
		{
			name:   "default config",
			config: DefaultConfig(),
		},
		{
			name:    "unknown tier",
			config:  Config{SentenceLength: "huge", ParagraphLength: 5},
			wantErr: true,
		},
		{
			name:    "zero paragraph length",
			config:  Config{SentenceLength: Short, ParagraphLength: 0},
			wantErr: true,
		},
		{
			name:    "negative retry policy",
			config:  DefaultConfig(),
			opts:    []Option{WithRetryPolicy(RetryPolicy{MaxAttempts: -1})},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(d, tt.config, tt.opts...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, g)
		})
	}
}

func TestGenerator_SetExtendedPunctuation(t *testing.T) {
	d := newFixtureDictionary(t)
	first, err := New(d, DefaultConfig())
	require.NoError(t, err)
	second, err := New(d, DefaultConfig())
	require.NoError(t, err)

	first.SetExtendedPunctuation(true)
	assert.Len(t, first.Terminators(), 4)
	assert.Len(t, second.Terminators(), 2)
	assert.Len(t, d.Terminators(), 2)

	first.SetExtendedPunctuation(false)
	assert.Equal(t, d.Terminators(), first.Terminators())
}

func TestGenerator_Setters(t *testing.T) {
	g, err := New(newFixtureDictionary(t), DefaultConfig())
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetSentenceLength("enormous"), ErrInvalidConfiguration)
	require.NoError(t, g.SetSentenceLength(Long))
	assert.Equal(t, 100, g.Config().TargetLength())

	assert.ErrorIs(t, g.SetParagraphLength(0), ErrInvalidConfiguration)
	assert.ErrorIs(t, g.SetParagraphLength(-3), ErrInvalidConfiguration)
	require.NoError(t, g.SetParagraphLength(2))
	assert.Equal(t, 2, g.Config().ParagraphLength)

	assert.ErrorIs(t, g.SetLengths(map[LengthTier]int{Short: 0}), ErrInvalidConfiguration)
	require.NoError(t, g.SetLengths(map[LengthTier]int{Long: 150}))
	assert.Equal(t, 150, g.Config().TargetLength())
	assert.Equal(t, 20, g.Config().LengthOf(Short))
}

func TestGenerator_Word(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mock_generator.NewMockRandomSource(ctrl)
	gomock.InOrder(
		rng.EXPECT().IntN(9).Return(2),
		rng.EXPECT().IntN(2).Return(1),
	)

	g, err := New(newFixtureDictionary(t), DefaultConfig(), WithRandomSource(rng))
	require.NoError(t, err)
	assert.Equal(t, "banana", g.Word())
}

func TestGenerator_Words(t *testing.T) {
	g := newEnglishGenerator(t, 1)

	for _, n := range []int{1, 5, 10, 30} {
		got := g.Words(n)
		assert.Len(t, strings.Fields(got), n, got)
		assert.Equal(t, Compress(got), got)
	}
	assert.Empty(t, g.Words(0))
	assert.Empty(t, g.Words(-2))
}

func TestGenerator_Words_Agreement(t *testing.T) {
	g, err := New(newFixtureDictionary(t), DefaultConfig(), WithRandomSource(zeroSource(t)))
	require.NoError(t, err)

	assert.Equal(t, "the old apple quickly runs old runs quickly end", g.Words(9))
	// the article cursor moved on to "a", which must agree with "old"
	assert.Equal(t, "an old apple", g.Words(3))
}

func TestGenerator_Sentence(t *testing.T) {
	g := newEnglishGenerator(t, 2)
	g.SetExtendedPunctuation(true)

	leading := map[rune]bool{}
	trailing := map[rune]bool{}
	for _, terminator := range g.Terminators() {
		for _, r := range terminator.Leading {
			leading[r] = true
		}
		for _, r := range terminator.Trailing {
			trailing[r] = true
		}
	}

	for i := 0; i < 200; i++ {
		got := []rune(g.Sentence(0))
		require.NotEmpty(t, got)
		first := got[0]
		assert.True(t, leading[first] || (first >= 'A' && first <= 'Z'), string(got))
		assert.True(t, trailing[got[len(got)-1]], string(got))
	}
}

func TestGenerator_Sentences(t *testing.T) {
	g := newEnglishGenerator(t, 3)

	assert.Len(t, g.Sentences(3), 3)
	assert.Empty(t, g.Sentences(0))
	for _, sentence := range g.Sentences(5) {
		assert.GreaterOrEqual(t, Length(sentence), g.Config().TargetLength())
	}
}

func TestGenerator_Paragraph(t *testing.T) {
	g := newEnglishGenerator(t, 4)

	for _, n := range []int{1, 3, 10} {
		paragraph, err := g.Paragraph(n)
		require.NoError(t, err)

		count := strings.Count(paragraph, ".") + strings.Count(paragraph, "?") + strings.Count(paragraph, "!")
		assert.Equal(t, n, count, paragraph)
		assert.Equal(t, Compress(paragraph), paragraph)
	}
}

func TestGenerator_Paragraph_Invalid(t *testing.T) {
	g := newEnglishGenerator(t, 5)

	for _, n := range []int{0, -1} {
		_, err := g.Paragraph(n)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	}
}

func TestGenerator_DefaultParagraph(t *testing.T) {
	g := newEnglishGenerator(t, 6)
	require.NoError(t, g.SetParagraphLength(2))

	paragraph := g.DefaultParagraph()
	count := strings.Count(paragraph, ".") + strings.Count(paragraph, "?") + strings.Count(paragraph, "!")
	assert.Equal(t, 2, count, paragraph)
}

func TestGenerator_ExtendedPunctuation(t *testing.T) {
	const extended = "…‽¿¡"

	tests := []struct {
		name    string
		enabled bool
	}{
		{name: "disabled", enabled: false},
		{name: "enabled", enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newEnglishGenerator(t, 7)
			g.SetExtendedPunctuation(tt.enabled)

			count := 0
			for i := 0; i < 50; i++ {
				for _, r := range g.DefaultParagraph() {
					if strings.ContainsRune(extended, r) {
						count++
					}
				}
			}
			if tt.enabled {
				assert.Positive(t, count)
			} else {
				assert.Zero(t, count)
			}
		})
	}
}

func TestGenerator_Reproducible(t *testing.T) {
	first := newEnglishGenerator(t, 42)
	second := newEnglishGenerator(t, 42)

	assert.Equal(t, first.DefaultParagraph(), second.DefaultParagraph())
	assert.Equal(t, first.Words(12), second.Words(12))
}

func TestGenerator_Name(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mock_generator.NewMockRandomSource(ctrl)
	gomock.InOrder(
		// skip the full name
		rng.EXPECT().IntN(100).Return(99),
		rng.EXPECT().IntN(1).Return(0),
		// add a middle initial
		rng.EXPECT().IntN(100).Return(0),
		rng.EXPECT().IntN(26).Return(2),
		rng.EXPECT().IntN(1).Return(0),
	)

	g, err := New(newFixtureDictionary(t), DefaultConfig(), WithRandomSource(rng))
	require.NoError(t, err)
	assert.Equal(t, "Ada C Lovelace", g.Name())
}

func TestGenerator_Name_Sections(t *testing.T) {
	tests := []struct {
		name  string
		names dictionary.Names
		want  string
	}{
		{
			name:  "full names only",
			names: dictionary.Names{Full: []string{"Grace Hopper"}},
			want:  "Grace Hopper",
		},
		{
			name:  "first names without last names",
			names: dictionary.Names{First: []string{"Ada"}, Full: []string{"Alan Turing"}},
			want:  "Alan Turing",
		},
		{
			name:  "no names",
			names: dictionary.Names{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newFixtureDictionary(t, func(params *dictionary.Params) {
				params.Names = tt.names
			})
			g, err := New(d, DefaultConfig(), WithRandomSource(lastSource(t)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Name())
		})
	}
}
