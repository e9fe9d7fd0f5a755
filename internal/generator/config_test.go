package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLengthTier(t *testing.T) {
	tests := []struct {
		input   string
		want    LengthTier
		wantErr bool
	}{
		{input: "short", want: Short},
		{input: "s", want: Short},
		{input: "Medium", want: Medium},
		{input: " long ", want: Long},
		{input: "very_long", want: VeryLong},
		{input: "v", want: VeryLong},
		{input: "huge", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLengthTier(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "default",
			config: DefaultConfig(),
		},
		{
			name:   "lengths may be omitted",
			config: Config{SentenceLength: VeryLong, ParagraphLength: 1},
		},
		{
			name:    "unknown tier",
			config:  Config{SentenceLength: "tiny", ParagraphLength: 1},
			wantErr: true,
		},
		{
			name:    "negative paragraph length",
			config:  Config{SentenceLength: Short, ParagraphLength: -1},
			wantErr: true,
		},
		{
			name:    "zero length",
			config:  Config{SentenceLength: Short, ParagraphLength: 1, Lengths: map[LengthTier]int{Medium: 0}},
			wantErr: true,
		},
		{
			name:    "unknown length tier",
			config:  Config{SentenceLength: Short, ParagraphLength: 1, Lengths: map[LengthTier]int{"tiny": 5}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_TargetLength(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   int
	}{
		{name: "default medium", config: DefaultConfig(), want: 60},
		{name: "default table", config: Config{SentenceLength: VeryLong}, want: 300},
		{name: "override", config: Config{SentenceLength: Short, Lengths: map[LengthTier]int{Short: 35}}, want: 35},
		{name: "partial override", config: Config{SentenceLength: Long, Lengths: map[LengthTier]int{Short: 35}}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.config.TargetLength())
		})
	}
}

func TestDefaultLengths_Copy(t *testing.T) {
	lengths := DefaultLengths()
	lengths[Short] = 1
	assert.Equal(t, 20, DefaultLengths()[Short])
}
