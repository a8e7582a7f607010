package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatStatic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"five digits", "12345", "12-345"},
		{"six digits", "123456", "123-456"},
		{"already dashed", "12-345", "12-345"},
		{"six dashed", "123-456", "123-456"},
		{"with spaces", " 123 456 ", "123-456"},
		{"with letters", "abc12345", "12-345"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatStatic(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatStaticRejectsWrongLength(t *testing.T) {
	for _, input := range []string{"", "1234", "1234567", "abc", "12-34"} {
		_, err := FormatStatic(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestIsValidStaticFormat(t *testing.T) {
	assert.True(t, IsValidStaticFormat("12-345"))
	assert.True(t, IsValidStaticFormat("123-456"))
	assert.False(t, IsValidStaticFormat("12345"))
	assert.False(t, IsValidStaticFormat("1-2345"))
}

func TestCleanNickname(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ВА | Иван Иванов", "Иван Иванов"},
		{"[Нач. Штаба] Пётр Петров", "Пётр Петров"},
		{"![Зам] Олег Сидоров", "Олег Сидоров"},
		{"Иван Иванов", "Иван Иванов"},
		{"[Пустой]", "[Пустой]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanNickname(tt.input), "input %q", tt.input)
	}
}

func TestSurname(t *testing.T) {
	assert.Equal(t, "Иванов", Surname("Иван Иванов"))
	assert.Equal(t, "Иванов", Surname("  Иван  Иванов  "))
	assert.Equal(t, "", Surname("Иванов"))
	assert.Equal(t, "", Surname(""))
}
