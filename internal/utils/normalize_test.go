package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Cardiología", "cardiologia"},
		{"Neurología Pediátrica", "neurologia pediatrica"},
		{"Émergence", "emergence"},
		{"HTN", "htn"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, FoldAccents(test.input), "FoldAccents(%q)", test.input)
	}
}

func TestParseSpecialties(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"vazio", "", nil},
		{"somente espaços", "   ", nil},
		{"uma especialidade", "Cardiology", []string{"cardiology"}},
		{"várias com espaços", " cardiology , Neurology,", []string{"cardiology", "neurology"}},
		{"duplicadas", "cardiology,CARDIOLOGY,oncology", []string{"cardiology", "oncology"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSpecialties(tt.input))
		})
	}
}
