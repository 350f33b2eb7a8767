package string

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Name":               "name",
		"SerialNumber":       "serial_number",
		"TargetAquariumID":   "target_aquarium_id",
		"MinTemperature":     "min_temperature",
		"already_snake_case": "already_snake_case",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestTrimHelpers(t *testing.T) {
	a, b := "  reef ", "\tgoby\n"
	TrimStrings(&a, &b, nil)
	assert.Equal(t, "reef", a)
	assert.Equal(t, "goby", b)

	assert.Nil(t, TrimPtr(nil))
	v := "  x "
	assert.Equal(t, "x", *TrimPtr(&v))

	kind := " sand "
	assert.Equal(t, "SAND", *UpperPtr(&kind))
	assert.Nil(t, UpperPtr(nil))
}
