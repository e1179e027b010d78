package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vault51/basemodel/internal/envvar"
)

func TestFromEnv(t *testing.T) {
	cases := map[string]Environment{
		"":            Development,
		"development": Development,
		"staging":     Development,
		"prod":        Production,
		"production":  Production,
		"PRODUCTION":  Production,
	}

	for value, want := range cases {
		t.Setenv(envvar.BaseModelEnv, value)
		assert.Equal(t, want, FromEnv(), "BASEMODEL_ENV=%q", value)
	}
}
